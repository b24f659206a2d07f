// Package jams models JAMS (JSON Annotated Music Specification)
// annotation documents. Only the subset of the interchange schema
// needed by the converter is represented: file-level metadata, tag
// annotations with their provenance metadata, and the open sandbox
// extension fields. The schema itself is defined externally at
// https://jams.readthedocs.io/.
package jams
