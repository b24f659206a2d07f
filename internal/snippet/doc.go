// Package snippet builds one JAMS annotation document per metadata
// record. This is the core mapping of the converter: each clip row
// becomes a document with the clip's sound class as a single
// open-vocabulary tag spanning the whole snippet, plus the fixed
// UrbanSound8K provenance metadata and the complete source row
// stashed in the annotation sandbox.
package snippet
