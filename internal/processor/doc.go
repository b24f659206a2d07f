// Package processor contains the batch driver of the converter. It
// loads the metadata table, builds one JAMS document per record in
// table order, and writes each document into the output directory.
// Any failure is fatal to the whole run: rows converted earlier
// remain on disk, later rows are never attempted.
package processor
