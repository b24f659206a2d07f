// Package metadata loads the UrbanSound8K metadata table. It parses
// the CSV file into an ordered sequence of records, one per audio
// clip, preserving column names and row order for downstream
// conversion.
package metadata
