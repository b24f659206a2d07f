// Package index writes an optional SQLite database summarizing a
// converted corpus, one row per clip. It lets dataset consumers
// query class and fold distributions without re-parsing thousands of
// JAMS files.
package index
