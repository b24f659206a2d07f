package processor

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/urbansounds/us8kjams/internal/cli"
	"github.com/urbansounds/us8kjams/internal/index"
	"github.com/urbansounds/us8kjams/internal/metadata"
	"github.com/urbansounds/us8kjams/internal/snippet"
)

// Progress is printed every progressEvery converted clips
const progressEvery = 1000

// IndexFileName is the SQLite index written next to the JAMS files
// when --index is set
const IndexFileName = "clips.db"

// WriteError indicates a document could not be written to its
// destination path
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Processor handles the metadata-to-JAMS conversion run
type Processor struct {
	flags *cli.Flags
}

// NewProcessor creates a new conversion processor
func NewProcessor(flags *cli.Flags) *Processor {
	return &Processor{flags: flags}
}

// Run converts the whole metadata table, one JAMS file per row.
// The table is fully loaded before any output is written; the output
// directory is created once up front. There is no per-row error
// isolation and no rollback: the first failing row aborts the run.
func (p *Processor) Run() error {
	started := time.Now()

	table, err := metadata.Load(p.flags.MetadataFile)
	if err != nil {
		return err
	}

	// Create output directory (including parent directories)
	if err := os.MkdirAll(p.flags.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	// Each row represents a single clip
	for i, rec := range table.Records {
		jam, err := snippet.BuildJAMS(rec)
		if err != nil {
			return err
		}

		outPath := filepath.Join(p.flags.OutputDir, snippet.OutputName(rec.Field("slice_file_name")))
		if err := jam.Save(outPath); err != nil {
			return &WriteError{Path: outPath, Err: err}
		}

		if (i+1)%progressEvery == 0 {
			fmt.Printf("Converted %d/%d clips\n", i+1, len(table.Records))
		}
	}

	// The index is only built after a fully successful conversion,
	// so a failed batch never leaves a stale index behind.
	if p.flags.BuildIndex {
		dbPath := filepath.Join(p.flags.OutputDir, IndexFileName)
		if err := index.Build(dbPath, table.Records); err != nil {
			return fmt.Errorf("building clip index: %w", err)
		}
		fmt.Printf("Wrote clip index to %s\n", dbPath)
	}

	fmt.Printf("Done! Converted %d clips in %.2f seconds.\n",
		len(table.Records), time.Since(started).Seconds())

	return nil
}
