package index

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/urbansounds/us8kjams/internal/metadata"
	"github.com/urbansounds/us8kjams/internal/snippet"
)

const createClipsTable = `CREATE TABLE clips (
	slice_file_name text PRIMARY KEY,
	jams_file       text NOT NULL,
	class           text NOT NULL,
	fold            text,
	start_time      real NOT NULL,
	end_time        real NOT NULL,
	duration        real NOT NULL
)`

// Build writes a fresh clip index to dbPath, one row per metadata
// record. An existing index at that path is replaced. The records
// must already have passed conversion, so start/end are known to be
// numeric.
func Build(dbPath string, records []metadata.Record) error {
	// Replace any index left over from a previous run
	if err := os.Remove(dbPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing old index: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return fmt.Errorf("opening index database: %w", err)
	}
	defer db.Close()

	if _, err := db.Exec(createClipsTable); err != nil {
		return fmt.Errorf("creating clips table: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	stmt, err := tx.Prepare(
		`INSERT INTO clips (slice_file_name, jams_file, class, fold, start_time, end_time, duration)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		clip := rec.Field("slice_file_name")

		start, err := rec.Float("start")
		if err != nil {
			tx.Rollback()
			return err
		}
		end, err := rec.Float("end")
		if err != nil {
			tx.Rollback()
			return err
		}

		_, err = stmt.Exec(
			clip,
			snippet.OutputName(clip),
			rec.Field("class"),
			rec.Field("fold"),
			start,
			end,
			end-start,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("inserting clip %q: %w", clip, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing index: %w", err)
	}

	return nil
}

// Count returns the number of clips in an index database
func Count(dbPath string) (int, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM clips").Scan(&n); err != nil {
		return 0, err
	}

	return n, nil
}
