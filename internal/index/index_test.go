package index

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/urbansounds/us8kjams/internal/metadata"
)

func sampleRecords() []metadata.Record {
	columns := []string{"slice_file_name", "start", "end", "fold", "class"}
	rows := []map[string]string{
		{"slice_file_name": "100032-3-0-0.wav", "start": "0.0", "end": "4.0", "fold": "5", "class": "dog_bark"},
		{"slice_file_name": "100263-2-0-117.wav", "start": "58.5", "end": "62.5", "fold": "5", "class": "children_playing"},
	}

	records := make([]metadata.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, metadata.NewRecord(columns, row))
	}
	return records
}

func TestBuild(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "clips.db")

	if err := Build(dbPath, sampleRecords()); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	n, err := Count(dbPath)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 2 {
		t.Errorf("Expected 2 indexed clips, got %d", n)
	}

	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var jamsFile, class string
	var duration float64
	err = db.QueryRow(
		"SELECT jams_file, class, duration FROM clips WHERE slice_file_name = ?",
		"100263-2-0-117.wav",
	).Scan(&jamsFile, &class, &duration)
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}

	if jamsFile != "100263-2-0-117.jams" {
		t.Errorf("Expected jams_file '100263-2-0-117.jams', got %q", jamsFile)
	}
	if class != "children_playing" {
		t.Errorf("Expected class 'children_playing', got %q", class)
	}
	if duration != 4.0 {
		t.Errorf("Expected duration 4.0, got %v", duration)
	}
}

func TestBuildReplacesExistingIndex(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "clips.db")
	records := sampleRecords()

	if err := Build(dbPath, records); err != nil {
		t.Fatalf("First build failed: %v", err)
	}
	// Rebuild with a subset; stale rows must not survive
	if err := Build(dbPath, records[:1]); err != nil {
		t.Fatalf("Second build failed: %v", err)
	}

	n, err := Count(dbPath)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected 1 indexed clip after rebuild, got %d", n)
	}
}

func TestBuildMalformedRecord(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "clips.db")
	records := []metadata.Record{
		metadata.NewRecord(
			[]string{"slice_file_name", "start", "end", "class"},
			map[string]string{"slice_file_name": "bad.wav", "start": "abc", "end": "4.0", "class": "siren"},
		),
	}

	if err := Build(dbPath, records); err == nil {
		t.Error("Expected error for non-numeric start")
	}
}
