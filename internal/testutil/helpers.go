package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// MetadataHeader is the column layout used by the sample fixtures,
// matching the real UrbanSound8K.csv
var MetadataHeader = []string{"slice_file_name", "fsID", "start", "end", "salience", "fold", "classID", "class"}

// SampleRows are three well-formed metadata rows
var SampleRows = [][]string{
	{"100032-3-0-0.wav", "100032", "0.0", "4.0", "1", "5", "3", "dog_bark"},
	{"100263-2-0-117.wav", "100263", "58.5", "62.5", "1", "5", "2", "children_playing"},
	{"100648-1-0-0.wav", "100648", "4.823402", "5.471927", "2", "10", "1", "car_horn"},
}

// WriteMetadataCSV writes a metadata table with the given header and
// rows into dir and returns its path
func WriteMetadataCSV(t *testing.T, dir string, header []string, rows [][]string) string {
	t.Helper()

	var sb strings.Builder
	sb.WriteString(strings.Join(header, ","))
	sb.WriteString("\n")
	for _, row := range rows {
		sb.WriteString(strings.Join(row, ","))
		sb.WriteString("\n")
	}

	path := filepath.Join(dir, "UrbanSound8K.csv")
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		t.Fatalf("Failed to write metadata fixture: %v", err)
	}

	return path
}

// SampleMetadataCSV writes the standard three-row fixture into dir
func SampleMetadataCSV(t *testing.T, dir string) string {
	t.Helper()
	return WriteMetadataCSV(t, dir, MetadataHeader, SampleRows)
}

// ReadFileBytes reads a file, failing the test on error
func ReadFileBytes(t *testing.T, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}

	return data
}

// FileExists reports whether path exists as a regular file
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
