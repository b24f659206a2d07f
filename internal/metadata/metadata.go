package metadata

import (
	"encoding/csv"
	"fmt"
	"os"
	"slices"
	"strconv"
)

// Columns every UrbanSound8K metadata table must carry. Additional
// columns (fold, classID, salience, ...) are preserved verbatim but
// not interpreted.
var RequiredColumns = []string{"slice_file_name", "class", "start", "end"}

// ReadError indicates the metadata table could not be loaded at all.
// The whole run aborts before any output is written.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading metadata table %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// Record is a single row of the metadata table
type Record struct {
	columns []string
	values  map[string]string
}

// NewRecord builds a record directly from column names and values,
// bypassing the CSV loader
func NewRecord(columns []string, values map[string]string) Record {
	return Record{columns: columns, values: values}
}

// Columns returns the column names in table order
func (r Record) Columns() []string {
	return r.columns
}

// Field returns the raw string value of a column, or "" if the
// column does not exist
func (r Record) Field(name string) string {
	return r.values[name]
}

// Has reports whether the record carries a value for the column
func (r Record) Has(name string) bool {
	_, ok := r.values[name]
	return ok
}

// Float parses a column as a number
func (r Record) Float(name string) (float64, error) {
	raw, ok := r.values[name]
	if !ok {
		return 0, fmt.Errorf("no %q column in record", name)
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("column %q is not numeric: %q", name, raw)
	}

	return v, nil
}

// SandboxValue returns a column value coerced to its natural JSON
// type: integer, then float, then plain string. The source table is
// untyped CSV, but the annotation sandbox should carry fold=5 as the
// number 5, not the string "5".
func (r Record) SandboxValue(name string) any {
	raw := r.values[name]

	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(raw, 64); err == nil {
		return f
	}

	return raw
}

// Table is the fully loaded metadata file
type Table struct {
	Columns []string
	Records []Record
}

// Load reads the metadata CSV at path into a Table. The first row
// must be a header naming at least the required columns. Either the
// whole table loads or a ReadError is returned; there is no partial
// success.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	defer f.Close()

	reader := csv.NewReader(f)

	header, err := reader.Read()
	if err != nil {
		return nil, &ReadError{Path: path, Err: fmt.Errorf("reading header row: %w", err)}
	}

	for _, col := range RequiredColumns {
		if !slices.Contains(header, col) {
			return nil, &ReadError{Path: path, Err: fmt.Errorf("missing required column %q", col)}
		}
	}

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	table := &Table{
		Columns: header,
		Records: make([]Record, 0, len(rows)),
	}

	for _, row := range rows {
		values := make(map[string]string, len(header))
		for i, col := range header {
			values[col] = row[i]
		}
		table.Records = append(table.Records, Record{
			columns: header,
			values:  values,
		})
	}

	return table, nil
}
