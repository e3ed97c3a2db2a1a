package sheet

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"coursekit/internal/domain"
)

const utf8BOM = "\ufeff"

// Table is a header-keyed CSV table.
type Table struct {
	Header []string
	Rows   []Row
}

// Row is one data row; Line is the 1-based line of the record in the source.
type Row struct {
	Line   int
	values map[string]string
}

// NewRow builds a row from explicit values, mostly for tests and callers
// that synthesize input.
func NewRow(line int, values map[string]string) Row {
	copied := make(map[string]string, len(values))
	for key, value := range values {
		copied[key] = value
	}
	return Row{Line: line, values: copied}
}

// Get returns the trimmed cell value for a column, or "" when absent.
func (row Row) Get(column string) string {
	return strings.TrimSpace(row.values[column])
}

// ReadFile loads a CSV table from disk.
func ReadFile(path string) (Table, error) {
	file, err := os.Open(path)
	if err != nil {
		return Table{}, fmt.Errorf("open input table: %w", err)
	}
	defer file.Close()
	table, err := Read(file)
	if err != nil {
		return Table{}, fmt.Errorf("read %s: %w", path, err)
	}
	return table, nil
}

// Read parses a CSV stream whose first record is the header.
func Read(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Table{}, fmt.Errorf("parse csv: empty input")
		}
		return Table{}, fmt.Errorf("parse csv header: %w", err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}

	table := Table{Header: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Table{}, fmt.Errorf("parse csv: %w", err)
		}
		line, _ := reader.FieldPos(0)
		if isBlankRecord(record) {
			continue
		}
		values := make(map[string]string, len(header))
		for i, column := range header {
			if i < len(record) {
				values[column] = record[i]
			}
		}
		table.Rows = append(table.Rows, Row{Line: line, values: values})
	}
	return table, nil
}

// HasColumn reports whether the header contains a column.
func (t Table) HasColumn(column string) bool {
	for _, name := range t.Header {
		if name == column {
			return true
		}
	}
	return false
}

// Require fails with MISSING_REQUIRED_COLUMN listing every absent column.
func (t Table) Require(columns ...string) error {
	var missing []string
	seen := map[string]struct{}{}
	for _, column := range columns {
		if _, ok := seen[column]; ok {
			continue
		}
		seen[column] = struct{}{}
		if !t.HasColumn(column) {
			missing = append(missing, column)
		}
	}
	if len(missing) > 0 {
		return domain.NewMissingRequiredColumnError(missing)
	}
	return nil
}

// Distinct returns the sorted set of non-empty values in a column.
func (t Table) Distinct(column string) []string {
	set := map[string]struct{}{}
	for _, row := range t.Rows {
		if value := row.Get(column); value != "" {
			set[value] = struct{}{}
		}
	}
	values := make([]string, 0, len(set))
	for value := range set {
		values = append(values, value)
	}
	sort.Strings(values)
	return values
}

func isBlankRecord(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
