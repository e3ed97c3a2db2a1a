package sheet

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"coursekit/internal/domain"
)

// TestReadKeysRowsByHeader verifies rows are keyed by trimmed header names.
func TestReadKeysRowsByHeader(t *testing.T) {
	input := "\ufeffType, Difficulty ,Embed\nmineral,easy,\"<iframe src=\"\"x\"\"></iframe>\"\n\n,,\nrock,moderate,<b/>\n"
	table, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if got := strings.Join(table.Header, "|"); got != "Type|Difficulty|Embed" {
		t.Fatalf("unexpected header %q", got)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows))
	}
	if table.Rows[0].Get("Embed") != `<iframe src="x"></iframe>` {
		t.Fatalf("unexpected embed %q", table.Rows[0].Get("Embed"))
	}
	if table.Rows[1].Line != 5 {
		t.Fatalf("expected second row on line 5, got %d", table.Rows[1].Line)
	}
	if table.Rows[1].Get("Missing") != "" {
		t.Fatalf("expected empty value for unknown column")
	}
}

// TestRequireReportsMissingColumns verifies the missing column error kind.
func TestRequireReportsMissingColumns(t *testing.T) {
	table := Table{Header: []string{"Type"}}
	err := table.Require("Type", "Embed", "Embed", "Description")
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, &domain.Error{Code: domain.ErrMissingRequiredColumn}) {
		t.Fatalf("expected missing column error, got %v", err)
	}
	if !strings.Contains(err.Error(), "Embed Description") {
		t.Fatalf("expected both columns listed once, got %q", err.Error())
	}
	if err := table.Require("Type"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// TestDistinctSortsValues verifies distinct values are sorted and non-empty.
func TestDistinctSortsValues(t *testing.T) {
	table := Table{
		Header: []string{"Difficulty"},
		Rows: []Row{
			NewRow(2, map[string]string{"Difficulty": "moderate"}),
			NewRow(3, map[string]string{"Difficulty": " easy "}),
			NewRow(4, map[string]string{"Difficulty": ""}),
			NewRow(5, map[string]string{"Difficulty": "easy"}),
		},
	}
	got := strings.Join(table.Distinct("Difficulty"), ",")
	if got != "easy,moderate" {
		t.Fatalf("unexpected distinct values %q", got)
	}
}

// TestReadFileMissing verifies missing files surface an error.
func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not exist error, got %v", err)
	}
}

// TestReadEmptyInput verifies empty input is rejected.
func TestReadEmptyInput(t *testing.T) {
	if _, err := Read(strings.NewReader("")); err == nil {
		t.Fatalf("expected error for empty input")
	}
}
