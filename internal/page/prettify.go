package page

import (
	"context"
	"path/filepath"
	"strings"
)

// Options configures the whole-document passes of Prettify.
type Options struct {
	HeadingShift int
	StripTags    []string
	TopLevel     int
	Delimiter    string
	Duplicates   DuplicatePolicy
	Style        TableStyle
}

// DefaultOptions mirrors the stock page settings.
func DefaultOptions() Options {
	return Options{
		HeadingShift: 1,
		StripTags:    []string{"span"},
		TopLevel:     2,
		Delimiter:    ". ",
		Duplicates:   DuplicateError,
		Style:        DefaultTableStyle(),
	}
}

// Result is the outcome of prettifying one document.
type Result struct {
	Output   string
	Sections int
	Tables   int
}

// Prettify shifts headings, strips tags, restyles tables, then assembles and
// renders the tabbed page.
func Prettify(ctx context.Context, text string, decider HeaderDecider, opts Options) (Result, error) {
	lines := NewDocument(text).Lines()
	lines = ShiftHeadings(lines, opts.HeadingShift)
	lines = StripTags(lines, opts.StripTags, true)

	doc, err := FormatTables(FromLines(lines), decider, opts.Style)
	if err != nil {
		return Result{}, err
	}
	tables, err := Scan(doc.lines, "table", true)
	if err != nil {
		return Result{}, err
	}

	layout, err := Assemble(doc.Lines(), AssembleOptions{
		Level:      opts.TopLevel,
		Delimiter:  opts.Delimiter,
		Duplicates: opts.Duplicates,
	})
	if err != nil {
		return Result{}, err
	}
	output, err := Render(ctx, layout)
	if err != nil {
		return Result{}, err
	}
	return Result{Output: output, Sections: len(layout.Sections), Tables: len(outermost(tables))}, nil
}

// OutputPath replaces the input's extension with suffix.
func OutputPath(input, suffix string) string {
	return strings.TrimSuffix(input, filepath.Ext(input)) + suffix
}
