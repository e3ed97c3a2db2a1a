package page

import (
	"strings"
)

// TablePreview describes a table awaiting a header decision.
type TablePreview struct {
	// Ordinal is the 1-based position of the table in the document.
	Ordinal  int
	FirstRow []string
}

// Text joins the first row's cell texts with " | ".
func (p TablePreview) Text() string {
	return strings.Join(p.FirstRow, " | ")
}

// HeaderDecider decides whether a table's first row becomes its header.
type HeaderDecider interface {
	PromoteHeader(preview TablePreview) (bool, error)
}

// HeaderDeciderFunc adapts a function to HeaderDecider.
type HeaderDeciderFunc func(preview TablePreview) (bool, error)

// PromoteHeader calls f.
func (f HeaderDeciderFunc) PromoteHeader(preview TablePreview) (bool, error) {
	return f(preview)
}

// FixedHeader answers every table with the same decision.
type FixedHeader bool

// PromoteHeader returns the fixed decision.
func (f FixedHeader) PromoteHeader(TablePreview) (bool, error) {
	return bool(f), nil
}

// NeedsHeaderDecision reports whether a table has rows but no <thead>.
func NeedsHeaderDecision(lines []string) bool {
	return !Contains(lines, "thead", true) && Contains(lines, "tr", true)
}

// Preview builds the header prompt preview for one table.
func Preview(ordinal int, lines []string) (TablePreview, error) {
	preview := TablePreview{Ordinal: ordinal}
	rows, err := Scan(lines, "tr", true)
	if err != nil {
		return preview, err
	}
	if len(rows) == 0 {
		return preview, nil
	}
	for _, line := range lines[rows[0].Start : rows[0].End+1] {
		text := strings.TrimSpace(stripAllTags(line))
		if text != "" {
			preview.FirstRow = append(preview.FirstRow, text)
		}
	}
	return preview, nil
}

// RestyleTable rewrites the lines of one table, from its opening line to its
// closing line. promoteHeader only applies when the table has no <thead>.
func RestyleTable(lines []string, promoteHeader bool, style TableStyle) ([]string, error) {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = styleOpenings(line, "table", tableDeclarations, false)
	}
	out = StripTag(out, "p", true)

	var err error
	if out, err = breakMultilineCells(out); err != nil {
		return nil, err
	}
	if promoteHeader && !Contains(out, "thead", true) {
		if out, err = promoteFirstRow(out); err != nil {
			return nil, err
		}
	}
	for i, line := range out {
		out[i] = styleOpenings(line, "th", style.header(), false)
	}
	if out, err = styleSubheaderRows(out, style.subheader()); err != nil {
		return nil, err
	}
	for i, line := range out {
		out[i] = styleOpenings(line, "td", cellDeclarations, true)
	}
	return out, nil
}

// breakMultilineCells ends every non-blank content line of a multi-line cell
// with <br />, except the cell's last one.
func breakMultilineCells(lines []string) ([]string, error) {
	out := make([]string, len(lines))
	copy(out, lines)
	for _, tag := range []string{"td", "th"} {
		cells, err := Scan(out, tag, true)
		if err != nil {
			return nil, err
		}
		for _, cell := range cells {
			var content []int
			for i := cell.Start + 1; i < cell.End; i++ {
				if strings.TrimSpace(out[i]) != "" {
					content = append(content, i)
				}
			}
			for _, i := range content[:max(len(content)-1, 0)] {
				if !strings.HasSuffix(out[i], "<br />") {
					out[i] += "<br />"
				}
			}
		}
	}
	return out, nil
}

// promoteFirstRow wraps the first row in <thead>, converts its cells to
// header cells and opens <tbody> after it.
func promoteFirstRow(lines []string) ([]string, error) {
	rows, err := Scan(lines, "tr", true)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return lines, nil
	}
	first, last := rows[0], rows[0]
	for _, row := range rows {
		if row.End > last.End {
			last = row
		}
	}
	hadBody := Contains(lines, "tbody", true)
	cellReplacer := strings.NewReplacer("<td>", "<th>", "<td ", "<th ", "</td>", "</th>")

	out := make([]string, 0, len(lines)+4)
	for _, line := range lines[:first.Start] {
		if hadBody {
			stripped := stripLine(line, "tbody", true)
			if strings.TrimSpace(stripped) == "" && strings.TrimSpace(line) != "" {
				continue
			}
			line = stripped
		}
		out = append(out, line)
	}
	out = append(out, "<thead>")
	for _, line := range lines[first.Start : first.End+1] {
		out = append(out, cellReplacer.Replace(line))
	}
	out = append(out, "</thead>", "<tbody>")
	for i := first.End + 1; i < len(lines); i++ {
		out = append(out, lines[i])
		if !hadBody && i == last.End {
			out = append(out, "</tbody>")
		}
	}
	if !hadBody && last == first {
		// The header was the only row; close the empty body right after it.
		out = insertAfter(out, "<tbody>", "</tbody>")
	}
	return out, nil
}

func insertAfter(lines []string, marker, value string) []string {
	for i, line := range lines {
		if line == marker {
			out := make([]string, 0, len(lines)+1)
			out = append(out, lines[:i+1]...)
			out = append(out, value)
			return append(out, lines[i+1:]...)
		}
	}
	return lines
}

// styleSubheaderRows styles every cell of rows whose first cell spans columns.
func styleSubheaderRows(lines []string, declarations string) ([]string, error) {
	out := make([]string, len(lines))
	copy(out, lines)
	rows, err := Scan(out, "tr", true)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		if !firstCellSpansColumns(out[row.Start : row.End+1]) {
			continue
		}
		for i := row.Start; i <= row.End; i++ {
			out[i] = styleOpenings(out[i], "td", declarations, false)
		}
	}
	return out, nil
}

func firstCellSpansColumns(row []string) bool {
	for _, line := range row {
		for offset := 0; offset < len(line); offset++ {
			rest := line[offset:]
			if !isOpening(rest, "<td", true) {
				continue
			}
			end := strings.IndexByte(rest, '>')
			if end < 0 {
				return false
			}
			return strings.Contains(rest[:end], "colspan")
		}
	}
	return false
}

// stripAllTags drops anything between angle brackets.
func stripAllTags(line string) string {
	var builder strings.Builder
	depth := 0
	for _, r := range line {
		switch {
		case r == '<':
			depth++
		case r == '>' && depth > 0:
			depth--
		case depth == 0:
			builder.WriteRune(r)
		}
	}
	return builder.String()
}

// FormatTables restyles every top-level table in the document, asking the
// decider about each table that has no <thead>. Spans are recomputed after
// each replacement.
func FormatTables(doc Document, decider HeaderDecider, style TableStyle) (Document, error) {
	if decider == nil {
		decider = FixedHeader(false)
	}
	for ordinal := 0; ; ordinal++ {
		spans, err := Scan(doc.lines, "table", true)
		if err != nil {
			return Document{}, err
		}
		spans = outermost(spans)
		if ordinal >= len(spans) {
			return doc, nil
		}
		span := spans[ordinal]
		lines := doc.Slice(span)

		promote := false
		if NeedsHeaderDecision(lines) {
			preview, err := Preview(ordinal+1, lines)
			if err != nil {
				return Document{}, err
			}
			if promote, err = decider.PromoteHeader(preview); err != nil {
				return Document{}, err
			}
		}
		restyled, err := RestyleTable(lines, promote, style)
		if err != nil {
			return Document{}, err
		}
		doc = doc.Replace(span, restyled)
	}
}

// outermost drops spans nested inside an earlier span.
func outermost(spans []Span) []Span {
	var out []Span
	for _, span := range spans {
		if len(out) > 0 && span.Start >= out[len(out)-1].Start && span.End <= out[len(out)-1].End {
			continue
		}
		out = append(out, span)
	}
	return out
}
