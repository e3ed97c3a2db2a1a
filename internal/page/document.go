package page

import (
	"slices"
	"strings"
)

// Document is an exported page as an ordered list of lines without terminators.
type Document struct {
	lines []string
}

// NewDocument splits text into lines, accepting LF and CRLF endings.
// A trailing newline does not produce an empty final line.
func NewDocument(text string) Document {
	text = strings.TrimPrefix(text, "\ufeff")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return Document{}
	}
	return Document{lines: strings.Split(text, "\n")}
}

// FromLines copies lines into a document.
func FromLines(lines []string) Document {
	return Document{lines: slices.Clone(lines)}
}

// Lines returns a copy of the document lines.
func (d Document) Lines() []string {
	return slices.Clone(d.lines)
}

// Len returns the number of lines.
func (d Document) Len() int {
	return len(d.lines)
}

// String joins the lines with newlines and terminates the last one.
func (d Document) String() string {
	if len(d.lines) == 0 {
		return ""
	}
	return strings.Join(d.lines, "\n") + "\n"
}

// Slice returns a copy of the lines covered by span.
func (d Document) Slice(span Span) []string {
	return slices.Clone(d.lines[span.Start : span.End+1])
}

// Replace returns a new document with the span's lines swapped for
// replacement. Spans computed before the call are stale afterwards.
func (d Document) Replace(span Span, replacement []string) Document {
	out := make([]string, 0, len(d.lines)-span.Len()+len(replacement))
	out = append(out, d.lines[:span.Start]...)
	out = append(out, replacement...)
	out = append(out, d.lines[span.End+1:]...)
	return Document{lines: out}
}
