package page

import (
	"fmt"
	"html"
	"strings"

	"coursekit/internal/domain"
)

// DuplicatePolicy decides what happens when two sections derive the same id.
type DuplicatePolicy string

const (
	// DuplicateError fails with DUPLICATE_SECTION_IDENTIFIER.
	DuplicateError DuplicatePolicy = "error"
	// DuplicateSuffix appends -2, -3, ... to later duplicates.
	DuplicateSuffix DuplicatePolicy = "suffix"
)

// Section is one top-level division of a page, rendered as a tab.
type Section struct {
	ListValue string
	Title     string
	ID        string
	// Lines runs from the heading line up to the next heading or document end.
	Lines []string
}

// Layout is a page split into the lines before the first heading and its
// sections in document order.
type Layout struct {
	Preamble []string
	Sections []Section
}

// AssembleOptions controls how sections are found and identified.
type AssembleOptions struct {
	Level      int
	Delimiter  string
	Duplicates DuplicatePolicy
}

// ParseHeading splits heading text on the first delimiter into the list
// value and the display title. Without a delimiter both are the whole text.
func ParseHeading(text, delimiter string) (listValue, title string) {
	if delimiter != "" {
		if before, after, ok := strings.Cut(text, delimiter); ok {
			return before, after
		}
	}
	return text, text
}

// SectionID derives the anchor id for a list value.
func SectionID(listValue string) string {
	return "tab-" + strings.Join(strings.Fields(listValue), "-")
}

// Assemble splits lines into a preamble and sections at every heading of
// the configured level. Headings are paired like any other tag, so an
// unclosed heading yields MALFORMED_TAG_STRUCTURE.
func Assemble(lines []string, opts AssembleOptions) (Layout, error) {
	if opts.Level < 1 {
		opts.Level = 2
	}
	tag := fmt.Sprintf("h%d", opts.Level)

	spans, err := Scan(lines, tag, true)
	if err != nil {
		return Layout{}, err
	}
	spans = outermost(spans)
	if len(spans) == 0 {
		return Layout{Preamble: append([]string(nil), lines...)}, nil
	}

	layout := Layout{Preamble: append([]string(nil), lines[:spans[0].Start]...)}
	used := map[string]struct{}{}
	for n, span := range spans {
		start := span.Start
		end := len(lines)
		if n+1 < len(spans) {
			end = spans[n+1].Start
		}
		text := headingText(strings.Join(lines[span.Start:span.End+1], " "), tag)
		listValue, title := ParseHeading(text, opts.Delimiter)
		listValue = strings.TrimSpace(listValue)
		id, err := uniqueID(SectionID(listValue), used, opts.Duplicates)
		if err != nil {
			return Layout{}, err
		}
		layout.Sections = append(layout.Sections, Section{
			ListValue: listValue,
			Title:     strings.TrimSpace(title),
			ID:        id,
			Lines:     append([]string(nil), lines[start:end]...),
		})
	}
	return layout, nil
}

func uniqueID(id string, used map[string]struct{}, policy DuplicatePolicy) (string, error) {
	if _, taken := used[id]; !taken {
		used[id] = struct{}{}
		return id, nil
	}
	if policy != DuplicateSuffix {
		return "", domain.NewDuplicateSectionIdentifierError(id)
	}
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if _, taken := used[candidate]; !taken {
			used[candidate] = struct{}{}
			return candidate, nil
		}
	}
}

// headingText returns the plain text inside the heading tag on line.
func headingText(line, tag string) string {
	open := strings.Index(line, "<"+tag)
	if open < 0 {
		return ""
	}
	rest := line[open:]
	if end := strings.IndexByte(rest, '>'); end >= 0 {
		rest = rest[end+1:]
	}
	if closing := strings.Index(rest, "</"+tag+">"); closing >= 0 {
		rest = rest[:closing]
	}
	return html.UnescapeString(stripAllTags(rest))
}
