package page

import (
	"slices"
	"strings"

	"coursekit/internal/domain"
)

// Span is an inclusive line range holding one tag from its opening line to
// its closing line.
type Span struct {
	Start int
	End   int
}

// Len returns the number of lines in the span.
func (s Span) Len() int {
	return s.End - s.Start + 1
}

type tagToken struct {
	line   int
	offset int
	open   bool
}

// Scan locates every <tag> element in lines and returns their spans in
// document order. Exact mode matches only the bare <tag>; flex mode also
// matches <tag with attributes>. Openings and closings are paired with a
// stack, so nested elements of the same tag pair correctly. An unpaired
// opening or closing yields MALFORMED_TAG_STRUCTURE.
func Scan(lines []string, tag string, flex bool) ([]Span, error) {
	var tokens []tagToken
	for i, line := range lines {
		tokens = append(tokens, lineTokens(i, line, tag, flex)...)
	}

	var stack []int
	spans := make([]Span, 0, len(tokens)/2)
	for _, token := range tokens {
		if token.open {
			stack = append(stack, token.line)
			continue
		}
		if len(stack) == 0 {
			return nil, domain.NewMalformedTagStructureError(tag, token.line+1, "closing tag without an opening tag")
		}
		start := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		spans = append(spans, Span{Start: start, End: token.line})
	}
	if len(stack) > 0 {
		return nil, domain.NewMalformedTagStructureError(tag, stack[len(stack)-1]+1, "opening tag is never closed")
	}

	slices.SortStableFunc(spans, func(a, b Span) int {
		if a.Start != b.Start {
			return a.Start - b.Start
		}
		return b.End - a.End
	})
	return spans, nil
}

// lineTokens lists the openings and closings of tag on one line in offset order.
func lineTokens(lineIndex int, line, tag string, flex bool) []tagToken {
	var tokens []tagToken
	open := "<" + tag
	closing := "</" + tag + ">"
	for offset := 0; offset < len(line); {
		rest := line[offset:]
		next := strings.IndexByte(rest, '<')
		if next < 0 {
			break
		}
		at := offset + next
		candidate := line[at:]
		switch {
		case strings.HasPrefix(candidate, closing):
			tokens = append(tokens, tagToken{line: lineIndex, offset: at})
		case isOpening(candidate, open, flex):
			tokens = append(tokens, tagToken{line: lineIndex, offset: at, open: true})
		}
		offset = at + 1
	}
	return tokens
}

// isOpening reports whether text starts with an opening of the tag.
func isOpening(text, open string, flex bool) bool {
	if !strings.HasPrefix(text, open) {
		return false
	}
	rest := text[len(open):]
	if strings.HasPrefix(rest, ">") {
		return true
	}
	if !flex || rest == "" {
		return false
	}
	switch rest[0] {
	case ' ', '\t':
		return true
	}
	return false
}

// Contains reports whether any line holds an opening of tag.
func Contains(lines []string, tag string, flex bool) bool {
	for i, line := range lines {
		for _, token := range lineTokens(i, line, tag, flex) {
			if token.open {
				return true
			}
		}
	}
	return false
}
