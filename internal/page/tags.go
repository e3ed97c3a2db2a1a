package page

import (
	"fmt"
	"strings"
)

// StripTag removes every opening and closing of tag from each line, keeping
// the enclosed text. In flex mode openings with attributes are removed too.
func StripTag(lines []string, tag string, flex bool) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = stripLine(line, tag, flex)
	}
	return out
}

// StripTags applies StripTag for each tag in order.
func StripTags(lines []string, tags []string, flex bool) []string {
	out := lines
	for _, tag := range tags {
		out = StripTag(out, tag, flex)
	}
	return out
}

func stripLine(line, tag string, flex bool) string {
	open := "<" + tag
	closing := "</" + tag + ">"
	if !strings.Contains(line, open) && !strings.Contains(line, closing) {
		return line
	}
	var builder strings.Builder
	for i := 0; i < len(line); {
		rest := line[i:]
		if strings.HasPrefix(rest, closing) {
			i += len(closing)
			continue
		}
		if isOpening(rest, open, flex) {
			end := strings.IndexByte(rest, '>')
			if end < 0 {
				builder.WriteString(rest)
				break
			}
			i += end + 1
			continue
		}
		builder.WriteByte(line[i])
		i++
	}
	return builder.String()
}

// maxHeadingLevel is the deepest level ShiftHeadings rewrites.
const maxHeadingLevel = 8

// ShiftHeadings moves every heading from h1 to h8 down by shift levels.
// Levels are rewritten from the deepest up so no heading is shifted twice.
func ShiftHeadings(lines []string, shift int) []string {
	out := make([]string, len(lines))
	copy(out, lines)
	if shift <= 0 {
		return out
	}
	for level := maxHeadingLevel; level >= 1; level-- {
		from := fmt.Sprintf("h%d", level)
		to := fmt.Sprintf("h%d", level+shift)
		replacer := strings.NewReplacer(
			"<"+from+">", "<"+to+">",
			"<"+from+" ", "<"+to+" ",
			"</"+from+">", "</"+to+">",
		)
		for i, line := range out {
			out[i] = replacer.Replace(line)
		}
	}
	return out
}
