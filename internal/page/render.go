package page

import (
	"context"
	"strings"
)

const contentIndent = "    "

// indented prefixes a section line for the content block. Blank lines stay empty.
func indented(line string) string {
	if strings.TrimSpace(line) == "" {
		return ""
	}
	return contentIndent + line
}

// Render writes the tab page for layout into a string.
func Render(ctx context.Context, layout Layout) (string, error) {
	var builder strings.Builder
	if err := TabPage(layout).Render(ctx, &builder); err != nil {
		return "", err
	}
	return builder.String(), nil
}
