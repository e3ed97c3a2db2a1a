package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"coursekit/internal/runner"
)

// printBatchSummary writes one line per file and a totals line.
func printBatchSummary(w io.Writer, results runner.Results, noColor bool) {
	ok := statusLabel("ok", lipgloss.Color("42"), noColor)
	failed := statusLabel("failed", lipgloss.Color("196"), noColor)
	for _, file := range results.Files {
		if file.Err != nil {
			fmt.Fprintf(w, "%s %s: %v\n", failed, file.Path, file.Err)
			continue
		}
		fmt.Fprintf(w, "%s %s -> %s (%d sections, %d tables)\n", ok, file.Path, file.Output, file.Sections, file.Tables)
	}
	fmt.Fprintf(w, "Run %s: %d written, %d failed\n", results.RunID, results.Succeeded(), results.Failed())
}

// statusLabel pads and optionally colors a status word.
func statusLabel(text string, color lipgloss.Color, noColor bool) string {
	style := lipgloss.NewStyle().Width(6)
	if !noColor {
		style = style.Foreground(color).Bold(true)
	}
	return style.Render(text)
}
