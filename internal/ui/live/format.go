package live

import (
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"coursekit/internal/runner"
)

// formatIndex formats a file index.
func formatIndex(index int) string {
	return pad2(index + 1)
}

// pad2 left-pads a number to two digits when needed.
func pad2(value int) string {
	if value >= 10 {
		return fmtInt(value)
	}
	return "0" + fmtInt(value)
}

// fmtInt converts an int to string.
func fmtInt(value int) string {
	return strconv.Itoa(value)
}

// formatPath shortens long paths to their trailing characters.
func formatPath(path string) string {
	path = filepath.ToSlash(path)
	const limit = 60
	if len(path) <= limit {
		return path
	}
	return "..." + path[len(path)-limit+3:]
}

// formatStatus renders a status string for a row.
func formatStatus(row FileRow, noColor bool) string {
	label := string(row.Status)
	if label == "" {
		label = string(runner.FileQueued)
	}
	if noColor {
		return label
	}
	return statusStyle(row.Status).Render(label)
}

// formatCount shows counts only for written files.
func formatCount(row FileRow, value int) string {
	if row.Status != runner.FileDone {
		return ""
	}
	return fmtInt(value)
}

// formatRowDuration returns elapsed or total time for a row.
func formatRowDuration(row FileRow, now time.Time) string {
	if row.StartedAt.IsZero() {
		return ""
	}
	if !row.FinishedAt.IsZero() {
		return formatDuration(row.FinishedAt.Sub(row.StartedAt))
	}
	return formatDuration(now.Sub(row.StartedAt))
}

// statusStyle selects a style for a given status.
func statusStyle(status runner.FileEventType) lipgloss.Style {
	color := lipgloss.Color("246")
	switch status {
	case runner.FileDone:
		color = lipgloss.Color("42")
	case runner.FileFailed:
		color = lipgloss.Color("196")
	case runner.FileRunning:
		color = lipgloss.Color("33")
	}
	return lipgloss.NewStyle().Foreground(color)
}
