package live

import (
	"fmt"
	"path/filepath"
	"time"

	"coursekit/internal/runner"
)

// Reduce applies a file event to the UI state.
func Reduce(state State, event runner.FileEvent) State {
	state = ensureRow(state, event)
	state = applyFileEvent(state, event)
	state.Counts = recount(state.Rows)
	if message := formatLastEvent(event); message != "" {
		state.LastEvent = message
	}
	return state
}

// ensureRow grows the state rows to include the target index.
func ensureRow(state State, event runner.FileEvent) State {
	if event.Index < 0 || event.Index < len(state.Rows) {
		return state
	}
	rows := make([]FileRow, event.Index+1)
	copy(rows, state.Rows)
	for i := len(state.Rows); i < len(rows); i++ {
		rows[i] = FileRow{Index: i, Status: runner.FileQueued}
	}
	state.Rows = rows
	return state
}

// applyFileEvent updates a row with the given event.
func applyFileEvent(state State, event runner.FileEvent) State {
	if event.Index < 0 || event.Index >= len(state.Rows) {
		return state
	}
	row := state.Rows[event.Index]
	if row.Path == "" {
		row.Path = event.Path
	}
	row.Status = event.Type
	switch event.Type {
	case runner.FileRunning:
		if row.StartedAt.IsZero() {
			row.StartedAt = event.EmittedAt
		}
	case runner.FileDone, runner.FileFailed:
		row.FinishedAt = event.EmittedAt
		row.Output = event.Output
		row.Sections = event.Sections
		row.Tables = event.Tables
		row.Error = event.Error
	}
	state.Rows[event.Index] = row
	return state
}

// recount recomputes status counts for the current rows.
func recount(rows []FileRow) StatusCounts {
	var counts StatusCounts
	for _, row := range rows {
		switch row.Status {
		case runner.FileQueued:
			counts.Queued++
		case runner.FileRunning:
			counts.Running++
		case runner.FileDone:
			counts.Done++
		case runner.FileFailed:
			counts.Failed++
		}
	}
	return counts
}

// formatLastEvent creates a short footer message for the event.
func formatLastEvent(event runner.FileEvent) string {
	name := filepath.Base(event.Path)
	switch event.Type {
	case runner.FileDone:
		return fmt.Sprintf("%s written to %s", name, filepath.Base(event.Output))
	case runner.FileFailed:
		return fmt.Sprintf("%s failed: %s", name, event.Error)
	}
	return ""
}

// formatDuration renders a rounded duration for display.
func formatDuration(duration time.Duration) string {
	if duration <= 0 {
		return "0s"
	}
	return duration.Round(100 * time.Millisecond).String()
}
