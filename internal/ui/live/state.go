package live

import (
	"time"

	"coursekit/internal/runner"
)

// FileRow holds UI state for a single input file.
type FileRow struct {
	Index      int
	Path       string
	Output     string
	Status     runner.FileEventType
	Sections   int
	Tables     int
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// StatusCounts aggregates counts by status bucket.
type StatusCounts struct {
	Queued  int
	Running int
	Done    int
	Failed  int
}

// State captures the live UI state for a batch.
type State struct {
	RunID     string
	StartedAt time.Time
	Finished  bool
	LastEvent string
	Rows      []FileRow
	Counts    StatusCounts
}
