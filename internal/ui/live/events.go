package live

import "coursekit/internal/runner"

// EventKind identifies the type of live UI event.
type EventKind int

const (
	// EventBatchStart signals the start of a batch.
	EventBatchStart EventKind = iota
	// EventFile delivers a file status update.
	EventFile
	// EventBatchEnd signals batch completion.
	EventBatchEnd
)

// Event carries a UI update payload.
type Event struct {
	Kind      EventKind
	RunID     string
	Paths     []string
	File      runner.FileEvent
	Succeeded int
	Failed    int
}
