package runner

import "time"

// FileEventType identifies a file status update for observers.
type FileEventType string

const (
	// FileQueued marks a file known but not yet started.
	FileQueued FileEventType = "queued"
	// FileRunning marks a file being processed.
	FileRunning FileEventType = "running"
	// FileDone marks a file written successfully.
	FileDone FileEventType = "done"
	// FileFailed marks a file that could not be processed.
	FileFailed FileEventType = "failed"
)

// FileEvent carries a single status update for a file.
type FileEvent struct {
	Index     int
	Path      string
	Output    string
	Type      FileEventType
	Sections  int
	Tables    int
	Error     string
	EmittedAt time.Time
}

// BatchObserver receives batch lifecycle events for UI or logging.
type BatchObserver interface {
	// OnBatchStart signals the start of a batch.
	OnBatchStart(runID string, paths []string)
	// OnFileEvent delivers a file status update.
	OnFileEvent(event FileEvent)
	// OnBatchEnd signals batch completion.
	OnBatchEnd(results Results)
}

// MultiObserver fans events out to several observers in order.
type MultiObserver []BatchObserver

func (m MultiObserver) OnBatchStart(runID string, paths []string) {
	for _, observer := range m {
		if observer != nil {
			observer.OnBatchStart(runID, paths)
		}
	}
}

func (m MultiObserver) OnFileEvent(event FileEvent) {
	for _, observer := range m {
		if observer != nil {
			observer.OnFileEvent(event)
		}
	}
}

func (m MultiObserver) OnBatchEnd(results Results) {
	for _, observer := range m {
		if observer != nil {
			observer.OnBatchEnd(results)
		}
	}
}
