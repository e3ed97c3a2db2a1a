package runner

import (
	"context"
	"time"
)

// FileOutcome describes what a job produced for one file.
type FileOutcome struct {
	Output   string
	Sections int
	Tables   int
}

// FileJob processes one input file.
type FileJob func(ctx context.Context, path string) (FileOutcome, error)

// FileResult is the recorded outcome of one file.
type FileResult struct {
	Path     string
	Output   string
	Sections int
	Tables   int
	Err      error
	Duration time.Duration
}

// Results summarizes a batch run.
type Results struct {
	RunID string
	Files []FileResult
}

// Failed counts files that ended with an error.
func (r Results) Failed() int {
	failed := 0
	for _, file := range r.Files {
		if file.Err != nil {
			failed++
		}
	}
	return failed
}

// Succeeded counts files written successfully.
func (r Results) Succeeded() int {
	return len(r.Files) - r.Failed()
}

// RunBatch processes paths one after another. A failing file is recorded and
// the remaining files still run; files left when ctx is cancelled fail with
// the context error.
func RunBatch(ctx context.Context, runID string, paths []string, job FileJob, observer BatchObserver) Results {
	if observer == nil {
		observer = MultiObserver{}
	}
	results := Results{RunID: runID, Files: make([]FileResult, 0, len(paths))}
	observer.OnBatchStart(runID, paths)
	for i, path := range paths {
		observer.OnFileEvent(FileEvent{Index: i, Path: path, Type: FileQueued, EmittedAt: time.Now()})
	}

	for i, path := range paths {
		started := time.Now()
		observer.OnFileEvent(FileEvent{Index: i, Path: path, Type: FileRunning, EmittedAt: started})

		var outcome FileOutcome
		err := ctx.Err()
		if err == nil {
			outcome, err = job(ctx, path)
		}
		result := FileResult{
			Path:     path,
			Output:   outcome.Output,
			Sections: outcome.Sections,
			Tables:   outcome.Tables,
			Err:      err,
			Duration: time.Since(started),
		}
		results.Files = append(results.Files, result)

		event := FileEvent{
			Index:     i,
			Path:      path,
			Output:    outcome.Output,
			Sections:  outcome.Sections,
			Tables:    outcome.Tables,
			Type:      FileDone,
			EmittedAt: time.Now(),
		}
		if err != nil {
			event.Type = FileFailed
			event.Error = err.Error()
		}
		observer.OnFileEvent(event)
	}

	observer.OnBatchEnd(results)
	return results
}
