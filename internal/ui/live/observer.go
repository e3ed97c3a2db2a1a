package live

import (
	"io"
	"os"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"coursekit/internal/runner"
)

// Controller runs the live UI and implements runner.BatchObserver.
type Controller struct {
	events    chan Event
	program   *tea.Program
	done      chan struct{}
	closeOnce sync.Once
}

// Start launches a live UI controller that writes to stdout.
func Start(stdout io.Writer, opts Options) *Controller {
	if stdout == nil {
		stdout = os.Stdout
	}
	events := make(chan Event, 256)
	model := NewModel(events, opts)
	program := tea.NewProgram(model, tea.WithOutput(stdout), tea.WithInput(nil))
	controller := &Controller{
		events:  events,
		program: program,
		done:    make(chan struct{}),
	}
	go func() {
		_, _ = program.Run()
		close(controller.done)
	}()
	return controller
}

// Close signals the UI to stop.
func (c *Controller) Close() {
	if c == nil {
		return
	}
	c.closeOnce.Do(func() {
		close(c.events)
	})
}

// Wait blocks until the UI has exited.
func (c *Controller) Wait() {
	if c == nil {
		return
	}
	<-c.done
}

// OnBatchStart forwards batch start events to the UI.
func (c *Controller) OnBatchStart(runID string, paths []string) {
	c.send(Event{Kind: EventBatchStart, RunID: runID, Paths: paths})
}

// OnFileEvent forwards file status updates to the UI.
func (c *Controller) OnFileEvent(event runner.FileEvent) {
	c.send(Event{Kind: EventFile, File: event})
}

// OnBatchEnd forwards batch completion to the UI and closes it.
func (c *Controller) OnBatchEnd(results runner.Results) {
	c.send(Event{Kind: EventBatchEnd, Succeeded: results.Succeeded(), Failed: results.Failed()})
	c.Close()
}

// send enqueues an event without blocking the caller.
func (c *Controller) send(event Event) {
	if c == nil {
		return
	}
	select {
	case c.events <- event:
	default:
	}
}
