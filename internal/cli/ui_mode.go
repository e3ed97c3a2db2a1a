package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// uiModeDecision captures whether to use the live UI.
type uiModeDecision struct {
	useLive bool
	warning string
}

// isTerminal reports whether a writer is a TTY.
var isTerminal = defaultIsTerminal

// uiModeInputs lists what besides the mode flag affects the live UI.
type uiModeInputs struct {
	// verbose logs every file event, which would tear the live table.
	verbose bool
	// prompting means table header questions share the terminal.
	prompting bool
}

// resolveUIMode determines whether to enable the live progress table.
func resolveUIMode(mode string, inputs uiModeInputs, stdout io.Writer) (uiModeDecision, error) {
	normalized := strings.ToLower(strings.TrimSpace(mode))
	if normalized == "" {
		normalized = "auto"
	}
	var wantLive bool
	switch normalized {
	case "auto":
		wantLive = isTerminal(stdout)
	case "live":
		if !isTerminal(stdout) {
			return uiModeDecision{
				warning: "Live UI requested but stdout is not a TTY; falling back to plain output.",
			}, nil
		}
		wantLive = true
	case "plain":
		return uiModeDecision{}, nil
	default:
		return uiModeDecision{}, fmt.Errorf("invalid ui mode %q (expected auto|live|plain)", mode)
	}
	switch {
	case !wantLive || inputs.verbose:
		return uiModeDecision{}, nil
	case inputs.prompting:
		if normalized == "live" {
			return uiModeDecision{warning: "Live UI is disabled while prompting for table headers."}, nil
		}
		return uiModeDecision{}, nil
	}
	return uiModeDecision{useLive: true}, nil
}

// defaultIsTerminal inspects stdout for TTY support.
func defaultIsTerminal(stdout io.Writer) bool {
	if stdout == nil {
		return false
	}
	if file, ok := stdout.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := stdout.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}
