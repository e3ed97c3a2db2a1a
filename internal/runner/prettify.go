package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"coursekit/internal/page"
)

// PrettifyRequest configures prettify jobs.
type PrettifyRequest struct {
	Options page.Options
	Decider page.HeaderDecider
	Suffix  string
}

// PrettifyJob returns a FileJob that reads a page export, prettifies it and
// writes the result next to the input. It never writes over the input.
func PrettifyJob(req PrettifyRequest) FileJob {
	return func(ctx context.Context, path string) (FileOutcome, error) {
		output := page.OutputPath(path, req.Suffix)
		if filepath.Clean(output) == filepath.Clean(path) {
			return FileOutcome{}, fmt.Errorf("output suffix %q would overwrite %s", req.Suffix, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return FileOutcome{}, fmt.Errorf("read page: %w", err)
		}
		result, err := page.Prettify(ctx, string(data), req.Decider, req.Options)
		if err != nil {
			return FileOutcome{}, err
		}
		if err := os.WriteFile(output, []byte(result.Output), 0o644); err != nil {
			return FileOutcome{}, fmt.Errorf("write page: %w", err)
		}
		return FileOutcome{Output: output, Sections: result.Sections, Tables: result.Tables}, nil
	}
}
