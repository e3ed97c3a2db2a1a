package cli

import (
	"io"
	"time"

	"go.uber.org/zap"

	"coursekit/internal/config"
	"coursekit/internal/logger"
	"coursekit/internal/runner"
)

// newCommandLogger builds the per-invocation logger tagged with a fresh run id.
func newCommandLogger(cfg config.LogConfig, stderr io.Writer, command string) (*zap.Logger, string, error) {
	base, err := logger.New(cfg, stderr)
	if err != nil {
		return nil, "", err
	}
	runID := runner.NewRunID(time.Now())
	return logger.WithRunID(base, runID).With(zap.String("command", command)), runID, nil
}
