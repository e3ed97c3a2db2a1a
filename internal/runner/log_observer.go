package runner

import "go.uber.org/zap"

// LogObserver writes batch events to a zap logger.
type LogObserver struct {
	Logger *zap.Logger
}

func (o LogObserver) OnBatchStart(runID string, paths []string) {
	o.Logger.Info("batch started", zap.String("batch_id", runID), zap.Int("files", len(paths)))
}

func (o LogObserver) OnFileEvent(event FileEvent) {
	fields := []zap.Field{zap.Int("index", event.Index), zap.String("path", event.Path)}
	switch event.Type {
	case FileRunning:
		o.Logger.Debug("file started", fields...)
	case FileDone:
		o.Logger.Info("file written", append(fields,
			zap.String("output", event.Output),
			zap.Int("sections", event.Sections),
			zap.Int("tables", event.Tables),
		)...)
	case FileFailed:
		o.Logger.Error("file failed", append(fields, zap.String("error", event.Error))...)
	}
}

func (o LogObserver) OnBatchEnd(results Results) {
	o.Logger.Info("batch finished",
		zap.String("batch_id", results.RunID),
		zap.Int("succeeded", results.Succeeded()),
		zap.Int("failed", results.Failed()),
	)
}
