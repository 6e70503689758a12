package brief

import "context"

// NullRunLogger is a no-op implementation of RunLogger.
type NullRunLogger struct{}

func NewNullRunLogger() *NullRunLogger {
	return &NullRunLogger{}
}

func (l *NullRunLogger) LogStage(ctx context.Context, entry *RunLogEntry) error {
	return nil
}

func (l *NullRunLogger) GetRunHistory(ctx context.Context, runID string) ([]*RunLogEntry, error) {
	return nil, nil
}
