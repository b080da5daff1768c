package history

import "context"

type HistoryRepository interface {
	Create(ctx context.Context, e Entry) error
	ListByEntity(ctx context.Context, entityType, entityRef string, limit int) ([]Entry, error)
}

// Recorder is the write-only sink for change history. Implementations
// swallow storage failures after logging them.
type Recorder interface {
	Record(ctx context.Context, e Entry)
}
