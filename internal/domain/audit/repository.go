package audit

import "context"

type AuditRepository interface {
	Create(ctx context.Context, e Entry) error
	List(ctx context.Context, entityType, entityRef string, limit int) ([]Entry, error)
}

// Logger is the write-only sink services depend on. Implementations
// swallow storage failures after logging them.
type Logger interface {
	Log(ctx context.Context, e Entry)
}
