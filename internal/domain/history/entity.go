package history

import "time"

// Entry captures a before/after snapshot of a changed record.
type Entry struct {
	ID         string
	EntityType string
	EntityRef  string
	ChangedBy  string
	Reason     string
	Before     map[string]any
	After      map[string]any
	CreatedAt  time.Time
}
