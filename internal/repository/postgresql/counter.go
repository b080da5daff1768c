package postgresql

import (
	"context"
	"fmt"

	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/idgen"
)

type counterStore struct {
	db *database.DB
}

// NewCounterStore returns an atomic named-counter store for sequential
// display IDs.
func NewCounterStore(db *database.DB) idgen.CounterStore {
	return &counterStore{db: db}
}

// Increment implements idgen.CounterStore. The upsert makes the
// read-modify-write a single atomic statement.
func (c *counterStore) Increment(ctx context.Context, name string) (int64, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		INSERT INTO counters (name, value) VALUES ($1, 1)
		ON CONFLICT (name) DO UPDATE SET value = counters.value + 1
		RETURNING value
	`

	var value int64
	if err := q.QueryRow(ctx, query, name).Scan(&value); err != nil {
		return 0, fmt.Errorf("failed to increment counter %q: %w", name, err)
	}
	return value, nil
}
