package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/history"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type historyRepository struct {
	db *database.DB
}

func NewHistoryRepository(db *database.DB) history.HistoryRepository {
	return &historyRepository{db: db}
}

// Create implements history.HistoryRepository.
func (r *historyRepository) Create(ctx context.Context, e history.Entry) error {
	q := GetQuerier(ctx, r.db)

	before, err := json.Marshal(e.Before)
	if err != nil {
		return fmt.Errorf("failed to marshal before snapshot: %w", err)
	}
	after, err := json.Marshal(e.After)
	if err != nil {
		return fmt.Errorf("failed to marshal after snapshot: %w", err)
	}

	query := `
		INSERT INTO change_history (entity_type, entity_ref, changed_by, reason, before_snapshot, after_snapshot)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err = q.Exec(ctx, query, e.EntityType, e.EntityRef, e.ChangedBy, e.Reason, before, after)
	if err != nil {
		return fmt.Errorf("failed to create history entry: %w", err)
	}
	return nil
}

// ListByEntity implements history.HistoryRepository.
func (r *historyRepository) ListByEntity(ctx context.Context, entityType, entityRef string, limit int) ([]history.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, entity_type, entity_ref, changed_by, reason, before_snapshot, after_snapshot, created_at
		FROM change_history
		WHERE entity_type = $1 AND entity_ref = $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, entityType, entityRef, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list history: %w", err)
	}
	defer rows.Close()

	var out []history.Entry
	for rows.Next() {
		var e history.Entry
		var before, after []byte
		if err := rows.Scan(&e.ID, &e.EntityType, &e.EntityRef, &e.ChangedBy, &e.Reason, &before, &after, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan history entry: %w", err)
		}
		if len(before) > 0 {
			if err := json.Unmarshal(before, &e.Before); err != nil {
				return nil, fmt.Errorf("failed to unmarshal before snapshot: %w", err)
			}
		}
		if len(after) > 0 {
			if err := json.Unmarshal(after, &e.After); err != nil {
				return nil, fmt.Errorf("failed to unmarshal after snapshot: %w", err)
			}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
