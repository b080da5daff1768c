package postgresql

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/workforcehq/workforce-backend-go/internal/domain/audit"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type auditRepository struct {
	db *database.DB
}

func NewAuditRepository(db *database.DB) audit.AuditRepository {
	return &auditRepository{db: db}
}

// Create implements audit.AuditRepository.
func (r *auditRepository) Create(ctx context.Context, e audit.Entry) error {
	q := GetQuerier(ctx, r.db)

	detail, err := json.Marshal(e.Detail)
	if err != nil {
		return fmt.Errorf("failed to marshal audit detail: %w", err)
	}

	query := `
		INSERT INTO audit_logs (action, actor_ref, actor_name, actor_role, entity_type, entity_ref, detail)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err = q.Exec(ctx, query, e.Action, e.ActorRef, e.ActorName, e.ActorRole, e.EntityType, e.EntityRef, detail)
	if err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

// List implements audit.AuditRepository.
func (r *auditRepository) List(ctx context.Context, entityType, entityRef string, limit int) ([]audit.Entry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, action, actor_ref, actor_name, actor_role, entity_type, entity_ref, detail, created_at
		FROM audit_logs
		WHERE entity_type = $1 AND entity_ref = $2
		ORDER BY created_at DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, entityType, entityRef, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit logs: %w", err)
	}
	defer rows.Close()

	var out []audit.Entry
	for rows.Next() {
		var e audit.Entry
		var detail []byte
		if err := rows.Scan(&e.ID, &e.Action, &e.ActorRef, &e.ActorName, &e.ActorRole, &e.EntityType, &e.EntityRef, &detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan audit log: %w", err)
		}
		if len(detail) > 0 {
			if err := json.Unmarshal(detail, &e.Detail); err != nil {
				return nil, fmt.Errorf("failed to unmarshal audit detail: %w", err)
			}
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
