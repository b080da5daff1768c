package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/workforcehq/workforce-backend-go/internal/domain/auth"
	"github.com/workforcehq/workforce-backend-go/internal/pkg/database"
)

type refreshTokenRepository struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) auth.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Create implements auth.RefreshTokenRepository.
func (r *refreshTokenRepository) Create(ctx context.Context, t auth.RefreshToken) (auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (token, employee_ref, expires_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, t.Token, t.EmployeeRef, t.ExpiresAt).Scan(&t.ID, &t.CreatedAt)
	if err != nil {
		return auth.RefreshToken{}, fmt.Errorf("failed to create refresh token: %w", err)
	}
	return t, nil
}

// GetByToken implements auth.RefreshTokenRepository.
func (r *refreshTokenRepository) GetByToken(ctx context.Context, token string) (*auth.RefreshToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, token, employee_ref, expires_at, revoked_at, created_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var t auth.RefreshToken
	err := q.QueryRow(ctx, query, token).Scan(&t.ID, &t.Token, &t.EmployeeRef, &t.ExpiresAt, &t.RevokedAt, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get refresh token: %w", err)
	}
	return &t, nil
}

// Revoke implements auth.RefreshTokenRepository.
func (r *refreshTokenRepository) Revoke(ctx context.Context, id string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `UPDATE refresh_tokens SET revoked_at = $2 WHERE id = $1 AND revoked_at IS NULL`, id, at)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return auth.ErrRefreshTokenInvalid
	}
	return nil
}

// RevokeAllForEmployee implements auth.RefreshTokenRepository.
func (r *refreshTokenRepository) RevokeAllForEmployee(ctx context.Context, employeeRef string, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE refresh_tokens SET revoked_at = $2 WHERE employee_ref = $1 AND revoked_at IS NULL`,
		employeeRef, at,
	)
	if err != nil {
		return fmt.Errorf("failed to revoke employee tokens: %w", err)
	}
	return nil
}

// DeleteExpired implements auth.RefreshTokenRepository.
func (r *refreshTokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM refresh_tokens WHERE expires_at < $1 OR revoked_at IS NOT NULL`, before)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired tokens: %w", err)
	}
	return tag.RowsAffected(), nil
}
