package auth

import (
	"context"
	"time"
)

type RefreshTokenRepository interface {
	Create(ctx context.Context, t RefreshToken) (RefreshToken, error)
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)
	Revoke(ctx context.Context, id string, at time.Time) error
	RevokeAllForEmployee(ctx context.Context, employeeRef string, at time.Time) error
	DeleteExpired(ctx context.Context, before time.Time) (int64, error)
}
