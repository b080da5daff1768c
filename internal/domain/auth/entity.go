package auth

import "time"

// RefreshToken is an opaque sliding-window token. Each refresh revokes
// the presented token and issues a fresh one with a new expiry.
type RefreshToken struct {
	ID          string
	Token       string
	EmployeeRef string
	ExpiresAt   time.Time
	RevokedAt   *time.Time
	CreatedAt   time.Time
}

func (t RefreshToken) Revoked() bool {
	return t.RevokedAt != nil
}

func (t RefreshToken) Expired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}
