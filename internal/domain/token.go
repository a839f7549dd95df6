package domain

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is a stored refresh token. Only the SHA-256 hash of the raw
// token is persisted.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	RevokedAt *time.Time
	CreatedAt time.Time
}

// Usable reports whether the token can still be exchanged at the given
// moment.
func (t *RefreshToken) Usable(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}
