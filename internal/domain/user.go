package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an operator account. Password hashes never leave the auth service.
type User struct {
	ID           uuid.UUID
	Username     string
	DisplayName  string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// IsAdmin reports whether the user may access the admin console.
func (u *User) IsAdmin() bool { return u.Role == UserRoleAdmin }
