package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user.
// PasswordHash is opaque to everything except the auth service.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	IsActive     bool
	CreatedAt    time.Time
}

// IsAdmin returns true for users allowed to mutate the catalog and read
// history/reports.
func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}
