package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an authenticated application user (a principal).
type User struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	FirstName   *string
	LastName    *string
	Phone       *string
	AvatarPath  *string
	Roles       RoleSet
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAdmin reports whether the user holds the Admin role.
func (u *User) IsAdmin() bool { return u.Roles.IsAdmin() }

// AuthMethod holds the password credential for a user.
// Stored separately from the user record so that listing users never
// touches credential data.
type AuthMethod struct {
	UserID       uuid.UUID
	PasswordHash string
	CreatedAt    time.Time
}
