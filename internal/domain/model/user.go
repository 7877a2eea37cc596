package model

import "time"

// Role controls access to back office operations.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a registered storefront customer or administrator.
type User struct {
	ID           int64
	Login        string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}

// Identity is the authenticated caller resolved from a token.
type Identity struct {
	UserID int64
	Role   Role
}

// IsAdmin reports whether identity has back office access.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}

// Contact is the resolved buyer contact used for notifications.
type Contact struct {
	Name  string
	Email string
	Phone string
}
