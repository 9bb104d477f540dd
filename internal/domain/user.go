// Package domain holds the core entities shared between the store, service,
// and HTTP layers.
package domain

import "time"

// Role classifies a user's privilege level.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// User is a registered account. Email is the login identity and is unique.
type User struct {
	ID           string
	Email        string
	Name         string
	Nickname     string
	Department   string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
