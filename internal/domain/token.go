package domain

import "time"

// RefreshToken is the persisted refresh credential for one identity. Email
// is the primary key, so each user holds at most one live refresh token.
type RefreshToken struct {
	Email     string
	Token     string
	ExpiresAt time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Expired reports whether the token's stored lifetime has passed at now.
func (t RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
