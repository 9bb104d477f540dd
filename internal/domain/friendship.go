package domain

import "time"

// FriendshipStatus tracks the lifecycle of a friend request.
type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "PENDING"
	FriendshipAccepted FriendshipStatus = "ACCEPTED"
)

// Friendship links a requesting user to a receiving user. A row exists from
// the moment a request is sent; acceptance flips the status.
type Friendship struct {
	ID         string
	FromUserID string
	ToUserID   string
	Status     FriendshipStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
