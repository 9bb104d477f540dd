// Package store defines the persistence boundary. Concrete drivers live
// under drivers/ and implement these interfaces.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/pp8817/Sucat-Server/internal/domain"
)

var (
	// ErrNotFound is returned when the requested record does not exist.
	ErrNotFound = errors.New("store: not found")

	// ErrAlreadyExists is returned when a uniqueness constraint is violated.
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root persistence interface. Drivers hand out repository
// views bound to the same underlying connection (or transaction).
type Store interface {
	Users() Users
	RefreshTokens() RefreshTokens
	Friendships() Friendships
	ChatRooms() ChatRooms
	ChatMessages() ChatMessages

	// WithTx runs fn inside a transaction. The Store passed to fn routes all
	// repository calls through that transaction. Returning an error rolls
	// back, nil commits.
	WithTx(ctx context.Context, fn func(Store) error) error

	// ApplyMigrations brings the schema up to date.
	ApplyMigrations(ctx context.Context) error

	Ping(ctx context.Context) error
	Close() error
}

// Users manages registered accounts.
type Users interface {
	Create(ctx context.Context, u domain.User) error
	FindByID(ctx context.Context, id string) (domain.User, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindByNickname(ctx context.Context, nickname string) (domain.User, error)
	Update(ctx context.Context, u domain.User) error
	UpdatePassword(ctx context.Context, email, passwordHash string) error
	Delete(ctx context.Context, id string) error
}

// RefreshTokens manages persisted refresh credentials. Email is the primary
// key: Upsert replaces any previous token for the same identity, so a user
// never holds more than one live refresh token.
type RefreshTokens interface {
	Upsert(ctx context.Context, t domain.RefreshToken) error
	FindByEmail(ctx context.Context, email string) (domain.RefreshToken, error)
	FindByToken(ctx context.Context, token string) (domain.RefreshToken, error)
	DeleteByEmail(ctx context.Context, email string) error

	// DeleteExpired removes tokens whose stored lifetime passed before now
	// and reports how many rows were removed.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

// Friendships manages friend requests and accepted links.
type Friendships interface {
	Create(ctx context.Context, f domain.Friendship) error
	FindByID(ctx context.Context, id string) (domain.Friendship, error)
	FindBetween(ctx context.Context, fromUserID, toUserID string) (domain.Friendship, error)
	ListForUser(ctx context.Context, userID string, status domain.FriendshipStatus) ([]domain.Friendship, error)
	UpdateStatus(ctx context.Context, id string, status domain.FriendshipStatus) error
	Delete(ctx context.Context, id string) error
}

// ChatRooms manages conversation rooms.
type ChatRooms interface {
	Create(ctx context.Context, r domain.ChatRoom) error
	FindByID(ctx context.Context, id string) (domain.ChatRoom, error)
	List(ctx context.Context) ([]domain.ChatRoom, error)
	Delete(ctx context.Context, id string) error
}

// ChatMessages manages messages within rooms.
type ChatMessages interface {
	Create(ctx context.Context, m domain.ChatMessage) error
	ListByRoom(ctx context.Context, roomID string, limit int) ([]domain.ChatMessage, error)
}
