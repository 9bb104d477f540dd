package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/pp8817/Sucat-Server/internal/domain"
	"github.com/pp8817/Sucat-Server/internal/store"
	"github.com/pp8817/Sucat-Server/internal/store/drivers/sqlite"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations(context.Background()))
	return s
}

func seedUser(t *testing.T, s store.Store, id, email, nickname string) domain.User {
	t.Helper()

	u := domain.User{
		ID:           id,
		Email:        email,
		Name:         "Test User",
		Nickname:     nickname,
		Department:   "Engineering",
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		Role:         domain.RoleUser,
	}
	require.NoError(t, s.Users().Create(context.Background(), u))
	return u
}

func TestUsersRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "u1", "alice@example.com", "alice")

	byEmail, err := s.Users().FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", byEmail.ID)
	require.Equal(t, domain.RoleUser, byEmail.Role)
	require.False(t, byEmail.CreatedAt.IsZero())

	byNick, err := s.Users().FindByNickname(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, byEmail.ID, byNick.ID)

	_, err = s.Users().FindByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestUsersDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "u1", "alice@example.com", "alice")

	err := s.Users().Create(ctx, domain.User{
		ID:           "u2",
		Email:        "alice@example.com",
		Name:         "Imposter",
		Nickname:     "alice2",
		PasswordHash: "x",
		Role:         domain.RoleUser,
	})
	require.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestUsersUpdateMissing(t *testing.T) {
	s := newTestStore(t)

	err := s.Users().Update(context.Background(), domain.User{ID: "ghost", Role: domain.RoleUser})
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxRollsBackOnError(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.WithTx(ctx, func(tx store.Store) error {
		if err := tx.Users().Create(ctx, domain.User{
			ID: "u1", Email: "a@example.com", Name: "A", Nickname: "a",
			PasswordHash: "x", Role: domain.RoleUser,
		}); err != nil {
			return err
		}
		return context.Canceled
	})
	require.ErrorIs(t, err, context.Canceled)

	_, err = s.Users().FindByEmail(ctx, "a@example.com")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestWithTxCommits(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	err := s.WithTx(ctx, func(tx store.Store) error {
		return tx.Users().Create(ctx, domain.User{
			ID: "u1", Email: "a@example.com", Name: "A", Nickname: "a",
			PasswordHash: "x", Role: domain.RoleUser,
		})
	})
	require.NoError(t, err)

	u, err := s.Users().FindByEmail(ctx, "a@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", u.ID)
}

func TestFriendshipLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "u1", "alice@example.com", "alice")
	seedUser(t, s, "u2", "bob@example.com", "bob")

	f := domain.Friendship{
		ID:         "f1",
		FromUserID: "u1",
		ToUserID:   "u2",
		Status:     domain.FriendshipPending,
	}
	require.NoError(t, s.Friendships().Create(ctx, f))

	// A reverse request between the same pair is still visible.
	got, err := s.Friendships().FindBetween(ctx, "u2", "u1")
	require.NoError(t, err)
	require.Equal(t, "f1", got.ID)

	require.NoError(t, s.Friendships().UpdateStatus(ctx, "f1", domain.FriendshipAccepted))

	accepted, err := s.Friendships().ListForUser(ctx, "u2", domain.FriendshipAccepted)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	require.Equal(t, domain.FriendshipAccepted, accepted[0].Status)

	require.NoError(t, s.Friendships().Delete(ctx, "f1"))
	_, err = s.Friendships().FindByID(ctx, "f1")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestChatMessagesOrderedWithLimit(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	seedUser(t, s, "u1", "alice@example.com", "alice")
	require.NoError(t, s.ChatRooms().Create(ctx, domain.ChatRoom{
		ID: "r1", Title: "general", CreatedBy: "u1",
	}))

	base := time.Now().UTC().Truncate(time.Second)
	for i, body := range []string{"first", "second", "third"} {
		require.NoError(t, s.ChatMessages().Create(ctx, domain.ChatMessage{
			ID:        "m" + body,
			RoomID:    "r1",
			SenderID:  "u1",
			Body:      body,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	msgs, err := s.ChatMessages().ListByRoom(ctx, "r1", 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "second", msgs[0].Body)
	require.Equal(t, "third", msgs[1].Body)
}
