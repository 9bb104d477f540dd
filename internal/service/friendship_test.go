package service_test

import (
	"context"
	"testing"

	"github.com/pp8817/Sucat-Server/internal/domain"
	"github.com/pp8817/Sucat-Server/internal/service"
	"github.com/stretchr/testify/require"
)

func TestFriendRequestLifecycle(t *testing.T) {
	st := newTestStore(t)
	friends := &service.FriendshipService{Store: st}
	ctx := context.Background()

	alice := registerUser(t, st, "alice@example.com")
	bob := registerUser(t, st, "bob@example.com")

	f, err := friends.Request(ctx, alice.ID, "bob")
	require.NoError(t, err)
	require.Equal(t, domain.FriendshipPending, f.Status)

	// Only the recipient may accept.
	require.ErrorIs(t, friends.Accept(ctx, alice.ID, f.ID), service.ErrNotRecipient)
	require.NoError(t, friends.Accept(ctx, bob.ID, f.ID))

	accepted, err := friends.List(ctx, alice.ID, domain.FriendshipAccepted)
	require.NoError(t, err)
	require.Len(t, accepted, 1)
}

func TestFriendRequestRejectsSelfAndDuplicates(t *testing.T) {
	st := newTestStore(t)
	friends := &service.FriendshipService{Store: st}
	ctx := context.Background()

	alice := registerUser(t, st, "alice@example.com")
	bob := registerUser(t, st, "bob@example.com")

	_, err := friends.Request(ctx, alice.ID, "alice")
	require.ErrorIs(t, err, service.ErrSelfFriendship)

	_, err = friends.Request(ctx, alice.ID, "missing-nick")
	require.ErrorIs(t, err, service.ErrUserNotFound)

	_, err = friends.Request(ctx, alice.ID, "bob")
	require.NoError(t, err)

	// Neither direction may open a second request.
	_, err = friends.Request(ctx, alice.ID, "bob")
	require.ErrorIs(t, err, service.ErrFriendshipExists)
	_, err = friends.Request(ctx, bob.ID, "alice")
	require.ErrorIs(t, err, service.ErrFriendshipExists)
}
