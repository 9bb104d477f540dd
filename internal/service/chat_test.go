package service_test

import (
	"context"
	"testing"

	"github.com/pp8817/Sucat-Server/internal/service"
	"github.com/stretchr/testify/require"
)

func TestChatRoomAndMessages(t *testing.T) {
	st := newTestStore(t)
	chat := &service.ChatService{Store: st}
	ctx := context.Background()

	alice := registerUser(t, st, "alice@example.com")

	room, err := chat.CreateRoom(ctx, alice.ID, "  general  ")
	require.NoError(t, err)
	require.Equal(t, "general", room.Title)

	_, err = chat.CreateRoom(ctx, alice.ID, "   ")
	require.ErrorIs(t, err, service.ErrEmptyTitle)

	_, err = chat.PostMessage(ctx, alice.ID, room.ID, "hello")
	require.NoError(t, err)
	_, err = chat.PostMessage(ctx, alice.ID, room.ID, " ")
	require.ErrorIs(t, err, service.ErrEmptyMessage)
	_, err = chat.PostMessage(ctx, alice.ID, "no-such-room", "hello")
	require.ErrorIs(t, err, service.ErrRoomNotFound)

	msgs, err := chat.ListMessages(ctx, room.ID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "hello", msgs[0].Body)

	_, err = chat.ListMessages(ctx, "no-such-room", 0)
	require.ErrorIs(t, err, service.ErrRoomNotFound)
}
