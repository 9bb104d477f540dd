package service

import (
	"context"
	"errors"
	"strings"

	"github.com/pp8817/Sucat-Server/internal/domain"
	"github.com/pp8817/Sucat-Server/internal/store"
	"github.com/pp8817/Sucat-Server/pkg/idx"
)

var (
	ErrRoomNotFound = errors.New("room_not_found")
	ErrEmptyMessage = errors.New("empty_message")
	ErrEmptyTitle   = errors.New("empty_title")
)

// defaultMessageLimit caps a message page when the caller asks for none.
const defaultMessageLimit = 50

// ChatService manages rooms and their messages.
type ChatService struct {
	Store store.Store
}

// CreateRoom opens a new room owned by userID.
func (s *ChatService) CreateRoom(ctx context.Context, userID, title string) (domain.ChatRoom, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return domain.ChatRoom{}, ErrEmptyTitle
	}

	room := domain.ChatRoom{
		ID:        idx.New().String(),
		Title:     title,
		CreatedBy: userID,
	}
	if err := s.Store.ChatRooms().Create(ctx, room); err != nil {
		return domain.ChatRoom{}, err
	}
	return room, nil
}

// ListRooms returns every room, oldest first.
func (s *ChatService) ListRooms(ctx context.Context) ([]domain.ChatRoom, error) {
	return s.Store.ChatRooms().List(ctx)
}

// PostMessage appends a message to a room.
func (s *ChatService) PostMessage(ctx context.Context, userID, roomID, body string) (domain.ChatMessage, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return domain.ChatMessage{}, ErrEmptyMessage
	}

	if _, err := s.Store.ChatRooms().FindByID(ctx, roomID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.ChatMessage{}, ErrRoomNotFound
		}
		return domain.ChatMessage{}, err
	}

	msg := domain.ChatMessage{
		ID:       idx.New().String(),
		RoomID:   roomID,
		SenderID: userID,
		Body:     body,
	}
	if err := s.Store.ChatMessages().Create(ctx, msg); err != nil {
		return domain.ChatMessage{}, err
	}
	return msg, nil
}

// ListMessages returns up to limit recent messages in chronological order.
func (s *ChatService) ListMessages(ctx context.Context, roomID string, limit int) ([]domain.ChatMessage, error) {
	if _, err := s.Store.ChatRooms().FindByID(ctx, roomID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if limit <= 0 {
		limit = defaultMessageLimit
	}
	return s.Store.ChatMessages().ListByRoom(ctx, roomID, limit)
}
