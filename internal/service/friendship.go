package service

import (
	"context"
	"errors"

	"github.com/pp8817/Sucat-Server/internal/domain"
	"github.com/pp8817/Sucat-Server/internal/store"
	"github.com/pp8817/Sucat-Server/pkg/idx"
)

var (
	ErrSelfFriendship     = errors.New("self_friendship")
	ErrFriendshipExists   = errors.New("friendship_exists")
	ErrFriendshipNotFound = errors.New("friendship_not_found")
	ErrNotRecipient       = errors.New("not_recipient")
)

// FriendshipService manages friend requests between users.
type FriendshipService struct {
	Store store.Store
}

// Request sends a friend request to the user behind toNickname. A request
// in either direction between the pair blocks a second one.
func (s *FriendshipService) Request(ctx context.Context, fromUserID, toNickname string) (domain.Friendship, error) {
	target, err := s.Store.Users().FindByNickname(ctx, toNickname)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Friendship{}, ErrUserNotFound
		}
		return domain.Friendship{}, err
	}
	if target.ID == fromUserID {
		return domain.Friendship{}, ErrSelfFriendship
	}

	if _, err := s.Store.Friendships().FindBetween(ctx, fromUserID, target.ID); err == nil {
		return domain.Friendship{}, ErrFriendshipExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return domain.Friendship{}, err
	}

	f := domain.Friendship{
		ID:         idx.New().String(),
		FromUserID: fromUserID,
		ToUserID:   target.ID,
		Status:     domain.FriendshipPending,
	}
	if err := s.Store.Friendships().Create(ctx, f); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Friendship{}, ErrFriendshipExists
		}
		return domain.Friendship{}, err
	}
	return f, nil
}

// Accept marks a pending request accepted. Only the recipient may accept.
func (s *FriendshipService) Accept(ctx context.Context, userID, friendshipID string) error {
	f, err := s.Store.Friendships().FindByID(ctx, friendshipID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrFriendshipNotFound
		}
		return err
	}
	if f.ToUserID != userID {
		return ErrNotRecipient
	}

	return s.Store.Friendships().UpdateStatus(ctx, friendshipID, domain.FriendshipAccepted)
}

// List returns the user's friendships with the given status.
func (s *FriendshipService) List(ctx context.Context, userID string, status domain.FriendshipStatus) ([]domain.Friendship, error) {
	return s.Store.Friendships().ListForUser(ctx, userID, status)
}

// Remove deletes a friendship the user participates in.
func (s *FriendshipService) Remove(ctx context.Context, userID, friendshipID string) error {
	f, err := s.Store.Friendships().FindByID(ctx, friendshipID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrFriendshipNotFound
		}
		return err
	}
	if f.FromUserID != userID && f.ToUserID != userID {
		return ErrNotRecipient
	}

	return s.Store.Friendships().Delete(ctx, friendshipID)
}
