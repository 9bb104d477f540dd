package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/pp8817/Sucat-Server/internal/domain"
	"github.com/pp8817/Sucat-Server/internal/store"
	"github.com/pp8817/Sucat-Server/pkg/cryptox"
	"github.com/pp8817/Sucat-Server/pkg/idx"
	"github.com/pp8817/Sucat-Server/pkg/slogx"
)

var (
	ErrAlreadyRegistered = errors.New("already_registered")
	ErrInvalidSignup     = errors.New("invalid_signup")
)

// UserService manages account registration and profiles.
type UserService struct {
	Store store.Store
}

// SignupParams carries the fields collected at registration.
type SignupParams struct {
	Email      string
	Password   string
	Name       string
	Nickname   string
	Department string
}

// Signup registers a new account with a hashed password. Duplicate email or
// nickname yields ErrAlreadyRegistered.
func (s *UserService) Signup(ctx context.Context, p SignupParams) (domain.User, error) {
	p.Email = strings.TrimSpace(p.Email)
	p.Nickname = strings.TrimSpace(p.Nickname)
	p.Name = strings.TrimSpace(p.Name)

	if p.Email == "" || p.Password == "" || p.Name == "" || p.Nickname == "" {
		return domain.User{}, ErrInvalidSignup
	}

	hash, err := cryptox.HashPassword(p.Password)
	if err != nil {
		return domain.User{}, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Email:        p.Email,
		Name:         p.Name,
		Nickname:     p.Nickname,
		Department:   p.Department,
		PasswordHash: hash,
		Role:         domain.RoleUser,
	}

	if err := s.Store.Users().Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrAlreadyRegistered
		}
		return domain.User{}, err
	}

	slogx.FromContext(ctx).Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email),
	)
	return user, nil
}

// Profile returns the account behind an email.
func (s *UserService) Profile(ctx context.Context, email string) (domain.User, error) {
	user, err := s.Store.Users().FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}

// UpdateProfile changes the mutable profile fields. Empty fields keep their
// current value.
func (s *UserService) UpdateProfile(ctx context.Context, email, nickname, department string) (domain.User, error) {
	user, err := s.Profile(ctx, email)
	if err != nil {
		return domain.User{}, err
	}

	if nickname = strings.TrimSpace(nickname); nickname != "" {
		user.Nickname = nickname
	}
	if department = strings.TrimSpace(department); department != "" {
		user.Department = department
	}

	if err := s.Store.Users().Update(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, ErrAlreadyRegistered
		}
		return domain.User{}, err
	}
	return user, nil
}
