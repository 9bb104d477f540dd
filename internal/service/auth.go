package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/pp8817/Sucat-Server/internal/store"
	"github.com/pp8817/Sucat-Server/pkg/cryptox"
	"github.com/pp8817/Sucat-Server/pkg/slogx"
)

var (
	ErrInvalidCredentials  = errors.New("invalid_credentials")
	ErrInvalidRefreshToken = errors.New("invalid_refresh_token")
)

// AuthService drives the login, reissue, and logout flows.
type AuthService struct {
	Tokens *TokenService
	Store  store.Store
}

// TokenPair is the result of a successful login or a rotating reissue.
// Refresh is empty when the existing refresh token was kept.
type TokenPair struct {
	Access  string
	Refresh string
}

// Login verifies the credentials and issues a fresh token pair. The new
// refresh token replaces whatever the user held before.
func (s *AuthService) Login(ctx context.Context, email, password string) (TokenPair, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TokenPair{}, ErrUserNotFound
		}
		return TokenPair{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login rejected", slog.String("email", email))
		return TokenPair{}, ErrInvalidCredentials
	}

	access, err := s.Tokens.CreateAccessToken(user.Email)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.Tokens.CreateRefreshToken()
	if err != nil {
		return TokenPair{}, err
	}

	if err := s.Tokens.UpdateRefreshToken(ctx, user.Email, refresh); err != nil {
		return TokenPair{}, err
	}

	l.Info("login succeeded", slog.String("email", email))
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// Reissue exchanges a refresh token for a new access token. The refresh
// token itself rotates once it is past half its stored lifetime; before
// that, the caller keeps using the same one and Refresh comes back empty.
func (s *AuthService) Reissue(ctx context.Context, refreshToken string) (TokenPair, error) {
	if !s.Tokens.IsTokenValid(refreshToken) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	// Refresh tokens carry no identity claim, so the stored record is the
	// only link back to the owner.
	rec, err := s.Store.RefreshTokens().FindByToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TokenPair{}, ErrInvalidRefreshToken
		}
		return TokenPair{}, err
	}

	now := time.Now().UTC()
	if rec.Expired(now) {
		return TokenPair{}, ErrInvalidRefreshToken
	}

	access, err := s.Tokens.CreateAccessToken(rec.Email)
	if err != nil {
		return TokenPair{}, err
	}

	if !pastHalfLife(rec.UpdatedAt, rec.ExpiresAt, now) {
		return TokenPair{Access: access}, nil
	}

	refresh, err := s.Tokens.CreateRefreshToken()
	if err != nil {
		return TokenPair{}, err
	}
	if err := s.Tokens.UpdateRefreshToken(ctx, rec.Email, refresh); err != nil {
		return TokenPair{}, err
	}

	slogx.FromContext(ctx).Info("refresh token rotated", slog.String("email", rec.Email))
	return TokenPair{Access: access, Refresh: refresh}, nil
}

// Logout destroys the user's stored refresh token. The current access token
// stays valid until it expires.
func (s *AuthService) Logout(ctx context.Context, email string) error {
	if err := s.Tokens.DestroyRefreshToken(ctx, email); err != nil {
		return err
	}
	slogx.FromContext(ctx).Info("logout", slog.String("email", email))
	return nil
}

// pastHalfLife reports whether now is beyond the midpoint of the token's
// stored lifetime.
func pastHalfLife(issued, expires, now time.Time) bool {
	if !expires.After(issued) {
		return true
	}
	return now.Sub(issued)*2 >= expires.Sub(issued)
}
