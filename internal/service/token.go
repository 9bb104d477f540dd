// Package service implements the application logic on top of the store and
// token codec.
package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/pp8817/Sucat-Server/internal/domain"
	"github.com/pp8817/Sucat-Server/internal/store"
	"github.com/pp8817/Sucat-Server/pkg/jwtx"
)

var (
	ErrInvalidToken       = errors.New("invalid_token")
	ErrInvalidAccessToken = errors.New("invalid_access_token")
	ErrUserNotFound       = errors.New("user_not_found")
)

// bearerPrefix is matched case-sensitively on incoming headers. Outgoing
// token headers carry the raw token with no prefix.
const bearerPrefix = "Bearer "

// TokenService owns the access/refresh token lifecycle. Access tokens are
// never persisted; expiry is their only invalidation. Refresh tokens are
// stored one-per-email, so issuing a new one invalidates the previous.
type TokenService struct {
	Codec *jwtx.Codec
	Store store.Store

	AccessTTL  time.Duration
	RefreshTTL time.Duration

	// Header names the tokens travel in, both directions.
	AccessHeader  string
	RefreshHeader string
}

// CreateAccessToken issues a short-lived access token carrying the user's
// email claim.
func (s *TokenService) CreateAccessToken(email string) (string, error) {
	return s.Codec.Issue(jwtx.SubjectAccess, email, s.AccessTTL)
}

// CreateRefreshToken issues a refresh token. It carries no identity claim;
// the stored record links it back to its owner.
func (s *TokenService) CreateRefreshToken() (string, error) {
	return s.Codec.Issue(jwtx.SubjectRefresh, "", s.RefreshTTL)
}

// UpdateRefreshToken stores token as email's current refresh token,
// replacing any previous one. Returns ErrUserNotFound for an unknown
// identity.
func (s *TokenService) UpdateRefreshToken(ctx context.Context, email, token string) error {
	if _, err := s.Store.Users().FindByEmail(ctx, email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return s.Store.RefreshTokens().Upsert(ctx, domain.RefreshToken{
		Email:     email,
		Token:     token,
		ExpiresAt: time.Now().UTC().Add(s.RefreshTTL),
	})
}

// DestroyRefreshToken removes email's stored refresh token. Removing an
// absent record is a no-op, so repeated logout is safe.
func (s *TokenService) DestroyRefreshToken(ctx context.Context, email string) error {
	if _, err := s.Store.Users().FindByEmail(ctx, email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	return s.Store.RefreshTokens().DeleteByEmail(ctx, email)
}

// SendAccessAndRefreshToken writes both raw tokens to the configured
// response headers. Callers complete the response with a 200 body.
func (s *TokenService) SendAccessAndRefreshToken(w http.ResponseWriter, access, refresh string) {
	w.Header().Set(s.AccessHeader, access)
	w.Header().Set(s.RefreshHeader, refresh)
}

// SendAccessToken writes the raw access token to the configured response
// header.
func (s *TokenService) SendAccessToken(w http.ResponseWriter, access string) {
	w.Header().Set(s.AccessHeader, access)
}

// ExtractAccessToken pulls the access token out of the request header.
// The header must carry a case-sensitive "Bearer " prefix; a missing header
// or missing prefix yields ("", false), never an error.
func (s *TokenService) ExtractAccessToken(r *http.Request) (string, bool) {
	return extractBearer(r.Header.Get(s.AccessHeader))
}

// ExtractRefreshToken pulls the refresh token out of the request header
// under the same prefix rule as ExtractAccessToken.
func (s *TokenService) ExtractRefreshToken(r *http.Request) (string, bool) {
	return extractBearer(r.Header.Get(s.RefreshHeader))
}

func extractBearer(header string) (string, bool) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)), true
}

// ExtractEmail verifies token and returns its email claim. Every failure
// cause collapses to ErrInvalidToken; callers get no signature/expiry
// distinction.
func (s *TokenService) ExtractEmail(token string) (string, error) {
	claims, err := s.Codec.Verify(token)
	if err != nil {
		return "", ErrInvalidToken
	}
	return claims.Email, nil
}

// IsTokenValid reports whether token verifies. Total; never errors.
func (s *TokenService) IsTokenValid(token string) bool {
	_, err := s.Codec.Verify(token)
	return err == nil
}

// UserFromRequest resolves the authenticated user behind a request. A
// missing or unverifiable access token yields ErrInvalidAccessToken; a
// verified token whose identity no longer exists yields ErrUserNotFound.
func (s *TokenService) UserFromRequest(ctx context.Context, r *http.Request) (domain.User, error) {
	raw, ok := s.ExtractAccessToken(r)
	if !ok {
		return domain.User{}, ErrInvalidAccessToken
	}

	claims, err := s.Codec.Verify(raw)
	if err != nil {
		return domain.User{}, ErrInvalidAccessToken
	}

	user, err := s.Store.Users().FindByEmail(ctx, claims.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrUserNotFound
		}
		return domain.User{}, err
	}
	return user, nil
}
