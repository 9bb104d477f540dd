// Package jwtx issues and verifies the HS512-signed tokens used for
// authentication. Claims are only trustworthy after Verify succeeds.
package jwtx

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Subject kinds distinguish the two token roles.
const (
	SubjectAccess  = "AccessToken"
	SubjectRefresh = "RefreshToken"
)

// ClaimEmail is the claim name carrying the user identity on access tokens.
const ClaimEmail = "email"

var (
	ErrMalformed  = errors.New("jwtx: malformed token")
	ErrInvalidSig = errors.New("jwtx: invalid signature")
	ErrExpired    = errors.New("jwtx: token expired")
)

// Claims is the payload of every issued token. Refresh tokens leave Email
// empty; they exist only to mint new access tokens.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// Codec signs and verifies tokens with a shared HMAC secret. The clock is
// injectable so expiry behaviour is testable.
type Codec struct {
	secret []byte
	now    func() time.Time
}

func New(secret []byte) *Codec {
	return NewWithClock(secret, time.Now)
}

func NewWithClock(secret []byte, now func() time.Time) *Codec {
	return &Codec{secret: secret, now: now}
}

// Issue creates a signed token with the given subject kind and lifetime.
// Pure; nothing is persisted.
func (c *Codec) Issue(subject, email string, ttl time.Duration) (string, error) {
	now := c.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Email: email,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(c.secret)
}

// Verify parses and validates a token. Only HS512 signatures are accepted,
// so a token declaring any other algorithm fails regardless of its payload.
func (c *Codec) Verify(token string) (Claims, error) {
	var claims Claims

	_, err := jwt.ParseWithClaims(token, &claims,
		func(t *jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	default:
		return ErrMalformed
	}
}
