package jwtx_test

import (
	"testing"
	"time"

	"github.com/pp8817/Sucat-Server/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var secret = []byte("test-secret-at-least-this-long")

func TestIssueAndVerifyAccessToken(t *testing.T) {
	c := jwtx.New(secret)

	token, err := c.Issue(jwtx.SubjectAccess, "alice@example.com", time.Minute)
	require.NoError(t, err)

	claims, err := c.Verify(token)
	require.NoError(t, err)
	require.Equal(t, jwtx.SubjectAccess, claims.Subject)
	require.Equal(t, "alice@example.com", claims.Email)
}

func TestRefreshTokenCarriesNoEmail(t *testing.T) {
	c := jwtx.New(secret)

	token, err := c.Issue(jwtx.SubjectRefresh, "", time.Hour)
	require.NoError(t, err)

	claims, err := c.Verify(token)
	require.NoError(t, err)
	require.Equal(t, jwtx.SubjectRefresh, claims.Subject)
	require.Empty(t, claims.Email)
}

func TestVerifyExpiryBoundary(t *testing.T) {
	issued := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := issued

	c := jwtx.NewWithClock(secret, func() time.Time { return clock })

	token, err := c.Issue(jwtx.SubjectAccess, "alice@example.com", 30*time.Second)
	require.NoError(t, err)

	clock = issued.Add(29 * time.Second)
	_, err = c.Verify(token)
	require.NoError(t, err)

	clock = issued.Add(31 * time.Second)
	_, err = c.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	token, err := jwtx.New([]byte("other-secret-entirely-different")).
		Issue(jwtx.SubjectAccess, "alice@example.com", time.Minute)
	require.NoError(t, err)

	_, err = jwtx.New(secret).Verify(token)
	require.ErrorIs(t, err, jwtx.ErrInvalidSig)
}

func TestVerifyRejectsMalformed(t *testing.T) {
	c := jwtx.New(secret)

	for _, token := range []string{"", "garbage-string", "a.b", "a.b.c.d"} {
		_, err := c.Verify(token)
		require.ErrorIs(t, err, jwtx.ErrMalformed, "token %q", token)
	}
}

func TestVerifyRejectsUnsignedAlgorithm(t *testing.T) {
	c := jwtx.New(secret)

	// alg=none token with a plausible payload
	unsigned := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0." +
		"eyJzdWIiOiJBY2Nlc3NUb2tlbiIsImVtYWlsIjoiYWxpY2VAZXhhbXBsZS5jb20ifQ."

	_, err := c.Verify(unsigned)
	require.Error(t, err)
}
