package service_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pp8817/Sucat-Server/internal/domain"
	"github.com/pp8817/Sucat-Server/internal/service"
	"github.com/pp8817/Sucat-Server/internal/store"
	"github.com/pp8817/Sucat-Server/internal/store/drivers/sqlite"
	"github.com/pp8817/Sucat-Server/pkg/cryptox"
	"github.com/pp8817/Sucat-Server/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "service-test")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations(context.Background()))
	return s
}

func newTokenService(t *testing.T, st store.Store) *service.TokenService {
	t.Helper()

	return &service.TokenService{
		Codec:         jwtx.New([]byte("test-secret-at-least-this-long")),
		Store:         st,
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
		AccessHeader:  "Authorization",
		RefreshHeader: "Authorization-Refresh",
	}
}

func registerUser(t *testing.T, st store.Store, email string) domain.User {
	t.Helper()

	users := &service.UserService{Store: st}
	u, err := users.Signup(context.Background(), service.SignupParams{
		Email:      email,
		Password:   "Secret123!",
		Name:       "Test User",
		Nickname:   email[:len(email)-len("@example.com")],
		Department: "Engineering",
	})
	require.NoError(t, err)
	return u
}

func TestUpdateRefreshTokenStoresRecord(t *testing.T) {
	st := newTestStore(t)
	svc := newTokenService(t, st)
	ctx := context.Background()

	registerUser(t, st, "alice@example.com")

	token, err := svc.CreateRefreshToken()
	require.NoError(t, err)
	require.NoError(t, svc.UpdateRefreshToken(ctx, "alice@example.com", token))

	rec, err := st.RefreshTokens().FindByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	require.Equal(t, token, rec.Token)
	require.WithinDuration(t, time.Now().UTC().Add(svc.RefreshTTL), rec.ExpiresAt, 5*time.Second)
}

func TestUpdateRefreshTokenUnknownUser(t *testing.T) {
	svc := newTokenService(t, newTestStore(t))

	err := svc.UpdateRefreshToken(context.Background(), "nobody@example.com", "whatever")
	require.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestDestroyRefreshTokenIsIdempotent(t *testing.T) {
	st := newTestStore(t)
	svc := newTokenService(t, st)
	ctx := context.Background()

	registerUser(t, st, "alice@example.com")
	require.NoError(t, svc.UpdateRefreshToken(ctx, "alice@example.com", "tok"))

	require.NoError(t, svc.DestroyRefreshToken(ctx, "alice@example.com"))
	require.NoError(t, svc.DestroyRefreshToken(ctx, "alice@example.com"))

	err := svc.DestroyRefreshToken(ctx, "nobody@example.com")
	require.ErrorIs(t, err, service.ErrUserNotFound)
}

func TestExtractTokensRequireBearerPrefix(t *testing.T) {
	svc := newTokenService(t, newTestStore(t))

	cases := []struct {
		name   string
		header string
		want   string
		wantOK bool
	}{
		{"absent", "", "", false},
		{"no prefix", "sometoken", "", false},
		{"lowercase prefix", "bearer sometoken", "", false},
		{"exact prefix", "Bearer sometoken", "sometoken", true},
		{"extra whitespace", "Bearer   sometoken  ", "sometoken", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				r.Header.Set(svc.AccessHeader, tc.header)
				r.Header.Set(svc.RefreshHeader, tc.header)
			}

			got, ok := svc.ExtractAccessToken(r)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.want, got)

			got, ok = svc.ExtractRefreshToken(r)
			require.Equal(t, tc.wantOK, ok)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestSendTokensWritesRawHeaders(t *testing.T) {
	svc := newTokenService(t, newTestStore(t))

	w := httptest.NewRecorder()
	svc.SendAccessAndRefreshToken(w, "access-raw", "refresh-raw")

	// Responses carry the bare token; the Bearer prefix is only required on
	// the way in.
	require.Equal(t, "access-raw", w.Header().Get(svc.AccessHeader))
	require.Equal(t, "refresh-raw", w.Header().Get(svc.RefreshHeader))

	w = httptest.NewRecorder()
	svc.SendAccessToken(w, "access-only")
	require.Equal(t, "access-only", w.Header().Get(svc.AccessHeader))
	require.Empty(t, w.Header().Get(svc.RefreshHeader))
}

func TestExtractEmailCollapsesFailures(t *testing.T) {
	svc := newTokenService(t, newTestStore(t))

	access, err := svc.CreateAccessToken("alice@example.com")
	require.NoError(t, err)

	email, err := svc.ExtractEmail(access)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", email)

	for _, token := range []string{"", "garbage", access + "tampered"} {
		_, err := svc.ExtractEmail(token)
		require.ErrorIs(t, err, service.ErrInvalidToken, "token %q", token)
	}

	// Expired tokens collapse the same way.
	past := time.Now().Add(-2 * time.Hour)
	expiredCodec := jwtx.NewWithClock([]byte("test-secret-at-least-this-long"), func() time.Time { return past })
	expired, err := expiredCodec.Issue(jwtx.SubjectAccess, "alice@example.com", time.Minute)
	require.NoError(t, err)

	_, err = svc.ExtractEmail(expired)
	require.ErrorIs(t, err, service.ErrInvalidToken)
}

func TestIsTokenValidIsTotal(t *testing.T) {
	svc := newTokenService(t, newTestStore(t))

	access, err := svc.CreateAccessToken("alice@example.com")
	require.NoError(t, err)

	require.True(t, svc.IsTokenValid(access))
	require.False(t, svc.IsTokenValid(""))
	require.False(t, svc.IsTokenValid("garbage"))
	require.False(t, svc.IsTokenValid(access+"tampered"))
}

func TestUserFromRequest(t *testing.T) {
	st := newTestStore(t)
	svc := newTokenService(t, st)
	ctx := context.Background()

	user := registerUser(t, st, "alice@example.com")

	access, err := svc.CreateAccessToken(user.Email)
	require.NoError(t, err)

	t.Run("resolves the authenticated user", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(svc.AccessHeader, "Bearer "+access)

		got, err := svc.UserFromRequest(ctx, r)
		require.NoError(t, err)
		require.Equal(t, user.ID, got.ID)
	})

	t.Run("missing header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := svc.UserFromRequest(ctx, r)
		require.ErrorIs(t, err, service.ErrInvalidAccessToken)
	})

	t.Run("unverifiable token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(svc.AccessHeader, "Bearer garbage")

		_, err := svc.UserFromRequest(ctx, r)
		require.ErrorIs(t, err, service.ErrInvalidAccessToken)
	})

	t.Run("identity deleted after issuance", func(t *testing.T) {
		require.NoError(t, st.Users().Delete(ctx, user.ID))

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set(svc.AccessHeader, "Bearer "+access)

		_, err := svc.UserFromRequest(ctx, r)
		require.ErrorIs(t, err, service.ErrUserNotFound)
	})
}
