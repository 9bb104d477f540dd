package sqlite

import (
	"context"
	"time"

	"github.com/pp8817/Sucat-Server/internal/domain"
)

type refreshTokensRepo struct {
	q querier
}

const refreshTokenColumns = `email, token, expires_at, created_at, updated_at`

func scanRefreshToken(row interface{ Scan(...any) error }) (domain.RefreshToken, error) {
	var t domain.RefreshToken
	err := row.Scan(&t.Email, &t.Token, &t.ExpiresAt, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return domain.RefreshToken{}, mapNotFound(err)
	}
	return t, nil
}

// Upsert stores t, replacing any previous token held by the same email.
// Last writer wins; concurrent logins for one identity simply leave the most
// recent token valid.
func (r *refreshTokensRepo) Upsert(ctx context.Context, t domain.RefreshToken) error {
	now := time.Now().UTC()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	_, err := r.q.ExecContext(ctx, `
		INSERT INTO refresh_tokens (email, token, expires_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (email) DO UPDATE SET
			token = excluded.token,
			expires_at = excluded.expires_at,
			updated_at = excluded.updated_at`,
		t.Email, t.Token, t.ExpiresAt, t.CreatedAt, t.UpdatedAt,
	)
	return err
}

func (r *refreshTokensRepo) FindByEmail(ctx context.Context, email string) (domain.RefreshToken, error) {
	return scanRefreshToken(r.q.QueryRowContext(ctx,
		`SELECT `+refreshTokenColumns+` FROM refresh_tokens WHERE email = ?`, email))
}

func (r *refreshTokensRepo) FindByToken(ctx context.Context, token string) (domain.RefreshToken, error) {
	return scanRefreshToken(r.q.QueryRowContext(ctx,
		`SELECT `+refreshTokenColumns+` FROM refresh_tokens WHERE token = ?`, token))
}

// DeleteByEmail removes the stored token for email. Deleting an absent row
// is not an error, so logout is idempotent.
func (r *refreshTokensRepo) DeleteByEmail(ctx context.Context, email string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM refresh_tokens WHERE email = ?`, email)
	return err
}

func (r *refreshTokensRepo) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.q.ExecContext(ctx,
		`DELETE FROM refresh_tokens WHERE expires_at < ?`, now.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
