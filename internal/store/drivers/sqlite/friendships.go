package sqlite

import (
	"context"
	"time"

	"github.com/pp8817/Sucat-Server/internal/domain"
)

type friendshipsRepo struct {
	q querier
}

const friendshipColumns = `id, from_user_id, to_user_id, status, created_at, updated_at`

func scanFriendship(row interface{ Scan(...any) error }) (domain.Friendship, error) {
	var f domain.Friendship
	err := row.Scan(&f.ID, &f.FromUserID, &f.ToUserID, &f.Status, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return domain.Friendship{}, mapNotFound(err)
	}
	return f, nil
}

func (r *friendshipsRepo) Create(ctx context.Context, f domain.Friendship) error {
	now := time.Now().UTC()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	if f.UpdatedAt.IsZero() {
		f.UpdatedAt = now
	}

	_, err := r.q.ExecContext(ctx, `
		INSERT INTO friendships (id, from_user_id, to_user_id, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		f.ID, f.FromUserID, f.ToUserID, f.Status, f.CreatedAt, f.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *friendshipsRepo) FindByID(ctx context.Context, id string) (domain.Friendship, error) {
	return scanFriendship(r.q.QueryRowContext(ctx,
		`SELECT `+friendshipColumns+` FROM friendships WHERE id = ?`, id))
}

// FindBetween looks up a friendship in either direction between two users.
func (r *friendshipsRepo) FindBetween(ctx context.Context, fromUserID, toUserID string) (domain.Friendship, error) {
	return scanFriendship(r.q.QueryRowContext(ctx, `
		SELECT `+friendshipColumns+` FROM friendships
		WHERE (from_user_id = ? AND to_user_id = ?)
		   OR (from_user_id = ? AND to_user_id = ?)`,
		fromUserID, toUserID, toUserID, fromUserID))
}

func (r *friendshipsRepo) ListForUser(ctx context.Context, userID string, status domain.FriendshipStatus) ([]domain.Friendship, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT `+friendshipColumns+` FROM friendships
		WHERE (from_user_id = ? OR to_user_id = ?) AND status = ?
		ORDER BY created_at`,
		userID, userID, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Friendship
	for rows.Next() {
		f, err := scanFriendship(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

func (r *friendshipsRepo) UpdateStatus(ctx context.Context, id string, status domain.FriendshipStatus) error {
	res, err := r.q.ExecContext(ctx, `
		UPDATE friendships SET status = ?, updated_at = ? WHERE id = ?`,
		status, time.Now().UTC(), id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *friendshipsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM friendships WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
