package sqlite

import (
	"context"
	"time"

	"github.com/pp8817/Sucat-Server/internal/domain"
)

type chatRoomsRepo struct {
	q querier
}

func (r *chatRoomsRepo) Create(ctx context.Context, room domain.ChatRoom) error {
	now := time.Now().UTC()
	if room.CreatedAt.IsZero() {
		room.CreatedAt = now
	}
	if room.UpdatedAt.IsZero() {
		room.UpdatedAt = now
	}

	_, err := r.q.ExecContext(ctx, `
		INSERT INTO chat_rooms (id, title, created_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		room.ID, room.Title, room.CreatedBy, room.CreatedAt, room.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *chatRoomsRepo) FindByID(ctx context.Context, id string) (domain.ChatRoom, error) {
	var room domain.ChatRoom
	err := r.q.QueryRowContext(ctx, `
		SELECT id, title, created_by, created_at, updated_at
		FROM chat_rooms WHERE id = ?`, id).
		Scan(&room.ID, &room.Title, &room.CreatedBy, &room.CreatedAt, &room.UpdatedAt)
	if err != nil {
		return domain.ChatRoom{}, mapNotFound(err)
	}
	return room, nil
}

func (r *chatRoomsRepo) List(ctx context.Context) ([]domain.ChatRoom, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, title, created_by, created_at, updated_at
		FROM chat_rooms ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ChatRoom
	for rows.Next() {
		var room domain.ChatRoom
		if err := rows.Scan(&room.ID, &room.Title, &room.CreatedBy, &room.CreatedAt, &room.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, room)
	}
	return out, rows.Err()
}

func (r *chatRoomsRepo) Delete(ctx context.Context, id string) error {
	res, err := r.q.ExecContext(ctx, `DELETE FROM chat_rooms WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

type chatMessagesRepo struct {
	q querier
}

func (r *chatMessagesRepo) Create(ctx context.Context, m domain.ChatMessage) error {
	if m.CreatedAt.IsZero() {
		m.CreatedAt = time.Now().UTC()
	}

	_, err := r.q.ExecContext(ctx, `
		INSERT INTO chat_messages (id, room_id, sender_id, body, created_at)
		VALUES (?, ?, ?, ?, ?)`,
		m.ID, m.RoomID, m.SenderID, m.Body, m.CreatedAt,
	)
	return mapConstraint(err)
}

// ListByRoom returns the most recent messages for a room in chronological
// order, capped at limit.
func (r *chatMessagesRepo) ListByRoom(ctx context.Context, roomID string, limit int) ([]domain.ChatMessage, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT id, room_id, sender_id, body, created_at FROM (
			SELECT id, room_id, sender_id, body, created_at
			FROM chat_messages WHERE room_id = ?
			ORDER BY created_at DESC LIMIT ?
		) ORDER BY created_at`,
		roomID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.ChatMessage
	for rows.Next() {
		var m domain.ChatMessage
		if err := rows.Scan(&m.ID, &m.RoomID, &m.SenderID, &m.Body, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
