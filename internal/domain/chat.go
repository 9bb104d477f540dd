package domain

import "time"

// ChatRoom is a conversation between two users.
type ChatRoom struct {
	ID        string
	Title     string
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ChatMessage is a single message posted to a room.
type ChatMessage struct {
	ID        string
	RoomID    string
	SenderID  string
	Body      string
	CreatedAt time.Time
}
