package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/pp8817/Sucat-Server/internal/domain"
	"github.com/pp8817/Sucat-Server/internal/service"
	"github.com/pp8817/Sucat-Server/pkg/httpx"
)

// ChatHandler serves rooms and messages.
type ChatHandler struct {
	Chat *service.ChatService
}

type createRoomRequest struct {
	Title string `json:"title"`
}

type roomResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

func roomResponseFrom(r domain.ChatRoom) roomResponse {
	return roomResponse{ID: r.ID, Title: r.Title, CreatedBy: r.CreatedBy, CreatedAt: r.CreatedAt}
}

func (h *ChatHandler) HandleCreateRoom(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrBadRequest.WriteError(w)
		return
	}

	room, err := h.Chat.CreateRoom(r.Context(), httpx.UserIDFromCtx(r.Context()), req.Title)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, "ROOM_CREATED", "chat room created", roomResponseFrom(room))
}

func (h *ChatHandler) HandleListRooms(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.Chat.ListRooms(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]roomResponse, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, roomResponseFrom(room))
	}
	httpx.WriteSuccess(w, http.StatusOK, "ROOMS_OK", "chat rooms", out)
}

type postMessageRequest struct {
	Body string `json:"body"`
}

type messageResponse struct {
	ID        string    `json:"id"`
	RoomID    string    `json:"room_id"`
	SenderID  string    `json:"sender_id"`
	Body      string    `json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

func messageResponseFrom(m domain.ChatMessage) messageResponse {
	return messageResponse{ID: m.ID, RoomID: m.RoomID, SenderID: m.SenderID, Body: m.Body, CreatedAt: m.CreatedAt}
}

func (h *ChatHandler) HandlePostMessage(w http.ResponseWriter, r *http.Request) {
	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrBadRequest.WriteError(w)
		return
	}

	msg, err := h.Chat.PostMessage(r.Context(), httpx.UserIDFromCtx(r.Context()), r.PathValue("id"), req.Body)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusCreated, "MESSAGE_SENT", "message sent", messageResponseFrom(msg))
}

func (h *ChatHandler) HandleListMessages(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			ErrBadRequest.WriteError(w)
			return
		}
		limit = n
	}

	msgs, err := h.Chat.ListMessages(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]messageResponse, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageResponseFrom(m))
	}
	httpx.WriteSuccess(w, http.StatusOK, "MESSAGES_OK", "messages", out)
}
