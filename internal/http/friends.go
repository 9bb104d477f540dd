package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/pp8817/Sucat-Server/internal/domain"
	"github.com/pp8817/Sucat-Server/internal/service"
	"github.com/pp8817/Sucat-Server/pkg/httpx"
)

// FriendsHandler serves friend requests and the friend list.
type FriendsHandler struct {
	Friends *service.FriendshipService
}

type friendRequestBody struct {
	Nickname string `json:"nickname"`
}

type friendshipResponse struct {
	ID         string    `json:"id"`
	FromUserID string    `json:"from_user_id"`
	ToUserID   string    `json:"to_user_id"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

func friendshipResponseFrom(f domain.Friendship) friendshipResponse {
	return friendshipResponse{
		ID:         f.ID,
		FromUserID: f.FromUserID,
		ToUserID:   f.ToUserID,
		Status:     string(f.Status),
		CreatedAt:  f.CreatedAt,
	}
}

func (h *FriendsHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	var req friendRequestBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || strings.TrimSpace(req.Nickname) == "" {
		ErrBadRequest.WriteError(w)
		return
	}

	userID := httpx.UserIDFromCtx(r.Context())
	f, err := h.Friends.Request(r.Context(), userID, strings.TrimSpace(req.Nickname))
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, "FRIEND_REQUEST_SENT", "friend request sent", friendshipResponseFrom(f))
}

// HandleList returns the caller's friendships, filtered by the status query
// parameter (accepted by default).
func (h *FriendsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	status := domain.FriendshipAccepted
	if s := r.URL.Query().Get("status"); s != "" {
		switch strings.ToUpper(s) {
		case string(domain.FriendshipPending):
			status = domain.FriendshipPending
		case string(domain.FriendshipAccepted):
			status = domain.FriendshipAccepted
		default:
			ErrBadRequest.WriteError(w)
			return
		}
	}

	userID := httpx.UserIDFromCtx(r.Context())
	list, err := h.Friends.List(r.Context(), userID, status)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	out := make([]friendshipResponse, 0, len(list))
	for _, f := range list {
		out = append(out, friendshipResponseFrom(f))
	}
	httpx.WriteSuccess(w, http.StatusOK, "FRIENDS_OK", "friendships", out)
}

func (h *FriendsHandler) HandleAccept(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromCtx(r.Context())

	if err := h.Friends.Accept(r.Context(), userID, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "FRIEND_ACCEPTED", "friend request accepted", nil)
}

func (h *FriendsHandler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	userID := httpx.UserIDFromCtx(r.Context())

	if err := h.Friends.Remove(r.Context(), userID, r.PathValue("id")); err != nil {
		writeServiceError(w, err)
		return
	}
	httpx.WriteSuccess(w, http.StatusOK, "FRIEND_REMOVED", "friendship removed", nil)
}
