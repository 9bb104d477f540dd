package http

import (
	"encoding/json"
	"net/http"

	"github.com/pp8817/Sucat-Server/internal/domain"
	"github.com/pp8817/Sucat-Server/internal/service"
	"github.com/pp8817/Sucat-Server/pkg/httpx"
)

// UsersHandler serves the authenticated user's profile.
type UsersHandler struct {
	Users *service.UserService
}

type userResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Nickname   string `json:"nickname"`
	Department string `json:"department"`
	Role       string `json:"role"`
}

func userResponseFrom(u domain.User) userResponse {
	return userResponse{
		ID:         u.ID,
		Email:      u.Email,
		Name:       u.Name,
		Nickname:   u.Nickname,
		Department: u.Department,
		Role:       string(u.Role),
	}
}

func (h *UsersHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	email := httpx.UserEmailFromCtx(r.Context())

	user, err := h.Users.Profile(r.Context(), email)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	httpx.WriteSuccess(w, http.StatusOK, "PROFILE_OK", "profile", userResponseFrom(user))
}

type updateProfileRequest struct {
	Nickname   string `json:"nickname"`
	Department string `json:"department"`
}

func (h *UsersHandler) HandleUpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrBadRequest.WriteError(w)
		return
	}

	email := httpx.UserEmailFromCtx(r.Context())
	user, err := h.Users.UpdateProfile(r.Context(), email, req.Nickname, req.Department)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "PROFILE_UPDATED", "profile updated", userResponseFrom(user))
}
