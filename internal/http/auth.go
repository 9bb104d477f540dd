package http

import (
	"encoding/json"
	"net/http"

	"github.com/pp8817/Sucat-Server/internal/service"
	"github.com/pp8817/Sucat-Server/pkg/httpx"
	"github.com/pp8817/Sucat-Server/pkg/slogx"
)

// AuthHandler serves signup, login, reissue, and logout.
type AuthHandler struct {
	Users  *service.UserService
	Auth   *service.AuthService
	Tokens *service.TokenService
}

type signupRequest struct {
	Email      string `json:"email"`
	Password   string `json:"password"`
	Name       string `json:"name"`
	Nickname   string `json:"nickname"`
	Department string `json:"department"`
}

func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	var req signupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrBadRequest.WriteError(w)
		return
	}

	user, err := h.Users.Signup(r.Context(), service.SignupParams{
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		Nickname:   req.Nickname,
		Department: req.Department,
	})
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusCreated, "SIGNUP_OK", "account created", userResponseFrom(user))
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ErrBadRequest.WriteError(w)
		return
	}

	pair, err := h.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	h.Tokens.SendAccessAndRefreshToken(w, pair.Access, pair.Refresh)
	httpx.WriteSuccess(w, http.StatusOK, "LOGIN_OK", "login succeeded", nil)
}

// HandleReissue exchanges a refresh token for a new access token. The
// refresh header only carries a rotated token when the old one was past half
// its lifetime.
func (h *AuthHandler) HandleReissue(w http.ResponseWriter, r *http.Request) {
	refresh, ok := h.Tokens.ExtractRefreshToken(r)
	if !ok {
		ErrInvalidRefreshToken.WriteError(w)
		return
	}

	pair, err := h.Auth.Reissue(r.Context(), refresh)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	httpx.NoCache(w)
	if pair.Refresh != "" {
		h.Tokens.SendAccessAndRefreshToken(w, pair.Access, pair.Refresh)
	} else {
		h.Tokens.SendAccessToken(w, pair.Access)
	}
	httpx.WriteSuccess(w, http.StatusOK, "REISSUE_OK", "token reissued", nil)
}

// HandleLogout runs behind RequireAuth; the identity comes from the request
// context.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	email := httpx.UserEmailFromCtx(r.Context())
	if email == "" {
		ErrInvalidAccessToken.WriteError(w)
		return
	}

	if err := h.Auth.Logout(r.Context(), email); err != nil {
		slogx.FromContext(r.Context()).Warn("logout failed", "err", err)
		writeServiceError(w, err)
		return
	}

	httpx.WriteSuccess(w, http.StatusOK, "LOGOUT_OK", "logged out", nil)
}
