package http

import (
	"errors"
	"net/http"

	"github.com/pp8817/Sucat-Server/internal/service"
	"github.com/pp8817/Sucat-Server/pkg/httpx"
)

// Predeclared API errors. Every failure answers with the standard envelope.
var (
	ErrBadRequest          = httpx.NewAPIError(http.StatusBadRequest, "BAD_REQUEST", "request body is invalid")
	ErrInvalidToken        = httpx.NewAPIError(http.StatusUnauthorized, "INVALID_TOKEN", "token is invalid")
	ErrInvalidAccessToken  = httpx.NewAPIError(http.StatusUnauthorized, "INVALID_ACCESS_TOKEN", "access token is missing or invalid")
	ErrInvalidRefreshToken = httpx.NewAPIError(http.StatusUnauthorized, "INVALID_REFRESH_TOKEN", "refresh token is missing or invalid")
	ErrInvalidCredentials  = httpx.NewAPIError(http.StatusUnauthorized, "INVALID_CREDENTIALS", "email or password is incorrect")
	ErrForbidden           = httpx.NewAPIError(http.StatusForbidden, "FORBIDDEN", "not allowed to perform this action")
	ErrUserNotFound        = httpx.NewAPIError(http.StatusNotFound, "USER_NOT_FOUND", "user does not exist")
	ErrFriendshipNotFound  = httpx.NewAPIError(http.StatusNotFound, "FRIENDSHIP_NOT_FOUND", "friendship does not exist")
	ErrRoomNotFound        = httpx.NewAPIError(http.StatusNotFound, "ROOM_NOT_FOUND", "chat room does not exist")
	ErrAlreadyRegistered   = httpx.NewAPIError(http.StatusConflict, "ALREADY_REGISTERED", "email or nickname is already in use")
	ErrFriendshipExists    = httpx.NewAPIError(http.StatusConflict, "FRIENDSHIP_EXISTS", "friendship already exists")
	ErrServerError         = httpx.NewAPIError(http.StatusInternalServerError, "SERVER_ERROR", "internal server error")
)

// writeServiceError maps service sentinels onto API errors. Anything
// unmapped answers 500 without leaking the cause.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidAccessToken):
		ErrInvalidAccessToken.WriteError(w)
	case errors.Is(err, service.ErrInvalidRefreshToken):
		ErrInvalidRefreshToken.WriteError(w)
	case errors.Is(err, service.ErrInvalidToken):
		ErrInvalidToken.WriteError(w)
	case errors.Is(err, service.ErrInvalidCredentials):
		ErrInvalidCredentials.WriteError(w)
	case errors.Is(err, service.ErrUserNotFound):
		ErrUserNotFound.WriteError(w)
	case errors.Is(err, service.ErrAlreadyRegistered):
		ErrAlreadyRegistered.WriteError(w)
	case errors.Is(err, service.ErrInvalidSignup):
		ErrBadRequest.WriteError(w)
	case errors.Is(err, service.ErrFriendshipExists):
		ErrFriendshipExists.WriteError(w)
	case errors.Is(err, service.ErrFriendshipNotFound):
		ErrFriendshipNotFound.WriteError(w)
	case errors.Is(err, service.ErrSelfFriendship):
		httpx.NewAPIError(http.StatusBadRequest, "SELF_FRIENDSHIP", "cannot befriend yourself").WriteError(w)
	case errors.Is(err, service.ErrNotRecipient):
		ErrForbidden.WriteError(w)
	case errors.Is(err, service.ErrRoomNotFound):
		ErrRoomNotFound.WriteError(w)
	case errors.Is(err, service.ErrEmptyTitle), errors.Is(err, service.ErrEmptyMessage):
		ErrBadRequest.WriteError(w)
	default:
		ErrServerError.WriteError(w)
	}
}
