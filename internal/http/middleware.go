package http

import (
	"context"
	"net/http"

	"github.com/pp8817/Sucat-Server/internal/service"
	"github.com/pp8817/Sucat-Server/pkg/httpx"
)

// RequireAuth resolves the authenticated user from the access token header
// and stores their identity in the request context. Requests without a valid
// access token never reach the wrapped handler.
func RequireAuth(tokens *service.TokenService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := tokens.UserFromRequest(r.Context(), r)
			if err != nil {
				writeServiceError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), httpx.CtxKeyUserEmail, user.Email)
			ctx = context.WithValue(ctx, httpx.CtxKeyUserID, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
