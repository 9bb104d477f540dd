// Package http wires the handlers, middleware chains, and rate limits into
// the service's public surface.
package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/pp8817/Sucat-Server/internal/service"
	"github.com/pp8817/Sucat-Server/internal/store"
	"github.com/pp8817/Sucat-Server/pkg/httpx"
	"github.com/pp8817/Sucat-Server/pkg/slogx"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store store.Store

	TokenService      *service.TokenService
	AuthService       *service.AuthService
	UserService       *service.UserService
	FriendshipService *service.FriendshipService
	ChatService       *service.ChatService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

// ServeHTTP applies the global middleware chain around the mux.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerFriends()
	r.registerChat()
	r.registerSystem()
}

func (r *Router) registerAuth() {
	h := &AuthHandler{
		Users:  r.UserService,
		Auth:   r.AuthService,
		Tokens: r.TokenService,
	}

	// Credential endpoints take the strict per-IP limit.
	r.Mux.Handle("POST /v1/auth/signup",
		httpx.Chain(http.HandlerFunc(h.HandleSignup),
			httpx.RateLimitByIP(httpx.StrictLimit),
		))
	r.Mux.Handle("POST /v1/auth/login",
		httpx.Chain(http.HandlerFunc(h.HandleLogin),
			httpx.RateLimitByIP(httpx.StrictLimit),
		))
	r.Mux.Handle("POST /v1/auth/reissue",
		httpx.Chain(http.HandlerFunc(h.HandleReissue),
			httpx.RateLimitByIP(httpx.StrictLimit),
		))
	r.Mux.Handle("POST /v1/auth/logout",
		httpx.Chain(http.HandlerFunc(h.HandleLogout),
			RequireAuth(r.TokenService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{Users: r.UserService}

	r.Mux.Handle("GET /v1/users/me",
		httpx.Chain(http.HandlerFunc(h.HandleMe),
			RequireAuth(r.TokenService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		))
	r.Mux.Handle("PATCH /v1/users/me",
		httpx.Chain(http.HandlerFunc(h.HandleUpdateMe),
			RequireAuth(r.TokenService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		))
}

func (r *Router) registerFriends() {
	h := &FriendsHandler{Friends: r.FriendshipService}

	r.Mux.Handle("POST /v1/friends",
		httpx.Chain(http.HandlerFunc(h.HandleRequest),
			RequireAuth(r.TokenService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		))
	r.Mux.Handle("GET /v1/friends",
		httpx.Chain(http.HandlerFunc(h.HandleList),
			RequireAuth(r.TokenService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		))
	r.Mux.Handle("POST /v1/friends/{id}/accept",
		httpx.Chain(http.HandlerFunc(h.HandleAccept),
			RequireAuth(r.TokenService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		))
	r.Mux.Handle("DELETE /v1/friends/{id}",
		httpx.Chain(http.HandlerFunc(h.HandleRemove),
			RequireAuth(r.TokenService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		))
}

func (r *Router) registerChat() {
	h := &ChatHandler{Chat: r.ChatService}

	r.Mux.Handle("POST /v1/chatrooms",
		httpx.Chain(http.HandlerFunc(h.HandleCreateRoom),
			RequireAuth(r.TokenService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		))
	r.Mux.Handle("GET /v1/chatrooms",
		httpx.Chain(http.HandlerFunc(h.HandleListRooms),
			RequireAuth(r.TokenService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		))
	r.Mux.Handle("POST /v1/chatrooms/{id}/messages",
		httpx.Chain(http.HandlerFunc(h.HandlePostMessage),
			RequireAuth(r.TokenService),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		))
	r.Mux.Handle("GET /v1/chatrooms/{id}/messages",
		httpx.Chain(http.HandlerFunc(h.HandleListMessages),
			RequireAuth(r.TokenService),
			httpx.RateLimitByUser(httpx.LenientLimit),
		))
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /livez", LivezHandler(r.startTime, r.buildVersion))
	r.Mux.Handle("GET /readyz", ReadyzHandler(r.startTime, r.buildVersion, r.store))
}
