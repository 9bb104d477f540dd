package httpx

import "context"

type ctxKey string

const (
	// CtxKeyUserEmail carries the authenticated user's email.
	CtxKeyUserEmail ctxKey = "user_email"
	// CtxKeyUserID carries the authenticated user's ID.
	CtxKeyUserID ctxKey = "user_id"
)

// UserEmailFromCtx returns the authenticated email, or "" when the request
// was not authenticated.
func UserEmailFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserEmail).(string); ok {
		return v
	}
	return ""
}

// UserIDFromCtx returns the authenticated user ID, or "".
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
