package httpx

import (
	"context"
	"net/http"
)

type ctxKey string

const (
	CtxKeyMemberID ctxKey = "member_id"
	CtxKeyHandle   ctxKey = "handle"
)

// MemberIDFromRequest returns the authenticated member ID attached by
// AuthnMiddleware, or false when the request is unauthenticated.
func MemberIDFromRequest(r *http.Request) (string, bool) {
	return memberIDFromCtx(r.Context())
}

func memberIDFromCtx(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxKeyMemberID).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
