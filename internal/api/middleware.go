package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"gwi.com/neon-marketplace/internal/store"
)

type ctxKey int

const (
	ctxKeyRequestID ctxKey = iota
	ctxKeyUser
)

func RequestIDFromContext(ctx context.Context) string {
	v, _ := ctx.Value(ctxKeyRequestID).(string)
	return v
}

func userFromContext(ctx context.Context) store.User {
	u, _ := ctx.Value(ctxKeyUser).(store.User)
	return u
}

// WithRequestID propagates X-Request-Id, generating one when absent.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := r.Header.Get("X-Request-Id")
		if reqID == "" {
			reqID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", reqID)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxKeyRequestID, reqID)))
	})
}

// RequireSession rejects requests made while nobody is logged in and puts
// the current user into the request context.
func (h *APIHandler) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := h.sessions.Current()
		if user == nil {
			writeError(w, http.StatusUnauthorized, "session_required", "log in or register first")
			return
		}
		ctx := context.WithValue(r.Context(), ctxKeyUser, *user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
