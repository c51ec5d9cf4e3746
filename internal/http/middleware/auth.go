// Package middleware carries the request-scoped gates in front of the
// handlers: the session guard, request logging and security headers.
package middleware

import (
	"context"
	"net/http"

	"github.com/rogerio-castellano/notes-api/internal/session"
)

type contextKey string

const userIDKey = contextKey("user_id")

// RequireAuth rejects any request that does not carry a cookie
// resolving to a live session. Missing, malformed, forged and expired
// cookies all produce the same 401 so the response reveals nothing
// about which case occurred. On success the session's user id becomes
// the acting identity for the rest of the request; it is never taken
// from client-supplied data.
func RequireAuth(sessions session.Store, signer *session.Signer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(session.CookieName)
			if err != nil {
				unauthorized(w)
				return
			}

			token, err := signer.Verify(cookie.Value)
			if err != nil {
				unauthorized(w)
				return
			}

			sess, err := sessions.Get(r.Context(), token)
			if err != nil {
				unauthorized(w)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, sess.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserID returns the authenticated user id placed by RequireAuth, or
// 0 when the request never passed the guard.
func GetUserID(r *http.Request) int {
	if val, ok := r.Context().Value(userIDKey).(int); ok {
		return val
	}
	return 0
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"Unauthorized"}`))
}
