package middleware

import (
	"context"
	"net/http"

	"github.com/ayush/blog-service/internal/auth"
)

// SessionGetter resolves a session id to a user id. 0 means no session.
type SessionGetter interface {
	Get(ctx context.Context, sessionID string) (int64, error)
}

// RequireAuth is middleware that validates the session cookie and
// injects the user_id into the request context.
func RequireAuth(sessions SessionGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(auth.SessionCookie)
			if err != nil {
				http.Error(w, `{"error":"not authenticated","kind":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			userID, err := sessions.Get(r.Context(), cookie.Value)
			if err != nil || userID == 0 {
				http.Error(w, `{"error":"session expired","kind":"unauthorized"}`, http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), "user_id", userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
