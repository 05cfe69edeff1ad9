package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/newcase/agendamento-service/internal/api/handlers"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserIDHeader carries the authenticated caller identity. The gateway in
// front of this service validates the session and sets the header.
const UserIDHeader = "X-User-ID"

const msgMissingUserID = "cabeçalho X-User-ID ausente"

// Auth requires the X-User-ID header and stores its value in the request
// context. Role checks happen in the services, not here.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if userID == "" {
			handlers.RespondUnauthorized(w, msgMissingUserID)
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID returns the caller identity stored by Auth, or "" outside the
// protected subrouter.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}
