package http

import (
	"net/http"
	"strings"

	"fixerhub-backend/internal/security"
)

// AuthMiddleware validates the Bearer token on every request
func AuthMiddleware(tokens security.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				writeJSON(w, http.StatusUnauthorized, response{Success: false, Message: "missing or malformed authorization header"})
				return
			}

			if _, err := tokens.ValidateToken(strings.TrimPrefix(header, "Bearer ")); err != nil {
				writeJSON(w, http.StatusUnauthorized, response{Success: false, Message: "invalid or expired token"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
