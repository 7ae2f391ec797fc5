package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/makerhq/timeclock-backend-go/internal/handler/http/response"
)

// TerminalAuth authenticates hardware punch terminals with a static API key
// carried in the X-API-Key header (or a Bearer token as a fallback).
func TerminalAuth(apiKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			provided := r.Header.Get("X-API-Key")
			if provided == "" {
				provided = strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
			}

			if apiKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
				response.Unauthorized(w, "Invalid terminal API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
