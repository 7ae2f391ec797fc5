package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/makerhq/timeclock-backend-go/internal/domain/auth"
	"github.com/makerhq/timeclock-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose token is missing, invalid or not
// an access token. It must run after jwtauth.Verifier.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			// Refresh tokens are valid JWTs too; only access tokens may
			// reach protected routes.
			tokenType, ok := claims["type"].(string)
			if !ok || tokenType != "access" {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
