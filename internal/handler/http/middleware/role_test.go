package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"

	"github.com/makerhq/timeclock-backend-go/internal/domain/user"
)

func TestRequireAdmin(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := jwtauth.Verifier(ja)(RequireAdmin(next))

	cases := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"hr", http.StatusForbidden},
		{"staff", http.StatusForbidden},
	}
	for _, c := range cases {
		req := authedRequest(t, ja, map[string]interface{}{"user_id": "u1", "role": c.role, "type": "access"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, c.want, rec.Code, "role %q", c.role)
	}
}

func TestRequirePermission(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := jwtauth.Verifier(ja)(RequirePermission(user.PermissionPunchAdjust)(next))

	cases := []struct {
		role string
		want int
	}{
		{"admin", http.StatusOK},
		{"hr", http.StatusOK},
		{"staff", http.StatusForbidden},
	}
	for _, c := range cases {
		req := authedRequest(t, ja, map[string]interface{}{"user_id": "u1", "role": c.role, "type": "access"})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		assert.Equal(t, c.want, rec.Code, "role %q", c.role)
	}
}
