package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithRole(t *testing.T, role string) *http.Request {
	t.Helper()

	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(map[string]interface{}{"role": role})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return req.WithContext(jwtauth.NewContext(req.Context(), token, nil))
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	cases := []struct {
		role       string
		wantStatus int
	}{
		{"admin", http.StatusNoContent},
		{"director", http.StatusForbidden},
		{"manager", http.StatusForbidden},
		{"staff", http.StatusForbidden},
	}

	for _, c := range cases {
		t.Run(c.role, func(t *testing.T) {
			rec := httptest.NewRecorder()
			AdminOnly(next).ServeHTTP(rec, requestWithRole(t, c.role))
			assert.Equal(t, c.wantStatus, rec.Code)
		})
	}

	t.Run("no token in context", func(t *testing.T) {
		rec := httptest.NewRecorder()
		AdminOnly(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestRequireManager(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	cases := []struct {
		role       string
		wantStatus int
	}{
		{"admin", http.StatusNoContent},
		{"director", http.StatusNoContent},
		{"manager", http.StatusNoContent},
		{"staff", http.StatusForbidden},
	}

	for _, c := range cases {
		t.Run(c.role, func(t *testing.T) {
			rec := httptest.NewRecorder()
			RequireManager(next).ServeHTTP(rec, requestWithRole(t, c.role))
			assert.Equal(t, c.wantStatus, rec.Code)
		})
	}
}
