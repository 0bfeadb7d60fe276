package identity_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benchlane/benchlane/internal/identity"
)

func TestMiddleware_RoundTrip(t *testing.T) {
	secret := []byte("test-secret")
	acting := identity.ActingCompany{UserID: uuid.New(), CompanyID: uuid.New()}

	token, err := identity.SignToken(acting, secret, time.Minute)
	require.NoError(t, err)

	var got identity.ActingCompany

	var ok bool

	handler := identity.Middleware(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok = identity.FromContext(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, acting, got)
}

func TestMiddleware_Rejects(t *testing.T) {
	secret := []byte("test-secret")

	tests := []struct {
		name   string
		header string
	}{
		{name: "NoHeader", header: ""},
		{name: "NotBearer", header: "Basic abc"},
		{name: "Garbage", header: "Bearer not-a-token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			handler := identity.Middleware(secret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called)
		})
	}
}

func TestMiddleware_WrongSecret(t *testing.T) {
	acting := identity.ActingCompany{UserID: uuid.New(), CompanyID: uuid.New()}

	token, err := identity.SignToken(acting, []byte("one"), time.Minute)
	require.NoError(t, err)

	handler := identity.Middleware([]byte("two"))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
