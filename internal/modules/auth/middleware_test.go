package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwaledev/lastbite-backend/internal/modules/auth"
	"github.com/mwaledev/lastbite-backend/internal/modules/user"
)

func loginToken(t *testing.T, repo user.Repository, email, password string) string {
	t.Helper()
	token, err := auth.NewService(repo, testSecret, time.Hour).Login(context.Background(), email, password)
	require.NoError(t, err)
	return token
}

func TestAuthenticate(t *testing.T) {
	u := testUser(t, "c@example.com", "secret", true)
	repo := &mockUserRepository{users: map[string]*user.User{u.Email: u}}
	mw := auth.NewMiddleware(repo, testSecret)

	var gotUser *user.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser, _ = user.FromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := mw.Authenticate(next)

	t.Run("valid_token_injects_user", func(t *testing.T) {
		gotUser = nil
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+loginToken(t, repo, u.Email, "secret"))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, gotUser)
		assert.Equal(t, u.ID, gotUser.ID)
	})

	t.Run("missing_header_rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage_token_rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("deactivated_user_rejected", func(t *testing.T) {
		// Token issued while active, account deactivated afterwards.
		token := loginToken(t, repo, u.Email, "secret")
		u.IsActive = false
		defer func() { u.IsActive = true }()

		req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	customer := testUser(t, "c@example.com", "secret", true)
	repo := &mockUserRepository{users: map[string]*user.User{customer.Email: customer}}
	mw := auth.NewMiddleware(repo, testSecret)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := mw.Authenticate(mw.RequireRole(user.RoleBusinessOwner)(next))

	req := httptest.NewRequest(http.MethodPost, "/surprise-bags", nil)
	req.Header.Set("Authorization", "Bearer "+loginToken(t, repo, customer.Email, "secret"))
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Matching role passes through.
	handler = mw.Authenticate(mw.RequireRole(user.RoleCustomer)(next))
	req = httptest.NewRequest(http.MethodPost, "/orders", nil)
	req.Header.Set("Authorization", "Bearer "+loginToken(t, repo, customer.Email, "secret"))
	rec = httptest.NewRecorder()

	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
