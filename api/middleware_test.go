package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rajraunak/portfolio-site-backend/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testGate(t *testing.T) *auth.Gate {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("pw12345678"), bcrypt.MinCost)
	require.NoError(t, err)

	gate, err := auth.NewGate(map[string]string{
		"ADMIN_EMAIL":         "admin@example.com",
		"ADMIN_PASSWORD_HASH": string(hash),
		"JWT_SECRET":          "test-secret",
	})
	require.NoError(t, err)
	return gate
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	mw := newAuthMiddleware(testGate(t))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	})

	rec := httptest.NewRecorder()
	mw.authenticate(next).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/blog-post", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticateRejectsBadToken(t *testing.T) {
	mw := newAuthMiddleware(testGate(t))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with a bad token")
	})

	req := httptest.NewRequest(http.MethodPost, "/blog-post", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	mw.authenticate(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticatePassesValidToken(t *testing.T) {
	gate := testGate(t)
	mw := newAuthMiddleware(gate)

	token, err := gate.SignIn("admin@example.com", "pw12345678")
	require.NoError(t, err)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		email, err := ctxGetAdminEmail(r.Context())
		require.NoError(t, err)
		assert.Equal(t, "admin@example.com", email)
	})

	req := httptest.NewRequest(http.MethodPost, "/blog-post", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	mw.authenticate(next).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSCheckRejectsDisallowedPreflight(t *testing.T) {
	handler := CORSCheckMiddleware([]string{"https://rajraunak.dev"})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodOptions, "/blog-posts", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestCORSCheckAllowsListedOrigin(t *testing.T) {
	handler := CORSCheckMiddleware([]string{"https://rajraunak.dev"})(
		http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/blog-posts", nil)
	req.Header.Set("Origin", "https://rajraunak.dev")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
