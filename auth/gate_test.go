package auth

import (
	"testing"

	"github.com/rajraunak/portfolio-site-backend/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func testGate(t *testing.T, password string) *Gate {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	gate, err := NewGate(map[string]string{
		"ADMIN_EMAIL":         "admin@example.com",
		"ADMIN_PASSWORD_HASH": string(hash),
		"JWT_SECRET":          "test-secret",
	})
	require.NoError(t, err)
	return gate
}

func TestNewGateRequiresAllThreeValues(t *testing.T) {
	cases := []map[string]string{
		{"ADMIN_PASSWORD_HASH": "h", "JWT_SECRET": "s"},
		{"ADMIN_EMAIL": "e", "JWT_SECRET": "s"},
		{"ADMIN_EMAIL": "e", "ADMIN_PASSWORD_HASH": "h"},
	}
	for _, cfg := range cases {
		_, err := NewGate(cfg)
		assert.Error(t, err)
	}
}

func TestSignInAndVerifyRoundTrip(t *testing.T) {
	gate := testGate(t, "correct horse battery staple")

	token, err := gate.SignIn("admin@example.com", "correct horse battery staple")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	email, err := gate.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", email)
}

func TestSignInNormalizesEmailCase(t *testing.T) {
	gate := testGate(t, "pw12345678")

	_, err := gate.SignIn("  ADMIN@Example.COM ", "pw12345678")
	assert.NoError(t, err)
}

func TestSignInWrongCredentialsIndistinguishable(t *testing.T) {
	gate := testGate(t, "pw12345678")

	_, badEmailErr := gate.SignIn("intruder@example.com", "pw12345678")
	_, badPasswordErr := gate.SignIn("admin@example.com", "wrong")

	require.Error(t, badEmailErr)
	require.Error(t, badPasswordErr)
	assert.Equal(t, badEmailErr.Error(), badPasswordErr.Error())
	assert.True(t, errs.IsUnauthorized(badEmailErr))
}

func TestVerifyRejectsGarbageToken(t *testing.T) {
	gate := testGate(t, "pw12345678")

	_, err := gate.Verify("not.a.token")
	require.Error(t, err)
	assert.True(t, errs.IsUnauthorized(err))
}

func TestVerifyRejectsTokenFromOtherSecret(t *testing.T) {
	gate := testGate(t, "pw12345678")

	hash, err := bcrypt.GenerateFromPassword([]byte("pw12345678"), bcrypt.MinCost)
	require.NoError(t, err)
	other, err := NewGate(map[string]string{
		"ADMIN_EMAIL":         "admin@example.com",
		"ADMIN_PASSWORD_HASH": string(hash),
		"JWT_SECRET":          "different-secret",
	})
	require.NoError(t, err)

	token, err := other.SignIn("admin@example.com", "pw12345678")
	require.NoError(t, err)

	_, err = gate.Verify(token)
	assert.Error(t, err)
}
