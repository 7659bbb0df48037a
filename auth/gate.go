// Package auth holds the admin sign-in gate. There is exactly one
// credential pair and no role model: a request either carries a valid
// session token or it does not.
package auth

import (
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rajraunak/portfolio-site-backend/config"
	"github.com/rajraunak/portfolio-site-backend/errs"
	"golang.org/x/crypto/bcrypt"
)

const sessionTTL = 24 * time.Hour

// Gate checks the admin credential and mints/verifies session tokens.
type Gate struct {
	adminEmail   string
	passwordHash []byte
	secret       []byte
}

// NewGate reads ADMIN_EMAIL, ADMIN_PASSWORD_HASH (bcrypt) and JWT_SECRET.
// All three must be present: an admin surface with a default credential is
// worse than no admin surface.
func NewGate(cfg map[string]string) (*Gate, error) {
	email := config.GetString(cfg, "ADMIN_EMAIL", "")
	hash := config.GetString(cfg, "ADMIN_PASSWORD_HASH", "")
	secret := config.GetString(cfg, "JWT_SECRET", "")

	switch {
	case email == "":
		return nil, fmt.Errorf("ADMIN_EMAIL environment variable is required")
	case hash == "":
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH environment variable is required")
	case secret == "":
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	return &Gate{
		adminEmail:   email,
		passwordHash: []byte(hash),
		secret:       []byte(secret),
	}, nil
}

// SignIn verifies the email+password pair and returns a signed session
// token. Wrong email and wrong password produce the same error.
func (g *Gate) SignIn(email, password string) (string, error) {
	emailMatches := subtle.ConstantTimeCompare(
		[]byte(strings.ToLower(strings.TrimSpace(email))),
		[]byte(strings.ToLower(g.adminEmail)),
	) == 1

	passwordMatches := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)) == nil

	if !emailMatches || !passwordMatches {
		return "", errs.NewUnauthorizedError("invalid email or password")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   g.adminEmail,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(sessionTTL)),
	})

	signed, err := token.SignedString(g.secret)
	if err != nil {
		return "", errs.NewInternalError("failed to sign session token")
	}
	return signed, nil
}

// Verify checks a bearer token and returns the admin email it was issued
// for.
func (g *Gate) Verify(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil || !token.Valid {
		return "", errs.NewUnauthorizedError("invalid or expired session token")
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", errs.NewUnauthorizedError("invalid session token claims")
	}
	return claims.Subject, nil
}
