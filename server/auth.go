package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// authenticator issues and verifies the API's bearer tokens. With no
// JWT secret configured the API is open and login is disabled.
type authenticator struct {
	secret       []byte
	user         string
	passwordHash string // bcrypt
	ttl          time.Duration
}

func newAuthenticator(secret, user, passwordHash string, ttl time.Duration) *authenticator {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	a := &authenticator{
		user:         user,
		passwordHash: passwordHash,
		ttl:          ttl,
	}
	if secret != "" {
		a.secret = []byte(secret)
	}
	return a
}

func (a *authenticator) enabled() bool { return len(a.secret) > 0 }

func (a *authenticator) checkPassword(user, password string) bool {
	if user != a.user || a.passwordHash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(a.passwordHash), []byte(password)) == nil
}

func (a *authenticator) issueToken(subject string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(a.ttl)),
	})
	return token.SignedString(a.secret)
}

func (a *authenticator) verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", fmt.Errorf("invalid token")
	}
	return claims.Subject, nil
}

// requireAuth gates a handler behind a bearer token when auth is enabled.
func (a *authenticator) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !a.enabled() {
			next(w, r)
			return
		}
		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			writeError(w, http.StatusUnauthorized, "missing bearer token")
			return
		}
		if _, err := a.verify(tokenString); err != nil {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		next(w, r)
	}
}
