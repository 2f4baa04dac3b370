package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type contextKey string

const UserIDKey contextKey = "userID"

// JWTAuth mints and verifies the HS256 bearer tokens that carry a user
// identifier. Rotating the secret invalidates every outstanding token.
type JWTAuth struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTAuth(secret string, ttl time.Duration) *JWTAuth {
	return &JWTAuth{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Issue signs a token whose subject is the user id, expiring ttl from now.
func (a *JWTAuth) Issue(userID string) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(a.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(a.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify returns the token subject. It rejects bad signatures, wrong
// signing methods, malformed payloads, missing subjects and expired
// tokens. It does not check that the user still exists; callers do that
// lookup before granting access.
func (a *JWTAuth) Verify(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return a.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("invalid token")
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

// RequireAuth rejects requests without a valid bearer token and stores
// the token subject in the request context.
func (a *JWTAuth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondUnauthorized(w, "Authorization header required")
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		if token == authHeader {
			respondUnauthorized(w, "Invalid authorization format. Use 'Bearer <token>'")
			return
		}

		userID, err := a.Verify(token)
		if err != nil {
			respondUnauthorized(w, "Could not validate credentials")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalAuth attaches the subject when a valid token is present and
// passes the request through either way.
func (a *JWTAuth) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader != "" {
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if userID, err := a.Verify(token); err == nil {
				ctx := context.WithValue(r.Context(), UserIDKey, userID)
				r = r.WithContext(ctx)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// GetUserID extracts the authenticated user id from context.
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(fmt.Sprintf(`{"error": "%s"}`, message)))
}
