package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerify_RoundTrip(t *testing.T) {
	auth := NewJWTAuth("test-secret", time.Hour)

	token, err := auth.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := auth.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", subject)
}

func TestVerify_WrongSecret(t *testing.T) {
	issuer := NewJWTAuth("secret-a", time.Hour)
	verifier := NewJWTAuth("secret-b", time.Hour)

	token, err := issuer.Issue("user-123")
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Expired(t *testing.T) {
	auth := NewJWTAuth("test-secret", -time.Minute)

	token, err := auth.Issue("user-123")
	require.NoError(t, err)

	_, err = auth.Verify(token)
	assert.Error(t, err)
}

func TestVerify_Garbage(t *testing.T) {
	auth := NewJWTAuth("test-secret", time.Hour)

	_, err := auth.Verify("not-a-token")
	assert.Error(t, err)
}

func TestRequireAuth_ValidToken(t *testing.T) {
	auth := NewJWTAuth("test-secret", time.Hour)

	token, err := auth.Issue("user-123")
	require.NoError(t, err)

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	auth.RequireAuth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "user-123", gotUserID)
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	auth := NewJWTAuth("test-secret", time.Hour)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	rr := httptest.NewRecorder()

	auth.RequireAuth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
}

func TestRequireAuth_MalformedHeader(t *testing.T) {
	auth := NewJWTAuth("test-secret", time.Hour)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Token abc")
	rr := httptest.NewRecorder()

	auth.RequireAuth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestOptionalAuth_PassesThroughWithoutToken(t *testing.T) {
	auth := NewJWTAuth("test-secret", time.Hour)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok := GetUserID(r.Context())
		assert.False(t, ok)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/catches", nil)
	rr := httptest.NewRecorder()

	auth.OptionalAuth(next).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestOptionalAuth_AttachesSubjectWhenTokenValid(t *testing.T) {
	auth := NewJWTAuth("test-secret", time.Hour)

	token, err := auth.Issue("user-456")
	require.NoError(t, err)

	var gotUserID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = GetUserID(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/catches", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()

	auth.OptionalAuth(next).ServeHTTP(rr, req)

	assert.Equal(t, "user-456", gotUserID)
}
