package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRoutedServer builds a full server without external dependencies:
// no API key, no database URL.
func newRoutedServer(t *testing.T) *Server {
	t.Helper()

	s, err := New(context.Background(), Config{
		Port:          0,
		AllowedSuffix: ".web.app",
		LocalDevHost:  "localhost:5173",
		Version:       "test",
	})
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func TestNew_HealthThroughFullChain(t *testing.T) {
	s := newRoutedServer(t)

	req := httptest.NewRequest("GET", "/api/health", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "healthy", body["status"])
}

func TestNew_RecommendWithoutKeyReportsUnconfigured(t *testing.T) {
	s := newRoutedServer(t)

	req := httptest.NewRequest("POST", "/api/recommend",
		strings.NewReader(`{"uid":"u1","profile":{"name":"Asha","education":"UG","skills":["python"],"weeklyTime":8,"budget":"free","language":"en"}}`))
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "AI service not configured", body["error"])
}

func TestNew_RateLimitHeadersOnLimitedEndpoints(t *testing.T) {
	s := newRoutedServer(t)

	req := httptest.NewRequest("POST", "/api/recommend", strings.NewReader("{}"))
	req.RemoteAddr = "10.0.0.2:1234"
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Limit"))
	assert.NotEmpty(t, rec.Header().Get("X-RateLimit-Remaining"))
}

func TestNew_MethodNotAllowed(t *testing.T) {
	s := newRoutedServer(t)

	req := httptest.NewRequest("DELETE", "/api/recommend", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNew_DisallowedOriginRejectedBeforeRouting(t *testing.T) {
	s := newRoutedServer(t)

	req := httptest.NewRequest("GET", "/api/health", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("Origin", "https://evil.example.com")
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func newAuthedServer(t *testing.T, secret string) *Server {
	t.Helper()

	s, err := New(context.Background(), Config{
		Port:          0,
		AuthJWTSecret: secret,
		Version:       "test",
	})
	require.NoError(t, err)
	t.Cleanup(s.rateLimiter.Stop)
	return s
}

func signHistoryToken(t *testing.T, secret, subject string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestNew_LatestRequiresTokenWhenAuthConfigured(t *testing.T) {
	s := newAuthedServer(t, "shared-secret")

	req := httptest.NewRequest("GET", "/api/recommendations/latest?uid=u1", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestNew_LatestServesTokenSubjectNotQueryParam(t *testing.T) {
	s := newAuthedServer(t, "shared-secret")
	token := signHistoryToken(t, "shared-secret", "user-a")

	// Naming someone else's uid is rejected outright.
	req := httptest.NewRequest("GET", "/api/recommendations/latest?uid=user-b", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Without a uid parameter the subject is used; no store is
	// configured, so the lookup lands on the not-found path rather than
	// the missing-uid one.
	req = httptest.NewRequest("GET", "/api/recommendations/latest", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	// A uid matching the subject also passes.
	req = httptest.NewRequest("GET", "/api/recommendations/latest?uid=user-a", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
