package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise-hr/attendance-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService() jwt.Service {
	return jwt.NewJWTService("test-secret", "15m", "720h")
}

func refreshRequest(svc jwt.Service, token string, expiresAt int64) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil)
	r.AddCookie(svc.RefreshTokenCookie(token, expiresAt))
	return r
}

func TestRefreshRotatesTokens(t *testing.T) {
	svc := newTestJWTService()
	handler := NewAuthHandler(svc)

	refresh, expiresAt, err := svc.GenerateRefreshToken("emp-1", true)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.Refresh(w, refreshRequest(svc, refresh, expiresAt))

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.IsTokenRevoked(refresh), "presented refresh token must be revoked")

	var body struct {
		Success bool `json:"success"`
		Data    struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NotEmpty(t, body.Data.AccessToken)

	token, err := jwtauth.VerifyToken(svc.JWTAuth(), body.Data.AccessToken)
	require.NoError(t, err)
	claims, err := token.AsMap(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "emp-1", claims["employee_id"])
	assert.Equal(t, true, claims["is_admin"])
	assert.Equal(t, "access", claims["type"])

	var rotated string
	for _, c := range w.Result().Cookies() {
		if c.Name == "refresh_token" {
			rotated = c.Value
		}
	}
	require.NotEmpty(t, rotated)
	assert.NotEqual(t, refresh, rotated)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc := newTestJWTService()
	handler := NewAuthHandler(svc)

	access, expiresAt, err := svc.GenerateAccessToken("emp-1", false)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	handler.Refresh(w, refreshRequest(svc, access, expiresAt))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshRejectsRevokedToken(t *testing.T) {
	svc := newTestJWTService()
	handler := NewAuthHandler(svc)

	refresh, expiresAt, err := svc.GenerateRefreshToken("emp-1", false)
	require.NoError(t, err)
	svc.RevokeToken(refresh)

	w := httptest.NewRecorder()
	handler.Refresh(w, refreshRequest(svc, refresh, expiresAt))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRefreshMissingCookie(t *testing.T) {
	svc := newTestJWTService()
	handler := NewAuthHandler(svc)

	w := httptest.NewRecorder()
	handler.Refresh(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLogoutRevokesTokens(t *testing.T) {
	svc := newTestJWTService()
	handler := NewAuthHandler(svc)

	access, _, err := svc.GenerateAccessToken("emp-1", false)
	require.NoError(t, err)
	refresh, refreshExpiresAt, err := svc.GenerateRefreshToken("emp-1", false)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	r.Header.Set("Authorization", "Bearer "+access)
	r.AddCookie(svc.RefreshTokenCookie(refresh, refreshExpiresAt))
	w := httptest.NewRecorder()

	handler.Logout(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, svc.IsTokenRevoked(access))
	assert.True(t, svc.IsTokenRevoked(refresh))
}

func TestAuthRequiredRejectsRevokedToken(t *testing.T) {
	svc := newTestJWTService()

	access, _, err := svc.GenerateAccessToken("emp-1", false)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(jwtauth.Verifier(svc.JWTAuth()))
	router.Use(middleware.AuthRequired(svc))
	router.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	ping := func() int {
		r := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.Header.Set("Authorization", "Bearer "+access)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, r)
		return w.Code
	}

	require.Equal(t, http.StatusOK, ping())

	svc.RevokeToken(access)
	assert.Equal(t, http.StatusUnauthorized, ping())
}
