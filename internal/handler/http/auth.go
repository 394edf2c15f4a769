package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise-hr/attendance-backend-go/internal/handler/http/response"
	"github.com/shiftwise-hr/attendance-backend-go/internal/pkg/jwt"
)

type AuthHandler interface {
	Refresh(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	jwtService jwt.Service
}

func NewAuthHandler(jwtService jwt.Service) AuthHandler {
	return &authHandlerImpl{
		jwtService: jwtService,
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

// Refresh implements AuthHandler. The presented refresh token is
// rotated: it is revoked and a fresh access/refresh pair is issued in
// its place.
func (h *authHandlerImpl) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie("refresh_token")
	if err != nil {
		response.Unauthorized(w, "Missing refresh token")
		return
	}

	if h.jwtService.IsTokenRevoked(cookie.Value) {
		response.Unauthorized(w, "Token has been revoked")
		return
	}

	token, err := jwtauth.VerifyToken(h.jwtService.JWTAuth(), cookie.Value)
	if err != nil {
		response.Unauthorized(w, "Invalid refresh token")
		return
	}
	claims, err := token.AsMap(r.Context())
	if err != nil {
		response.Unauthorized(w, "Invalid refresh token")
		return
	}
	if tokenType, ok := claims["type"].(string); !ok || tokenType != "refresh" {
		response.Unauthorized(w, "Invalid refresh token")
		return
	}
	employeeID, _ := claims["employee_id"].(string)
	isAdmin, _ := claims["is_admin"].(bool)

	accessToken, accessExpiresAt, err := h.jwtService.GenerateAccessToken(employeeID, isAdmin)
	if err != nil {
		response.InternalServerError(w, "Failed to issue access token")
		return
	}
	refreshToken, refreshExpiresAt, err := h.jwtService.GenerateRefreshToken(employeeID, isAdmin)
	if err != nil {
		response.InternalServerError(w, "Failed to issue refresh token")
		return
	}

	h.jwtService.RevokeToken(cookie.Value)
	http.SetCookie(w, h.jwtService.RefreshTokenCookie(refreshToken, refreshExpiresAt))

	response.Success(w, tokenResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExpiresAt,
	})
}

// Logout implements AuthHandler. Revokes the caller's access token and,
// when present, the refresh token cookie.
func (h *authHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	if access := jwtauth.TokenFromHeader(r); access != "" {
		h.jwtService.RevokeToken(access)
	}
	if cookie, err := r.Cookie("refresh_token"); err == nil {
		h.jwtService.RevokeToken(cookie.Value)
	}
	http.SetCookie(w, h.jwtService.RefreshTokenCookie("", 0))

	response.SuccessWithMessage(w, "Logged out", nil)
}
