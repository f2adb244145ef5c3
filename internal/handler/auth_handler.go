package handler

import (
	"net/http"

	"ai-solutions-go/internal/middleware"
	"ai-solutions-go/internal/model"
	"ai-solutions-go/internal/service"
	"ai-solutions-go/pkg/log"

	"github.com/gin-gonic/gin"
)

// AuthHandler serves admin sign-in, token refresh and sign-out.
type AuthHandler struct {
	auth service.AuthService
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(auth service.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		log.Warnw("admin login rejected", "email", req.Email, "ip", c.ClientIP())
		failErr(c, err)
		return
	}
	success(c, http.StatusOK, "Login successful", pair)
}

// RefreshToken handles POST /api/v1/auth/refreshToken.
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var req model.RefreshRequest
	if !bindJSON(c, &req) {
		return
	}
	pair, err := h.auth.RefreshToken(c.Request.Context(), req.RefreshToken)
	if err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusOK, "Token refreshed successfully", pair)
}

// Logout handles POST /api/v1/auth/logout. It runs behind AuthMiddleware.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.auth.Logout(c.Request.Context(), c.GetString(middleware.TokenKey)); err != nil {
		failErr(c, err)
		return
	}
	success(c, http.StatusOK, "Logged out", nil)
}
