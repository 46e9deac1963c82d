package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/shopadmin/backend/internal/application/identity"
	"github.com/shopadmin/backend/internal/interfaces/http/dto"
	"github.com/shopadmin/backend/internal/interfaces/http/middleware"
)

// AuthHandler serves login, logout and the current-user lookup. loginLimit
// optionally throttles the unauthenticated login route; nil disables it.
type AuthHandler struct {
	BaseHandler
	authService *identity.AuthService
	requireAuth gin.HandlerFunc
	loginLimit  gin.HandlerFunc
}

func NewAuthHandler(authService *identity.AuthService, requireAuth, loginLimit gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{authService: authService, requireAuth: requireAuth, loginLimit: loginLimit}
}

func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	group := rg.Group("/admin/auth")
	if h.loginLimit != nil {
		group.POST("/login", h.loginLimit, h.Login)
	} else {
		group.POST("/login", h.Login)
	}
	group.POST("/logout", h.requireAuth, h.Logout)
	group.GET("/me", h.requireAuth, h.Me)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req identity.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.HandleBindingError(c, err)
		return
	}

	resp, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Login successful", resp)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
		return
	}

	if err := h.authService.Logout(c.Request.Context(), claims); err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Logged out", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized,
			dto.NewErrorResponse(dto.ErrCodeUnauthorized, "Authentication required"))
		return
	}

	user, err := h.authService.GetCurrentUser(c.Request.Context(), claims)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, "Current user", user)
}
