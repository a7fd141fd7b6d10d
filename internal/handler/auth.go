package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gallery/internal/auth"
	"gallery/internal/config"
)

type AuthHandler struct {
	Service *auth.Service
	Config  config.AuthConfig
	Logger  *zap.Logger
}

func (h *AuthHandler) Register(r *gin.Engine, requireAdmin gin.HandlerFunc) {
	group := r.Group("/api/auth")
	group.POST("/login", h.login)
	group.POST("/logout", h.logout)
	if requireAdmin != nil {
		group.GET("/me", requireAdmin, h.me)
	} else {
		group.GET("/me", h.me)
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// @Summary Admin login
// @Tags auth
// @Param body body loginRequest true "credentials"
// @Success 200 {object} apiResponse
// @Failure 401 {object} apiResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		Error(c, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	user, token, err := h.Service.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrBadCredentials) {
			Error(c, http.StatusUnauthorized, "invalid username or password", nil)
			return
		}
		if h.Logger != nil {
			h.Logger.Warn("login failed", zap.Error(err))
		}
		Error(c, http.StatusInternalServerError, "login failed", nil)
		return
	}
	maxAge := int(h.Config.TokenTTL.Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.Config.CookieName, token, maxAge, "/", "", false, true)
	Ok(c, gin.H{"username": user.Username, "is_admin": user.IsAdmin}, nil)
}

// @Summary Logout
// @Tags auth
// @Success 200 {object} apiResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) logout(c *gin.Context) {
	c.SetCookie(h.Config.CookieName, "", -1, "/", "", false, true)
	Ok(c, gin.H{"logged_out": true}, nil)
}

// @Summary Current admin session
// @Tags auth
// @Success 200 {object} apiResponse
// @Failure 401 {object} apiResponse
// @Router /api/auth/me [get]
func (h *AuthHandler) me(c *gin.Context) {
	identity := auth.IdentityFromGin(c)
	if identity == nil {
		Error(c, http.StatusUnauthorized, "not logged in", nil)
		return
	}
	Ok(c, gin.H{"user_id": identity.UserID, "username": identity.Username, "is_admin": true}, nil)
}
