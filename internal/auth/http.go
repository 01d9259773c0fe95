package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sponsvisa/sponsvisa-api/internal/apperr"
	"github.com/sponsvisa/sponsvisa-api/internal/config"
)

// RegisterRoutes mounts authentication endpoints under /auth.
func RegisterRoutes(router *gin.RouterGroup, service *Service, verification *VerificationService, guard *Guard, cfg config.AuthConfig) {
	handler := &httpHandler{service: service, verification: verification, cfg: cfg}
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", handler.register)
		authGroup.POST("/login", handler.login)
		authGroup.POST("/logout", handler.logout)
		authGroup.POST("/refresh_token", handler.refreshToken)
		authGroup.POST("/verify_code", guard.RequireRoles(RoleAny), handler.verifyCode)
		authGroup.POST("/send_verification_code", guard.RequireRoles(RoleAny), handler.sendVerificationCode)
	}
}

type httpHandler struct {
	service      *Service
	verification *VerificationService
	cfg          config.AuthConfig
}

type registerRequest struct {
	Name            string `json:"name" binding:"required,min=2,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8,max=64"`
	ConfirmPassword string `json:"confirmPassword" binding:"required,eqfield=Password"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type refreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

type verifyCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

func (h *httpHandler) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest(err.Error()))
		return
	}

	err := h.service.Register(c.Request.Context(), RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true})
}

func (h *httpHandler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest(err.Error()))
		return
	}

	result, err := h.service.Login(c.Request.Context(), LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookies(c, result.Tokens)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": result.User})
}

// logout always clears the cookies; when the caller presents a valid access
// token the stored refresh hash is revoked as well.
func (h *httpHandler) logout(c *gin.Context) {
	if token := ExtractToken(c); token != "" {
		if userID, ok := h.service.tokens.VerifyAccessToken(token); ok {
			if err := h.service.Logout(c.Request.Context(), userID); err != nil {
				c.Error(err)
				return
			}
		}
	}

	h.clearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *httpHandler) refreshToken(c *gin.Context) {
	var req refreshTokenRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.Error(apperr.BadRequest(err.Error()))
		return
	}

	token := req.RefreshToken
	if token == "" {
		token, _ = c.Cookie(RefreshTokenCookie)
	}

	result, err := h.service.Refresh(c.Request.Context(), token)
	if err != nil {
		c.Error(err)
		return
	}

	h.setAuthCookies(c, result.Tokens)
	c.JSON(http.StatusOK, gin.H{"success": true, "user": result.User})
}

func (h *httpHandler) verifyCode(c *gin.Context) {
	principal, ok := CurrentUser(c)
	if !ok {
		c.Error(ErrInvalidToken)
		return
	}

	var req verifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperr.BadRequest(err.Error()))
		return
	}

	if err := h.verification.VerifyCode(c.Request.Context(), principal.ID, req.Code); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *httpHandler) sendVerificationCode(c *gin.Context) {
	principal, ok := CurrentUser(c)
	if !ok {
		c.Error(ErrInvalidToken)
		return
	}

	if err := h.verification.ResendCode(c.Request.Context(), principal.ID); err != nil {
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *httpHandler) setAuthCookies(c *gin.Context, tokens TokenPair) {
	c.SetCookie(AccessTokenCookie, tokens.AccessToken,
		int(h.cfg.AccessCookieMaxAge.Seconds()), "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)
	c.SetCookie(RefreshTokenCookie, tokens.RefreshToken,
		int(h.cfg.RefreshCookieMaxAge.Seconds()), "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)
}

func (h *httpHandler) clearAuthCookies(c *gin.Context) {
	c.SetCookie(AccessTokenCookie, "", -1, "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)
	c.SetCookie(RefreshTokenCookie, "", -1, "/", h.cfg.CookieDomain, h.cfg.CookieSecure, true)
}
