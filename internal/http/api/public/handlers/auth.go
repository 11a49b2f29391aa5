package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sakaryaihh/akifweb/internal/config"
	"github.com/sakaryaihh/akifweb/internal/http/api"
	"github.com/sakaryaihh/akifweb/internal/models"
	"github.com/sakaryaihh/akifweb/internal/security"
)

// AuthHandler handles login, logout, and the disabled registration.
type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

// loginRequest defines the login payload.
type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// Login verifies credentials and issues the session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var body loginRequest
	if errBind := c.ShouldBindJSON(&body); errBind != nil {
		api.ValidationError(c, errBind)
		return
	}

	email := strings.ToLower(strings.TrimSpace(body.Email))

	var user models.User
	errFind := h.db.WithContext(c.Request.Context()).Where("email = ?", email).First(&user).Error
	if errFind != nil {
		api.Error(c, http.StatusUnauthorized, api.CodeInvalidCredentials, "E-posta veya şifre hatalı")
		return
	}
	if !security.CheckPassword(user.PasswordHash, body.Password) {
		api.Error(c, http.StatusUnauthorized, api.CodeInvalidCredentials, "E-posta veya şifre hatalı")
		return
	}

	ttl := h.cfg.SessionTTL()
	token, errToken := security.GenerateSessionToken(h.cfg.Auth.Secret, user.ID, user.Email, user.Role, ttl)
	if errToken != nil {
		api.Error(c, http.StatusInternalServerError, api.CodeInternal, "issue session failed")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(api.SessionCookieName, token, int(ttl.Seconds()), "/", "", h.cfg.Auth.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    gin.H{"id": user.ID, "email": user.Email, "role": user.Role},
	})
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(api.SessionCookieName, "", -1, "/", "", h.cfg.Auth.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Register always rejects: the system runs with a single seeded admin.
func (h *AuthHandler) Register(c *gin.Context) {
	api.Error(c, http.StatusForbidden, api.CodeRegistrationDisabled,
		"Kayıt kapalıdır. Yalnızca yönetici hesabı ile giriş yapılabilir.")
}
