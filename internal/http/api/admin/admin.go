// Package admin registers the auth-gated management API surface.
package admin

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sakaryaihh/akifweb/internal/config"
	"github.com/sakaryaihh/akifweb/internal/http/api"
	"github.com/sakaryaihh/akifweb/internal/http/api/admin/handlers"
	"github.com/sakaryaihh/akifweb/internal/models"
	"github.com/sakaryaihh/akifweb/internal/security"
)

// RegisterAdminRoutes wires the admin endpoints under /api/admin.
func RegisterAdminRoutes(r *gin.Engine, conn *gorm.DB, cfg *config.Config) {
	if r == nil || conn == nil {
		return
	}

	group := r.Group("/api/admin")
	group.Use(sessionMiddleware(cfg))

	postHandler := handlers.NewPostHandler(conn)
	group.GET("/posts", postHandler.List)
	group.POST("/posts", postHandler.Create)
	group.PUT("/posts/:id", postHandler.Update)
	group.DELETE("/posts/:id", postHandler.Delete)

	categoryHandler := handlers.NewDonationCategoryHandler(conn)
	group.GET("/donations/categories", categoryHandler.List)
	group.POST("/donations/categories", categoryHandler.Create)
	group.PUT("/donations/categories/:id", categoryHandler.Update)
	group.DELETE("/donations/categories/:id", categoryHandler.Delete)

	donationHandler := handlers.NewDonationHandler(conn)
	group.GET("/donations", donationHandler.List)

	bankHandler := handlers.NewBankAccountHandler(conn)
	group.GET("/bank-accounts", bankHandler.List)
	group.POST("/bank-accounts", bankHandler.Create)
	group.PUT("/bank-accounts/:id", bankHandler.Update)
	group.DELETE("/bank-accounts/:id", bankHandler.Delete)

	volunteerHandler := handlers.NewVolunteerHandler(conn)
	group.GET("/volunteer", volunteerHandler.List)
	group.GET("/volunteer/:id", volunteerHandler.Get)
	group.PATCH("/volunteer/:id", volunteerHandler.PatchStatus)

	settingHandler := handlers.NewSettingHandler(conn)
	group.GET("/settings", settingHandler.Get)
	group.PUT("/settings", settingHandler.Put)
}

// sessionMiddleware validates the session token from the auth cookie
// (or a bearer header) and rejects the lowest privilege tier. The check
// runs before any handler touches the store.
func sessionMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := sessionToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": api.CodeUnauthorized})
			return
		}

		claims, errParse := security.ParseSessionToken(cfg.Auth.Secret, token)
		if errParse != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": api.CodeUnauthorized})
			return
		}
		if claims.Role == models.RoleMember {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": api.CodeForbidden, "message": "Admin yetkisi gerekli"})
			return
		}

		c.Set("userID", claims.UserID)
		c.Set("userEmail", claims.Email)
		c.Set("userRole", claims.Role)
		c.Next()
	}
}

// sessionToken extracts the session JWT from the cookie or the
// Authorization header.
func sessionToken(c *gin.Context) string {
	if cookie, errCookie := c.Cookie(api.SessionCookieName); errCookie == nil {
		if trimmed := strings.TrimSpace(cookie); trimmed != "" {
			return trimmed
		}
	}
	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}
	return strings.TrimSpace(token)
}
