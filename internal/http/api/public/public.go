// Package public registers the unauthenticated API surface.
package public

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sakaryaihh/akifweb/internal/config"
	"github.com/sakaryaihh/akifweb/internal/http/api/public/handlers"
)

// RegisterPublicRoutes wires the public endpoints under /api.
func RegisterPublicRoutes(r *gin.Engine, conn *gorm.DB, cfg *config.Config, gateway handlers.GatewayFactory) {
	if r == nil || conn == nil {
		return
	}

	root := r.Group("/api")

	postHandler := handlers.NewPostHandler(conn)
	root.GET("/posts", postHandler.List)
	root.GET("/posts/:slug", postHandler.GetBySlug)

	donationHandler := handlers.NewDonationHandler(conn, gateway)
	root.GET("/donations/categories", donationHandler.Categories)
	root.POST("/donations/pay", donationHandler.Pay)

	bankHandler := handlers.NewBankAccountHandler(conn)
	root.GET("/bank-accounts", bankHandler.List)

	contactHandler := handlers.NewContactHandler(conn)
	root.GET("/contact", contactHandler.Get)

	volunteerHandler := handlers.NewVolunteerHandler(conn)
	root.GET("/volunteer/form", volunteerHandler.GetForm)
	root.POST("/volunteer", volunteerHandler.Submit)

	authHandler := handlers.NewAuthHandler(conn, cfg)
	root.POST("/auth/login", authHandler.Login)
	root.POST("/auth/logout", authHandler.Logout)
	root.POST("/auth/register", authHandler.Register)
}
