// Package app boots the HTTP server with database-backed components.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/sakaryaihh/akifweb/internal/config"
	"github.com/sakaryaihh/akifweb/internal/db"
	"github.com/sakaryaihh/akifweb/internal/http/api/admin"
	"github.com/sakaryaihh/akifweb/internal/http/api/public"
	"github.com/sakaryaihh/akifweb/internal/http/api/public/handlers"
)

const shutdownTimeout = 10 * time.Second

// Migrate opens the database and runs migrations.
func Migrate(ctx context.Context, cfg *config.Config) error {
	conn, err := db.Open(cfg.Database.DSN)
	if err != nil {
		return err
	}
	return db.Migrate(conn)
}

// RunServer migrates the database, seeds the admin account, and serves
// the API until the context is cancelled.
func RunServer(ctx context.Context, cfg *config.Config) error {
	conn, err := db.Open(cfg.Database.DSN)
	if err != nil {
		return err
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		return errMigrate
	}
	if errSeed := db.SeedAdmin(ctx, conn, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); errSeed != nil {
		return errSeed
	}

	engine := NewEngine(conn, cfg)

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("listening on %s", cfg.Server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if errShutdown := server.Shutdown(shutdownCtx); errShutdown != nil {
			return errShutdown
		}
		log.Info("server stopped")
		return nil
	case errServe := <-errCh:
		if errors.Is(errServe, http.ErrServerClosed) {
			return nil
		}
		return errServe
	}
}

// NewEngine builds the gin engine with all routes registered.
func NewEngine(conn *gorm.DB, cfg *config.Config) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger())

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public.RegisterPublicRoutes(engine, conn, cfg, handlers.DefaultGatewayFactory)
	admin.RegisterAdminRoutes(engine, conn, cfg)
	return engine
}

// requestLogger logs each request with method, path, status, and
// duration. Request bodies are never logged.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.WithFields(log.Fields{
			"method":   c.Request.Method,
			"path":     c.Request.URL.Path,
			"status":   c.Writer.Status(),
			"duration": time.Since(start).String(),
		}).Info("request")
	}
}
