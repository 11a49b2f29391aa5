package admin

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/sakaryaihh/akifweb/internal/config"
	"github.com/sakaryaihh/akifweb/internal/http/api"
	"github.com/sakaryaihh/akifweb/internal/models"
	"github.com/sakaryaihh/akifweb/internal/security"
)

func setupAdminRouter(t *testing.T) (*gin.Engine, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:adminroutes_%d?mode=memory&cache=shared", time.Now().UnixNano())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	errMigrate := conn.AutoMigrate(
		&models.Post{},
		&models.DonationCategory{},
		&models.Donation{},
		&models.BankAccount{},
		&models.VolunteerApplication{},
		&models.Setting{},
	)
	if errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}

	cfg := &config.Config{Auth: config.AuthConfig{Secret: "test-secret"}}
	engine := gin.New()
	RegisterAdminRoutes(engine, conn, cfg)
	return engine, cfg
}

func sessionTokenFor(t *testing.T, cfg *config.Config, role string) string {
	t.Helper()
	token, err := security.GenerateSessionToken(cfg.Auth.Secret, 1, "user@example.com", role, time.Hour)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return token
}

func TestAdminRoutesRejectMissingSession(t *testing.T) {
	engine, _ := setupAdminRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bank-accounts", nil)
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAdminRoutesRejectInvalidToken(t *testing.T) {
	engine, _ := setupAdminRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bank-accounts", nil)
	req.AddCookie(&http.Cookie{Name: api.SessionCookieName, Value: "garbage"})
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAdminRoutesRejectMemberRole(t *testing.T) {
	engine, cfg := setupAdminRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bank-accounts", nil)
	req.AddCookie(&http.Cookie{Name: api.SessionCookieName, Value: sessionTokenFor(t, cfg, models.RoleMember)})
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "FORBIDDEN") {
		t.Fatalf("unexpected body %s", w.Body.String())
	}
}

func TestAdminRoutesAcceptAdminCookie(t *testing.T) {
	engine, cfg := setupAdminRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/bank-accounts", nil)
	req.AddCookie(&http.Cookie{Name: api.SessionCookieName, Value: sessionTokenFor(t, cfg, models.RoleAdmin)})
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestAdminRoutesAcceptBearerHeader(t *testing.T) {
	engine, cfg := setupAdminRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/donations", nil)
	req.Header.Set("Authorization", "Bearer "+sessionTokenFor(t, cfg, models.RoleEditor))
	engine.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}
