package db

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/sakaryaihh/akifweb/internal/models"
)

func TestDetectDialectFromDSN(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"postgres://u:p@localhost/app":          DialectPostgres,
		"postgresql://u:p@localhost/app":        DialectPostgres,
		"host=localhost user=app dbname=app":    DialectPostgres,
		"file:app.db":                           DialectSQLite,
		"sqlite://app.db":                       DialectSQLite,
		"app.db":                                DialectSQLite,
		"file:mem?mode=memory&cache=shared":     DialectSQLite,
	}
	for dsn, want := range cases {
		got, err := detectDialectFromDSN(dsn)
		if err != nil {
			t.Fatalf("detect(%q): %v", dsn, err)
		}
		if got != want {
			t.Fatalf("detect(%q) = %q, want %q", dsn, got, want)
		}
	}

	if _, err := detectDialectFromDSN("mysql://u:p@localhost/app"); err == nil {
		t.Fatal("expected error for unsupported scheme")
	}
}

func TestEnsureSQLiteParamsAddsDefaults(t *testing.T) {
	t.Parallel()

	got := ensureSQLiteParams("file:app.db")
	for _, param := range []string{"_busy_timeout=5000", "_journal_mode=WAL", "_foreign_keys=on", "_synchronous=NORMAL"} {
		if !strings.Contains(got, param) {
			t.Fatalf("missing %s in %q", param, got)
		}
	}

	// Explicit parameters are preserved, not duplicated.
	got = ensureSQLiteParams("file:app.db?_journal_mode=DELETE")
	if strings.Count(got, "_journal_mode") != 1 {
		t.Fatalf("journal mode duplicated in %q", got)
	}
	if !strings.Contains(got, "_journal_mode=DELETE") {
		t.Fatalf("explicit journal mode lost in %q", got)
	}
}

func TestSQLitePathFromDSN(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"file:data/app.db?_fk=on": "data/app.db",
		"file::memory:":           "",
		"app.db":                  "app.db",
		":memory:":                "",
	}
	for dsn, want := range cases {
		if got := sqlitePathFromDSN(dsn); got != want {
			t.Fatalf("sqlitePathFromDSN(%q) = %q, want %q", dsn, got, want)
		}
	}
}

func TestMigrateAndSeedAdminIdempotent(t *testing.T) {
	dsn := fmt.Sprintf("file:seed_%d?mode=memory&cache=shared", time.Now().UnixNano())
	conn, err := Open(dsn)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if errMigrate := Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}

	ctx := context.Background()
	if errSeed := SeedAdmin(ctx, conn, "Admin@Example.com", "sifre123"); errSeed != nil {
		t.Fatalf("seed: %v", errSeed)
	}
	if errSeed := SeedAdmin(ctx, conn, "admin@example.com", "sifre123"); errSeed != nil {
		t.Fatalf("second seed: %v", errSeed)
	}

	var users []models.User
	if errFind := conn.Find(&users).Error; errFind != nil {
		t.Fatalf("find users: %v", errFind)
	}
	if len(users) != 1 {
		t.Fatalf("expected single admin, got %d", len(users))
	}
	if users[0].Email != "admin@example.com" {
		t.Fatalf("email not normalized: %q", users[0].Email)
	}
	if users[0].Role != models.RoleAdmin {
		t.Fatalf("unexpected role %q", users[0].Role)
	}
	if users[0].PasswordHash == "sifre123" {
		t.Fatal("password stored in plain text")
	}
}
