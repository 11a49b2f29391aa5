package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Default values applied when the config file omits them.
const (
	// DefaultAddr is the fallback listen address.
	DefaultAddr = ":8080"
	// DefaultSessionTTL is the session cookie lifetime.
	DefaultSessionTTL = 7 * 24 * time.Hour
	// DefaultSeedAdminEmail is the fallback seeded admin email.
	DefaultSeedAdminEmail = "admin@localhost"
	// DefaultSeedAdminPassword is the fallback seeded admin password.
	DefaultSeedAdminPassword = "admin123"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr string `yaml:"addr"` // Listen address, e.g. ":8080".
}

// DatabaseConfig holds database connection settings.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"` // Postgres URL or SQLite file path.
}

// AuthConfig holds session token settings.
type AuthConfig struct {
	Secret          string `yaml:"secret"`            // HS256 signing secret.
	SessionTTLHours int    `yaml:"session-ttl-hours"` // Cookie lifetime in hours; 0 means 7 days.
	CookieSecure    bool   `yaml:"cookie-secure"`     // Set the Secure flag on the session cookie.
}

// SeedConfig holds the single seeded admin credentials.
type SeedConfig struct {
	AdminEmail    string `yaml:"admin-email"`    // Seeded admin login email.
	AdminPassword string `yaml:"admin-password"` // Seeded admin password (hashed before storage).
}

// LogConfig holds file logging settings. An empty file path logs to stdout only.
type LogConfig struct {
	File       string `yaml:"file"`        // Rotated log file path.
	MaxSizeMB  int    `yaml:"max-size-mb"` // Max size per log file in MB.
	MaxBackups int    `yaml:"max-backups"` // Rotated files to keep.
}

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Seed     SeedConfig     `yaml:"seed"`
	Log      LogConfig      `yaml:"log"`
}

// Load reads and validates the YAML config file at path. Environment
// variables DATABASE_DSN and AUTH_SECRET override the file values.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if strings.TrimSpace(path) != "" {
		data, errRead := os.ReadFile(path)
		if errRead != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, errRead)
		}
		if errUnmarshal := yaml.Unmarshal(data, cfg); errUnmarshal != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, errUnmarshal)
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("DATABASE_DSN")); dsn != "" {
		cfg.Database.DSN = dsn
	}
	if secret := strings.TrimSpace(os.Getenv("AUTH_SECRET")); secret != "" {
		cfg.Auth.Secret = secret
	}

	cfg.applyDefaults()

	if strings.TrimSpace(cfg.Database.DSN) == "" {
		return nil, fmt.Errorf("config: database.dsn is required")
	}
	if strings.TrimSpace(cfg.Auth.Secret) == "" {
		return nil, fmt.Errorf("config: auth.secret is required")
	}
	return cfg, nil
}

// SessionTTL returns the configured session lifetime.
func (c *Config) SessionTTL() time.Duration {
	if c.Auth.SessionTTLHours <= 0 {
		return DefaultSessionTTL
	}
	return time.Duration(c.Auth.SessionTTLHours) * time.Hour
}

func (c *Config) applyDefaults() {
	if strings.TrimSpace(c.Server.Addr) == "" {
		c.Server.Addr = DefaultAddr
	}
	if strings.TrimSpace(c.Seed.AdminEmail) == "" {
		c.Seed.AdminEmail = DefaultSeedAdminEmail
	}
	if strings.TrimSpace(c.Seed.AdminPassword) == "" {
		c.Seed.AdminPassword = DefaultSeedAdminPassword
	}
	if c.Log.MaxSizeMB <= 0 {
		c.Log.MaxSizeMB = 100
	}
	if c.Log.MaxBackups <= 0 {
		c.Log.MaxBackups = 3
	}
}
