package models

import "time"

// User roles ordered by privilege. Admin routes accept any role above
// RoleMember; finer per-role capabilities are not enforced.
const (
	RoleMember     = "MEMBER"
	RoleEditor     = "EDITOR"
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPERADMIN"
)

// User represents an account able to sign in. Registration is disabled;
// exactly one admin is seeded at startup.
type User struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"` // Primary key.

	Email        string `gorm:"type:varchar(255);not null;uniqueIndex"` // Unique login email (lowercase).
	PasswordHash string `gorm:"type:text;not null"`                     // bcrypt hash.
	Role         string `gorm:"type:varchar(16);not null;default:MEMBER"` // Privilege tier.

	CreatedAt time.Time `gorm:"not null;autoCreateTime"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"` // Last update timestamp.
}
