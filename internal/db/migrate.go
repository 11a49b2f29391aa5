package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/sakaryaihh/akifweb/internal/models"
	"github.com/sakaryaihh/akifweb/internal/security"
)

// Migrate creates or updates all application tables.
func Migrate(conn *gorm.DB) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	return conn.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.DonationCategory{},
		&models.Donation{},
		&models.BankAccount{},
		&models.VolunteerApplication{},
		&models.Setting{},
	)
}

// SeedAdmin ensures the single admin account exists. Registration is
// disabled, so this is the only way a user row is ever created.
func SeedAdmin(ctx context.Context, conn *gorm.DB, email, password string) error {
	if conn == nil {
		return fmt.Errorf("db: nil connection")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return fmt.Errorf("db: seed admin requires email and password")
	}

	var existing models.User
	errFind := conn.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if errFind == nil {
		return nil
	}
	if !errors.Is(errFind, gorm.ErrRecordNotFound) {
		return errFind
	}

	hash, errHash := security.HashPassword(password)
	if errHash != nil {
		return errHash
	}
	user := models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
	}
	if errCreate := conn.WithContext(ctx).Create(&user).Error; errCreate != nil {
		return errCreate
	}
	log.Infof("seeded admin user %s", email)
	return nil
}
