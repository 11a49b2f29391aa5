package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sakaryaihh/akifweb/internal/forms"
	"github.com/sakaryaihh/akifweb/internal/models"
)

// ErrInvalidKey is returned for keys outside the enumerated set.
var ErrInvalidKey = errors.New("settings: invalid key")

// DefaultValue returns the hardcoded default for a setting key.
func DefaultValue(key string) (any, error) {
	switch key {
	case KeyContactInfo:
		return DefaultContactInfo(), nil
	case KeyVolunteerForm:
		return forms.DefaultConfig(), nil
	case KeyIyzico:
		return DefaultIyzicoConfig(), nil
	default:
		return nil, ErrInvalidKey
	}
}

// Raw reads the stored JSON value for a key, falling back to the
// marshaled default when no row exists. Reads never create rows.
func Raw(ctx context.Context, conn *gorm.DB, key string) (json.RawMessage, error) {
	if !ValidKey(key) {
		return nil, ErrInvalidKey
	}
	var row models.Setting
	errFind := conn.WithContext(ctx).Where("key = ?", key).First(&row).Error
	if errFind == nil && len(row.Value) > 0 {
		return row.Value, nil
	}
	if errFind != nil && !errors.Is(errFind, gorm.ErrRecordNotFound) {
		return nil, errFind
	}

	def, errDefault := DefaultValue(key)
	if errDefault != nil {
		return nil, errDefault
	}
	data, errMarshal := json.Marshal(def)
	if errMarshal != nil {
		return nil, fmt.Errorf("settings: marshal default %s: %w", key, errMarshal)
	}
	return data, nil
}

// Put upserts the JSON value for a key. Last writer wins; settings are
// admin-only and low contention, so no optimistic locking is applied.
func Put(ctx context.Context, conn *gorm.DB, key string, value json.RawMessage) error {
	if !ValidKey(key) {
		return ErrInvalidKey
	}
	row := models.Setting{Key: key, Value: value}
	return conn.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&row).Error
}

// VolunteerForm loads the active form config, falling back to the
// default when the row is absent, unparsable, or missing its field
// list. A broken stored config must never block submissions.
func VolunteerForm(ctx context.Context, conn *gorm.DB) forms.Config {
	raw, err := Raw(ctx, conn, KeyVolunteerForm)
	if err != nil {
		return forms.DefaultConfig()
	}
	var cfg forms.Config
	if errUnmarshal := json.Unmarshal(raw, &cfg); errUnmarshal != nil {
		return forms.DefaultConfig()
	}
	if !cfg.Valid() {
		return forms.DefaultConfig()
	}
	return cfg
}

// Contact loads the contact info setting with default fallback.
func Contact(ctx context.Context, conn *gorm.DB) ContactInfo {
	raw, err := Raw(ctx, conn, KeyContactInfo)
	if err != nil {
		return DefaultContactInfo()
	}
	var info ContactInfo
	if errUnmarshal := json.Unmarshal(raw, &info); errUnmarshal != nil {
		return DefaultContactInfo()
	}
	return info
}

// Iyzico loads the gateway credential override stored in the database.
// The boolean reports whether both credential fields are present.
func Iyzico(ctx context.Context, conn *gorm.DB) (IyzicoConfig, bool) {
	var row models.Setting
	errFind := conn.WithContext(ctx).Where("key = ?", KeyIyzico).First(&row).Error
	if errFind != nil || len(row.Value) == 0 {
		return IyzicoConfig{}, false
	}
	var cfg IyzicoConfig
	if errUnmarshal := json.Unmarshal(row.Value, &cfg); errUnmarshal != nil {
		return IyzicoConfig{}, false
	}
	if cfg.APIKey == "" || cfg.SecretKey == "" {
		return IyzicoConfig{}, false
	}
	if cfg.BaseURI == "" {
		cfg.BaseURI = DefaultIyzicoConfig().BaseURI
	}
	return cfg, true
}
