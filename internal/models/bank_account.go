package models

import "time"

// BankAccount represents a bank account shown on the account numbers page.
type BankAccount struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	BankName string `gorm:"type:varchar(100);not null" json:"bankName"`        // Bank display name.
	Branch   string `gorm:"type:varchar(100);not null" json:"branch"`          // Branch name.
	IBAN     string `gorm:"type:varchar(26);not null;uniqueIndex" json:"iban"` // Normalized TR IBAN (uppercase, no spaces).
	Currency string `gorm:"type:varchar(3);not null;default:TRY" json:"currency"` // ISO currency code.

	Order    int  `gorm:"not null;default:0" json:"order"`       // Sort position.
	IsActive bool `gorm:"not null;default:true" json:"isActive"` // Shown publicly when true.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"` // Last update timestamp.
}
