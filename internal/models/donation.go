package models

import "time"

// Donation status values.
const (
	// DonationPending marks a donation created before the gateway call.
	DonationPending = "PENDING"
	// DonationCompleted marks a donation confirmed by the gateway.
	DonationCompleted = "COMPLETED"
	// DonationFailed marks a donation rejected by the gateway.
	DonationFailed = "FAILED"
	// DonationRefunded marks a donation refunded after completion.
	DonationRefunded = "REFUNDED"
)

// DonationStatuses lists the valid donation status values.
var DonationStatuses = []string{DonationPending, DonationCompleted, DonationFailed, DonationRefunded}

// DonationCategory represents a cause donors can contribute to.
type DonationCategory struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Name        string  `gorm:"type:varchar(100);not null" json:"name"` // Display name.
	Description string  `gorm:"type:text;not null" json:"description"`  // Description shown on the donation page.
	Image       *string `gorm:"type:text" json:"image"`                 // Optional image URL.

	FixedPrice   *float64 `gorm:"type:numeric" json:"fixedPrice"`              // Fixed amount; nil allows donor-chosen amounts.
	TargetAmount *float64 `gorm:"type:numeric" json:"targetAmount"`            // Optional fundraising target.
	Collected    float64  `gorm:"type:numeric;not null;default:0" json:"collected"` // Running total of completed donations.

	IsActive bool `gorm:"not null;default:true" json:"isActive"` // Shown publicly when true.
	Order    int  `gorm:"not null;default:0" json:"order"`       // Sort position.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"` // Last update timestamp.
}

// Donation represents a single payment attempt against a category.
type Donation struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	CategoryID uint64            `gorm:"not null;index" json:"categoryId"` // Target category.
	Category   *DonationCategory `gorm:"foreignKey:CategoryID" json:"category,omitempty"`

	Amount   float64 `gorm:"type:numeric;not null" json:"amount"`                   // Requested amount (excludes processing markup).
	Currency string  `gorm:"type:varchar(3);not null;default:TRY" json:"currency"` // ISO currency code.
	Status   string  `gorm:"type:varchar(16);not null;default:PENDING;index" json:"status"` // Lifecycle status.

	DonorName           string  `gorm:"type:varchar(100);not null" json:"donorName"` // Donor full name.
	DonorEmail          string  `gorm:"type:varchar(255);not null" json:"donorEmail"` // Donor email.
	DonorPhone          string  `gorm:"type:varchar(20);not null" json:"donorPhone"`  // Donor phone.
	DonorIdentityNumber *string `gorm:"type:varchar(11)" json:"donorIdentityNumber"`  // Optional national id.

	IP             *string `gorm:"type:varchar(45)" json:"ip"`             // Client IP at submission time.
	ConversationID *string `gorm:"type:varchar(64)" json:"conversationId"` // Gateway correlation token.
	PaymentID      *string `gorm:"type:varchar(64)" json:"paymentId"`      // Gateway payment identifier.

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"createdAt"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`       // Last update timestamp.
}
