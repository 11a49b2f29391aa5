package models

import (
	"time"

	"gorm.io/datatypes"
)

// Volunteer application status values.
const (
	// VolunteerPending marks a freshly submitted application.
	VolunteerPending = "PENDING"
	// VolunteerApproved marks an application accepted by an admin.
	VolunteerApproved = "APPROVED"
	// VolunteerRejected marks an application declined by an admin.
	VolunteerRejected = "REJECTED"
)

// VolunteerStatuses lists the valid application status values.
var VolunteerStatuses = []string{VolunteerPending, VolunteerApproved, VolunteerRejected}

// VolunteerApplication stores a submitted volunteer form.
//
// FullName/Email/Phone/Reason are summary columns derived from the
// schema-driven Data payload so the admin list stays readable no matter
// how the form is configured.
type VolunteerApplication struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	FullName string `gorm:"type:varchar(100);not null" json:"fullName"` // Derived display name.
	Email    string `gorm:"type:varchar(255);not null" json:"email"`    // Derived display email.
	Phone    string `gorm:"type:varchar(20);not null" json:"phone"`     // Derived display phone.
	Reason   string `gorm:"type:text;not null" json:"reason"`           // Derived display reason.

	Data datatypes.JSON `gorm:"type:jsonb;not null;default:'{}'" json:"data"` // Raw field key -> value mapping.

	Status string `gorm:"type:varchar(16);not null;default:PENDING;index" json:"status"` // Review status.

	CreatedAt time.Time `gorm:"not null;autoCreateTime;index" json:"createdAt"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"`       // Last update timestamp.
}
