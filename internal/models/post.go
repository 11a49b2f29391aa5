package models

import "time"

// Post represents a news article managed from the admin panel.
type Post struct {
	ID uint64 `gorm:"primaryKey;autoIncrement" json:"id"` // Primary key.

	Title   string  `gorm:"type:varchar(200);not null" json:"title"`          // Article title.
	Content string  `gorm:"type:text;not null" json:"content"`                // Rich text body.
	Image   *string `gorm:"type:text" json:"image"`                           // Optional image URL.
	Slug    string  `gorm:"type:varchar(100);not null;uniqueIndex" json:"slug"` // Unique URL slug.

	Published bool `gorm:"not null;default:false" json:"published"` // Publicly visible when true.

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"createdAt"` // Creation timestamp.
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updatedAt"` // Last update timestamp.
}
