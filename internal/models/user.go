package models

import "time"

// User correlates the identity provider's opaque subject with a local id.
type User struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ExternalID string    `gorm:"size:255;uniqueIndex;not null" json:"-"`
	Name       string    `gorm:"size:100" json:"name"`
	Email      string    `gorm:"size:255" json:"email"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
