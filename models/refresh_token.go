package models

import (
	"time"
)

// RefreshToken is an opaque, uuid-valued token exchanged for a fresh access
// token. Rows are removed on logout and on account deletion.
type RefreshToken struct {
	ID             uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	CreatedAt      time.Time `json:"created_at"`
	UserID         uint      `json:"user_id" gorm:"not null"`
	User           User      `json:"-" gorm:"foreignKey:UserID"`
	Token          string    `json:"token" gorm:"uniqueIndex;not null"`
	ExpirationDate time.Time `json:"expiry" gorm:"not null"`
}
