package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
	Username      string         `gorm:"unique;not null" json:"username"`
	Email         string         `gorm:"unique;not null" json:"email"`
	Password      string         `gorm:"not null" json:"-"` // Don't expose password hash in JSON
	FirstName     string         `json:"first_name"`
	LastName      string         `json:"last_name"`
	Bio           string         `json:"bio"`
	Role          string         `gorm:"not null;default:user" json:"role"`
	Posts         []Post         `json:"posts,omitempty" gorm:"foreignKey:AuthorID"`
	Comments      []Comment      `json:"comments,omitempty" gorm:"foreignKey:AuthorID"`
	RefreshTokens []RefreshToken `json:"-" gorm:"foreignKey:UserID"`
}
