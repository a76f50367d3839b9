package models

import (
	"time"

	"gorm.io/gorm"
)

type Post struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement"`
	Publication
	UpdatedAt  time.Time `json:"updated_at"`
	Title      string    `json:"title" gorm:"not null;type:varchar(256)"`
	Text       string    `json:"text" gorm:"not null;type:text"`
	PubDate    time.Time `json:"pub_date" gorm:"not null;index"`
	Image      string    `json:"image"`
	AuthorID   uint      `json:"author_id" gorm:"not null"`
	Author     User      `json:"author,omitempty" gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
	CategoryID *uint     `json:"category_id"`
	Category   *Category `json:"category,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	LocationID *uint     `json:"location_id"`
	Location   *Location `json:"location,omitempty" gorm:"foreignKey:LocationID;constraint:OnDelete:SET NULL"`
	Comments   []Comment `json:"comments,omitempty" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// PubliclyVisible restricts a posts query to what an anonymous reader may
// see: published, pub_date already passed, and the category (if any) itself
// published. Evaluated against the supplied instant on every call, so a
// future-dated post surfaces the moment its pub_date passes without any
// scheduled job flipping state.
func PubliclyVisible(now time.Time) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("LEFT JOIN categories ON categories.id = posts.category_id").
			Where("posts.is_published = ?", true).
			Where("posts.pub_date <= ?", now).
			Where("posts.category_id IS NULL OR categories.is_published = ?", true)
	}
}

// AuthoredBy scopes a posts query to a single author, publication state
// ignored. Used for the owner fallback on detail lookups and the profile
// feed.
func AuthoredBy(userID uint) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("posts.author_id = ?", userID)
	}
}

// ByNewest orders by pub_date descending, the default feed ordering.
func ByNewest(db *gorm.DB) *gorm.DB {
	return db.Order("posts.pub_date DESC")
}
