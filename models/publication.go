package models

import "time"

// Publication carries the fields shared by everything that can be
// published or hidden: Category, Location and Post all embed it.
// IsPublished defaults are applied in handler code, not as a column
// default, so an explicit false survives the insert.
type Publication struct {
	IsPublished bool      `json:"is_published" gorm:"not null"`
	CreatedAt   time.Time `json:"created_at"`
}
