package models

type Category struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement"`
	Publication
	Title       string `json:"title" gorm:"not null;type:varchar(256)"`
	Description string `json:"description" gorm:"type:text"`
	Slug        string `json:"slug" gorm:"uniqueIndex;not null"`
	Posts       []Post `json:"posts,omitempty" gorm:"foreignKey:CategoryID"`
}
