package models

type Location struct {
	ID uint `json:"id" gorm:"primaryKey;autoIncrement"`
	Publication
	Name  string `json:"name" gorm:"not null;type:varchar(256)"`
	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:LocationID"`
}
