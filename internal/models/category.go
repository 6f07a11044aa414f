package models

type Category struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	Name      string     `gorm:"size:255;not null;uniqueIndex" json:"name"`
	Questions []Question `gorm:"foreignKey:CategoryID" json:"questions,omitempty"`
}
