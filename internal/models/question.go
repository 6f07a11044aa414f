package models

type Question struct {
	ID         uint     `gorm:"primaryKey" json:"id"`
	CategoryID uint     `gorm:"not null;index" json:"category_id"`
	Name       string   `gorm:"type:text;not null" json:"name"`
	Answers    []Answer `gorm:"foreignKey:QuestionID" json:"answers,omitempty"`
}
