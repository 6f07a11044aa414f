package models

import "time"

type Game struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	CategoryID uint      `gorm:"not null;index" json:"category_id"`
	Category   Category  `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	State      string    `gorm:"size:20;not null;default:'open'" json:"state"`
	Players    []Player  `gorm:"foreignKey:GameID" json:"players,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

const (
	GameStateOpen       = "open"
	GameStateInProgress = "in_progress"
	GameStateEnded      = "ended"
)
