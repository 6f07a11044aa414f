package models

import "time"

// Username is unique per game, not globally: the same nickname may appear in
// two concurrent games.
type Player struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	GameID        uint      `gorm:"not null;uniqueIndex:idx_game_username" json:"game_id"`
	Username      string    `gorm:"size:100;not null;uniqueIndex:idx_game_username" json:"username"`
	Score         int       `gorm:"not null;default:0" json:"score"`
	IsFacilitator bool      `gorm:"not null;default:false" json:"is_facilitator"`
	JoinedAt      time.Time `json:"joined_at"`
}
