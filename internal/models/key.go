package models

import "time"

const (
	KeyAvailable = "available"
	KeyUsed      = "used"
)

// Key is a single-use activation code for a game.
type Key struct {
	ID       uint       `gorm:"primaryKey" json:"id"`
	KeyValue string     `gorm:"size:255;not null;uniqueIndex" json:"key_value"`
	GameID   uint       `gorm:"not null;index" json:"game_id"`
	KeyType  string     `gorm:"size:50;default:'steam'" json:"key_type"`
	Status   string     `gorm:"size:20;default:'available'" json:"status"`
	UsedBy   *uint      `json:"used_by,omitempty"`
	UsedDate *time.Time `json:"used_date,omitempty"`
	Created  time.Time  `gorm:"autoCreateTime" json:"created"`
}
