package models

import "time"

// Suggestion is a user request for a game to be added to the catalog.
type Suggestion struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	GameName    string    `gorm:"size:255;not null" json:"game_name"`
	Username    string    `gorm:"size:50;not null" json:"username"`
	Description string    `gorm:"type:text" json:"description"`
	Created     time.Time `gorm:"autoCreateTime" json:"created"`
}
