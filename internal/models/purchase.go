package models

import "time"

const (
	PurchaseTypeAccount = "account"
	PurchaseTypeKey     = "key"
)

// Purchase records one account sale or key redemption.
type Purchase struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	UserID       uint      `gorm:"not null;index" json:"user_id"`
	GameID       uint      `gorm:"not null;index" json:"game_id"`
	AccountID    *uint     `json:"account_id,omitempty"`
	PurchaseType string    `gorm:"size:20;default:'account'" json:"purchase_type"`
	Price        float64   `gorm:"type:decimal(10,2)" json:"price"`
	Created      time.Time `gorm:"autoCreateTime" json:"created"`
}
