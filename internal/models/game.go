package models

import "time"

const (
	AccountAvailable = "available"
	AccountSold      = "sold"
)

// Game is a catalog entry. Accounts and keys are removed with the game.
type Game struct {
	ID           uint          `gorm:"primaryKey" json:"id"`
	Name         string        `gorm:"size:255;not null" json:"name"`
	AppID        string        `gorm:"size:100" json:"app_id"`
	Platform     string        `gorm:"size:50" json:"platform"`
	Price        float64       `gorm:"type:decimal(10,2)" json:"price"`
	Category     string        `gorm:"size:100" json:"category"`
	Description  string        `gorm:"type:text" json:"description"`
	LibraryImage string        `gorm:"size:500" json:"library_image"`
	IsSpecial    bool          `gorm:"default:false" json:"is_special"`
	SpecialPrice float64       `gorm:"type:decimal(10,2)" json:"special_price"`
	Created      time.Time     `gorm:"autoCreateTime" json:"created"`
	Accounts     []GameAccount `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"-"`
	Keys         []Key         `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"-"`
}

// EffectivePrice is what a buyer pays for one of the game's accounts.
func (g *Game) EffectivePrice() float64 {
	if g.IsSpecial && g.SpecialPrice > 0 {
		return g.SpecialPrice
	}
	return g.Price
}

// GameAccount is a shared login resold to exactly one buyer. Credentials
// are withheld from catalog output and revealed only to the purchaser.
type GameAccount struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	GameID      uint       `gorm:"not null;index" json:"game_id"`
	Username    string     `gorm:"size:255;not null" json:"username"`
	Password    string     `gorm:"size:255;not null" json:"-"`
	Email       string     `gorm:"size:255" json:"email"`
	GuardCode   string     `gorm:"size:100" json:"-"`
	Status      string     `gorm:"size:20;default:'available';index" json:"status"`
	PurchasedBy *uint      `json:"purchased_by,omitempty"`
	PurchasedAt *time.Time `json:"purchased_at,omitempty"`
	Created     time.Time  `gorm:"autoCreateTime" json:"created"`
}
