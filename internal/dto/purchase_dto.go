package dto

import "github.com/hesapmarket/marketplace-backend/internal/models"

type PurchaseRequest struct {
	GameID uint `json:"gameId"`
	UserID uint `json:"userId"`
}

// PurchaseDetail is one row of a user's purchase history. Account
// credentials appear here and nowhere else: the buyer paid for them.
type PurchaseDetail struct {
	models.Purchase
	GameName        string `json:"game_name"`
	AccountUsername string `json:"account_username,omitempty"`
	AccountPassword string `json:"account_password,omitempty"`
	AccountEmail    string `json:"account_email,omitempty"`
	GuardCode       string `json:"guard_code,omitempty"`
}
