package dto

import "github.com/hesapmarket/marketplace-backend/internal/models"

type AddGameRequest struct {
	Name         string  `json:"name"`
	AppID        string  `json:"appId"`
	Platform     string  `json:"platform"`
	Price        float64 `json:"price"`
	Category     string  `json:"category"`
	Description  string  `json:"description"`
	LibraryImage string  `json:"libraryImage"`
	IsSpecial    bool    `json:"isSpecial"`
	SpecialPrice float64 `json:"specialPrice"`
}

type AddAccountRequest struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	Email     string `json:"email"`
	GuardCode string `json:"guardCode"`
}

// AccountSummary is the catalog view of an account: credentials withheld.
type AccountSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Status   string `json:"status"`
}

// GameWithAccounts is one entry of the GET /games map. Accounts is always
// present, empty when the game has none.
type GameWithAccounts struct {
	models.Game
	Accounts []AccountSummary `json:"accounts"`
}

type GameResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Game    *models.Game `json:"game,omitempty"`
}

type AccountResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Account *models.GameAccount `json:"account,omitempty"`
}
