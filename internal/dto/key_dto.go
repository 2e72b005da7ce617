package dto

import "github.com/hesapmarket/marketplace-backend/internal/models"

type AddKeyRequest struct {
	KeyValue string `json:"keyValue"`
	GameID   uint   `json:"gameId"`
	KeyType  string `json:"keyType"`
}

type UseKeyRequest struct {
	UserID uint `json:"userId"`
}

// KeyWithGame is one entry of the GET /keys map, annotated with the game
// name and the redeeming user's username.
type KeyWithGame struct {
	models.Key
	GameName       string `json:"game_name"`
	UsedByUsername string `json:"usedBy,omitempty"`
}

type KeyResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Key     *models.Key `json:"key,omitempty"`
}
