package dto

import "github.com/hesapmarket/marketplace-backend/internal/models"

type AddSuggestionRequest struct {
	GameName    string `json:"gameName"`
	Username    string `json:"username"`
	Description string `json:"description"`
}

type SuggestionResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message"`
	Suggestion *models.Suggestion `json:"suggestion,omitempty"`
}
