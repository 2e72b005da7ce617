package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hesapmarket/marketplace-backend/internal/dto"
	"github.com/hesapmarket/marketplace-backend/internal/models"
	"gorm.io/gorm"
)

var ErrSuggestionNotFound = errors.New("suggestion not found")

type SuggestionService struct {
	db *gorm.DB
}

func NewSuggestionService(db *gorm.DB) *SuggestionService {
	return &SuggestionService{db: db}
}

func (s *SuggestionService) Add(req *dto.AddSuggestionRequest) (*models.Suggestion, error) {
	if strings.TrimSpace(req.GameName) == "" {
		return nil, fmt.Errorf("%w: game name is required", ErrValidation)
	}
	if strings.TrimSpace(req.Username) == "" {
		return nil, fmt.Errorf("%w: username is required", ErrValidation)
	}

	suggestion := models.Suggestion{
		GameName:    strings.TrimSpace(req.GameName),
		Username:    strings.TrimSpace(req.Username),
		Description: req.Description,
	}
	if err := s.db.Create(&suggestion).Error; err != nil {
		return nil, fmt.Errorf("failed to create suggestion: %w", err)
	}
	return &suggestion, nil
}

// List returns all suggestions keyed by id.
func (s *SuggestionService) List() (map[uint]models.Suggestion, error) {
	var suggestions []models.Suggestion
	if err := s.db.Order("created DESC").Find(&suggestions).Error; err != nil {
		return nil, fmt.Errorf("failed to list suggestions: %w", err)
	}

	out := make(map[uint]models.Suggestion, len(suggestions))
	for _, sg := range suggestions {
		out[sg.ID] = sg
	}
	return out, nil
}

func (s *SuggestionService) Delete(id uint) error {
	result := s.db.Delete(&models.Suggestion{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete suggestion: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrSuggestionNotFound
	}
	return nil
}
