package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hesapmarket/marketplace-backend/internal/dto"
	"github.com/hesapmarket/marketplace-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrGameNotFound    = errors.New("game not found")
	ErrAccountNotFound = errors.New("account not found")
)

type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// ListGames returns every game keyed by id with its accounts attached in a
// single batched fetch. Only safe account columns are selected; a game
// without accounts gets an empty list, not a missing field.
func (s *CatalogService) ListGames() (map[uint]dto.GameWithAccounts, error) {
	var games []models.Game
	err := s.db.
		Preload("Accounts", func(db *gorm.DB) *gorm.DB {
			return db.Select("id", "game_id", "username", "email", "status")
		}).
		Order("created DESC").
		Find(&games).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list games: %w", err)
	}

	out := make(map[uint]dto.GameWithAccounts, len(games))
	for _, g := range games {
		accounts := make([]dto.AccountSummary, 0, len(g.Accounts))
		for _, a := range g.Accounts {
			accounts = append(accounts, dto.AccountSummary{
				ID:       a.ID,
				Username: a.Username,
				Email:    a.Email,
				Status:   a.Status,
			})
		}
		out[g.ID] = dto.GameWithAccounts{Game: g, Accounts: accounts}
	}
	return out, nil
}

func (s *CatalogService) AddGame(req *dto.AddGameRequest) (*models.Game, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, fmt.Errorf("%w: game name is required", ErrValidation)
	}

	game := models.Game{
		Name:         strings.TrimSpace(req.Name),
		AppID:        req.AppID,
		Platform:     req.Platform,
		Price:        req.Price,
		Category:     req.Category,
		Description:  req.Description,
		LibraryImage: req.LibraryImage,
		IsSpecial:    req.IsSpecial,
		SpecialPrice: req.SpecialPrice,
	}
	if err := s.db.Create(&game).Error; err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}
	return &game, nil
}

// DeleteGame removes the game; accounts and keys go with it via the cascade
// constraint.
func (s *CatalogService) DeleteGame(gameID uint) error {
	result := s.db.Delete(&models.Game{}, gameID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete game: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (s *CatalogService) AddAccount(gameID uint, req *dto.AddAccountRequest) (*models.GameAccount, error) {
	if req.Username == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: account username and password are required", ErrValidation)
	}

	var game models.Game
	if err := s.db.First(&game, gameID).Error; err != nil {
		return nil, ErrGameNotFound
	}

	account := models.GameAccount{
		GameID:    gameID,
		Username:  req.Username,
		Password:  req.Password,
		Email:     req.Email,
		GuardCode: req.GuardCode,
		Status:    models.AccountAvailable,
	}
	if err := s.db.Create(&account).Error; err != nil {
		return nil, fmt.Errorf("failed to create account: %w", err)
	}
	return &account, nil
}

func (s *CatalogService) DeleteAccount(gameID, accountID uint) error {
	result := s.db.Where("id = ? AND game_id = ?", accountID, gameID).Delete(&models.GameAccount{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}
