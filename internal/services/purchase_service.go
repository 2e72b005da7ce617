package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/hesapmarket/marketplace-backend/internal/dto"
	"github.com/hesapmarket/marketplace-backend/internal/models"
	"gorm.io/gorm"
)

var ErrNoAvailableAccounts = errors.New("no available accounts for this game")

type PurchaseService struct {
	db *gorm.DB
}

func NewPurchaseService(db *gorm.DB) *PurchaseService {
	return &PurchaseService{db: db}
}

// PurchaseAccount sells the lowest-id available account of the game to the
// user. The claim is a conditional update on the account's status, so two
// concurrent purchases of the last account cannot both succeed: the loser's
// update matches zero rows, it retries the selection and finds nothing
// left. The account flip and the purchase row commit together.
func (s *PurchaseService) PurchaseAccount(gameID, userID uint) (*models.Purchase, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	var purchase *models.Purchase
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var game models.Game
		if err := tx.First(&game, gameID).Error; err != nil {
			return ErrGameNotFound
		}

		for {
			var account models.GameAccount
			err := tx.
				Where("game_id = ? AND status = ?", gameID, models.AccountAvailable).
				Order("id ASC").
				First(&account).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoAvailableAccounts
			}
			if err != nil {
				return fmt.Errorf("failed to select account: %w", err)
			}

			now := time.Now()
			result := tx.Model(&models.GameAccount{}).
				Where("id = ? AND status = ?", account.ID, models.AccountAvailable).
				Updates(map[string]interface{}{
					"status":       models.AccountSold,
					"purchased_by": userID,
					"purchased_at": now,
				})
			if result.Error != nil {
				return fmt.Errorf("failed to claim account: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				// Claimed by a concurrent purchase; try the next account.
				continue
			}

			p := models.Purchase{
				UserID:       userID,
				GameID:       gameID,
				AccountID:    &account.ID,
				PurchaseType: models.PurchaseTypeAccount,
				Price:        game.EffectivePrice(),
			}
			if err := tx.Create(&p).Error; err != nil {
				return fmt.Errorf("failed to record purchase: %w", err)
			}
			purchase = &p
			return nil
		}
	})
	if err != nil {
		return nil, err
	}
	return purchase, nil
}

// ListUserPurchases returns the user's purchase history newest-first, with
// game names attached and, for account purchases, the credentials the buyer
// paid for.
func (s *PurchaseService) ListUserPurchases(userID uint) ([]dto.PurchaseDetail, error) {
	var purchases []models.Purchase
	if err := s.db.Where("user_id = ?", userID).Order("created DESC").Find(&purchases).Error; err != nil {
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	gameIDs := make([]uint, 0, len(purchases))
	accountIDs := make([]uint, 0, len(purchases))
	for _, p := range purchases {
		gameIDs = append(gameIDs, p.GameID)
		if p.AccountID != nil {
			accountIDs = append(accountIDs, *p.AccountID)
		}
	}

	gamesByID := make(map[uint]models.Game)
	if len(gameIDs) > 0 {
		var games []models.Game
		if err := s.db.Select("id", "name").Where("id IN ?", gameIDs).Find(&games).Error; err != nil {
			return nil, fmt.Errorf("failed to load purchase games: %w", err)
		}
		for _, g := range games {
			gamesByID[g.ID] = g
		}
	}

	accountsByID := make(map[uint]models.GameAccount)
	if len(accountIDs) > 0 {
		var accounts []models.GameAccount
		if err := s.db.Where("id IN ?", accountIDs).Find(&accounts).Error; err != nil {
			return nil, fmt.Errorf("failed to load purchased accounts: %w", err)
		}
		for _, a := range accounts {
			accountsByID[a.ID] = a
		}
	}

	out := make([]dto.PurchaseDetail, 0, len(purchases))
	for _, p := range purchases {
		detail := dto.PurchaseDetail{
			Purchase: p,
			GameName: gamesByID[p.GameID].Name,
		}
		if p.AccountID != nil {
			if a, ok := accountsByID[*p.AccountID]; ok {
				detail.AccountUsername = a.Username
				detail.AccountPassword = a.Password
				detail.AccountEmail = a.Email
				detail.GuardCode = a.GuardCode
			}
		}
		out = append(out, detail)
	}
	return out, nil
}
