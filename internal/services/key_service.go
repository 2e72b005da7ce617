package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/hesapmarket/marketplace-backend/internal/dto"
	"github.com/hesapmarket/marketplace-backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrKeyExists      = errors.New("key value already exists")
	ErrKeyNotFound    = errors.New("key not found")
	ErrKeyAlreadyUsed = errors.New("key already used")
)

type KeyService struct {
	db *gorm.DB
}

func NewKeyService(db *gorm.DB) *KeyService {
	return &KeyService{db: db}
}

// ListKeys returns every key keyed by id, annotated with its game name and
// the username of whoever redeemed it. Annotations load in two batched
// queries instead of one per key.
func (s *KeyService) ListKeys() (map[uint]dto.KeyWithGame, error) {
	var keys []models.Key
	if err := s.db.Order("created DESC").Find(&keys).Error; err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}

	gameIDs := make([]uint, 0, len(keys))
	userIDs := make([]uint, 0)
	for _, k := range keys {
		gameIDs = append(gameIDs, k.GameID)
		if k.UsedBy != nil {
			userIDs = append(userIDs, *k.UsedBy)
		}
	}

	gameNames := make(map[uint]string)
	if len(gameIDs) > 0 {
		var games []models.Game
		if err := s.db.Select("id", "name").Where("id IN ?", gameIDs).Find(&games).Error; err != nil {
			return nil, fmt.Errorf("failed to load key games: %w", err)
		}
		for _, g := range games {
			gameNames[g.ID] = g.Name
		}
	}

	usernames := make(map[uint]string)
	if len(userIDs) > 0 {
		var users []models.User
		if err := s.db.Select("id", "username").Where("id IN ?", userIDs).Find(&users).Error; err != nil {
			return nil, fmt.Errorf("failed to load key users: %w", err)
		}
		for _, u := range users {
			usernames[u.ID] = u.Username
		}
	}

	out := make(map[uint]dto.KeyWithGame, len(keys))
	for _, k := range keys {
		entry := dto.KeyWithGame{Key: k, GameName: gameNames[k.GameID]}
		if k.UsedBy != nil {
			entry.UsedByUsername = usernames[*k.UsedBy]
		}
		out[k.ID] = entry
	}
	return out, nil
}

func (s *KeyService) AddKey(req *dto.AddKeyRequest) (*models.Key, error) {
	keyValue := strings.TrimSpace(req.KeyValue)
	if keyValue == "" {
		return nil, fmt.Errorf("%w: key value is required", ErrValidation)
	}

	var game models.Game
	if err := s.db.First(&game, req.GameID).Error; err != nil {
		return nil, ErrGameNotFound
	}

	var existing models.Key
	if err := s.db.Where("key_value = ?", keyValue).First(&existing).Error; err == nil {
		return nil, ErrKeyExists
	}

	keyType := req.KeyType
	if keyType == "" {
		keyType = "steam"
	}

	key := models.Key{
		KeyValue: keyValue,
		GameID:   req.GameID,
		KeyType:  keyType,
		Status:   models.KeyAvailable,
	}
	if err := s.db.Create(&key).Error; err != nil {
		return nil, fmt.Errorf("failed to create key: %w", err)
	}
	return &key, nil
}

func (s *KeyService) DeleteKey(keyID uint) error {
	result := s.db.Delete(&models.Key{}, keyID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete key: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrKeyNotFound
	}
	return nil
}

// UseKey redeems a key for a user. The status flip is a single conditional
// update, so of two concurrent redemptions exactly one sees a row change;
// the loser gets ErrKeyAlreadyUsed. The consumption record commits in the
// same transaction as the flip.
func (s *KeyService) UseKey(keyID, userID uint) error {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return ErrUserNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		now := time.Now()
		result := tx.Model(&models.Key{}).
			Where("id = ? AND status = ?", keyID, models.KeyAvailable).
			Updates(map[string]interface{}{
				"status":    models.KeyUsed,
				"used_by":   userID,
				"used_date": now,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to redeem key: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			var key models.Key
			if err := tx.First(&key, keyID).Error; err != nil {
				return ErrKeyNotFound
			}
			return ErrKeyAlreadyUsed
		}

		var key models.Key
		if err := tx.First(&key, keyID).Error; err != nil {
			return fmt.Errorf("failed to load redeemed key: %w", err)
		}

		purchase := models.Purchase{
			UserID:       userID,
			GameID:       key.GameID,
			PurchaseType: models.PurchaseTypeKey,
		}
		if err := tx.Create(&purchase).Error; err != nil {
			return fmt.Errorf("failed to record key redemption: %w", err)
		}
		return nil
	})
}
