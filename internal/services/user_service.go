package services

import (
	"errors"
	"fmt"

	"github.com/hesapmarket/marketplace-backend/internal/models"
	"gorm.io/gorm"
)

var ErrAdminUndeletable = errors.New("the bootstrap admin cannot be deleted")

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// List returns all users keyed by username. The password hash never leaves
// the model's json:"-" field.
func (s *UserService) List() (map[string]models.User, error) {
	var users []models.User
	if err := s.db.Order("created DESC").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	out := make(map[string]models.User, len(users))
	for _, u := range users {
		out[u.Username] = u
	}
	return out, nil
}

func (s *UserService) Delete(username string) error {
	if username == "admin" {
		return ErrAdminUndeletable
	}

	result := s.db.Where("username = ?", username).Delete(&models.User{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
