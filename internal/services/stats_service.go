package services

import (
	"log/slog"

	"github.com/hesapmarket/marketplace-backend/internal/dto"
	"github.com/hesapmarket/marketplace-backend/internal/models"
	"gorm.io/gorm"
)

type StatsService struct {
	db *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{db: db}
}

// GetStats aggregates the admin dashboard counters. A query failure yields
// a zero-valued response instead of an error.
func (s *StatsService) GetStats() dto.StatsResponse {
	var stats dto.StatsResponse

	queries := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalUsers, s.db.Model(&models.User{})},
		{&stats.TotalGames, s.db.Model(&models.Game{})},
		{&stats.TotalAccounts, s.db.Model(&models.GameAccount{})},
		{&stats.TotalKeys, s.db.Model(&models.Key{})},
		{&stats.SpecialGames, s.db.Model(&models.Game{}).Where("is_special = ?", true)},
		{&stats.TotalSuggestions, s.db.Model(&models.Suggestion{})},
		{&stats.TotalAdmins, s.db.Model(&models.User{}).Where("role = ?", models.RoleAdmin)},
	}

	for _, q := range queries {
		if err := q.query.Count(q.dest).Error; err != nil {
			slog.Error("stats query failed", "error", err)
			return dto.StatsResponse{}
		}
	}
	return stats
}
