package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hesapmarket/marketplace-backend/internal/services"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// Get handles GET /stats. A storage failure yields zeroed counters, never
// an error status.
func (h *StatsHandler) Get(c *fiber.Ctx) error {
	return c.JSON(h.statsService.GetStats())
}
