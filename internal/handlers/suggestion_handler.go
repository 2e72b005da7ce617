package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hesapmarket/marketplace-backend/internal/dto"
	"github.com/hesapmarket/marketplace-backend/internal/services"
)

type SuggestionHandler struct {
	suggestionService *services.SuggestionService
}

func NewSuggestionHandler(suggestionService *services.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

func (h *SuggestionHandler) Add(c *fiber.Ctx) error {
	var req dto.AddSuggestionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Invalid request body",
		})
	}

	suggestion, err := h.suggestionService.Add(&req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
				Success: false, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Failed to submit suggestion",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SuggestionResponse{
		Success: true, Message: "Suggestion submitted successfully", Suggestion: suggestion,
	})
}

// List handles GET /suggestions - all suggestions keyed by id.
func (h *SuggestionHandler) List(c *fiber.Ctx) error {
	suggestions, err := h.suggestionService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Failed to load suggestions",
		})
	}
	return c.JSON(suggestions)
}

func (h *SuggestionHandler) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Invalid suggestion id",
		})
	}

	if err := h.suggestionService.Delete(uint(id)); err != nil {
		if errors.Is(err, services.ErrSuggestionNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				Success: false, Message: "Suggestion not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Failed to delete suggestion",
		})
	}

	return c.JSON(dto.Envelope{Success: true, Message: "Suggestion deleted successfully"})
}
