package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hesapmarket/marketplace-backend/internal/dto"
	"github.com/hesapmarket/marketplace-backend/internal/middleware"
	"github.com/hesapmarket/marketplace-backend/internal/services"
)

type PurchaseHandler struct {
	purchaseService *services.PurchaseService
}

func NewPurchaseHandler(purchaseService *services.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// Purchase handles POST /purchases - sells one available account of the
// requested game to the authenticated user.
func (h *PurchaseHandler) Purchase(c *fiber.Ctx) error {
	currentID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{
			Success: false, Message: "Unauthorized",
		})
	}

	var req dto.PurchaseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Invalid request body",
		})
	}
	if req.GameID == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "gameId is required",
		})
	}
	if req.UserID != 0 && req.UserID != currentID {
		return c.Status(fiber.StatusForbidden).JSON(dto.Envelope{
			Success: false, Message: "Cannot purchase for another user",
		})
	}

	if _, err := h.purchaseService.PurchaseAccount(req.GameID, currentID); err != nil {
		switch {
		case errors.Is(err, services.ErrGameNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				Success: false, Message: "Game not found",
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				Success: false, Message: "User not found",
			})
		case errors.Is(err, services.ErrNoAvailableAccounts):
			return c.Status(fiber.StatusConflict).JSON(dto.Envelope{
				Success: false, Message: "No available accounts for this game",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Purchase failed",
		})
	}

	return c.JSON(dto.Envelope{Success: true, Message: "Purchase successful"})
}

// ListUserPurchases handles GET /users/:userId/purchases - a user's own
// purchase history, credentials included.
func (h *PurchaseHandler) ListUserPurchases(c *fiber.Ctx) error {
	userID, err := c.ParamsInt("userId")
	if err != nil || userID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Invalid user id",
		})
	}

	currentID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{
			Success: false, Message: "Unauthorized",
		})
	}
	if uint(userID) != currentID {
		return c.Status(fiber.StatusForbidden).JSON(dto.Envelope{
			Success: false, Message: "Cannot view another user's purchases",
		})
	}

	purchases, err := h.purchaseService.ListUserPurchases(uint(userID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Failed to load purchases",
		})
	}
	return c.JSON(purchases)
}
