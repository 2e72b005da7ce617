package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hesapmarket/marketplace-backend/internal/dto"
	"github.com/hesapmarket/marketplace-backend/internal/middleware"
	"github.com/hesapmarket/marketplace-backend/internal/services"
)

type KeyHandler struct {
	keyService *services.KeyService
}

func NewKeyHandler(keyService *services.KeyService) *KeyHandler {
	return &KeyHandler{keyService: keyService}
}

// ListKeys handles GET /keys - the admin key inventory, keyed by key id.
func (h *KeyHandler) ListKeys(c *fiber.Ctx) error {
	keys, err := h.keyService.ListKeys()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Failed to load keys",
		})
	}
	return c.JSON(keys)
}

func (h *KeyHandler) AddKey(c *fiber.Ctx) error {
	var req dto.AddKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Invalid request body",
		})
	}

	key, err := h.keyService.AddKey(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
				Success: false, Message: err.Error(),
			})
		case errors.Is(err, services.ErrGameNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				Success: false, Message: "Game not found",
			})
		case errors.Is(err, services.ErrKeyExists):
			return c.Status(fiber.StatusConflict).JSON(dto.Envelope{
				Success: false, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Failed to add key",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.KeyResponse{
		Success: true, Message: "Key added successfully", Key: key,
	})
}

func (h *KeyHandler) DeleteKey(c *fiber.Ctx) error {
	keyID, err := c.ParamsInt("id")
	if err != nil || keyID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Invalid key id",
		})
	}

	if err := h.keyService.DeleteKey(uint(keyID)); err != nil {
		if errors.Is(err, services.ErrKeyNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				Success: false, Message: "Key not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Failed to delete key",
		})
	}

	return c.JSON(dto.Envelope{Success: true, Message: "Key deleted successfully"})
}

// UseKey handles POST /keys/:id/use - redeems a key for the authenticated
// user. A userId in the body that differs from the token's user is refused.
func (h *KeyHandler) UseKey(c *fiber.Ctx) error {
	keyID, err := c.ParamsInt("id")
	if err != nil || keyID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Invalid key id",
		})
	}

	currentID, err := middleware.CurrentUserID(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{
			Success: false, Message: "Unauthorized",
		})
	}

	var req dto.UseKeyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Invalid request body",
		})
	}
	if req.UserID != 0 && req.UserID != currentID {
		return c.Status(fiber.StatusForbidden).JSON(dto.Envelope{
			Success: false, Message: "Cannot redeem a key for another user",
		})
	}

	if err := h.keyService.UseKey(uint(keyID), currentID); err != nil {
		switch {
		case errors.Is(err, services.ErrKeyNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				Success: false, Message: "Key not found",
			})
		case errors.Is(err, services.ErrKeyAlreadyUsed):
			return c.Status(fiber.StatusConflict).JSON(dto.Envelope{
				Success: false, Message: "Key already used",
			})
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				Success: false, Message: "User not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Failed to redeem key",
		})
	}

	return c.JSON(dto.Envelope{Success: true, Message: "Key redeemed successfully"})
}
