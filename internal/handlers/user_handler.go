package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hesapmarket/marketplace-backend/internal/dto"
	"github.com/hesapmarket/marketplace-backend/internal/services"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles GET /users - all users keyed by username, sensitive fields
// excluded.
func (h *UserHandler) List(c *fiber.Ctx) error {
	users, err := h.userService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Failed to load users",
		})
	}
	return c.JSON(users)
}

func (h *UserHandler) Delete(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Username is required",
		})
	}

	if err := h.userService.Delete(username); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				Success: false, Message: "User not found",
			})
		case errors.Is(err, services.ErrAdminUndeletable):
			return c.Status(fiber.StatusForbidden).JSON(dto.Envelope{
				Success: false, Message: "The admin account cannot be deleted",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Failed to delete user",
		})
	}

	return c.JSON(dto.Envelope{Success: true, Message: "User deleted successfully"})
}
