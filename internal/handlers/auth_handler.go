package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hesapmarket/marketplace-backend/internal/dto"
	"github.com/hesapmarket/marketplace-backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Invalid request body",
		})
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserExists):
			return c.Status(fiber.StatusConflict).JSON(dto.Envelope{
				Success: false, Message: err.Error(),
			})
		case errors.Is(err, services.ErrValidation):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
				Success: false, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Registration failed",
		})
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Registration failed",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AuthResponse{
		Success: true,
		Message: "Registration successful",
		Token:   token,
		User:    user,
	})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Invalid request body",
		})
	}

	user, err := h.authService.Login(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				Success: false, Message: "User not found",
			})
		case errors.Is(err, services.ErrInvalidCredentials):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.Envelope{
				Success: false, Message: "Wrong password",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Login failed",
		})
	}

	token, err := h.authService.GenerateToken(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Login failed",
		})
	}

	return c.JSON(dto.AuthResponse{
		Success: true,
		Message: "Login successful",
		Token:   token,
		User:    user,
	})
}
