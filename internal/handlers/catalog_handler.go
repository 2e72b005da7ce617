package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/hesapmarket/marketplace-backend/internal/dto"
	"github.com/hesapmarket/marketplace-backend/internal/services"
)

type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListGames handles GET /games - the public catalog, keyed by game id.
func (h *CatalogHandler) ListGames(c *fiber.Ctx) error {
	games, err := h.catalogService.ListGames()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Failed to load games",
		})
	}
	return c.JSON(games)
}

func (h *CatalogHandler) AddGame(c *fiber.Ctx) error {
	var req dto.AddGameRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Invalid request body",
		})
	}

	game, err := h.catalogService.AddGame(&req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
				Success: false, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Failed to add game",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.GameResponse{
		Success: true, Message: "Game added successfully", Game: game,
	})
}

func (h *CatalogHandler) DeleteGame(c *fiber.Ctx) error {
	gameID, err := c.ParamsInt("id")
	if err != nil || gameID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Invalid game id",
		})
	}

	if err := h.catalogService.DeleteGame(uint(gameID)); err != nil {
		if errors.Is(err, services.ErrGameNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				Success: false, Message: "Game not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Failed to delete game",
		})
	}

	return c.JSON(dto.Envelope{Success: true, Message: "Game deleted successfully"})
}

func (h *CatalogHandler) AddAccount(c *fiber.Ctx) error {
	gameID, err := c.ParamsInt("gameId")
	if err != nil || gameID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Invalid game id",
		})
	}

	var req dto.AddAccountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Invalid request body",
		})
	}

	account, err := h.catalogService.AddAccount(uint(gameID), &req)
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
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Failed to add account",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.AccountResponse{
		Success: true, Message: "Account added successfully", Account: account,
	})
}

func (h *CatalogHandler) DeleteAccount(c *fiber.Ctx) error {
	gameID, err := c.ParamsInt("gameId")
	if err != nil || gameID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Invalid game id",
		})
	}
	accountID, err := c.ParamsInt("accountId")
	if err != nil || accountID < 1 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Envelope{
			Success: false, Message: "Invalid account id",
		})
	}

	if err := h.catalogService.DeleteAccount(uint(gameID), uint(accountID)); err != nil {
		if errors.Is(err, services.ErrAccountNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Envelope{
				Success: false, Message: "Account not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Envelope{
			Success: false, Message: "Failed to delete account",
		})
	}

	return c.JSON(dto.Envelope{Success: true, Message: "Account deleted successfully"})
}
