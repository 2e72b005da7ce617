package routes

import (
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/hesapmarket/marketplace-backend/internal/config"
	"github.com/hesapmarket/marketplace-backend/internal/handlers"
	"github.com/hesapmarket/marketplace-backend/internal/middleware"
	"gorm.io/gorm"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	authHandler *handlers.AuthHandler,
	catalogHandler *handlers.CatalogHandler,
	keyHandler *handlers.KeyHandler,
	purchaseHandler *handlers.PurchaseHandler,
	suggestionHandler *handlers.SuggestionHandler,
	userHandler *handlers.UserHandler,
	statsHandler *handlers.StatsHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth-specific rate limit: 10 req/min per IP (stricter)
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	api.Post("/users/register", authLimiter, authHandler.Register)
	api.Post("/users/login", authLimiter, authHandler.Login)

	// Public catalog
	api.Get("/games", catalogHandler.ListGames)

	jwt := middleware.JWTProtected(cfg)
	admin := middleware.AdminRequired(db, cfg)

	// Authenticated user routes
	api.Post("/purchases", jwt, purchaseHandler.Purchase)
	api.Get("/users/:userId/purchases", jwt, purchaseHandler.ListUserPurchases)
	api.Post("/keys/:id/use", jwt, keyHandler.UseKey)
	api.Post("/suggestions", jwt, suggestionHandler.Add)

	// Admin routes
	api.Post("/games", jwt, admin, catalogHandler.AddGame)
	api.Delete("/games/:id", jwt, admin, catalogHandler.DeleteGame)
	api.Post("/games/:gameId/accounts", jwt, admin, catalogHandler.AddAccount)
	api.Delete("/games/:gameId/accounts/:accountId", jwt, admin, catalogHandler.DeleteAccount)

	api.Get("/keys", jwt, admin, keyHandler.ListKeys)
	api.Post("/keys", jwt, admin, keyHandler.AddKey)
	api.Delete("/keys/:id", jwt, admin, keyHandler.DeleteKey)

	api.Get("/suggestions", jwt, admin, suggestionHandler.List)
	api.Delete("/suggestions/:id", jwt, admin, suggestionHandler.Delete)

	api.Get("/users", jwt, admin, userHandler.List)
	api.Delete("/users/:username", jwt, admin, userHandler.Delete)

	api.Get("/stats", jwt, admin, statsHandler.Get)

	// Static front end; every non-API route falls back to the SPA document.
	app.Static("/", cfg.StaticDir)
	app.Get("*", func(c *fiber.Ctx) error {
		return c.SendFile(filepath.Join(cfg.StaticDir, "index.html"))
	})
}
