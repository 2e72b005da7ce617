package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/hesapmarket/marketplace-backend/internal/config"
	"github.com/hesapmarket/marketplace-backend/internal/database"
	"github.com/hesapmarket/marketplace-backend/internal/dto"
	"github.com/hesapmarket/marketplace-backend/internal/handlers"
	"github.com/hesapmarket/marketplace-backend/internal/models"
	"github.com/hesapmarket/marketplace-backend/internal/routes"
	"github.com/hesapmarket/marketplace-backend/internal/services"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp wires the full route table against an in-memory database, with
// the bootstrap admin seeded the same way the server does at startup.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB, *config.Config) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	db.Exec("PRAGMA foreign_keys = ON")

	err = db.AutoMigrate(
		&models.User{},
		&models.Game{},
		&models.GameAccount{},
		&models.Key{},
		&models.Suggestion{},
		&models.Purchase{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	database.DB = db

	cfg := &config.Config{
		JWTSecret:     "test-secret",
		JWTExpiry:     time.Hour,
		AdminPassword: "admin123",
		AdminEmail:    "admin@example.com",
		AdminToken:    "ops-secret",
		StaticDir:     t.TempDir(),
	}
	if err := database.SeedAdmin(cfg); err != nil {
		t.Fatalf("failed to seed admin: %v", err)
	}

	authService := services.NewAuthService(db, cfg)
	catalogService := services.NewCatalogService(db)
	keyService := services.NewKeyService(db)
	purchaseService := services.NewPurchaseService(db)
	suggestionService := services.NewSuggestionService(db)
	userService := services.NewUserService(db)
	statsService := services.NewStatsService(db)

	app := fiber.New()
	routes.Setup(app, cfg, db,
		handlers.NewAuthHandler(authService),
		handlers.NewCatalogHandler(catalogService),
		handlers.NewKeyHandler(keyService),
		handlers.NewPurchaseHandler(purchaseService),
		handlers.NewSuggestionHandler(suggestionService),
		handlers.NewUserHandler(userService),
		handlers.NewStatsHandler(statsService),
		handlers.NewHealthHandler(),
	)
	return app, db, cfg
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func doRequestWithHeader(t *testing.T, app *fiber.App, method, path, token, header, value string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(method, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set(header, value)

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response, out interface{}) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func registerUser(t *testing.T, app *fiber.App, username string) (string, uint) {
	t.Helper()
	resp := doRequest(t, app, fiber.MethodPost, "/api/users/register", "", fiber.Map{
		"username": username,
		"email":    username + "@example.com",
		"password": "secret123",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register %s: status %d", username, resp.StatusCode)
	}
	var out dto.AuthResponse
	decodeBody(t, resp, &out)
	return out.Token, out.User.ID
}

func loginAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doRequest(t, app, fiber.MethodPost, "/api/users/login", "", fiber.Map{
		"username": "admin",
		"password": "admin123",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("admin login: status %d", resp.StatusCode)
	}
	var out dto.AuthResponse
	decodeBody(t, resp, &out)
	return out.Token
}
