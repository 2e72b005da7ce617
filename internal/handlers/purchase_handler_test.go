package handlers_test

import (
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hesapmarket/marketplace-backend/internal/dto"
	"github.com/hesapmarket/marketplace-backend/internal/models"
)

func TestPurchaseEndpoint(t *testing.T) {
	app, db, _ := newTestApp(t)
	aliceToken, aliceID := registerUser(t, app, "alice")
	bobToken, _ := registerUser(t, app, "bob")

	game := models.Game{Name: "Portal 2", Platform: "steam", Price: 29.99}
	if err := db.Create(&game).Error; err != nil {
		t.Fatalf("seed game: %v", err)
	}
	account := models.GameAccount{
		GameID: game.ID, Username: "acc1", Password: "hunter2",
		Email: "acc1@mail.com", GuardCode: "GUARD", Status: models.AccountAvailable,
	}
	if err := db.Create(&account).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}

	resp := doRequest(t, app, fiber.MethodPost, "/api/purchases", "", fiber.Map{"gameId": game.ID})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", resp.StatusCode)
	}

	resp = doRequest(t, app, fiber.MethodPost, "/api/purchases", aliceToken, fiber.Map{})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("missing gameId status = %d, want 400", resp.StatusCode)
	}

	resp = doRequest(t, app, fiber.MethodPost, "/api/purchases", bobToken, fiber.Map{
		"gameId": game.ID,
		"userId": aliceID,
	})
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("mismatched user status = %d, want 403", resp.StatusCode)
	}

	resp = doRequest(t, app, fiber.MethodPost, "/api/purchases", aliceToken, fiber.Map{"gameId": game.ID})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("purchase status = %d, want 200", resp.StatusCode)
	}

	// Stock is exhausted now.
	resp = doRequest(t, app, fiber.MethodPost, "/api/purchases", bobToken, fiber.Map{"gameId": game.ID})
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("sold-out status = %d, want 409", resp.StatusCode)
	}

	resp = doRequest(t, app, fiber.MethodPost, "/api/purchases", aliceToken, fiber.Map{"gameId": 9999})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("unknown game status = %d, want 404", resp.StatusCode)
	}
}

func TestListUserPurchasesEndpoint(t *testing.T) {
	app, db, _ := newTestApp(t)
	aliceToken, aliceID := registerUser(t, app, "alice")
	bobToken, _ := registerUser(t, app, "bob")

	game := models.Game{Name: "Portal 2", Platform: "steam", Price: 29.99}
	if err := db.Create(&game).Error; err != nil {
		t.Fatalf("seed game: %v", err)
	}
	account := models.GameAccount{
		GameID: game.ID, Username: "acc1", Password: "hunter2",
		Email: "acc1@mail.com", Status: models.AccountAvailable,
	}
	if err := db.Create(&account).Error; err != nil {
		t.Fatalf("seed account: %v", err)
	}

	resp := doRequest(t, app, fiber.MethodPost, "/api/purchases", aliceToken, fiber.Map{"gameId": game.ID})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("purchase status = %d, want 200", resp.StatusCode)
	}

	path := fmt.Sprintf("/api/users/%d/purchases", aliceID)

	// Only the owner can read their history.
	resp = doRequest(t, app, fiber.MethodGet, path, bobToken, nil)
	if resp.StatusCode != fiber.StatusForbidden {
		t.Errorf("other user status = %d, want 403", resp.StatusCode)
	}

	resp = doRequest(t, app, fiber.MethodGet, path, aliceToken, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var purchases []dto.PurchaseDetail
	decodeBody(t, resp, &purchases)
	if len(purchases) != 1 {
		t.Fatalf("len(purchases) = %d, want 1", len(purchases))
	}
	got := purchases[0]
	if got.GameName != "Portal 2" {
		t.Errorf("game name = %q, want Portal 2", got.GameName)
	}
	if got.AccountUsername != "acc1" || got.AccountPassword != "hunter2" {
		t.Errorf("credentials = %q/%q, want acc1/hunter2", got.AccountUsername, got.AccountPassword)
	}
}
