package handlers_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hesapmarket/marketplace-backend/internal/dto"
	"github.com/hesapmarket/marketplace-backend/internal/models"
)

func TestRegisterEndpoint(t *testing.T) {
	app, _, _ := newTestApp(t)

	resp := doRequest(t, app, fiber.MethodPost, "/api/users/register", "", fiber.Map{
		"username": "alice",
		"email":    "alice@example.com",
		"password": "secret123",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("status = %d, want 201", resp.StatusCode)
	}
	var out dto.AuthResponse
	decodeBody(t, resp, &out)
	if !out.Success || out.Token == "" {
		t.Errorf("response = %+v, want success with token", out)
	}
	if out.User == nil || out.User.Role != models.RoleUser {
		t.Errorf("user = %+v, want role user", out.User)
	}

	// Same username again conflicts.
	resp = doRequest(t, app, fiber.MethodPost, "/api/users/register", "", fiber.Map{
		"username": "alice",
		"email":    "other@example.com",
		"password": "secret123",
	})
	if resp.StatusCode != fiber.StatusConflict {
		t.Errorf("duplicate status = %d, want 409", resp.StatusCode)
	}
	var env dto.Envelope
	decodeBody(t, resp, &env)
	if env.Success {
		t.Error("duplicate register reported success")
	}

	resp = doRequest(t, app, fiber.MethodPost, "/api/users/register", "", fiber.Map{
		"username": "bob",
		"email":    "bob@example.com",
		"password": "short",
	})
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Errorf("short password status = %d, want 400", resp.StatusCode)
	}
}

func TestLoginEndpoint(t *testing.T) {
	app, _, _ := newTestApp(t)
	registerUser(t, app, "alice")

	resp := doRequest(t, app, fiber.MethodPost, "/api/users/login", "", fiber.Map{
		"username": "alice",
		"password": "secret123",
	})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	var out dto.AuthResponse
	decodeBody(t, resp, &out)
	if out.Token == "" {
		t.Error("login response missing token")
	}

	resp = doRequest(t, app, fiber.MethodPost, "/api/users/login", "", fiber.Map{
		"username": "alice",
		"password": "wrong-password",
	})
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Errorf("wrong password status = %d, want 401", resp.StatusCode)
	}

	resp = doRequest(t, app, fiber.MethodPost, "/api/users/login", "", fiber.Map{
		"username": "nobody",
		"password": "secret123",
	})
	if resp.StatusCode != fiber.StatusNotFound {
		t.Errorf("unknown user status = %d, want 404", resp.StatusCode)
	}
}
