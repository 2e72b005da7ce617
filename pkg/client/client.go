// Package client is a typed gateway to the marketplace API. It mirrors the
// front end's data layer: one method per endpoint, the uniform envelope
// decoded for you, and the logged-in user cached on the client.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hesapmarket/marketplace-backend/internal/dto"
	"github.com/hesapmarket/marketplace-backend/internal/models"
)

// APIError is a non-2xx response decoded from the envelope.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
}

type Client struct {
	baseURL string
	http    *http.Client

	mu    sync.RWMutex
	user  *models.User
	token string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// CurrentUser returns the cached logged-in user, or nil.
func (c *Client) CurrentUser() *models.User {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.user
}

// Logout drops the cached session.
func (c *Client) Logout() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = nil
	c.token = ""
}

func (c *Client) setSession(user *models.User, token string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = user
	c.token = token
}

func (c *Client) call(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/api"+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	c.mu.RLock()
	token := c.token
	c.mu.RUnlock()
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env dto.Envelope
		if err := json.Unmarshal(data, &env); err == nil && env.Message != "" {
			return &APIError{Status: resp.StatusCode, Message: env.Message}
		}
		return &APIError{Status: resp.StatusCode, Message: http.StatusText(resp.StatusCode)}
	}

	if out != nil {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func (c *Client) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	var resp dto.AuthResponse
	err := c.call(ctx, http.MethodPost, "/users/register", dto.RegisterRequest{
		Username: username, Email: email, Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.setSession(resp.User, resp.Token)
	return resp.User, nil
}

func (c *Client) Login(ctx context.Context, username, password string) (*models.User, error) {
	var resp dto.AuthResponse
	err := c.call(ctx, http.MethodPost, "/users/login", dto.LoginRequest{
		Username: username, Password: password,
	}, &resp)
	if err != nil {
		return nil, err
	}
	c.setSession(resp.User, resp.Token)
	return resp.User, nil
}

func (c *Client) Games(ctx context.Context) (map[uint]dto.GameWithAccounts, error) {
	out := make(map[uint]dto.GameWithAccounts)
	if err := c.call(ctx, http.MethodGet, "/games", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddGame(ctx context.Context, req dto.AddGameRequest) (*models.Game, error) {
	var resp dto.GameResponse
	if err := c.call(ctx, http.MethodPost, "/games", req, &resp); err != nil {
		return nil, err
	}
	return resp.Game, nil
}

func (c *Client) DeleteGame(ctx context.Context, gameID uint) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/games/%d", gameID), nil, nil)
}

func (c *Client) AddAccount(ctx context.Context, gameID uint, req dto.AddAccountRequest) (*models.GameAccount, error) {
	var resp dto.AccountResponse
	if err := c.call(ctx, http.MethodPost, fmt.Sprintf("/games/%d/accounts", gameID), req, &resp); err != nil {
		return nil, err
	}
	return resp.Account, nil
}

func (c *Client) DeleteAccount(ctx context.Context, gameID, accountID uint) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/games/%d/accounts/%d", gameID, accountID), nil, nil)
}

// PurchaseAccount buys one available account of the game for the logged-in
// user.
func (c *Client) PurchaseAccount(ctx context.Context, gameID uint) error {
	var userID uint
	if u := c.CurrentUser(); u != nil {
		userID = u.ID
	}
	return c.call(ctx, http.MethodPost, "/purchases", dto.PurchaseRequest{
		GameID: gameID, UserID: userID,
	}, nil)
}

func (c *Client) Keys(ctx context.Context) (map[uint]dto.KeyWithGame, error) {
	out := make(map[uint]dto.KeyWithGame)
	if err := c.call(ctx, http.MethodGet, "/keys", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddKey(ctx context.Context, req dto.AddKeyRequest) (*models.Key, error) {
	var resp dto.KeyResponse
	if err := c.call(ctx, http.MethodPost, "/keys", req, &resp); err != nil {
		return nil, err
	}
	return resp.Key, nil
}

func (c *Client) DeleteKey(ctx context.Context, keyID uint) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/keys/%d", keyID), nil, nil)
}

// UseKey redeems a key for the logged-in user.
func (c *Client) UseKey(ctx context.Context, keyID uint) error {
	var userID uint
	if u := c.CurrentUser(); u != nil {
		userID = u.ID
	}
	return c.call(ctx, http.MethodPost, fmt.Sprintf("/keys/%d/use", keyID), dto.UseKeyRequest{
		UserID: userID,
	}, nil)
}

func (c *Client) AddSuggestion(ctx context.Context, req dto.AddSuggestionRequest) (*models.Suggestion, error) {
	var resp dto.SuggestionResponse
	if err := c.call(ctx, http.MethodPost, "/suggestions", req, &resp); err != nil {
		return nil, err
	}
	return resp.Suggestion, nil
}

func (c *Client) Suggestions(ctx context.Context) (map[uint]models.Suggestion, error) {
	out := make(map[uint]models.Suggestion)
	if err := c.call(ctx, http.MethodGet, "/suggestions", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteSuggestion(ctx context.Context, id uint) error {
	return c.call(ctx, http.MethodDelete, fmt.Sprintf("/suggestions/%d", id), nil, nil)
}

func (c *Client) Users(ctx context.Context) (map[string]models.User, error) {
	out := make(map[string]models.User)
	if err := c.call(ctx, http.MethodGet, "/users", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) DeleteUser(ctx context.Context, username string) error {
	return c.call(ctx, http.MethodDelete, "/users/"+username, nil, nil)
}

func (c *Client) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	var out dto.StatsResponse
	if err := c.call(ctx, http.MethodGet, "/stats", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UserPurchases(ctx context.Context, userID uint) ([]dto.PurchaseDetail, error) {
	var out []dto.PurchaseDetail
	if err := c.call(ctx, http.MethodGet, fmt.Sprintf("/users/%d/purchases", userID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
