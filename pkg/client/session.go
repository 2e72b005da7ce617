package client

import (
	"encoding/json"
	"os"

	"github.com/hesapmarket/marketplace-backend/internal/models"
)

// Session is the persisted login state, the CLI counterpart of the web
// front end keeping the user in local storage.
type Session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// SaveSession writes the current login state to path. A logged-out client
// writes an empty session.
func (c *Client) SaveSession(path string) error {
	c.mu.RLock()
	session := Session{Token: c.token, User: c.user}
	c.mu.RUnlock()

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// LoadSession restores login state from path.
func (c *Client) LoadSession(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return err
	}

	c.mu.Lock()
	c.token = session.Token
	c.user = session.User
	c.mu.Unlock()
	return nil
}
