package api

import (
	"context"

	"github.com/x88a9/edge-lab/internal/model"
)

// Login exchanges credentials for a bearer token and stores it on the
// session. Any previous token is replaced.
func (c *Client) Login(ctx context.Context, creds model.Credentials) error {
	if err := model.ValidatePayload(creds); err != nil {
		return err
	}
	var token model.TokenResponse
	if err := c.post(ctx, "auth", "/auth/login", creds, &token); err != nil {
		return err
	}
	return c.session.SetToken(token.AccessToken)
}

// Me returns the account behind the current token. Useful as a cheap
// session probe on startup.
func (c *Client) Me(ctx context.Context) (model.User, error) {
	var user model.User
	err := c.get(ctx, "auth", "/auth/me", nil, &user)
	return user, err
}

// Logout drops the local session. There is no server-side revocation
// endpoint; the token simply ages out.
func (c *Client) Logout() {
	c.session.Clear()
}
