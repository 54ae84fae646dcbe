package campapi

import (
	"context"
	"net/http"
)

// Login exchanges credentials for a backend session token.
func (c *Client) Login(ctx context.Context, creds Credentials) (Session, error) {
	var s Session
	if err := c.do(ctx, http.MethodPost, c.endpoint(nil, "auth", "login"), creds, &s); err != nil {
		return Session{}, err
	}
	if s.Token == "" {
		return Session{}, ErrUnauthorized
	}
	return s, nil
}

// Me returns the user owning the token in ctx.
func (c *Client) Me(ctx context.Context) (User, error) {
	var u User
	err := c.do(ctx, http.MethodGet, c.endpoint(nil, "auth", "me"), nil, &u)
	return u, err
}
