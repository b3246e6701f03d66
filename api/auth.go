package api

import (
	"context"
	"net/http"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type verifyResponse struct {
	User UserProfile `json:"user"`
}

// Login exchanges credentials for a bearer token. Bad credentials surface
// as a *StatusError carrying the backend's detail message.
func (c *Client) Login(ctx context.Context, username, password string) (LoginResponse, error) {
	var out LoginResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Username: username, Password: password}, &out)
	if err != nil {
		return LoginResponse{}, err
	}
	return out, nil
}

// Verify checks a stored bearer token and returns the profile it belongs to.
// Any failure means the token must be discarded.
func (c *Client) Verify(ctx context.Context, token string) (UserProfile, error) {
	var out verifyResponse
	if err := c.do(ctx, http.MethodPost, "/auth/verify", token, nil, &out); err != nil {
		return UserProfile{}, err
	}
	return out.User, nil
}

// Logout invalidates the token server-side. Callers treat failure as
// best-effort; the local session is cleared regardless.
func (c *Client) Logout(ctx context.Context, token string) error {
	return c.do(ctx, http.MethodPost, "/auth/logout", token, nil, nil)
}
