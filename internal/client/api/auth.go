package api

import (
	"context"
	"net/http"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
)

// Login exchanges credentials for a bearer token and the user record. On
// success the token is also attached to the client for subsequent requests.
func (c *RESTClient) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	body := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var user models.User
	env, err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &user)
	if err != nil {
		return nil, "", err
	}
	if env.Token == "" {
		return nil, "", &ServerError{Status: http.StatusOK, Message: "invalid response from server"}
	}

	c.SetToken(env.Token)
	return &user, env.Token, nil
}

// Register creates an account and logs it in, returning the user record and
// the issued token. The token is attached to the client like Login does.
func (c *RESTClient) Register(ctx context.Context, req RegisterRequest) (*models.User, string, error) {
	var user models.User
	env, err := c.do(ctx, http.MethodPost, "/api/auth/register", req, &user)
	if err != nil {
		return nil, "", err
	}
	if env.Token == "" {
		return nil, "", &ServerError{Status: http.StatusOK, Message: "invalid response from server"}
	}

	c.SetToken(env.Token)
	return &user, env.Token, nil
}

// Me validates the attached token and returns the current user record.
func (c *RESTClient) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if _, err := c.do(ctx, http.MethodGet, "/api/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout asks the gateway to invalidate the attached token. Local detachment
// is the caller's job; the session controller clears regardless of outcome.
func (c *RESTClient) Logout(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
	return err
}
