package api

import (
	"context"
	"net/http"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
)

func (c *RESTClient) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error) {
	var user models.User
	if _, err := c.do(ctx, http.MethodPut, "/api/users/profile", upd, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *RESTClient) ChangePassword(ctx context.Context, chg PasswordChange) error {
	_, err := c.do(ctx, http.MethodPut, "/api/users/change-password", chg, nil)
	return err
}

func (c *RESTClient) GetUsage(ctx context.Context) (*models.Usage, error) {
	var usage models.Usage
	if _, err := c.do(ctx, http.MethodGet, "/api/users/usage", nil, &usage); err != nil {
		return nil, err
	}
	return &usage, nil
}

func (c *RESTClient) DeleteAccount(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/users", nil, nil)
	return err
}

func (c *RESTClient) GenerateAPIKey(ctx context.Context) (*models.APIKey, error) {
	var key models.APIKey
	if _, err := c.do(ctx, http.MethodPost, "/api/auth/apikey", nil, &key); err != nil {
		return nil, err
	}
	return &key, nil
}
