package api

import (
	"context"
	"net/http"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
)

func (c *RESTClient) ListModels(ctx context.Context) ([]models.Model, error) {
	var ms []models.Model
	if _, err := c.do(ctx, http.MethodGet, "/api/models", nil, &ms); err != nil {
		return nil, err
	}
	return ms, nil
}

func (c *RESTClient) GetModel(ctx context.Context, id string) (*models.Model, error) {
	var m models.Model
	if _, err := c.do(ctx, http.MethodGet, "/api/models/"+id, nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *RESTClient) CreateModel(ctx context.Context, spec models.ModelSpec) (*models.Model, error) {
	var m models.Model
	if _, err := c.do(ctx, http.MethodPost, "/api/models", spec, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// TrainModel kicks off training; the returned record carries the new status.
// Training is asynchronous on the gateway side, so callers poll GetModel.
func (c *RESTClient) TrainModel(ctx context.Context, id string) (*models.Model, error) {
	var m models.Model
	if _, err := c.do(ctx, http.MethodPost, "/api/models/"+id+"/train", nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (c *RESTClient) DeleteModel(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, "/api/models/"+id, nil, nil)
	return err
}
