package api

import (
	"context"
	"net/http"

	"github.com/aadarshprajapati/docuchat-cli/internal/client/models"
)

func (c *RESTClient) ListPlans(ctx context.Context) ([]models.Plan, error) {
	var plans []models.Plan
	if _, err := c.do(ctx, http.MethodGet, "/api/payments/plans", nil, &plans); err != nil {
		return nil, err
	}
	return plans, nil
}

func (c *RESTClient) GetSubscription(ctx context.Context) (*models.Subscription, error) {
	var sub models.Subscription
	if _, err := c.do(ctx, http.MethodGet, "/api/payments/subscription", nil, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *RESTClient) Subscribe(ctx context.Context, req SubscribeRequest) (*models.Subscription, error) {
	var sub models.Subscription
	if _, err := c.do(ctx, http.MethodPost, "/api/payments/subscribe", req, &sub); err != nil {
		return nil, err
	}
	return &sub, nil
}

func (c *RESTClient) CancelSubscription(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodPost, "/api/payments/cancel", nil, nil)
	return err
}

func (c *RESTClient) PaymentHistory(ctx context.Context) ([]models.Payment, error) {
	var history []models.Payment
	if _, err := c.do(ctx, http.MethodGet, "/api/payments/history", nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func (c *RESTClient) UpdatePaymentMethod(ctx context.Context, pm models.PaymentMethod) error {
	_, err := c.do(ctx, http.MethodPut, "/api/payments/method", pm, nil)
	return err
}
