package models

import "time"

// Plan is a subscription tier offered by the gateway.
type Plan struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	PriceCents int      `json:"priceCents"`
	Interval   string   `json:"interval"`
	Features   []string `json:"features,omitempty"`
}

// Subscription is the account's current plan binding.
type Subscription struct {
	PlanID   string    `json:"planId"`
	Status   string    `json:"status"`
	RenewsAt time.Time `json:"renewsAt,omitempty"`
}

// Payment is a historical charge against the account.
type Payment struct {
	ID          string    `json:"id"`
	AmountCents int       `json:"amountCents"`
	Currency    string    `json:"currency"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PaymentMethod is the card on file, as far as the gateway exposes it.
type PaymentMethod struct {
	Brand    string `json:"brand"`
	Last4    string `json:"last4"`
	ExpMonth int    `json:"expMonth"`
	ExpYear  int    `json:"expYear"`
}
