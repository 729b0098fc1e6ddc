package model

import "time"

// PaymentInit is the payment-session reference handed back by the server when
// a checkout is initialized. AuthorizationURL points at the gateway-hosted
// checkout page; Reference is the opaque handle used for later verification.
type PaymentInit struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code,omitempty"`
	Reference        string `json:"reference"`
}

type Payment struct {
	ID         string    `json:"_id"`
	BookingRef string    `json:"booking"`
	Reference  string    `json:"reference"`
	Amount     float64   `json:"amount"`
	Currency   string    `json:"currency,omitempty"`
	Status     string    `json:"status"`
	PaidAt     time.Time `json:"paidAt,omitempty"`
}
