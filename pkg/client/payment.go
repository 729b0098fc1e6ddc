package client

import (
	"context"
	"net/url"

	"homegate/pkg/model"
)

type PaymentClient struct {
	c *Client
}

func NewPaymentClient(c *Client) *PaymentClient {
	return &PaymentClient{c: c}
}

// Initialize requests a payment-session reference for a booking. The caller
// hands the returned authorization URL to the hosted checkout; the gateway
// never settles a payment itself.
func (pc *PaymentClient) Initialize(ctx context.Context, bookingID, email string, bookingType model.BookingType) (*model.PaymentInit, error) {
	body := map[string]string{
		"email": email,
		"type":  string(bookingType),
	}
	resp, err := pc.c.POST(ctx, "/payments/initialize/"+url.PathEscape(bookingID), body)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Data model.PaymentInit `json:"data"`
	}
	if err := resp.DecodeJSON(&wrapper); err != nil {
		return nil, err
	}
	return &wrapper.Data, nil
}

// Verify asks the server for the settled state of a checkout by reference.
// The webhook-driven server state is the source of truth; callers re-fetch
// bookings afterwards instead of marking anything paid locally.
func (pc *PaymentClient) Verify(ctx context.Context, reference string) (*model.Payment, error) {
	resp, err := pc.c.GET(ctx, "/payments/verify/"+url.PathEscape(reference))
	if err != nil {
		return nil, err
	}
	var payment model.Payment
	if err := unwrap(resp, "payment", &payment); err != nil {
		return nil, err
	}
	return &payment, nil
}

func (pc *PaymentClient) History(ctx context.Context) ([]*model.Payment, error) {
	resp, err := pc.c.GET(ctx, "/payments/history")
	if err != nil {
		return nil, err
	}
	var payments []*model.Payment
	if err := unwrap(resp, "payments", &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
