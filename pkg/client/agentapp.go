package client

import (
	"context"
	"net/url"

	"homegate/pkg/model"
)

type AgentApplicationClient struct {
	c *Client
}

func NewAgentApplicationClient(c *Client) *AgentApplicationClient {
	return &AgentApplicationClient{c: c}
}

func (ac *AgentApplicationClient) Apply(ctx context.Context, application *model.AgentApplication) (*model.AgentApplication, error) {
	resp, err := ac.c.POST(ctx, "/agent-applications/apply", application)
	if err != nil {
		return nil, err
	}
	var created model.AgentApplication
	if err := unwrap(resp, "application", &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (ac *AgentApplicationClient) Pending(ctx context.Context) ([]*model.AgentApplication, error) {
	resp, err := ac.c.GET(ctx, "/agent-applications/pending")
	if err != nil {
		return nil, err
	}
	var applications []*model.AgentApplication
	if err := unwrap(resp, "applications", &applications); err != nil {
		return nil, err
	}
	return applications, nil
}

func (ac *AgentApplicationClient) Approve(ctx context.Context, userID string) error {
	_, err := ac.c.PATCH(ctx, "/agent-applications/"+url.PathEscape(userID)+"/approve", nil)
	return err
}

func (ac *AgentApplicationClient) Reject(ctx context.Context, userID string) error {
	_, err := ac.c.PATCH(ctx, "/agent-applications/"+url.PathEscape(userID)+"/reject", nil)
	return err
}

// API bundles the typed clients sharing one transport, token source and
// cookie jar.
type API struct {
	Auth              *AuthClient
	Bookings          *BookingClient
	Properties        *PropertyClient
	Payments          *PaymentClient
	Wishlist          *WishlistClient
	Reviews           *ReviewClient
	Notifications     *NotificationClient
	AgentApplications *AgentApplicationClient
}

func NewAPI(core *Client) *API {
	return &API{
		Auth:              NewAuthClient(core),
		Bookings:          NewBookingClient(core),
		Properties:        NewPropertyClient(core),
		Payments:          NewPaymentClient(core),
		Wishlist:          NewWishlistClient(core),
		Reviews:           NewReviewClient(core),
		Notifications:     NewNotificationClient(core),
		AgentApplications: NewAgentApplicationClient(core),
	}
}
