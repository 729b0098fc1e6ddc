package client

import (
	"context"
	"net/url"

	"homegate/pkg/model"
)

type BookingClient struct {
	c *Client
}

func NewBookingClient(c *Client) *BookingClient {
	return &BookingClient{c: c}
}

func (bc *BookingClient) decodeOne(resp *Response) (*model.Booking, error) {
	var booking model.Booking
	if err := unwrap(resp, "booking", &booking); err != nil {
		return nil, err
	}
	booking.Normalize()
	return &booking, nil
}

func (bc *BookingClient) decodeMany(resp *Response) ([]*model.Booking, error) {
	var bookings []*model.Booking
	if err := unwrap(resp, "bookings", &bookings); err != nil {
		return nil, err
	}
	for _, b := range bookings {
		b.Normalize()
	}
	return bookings, nil
}

func (bc *BookingClient) List(ctx context.Context) ([]*model.Booking, error) {
	resp, err := bc.c.GET(ctx, "/bookings")
	if err != nil {
		return nil, err
	}
	return bc.decodeMany(resp)
}

func (bc *BookingClient) Get(ctx context.Context, id string) (*model.Booking, error) {
	resp, err := bc.c.GET(ctx, "/bookings/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	return bc.decodeOne(resp)
}

func (bc *BookingClient) Create(ctx context.Context, req model.BookingRequest) (*model.Booking, error) {
	resp, err := bc.c.POST(ctx, "/bookings", req)
	if err != nil {
		return nil, err
	}
	return bc.decodeOne(resp)
}

func (bc *BookingClient) Update(ctx context.Context, id string, patch map[string]any) (*model.Booking, error) {
	resp, err := bc.c.PATCH(ctx, "/bookings/"+url.PathEscape(id), patch)
	if err != nil {
		return nil, err
	}
	return bc.decodeOne(resp)
}

func (bc *BookingClient) Cancel(ctx context.Context, id, reason string) (*model.Booking, error) {
	body := map[string]string{"cancellationReason": reason}
	resp, err := bc.c.PATCH(ctx, "/bookings/"+url.PathEscape(id)+"/cancel", body)
	if err != nil {
		return nil, err
	}
	return bc.decodeOne(resp)
}

func (bc *BookingClient) Confirm(ctx context.Context, id string) (*model.Booking, error) {
	resp, err := bc.c.PATCH(ctx, "/bookings/"+url.PathEscape(id)+"/confirm", nil)
	if err != nil {
		return nil, err
	}
	return bc.decodeOne(resp)
}

func (bc *BookingClient) Reject(ctx context.Context, id string) (*model.Booking, error) {
	resp, err := bc.c.PATCH(ctx, "/bookings/"+url.PathEscape(id)+"/reject", nil)
	if err != nil {
		return nil, err
	}
	return bc.decodeOne(resp)
}

func (bc *BookingClient) ConfirmPayment(ctx context.Context, id string) (*model.Booking, error) {
	resp, err := bc.c.PATCH(ctx, "/bookings/"+url.PathEscape(id)+"/confirm-payment", nil)
	if err != nil {
		return nil, err
	}
	return bc.decodeOne(resp)
}

func (bc *BookingClient) Stats(ctx context.Context) (*model.BookingStats, error) {
	resp, err := bc.c.GET(ctx, "/bookings/stats/summary")
	if err != nil {
		return nil, err
	}
	var stats model.BookingStats
	if err := unwrap(resp, "stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
