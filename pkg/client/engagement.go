package client

import (
	"context"
	"net/url"

	"homegate/pkg/model"
)

type WishlistClient struct {
	c *Client
}

func NewWishlistClient(c *Client) *WishlistClient {
	return &WishlistClient{c: c}
}

func (wc *WishlistClient) List(ctx context.Context) ([]*model.WishlistItem, error) {
	resp, err := wc.c.GET(ctx, "/wishlist")
	if err != nil {
		return nil, err
	}
	var items []*model.WishlistItem
	if err := unwrap(resp, "wishlist", &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Toggle flips a property's wishlist membership and reports the new state.
func (wc *WishlistClient) Toggle(ctx context.Context, propertyID string) (bool, error) {
	body := map[string]string{"property": propertyID}
	resp, err := wc.c.POST(ctx, "/wishlist/toggle", body)
	if err != nil {
		return false, err
	}
	var result struct {
		InWishlist bool `json:"inWishlist"`
	}
	if err := unwrap(resp, "wishlist", &result); err != nil {
		return false, err
	}
	return result.InWishlist, nil
}

func (wc *WishlistClient) Check(ctx context.Context, propertyID string) (bool, error) {
	resp, err := wc.c.GET(ctx, "/wishlist/check/"+url.PathEscape(propertyID))
	if err != nil {
		return false, err
	}
	var result struct {
		InWishlist bool `json:"inWishlist"`
	}
	if err := unwrap(resp, "wishlist", &result); err != nil {
		return false, err
	}
	return result.InWishlist, nil
}

type ReviewClient struct {
	c *Client
}

func NewReviewClient(c *Client) *ReviewClient {
	return &ReviewClient{c: c}
}

func (rc *ReviewClient) ListByProperty(ctx context.Context, propertyID string) ([]*model.Review, error) {
	resp, err := rc.c.GET(ctx, "/review?property="+url.QueryEscape(propertyID))
	if err != nil {
		return nil, err
	}
	var reviews []*model.Review
	if err := unwrap(resp, "reviews", &reviews); err != nil {
		return nil, err
	}
	return reviews, nil
}

func (rc *ReviewClient) Create(ctx context.Context, review *model.Review) (*model.Review, error) {
	resp, err := rc.c.POST(ctx, "/review", review)
	if err != nil {
		return nil, err
	}
	var created model.Review
	if err := unwrap(resp, "review", &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (rc *ReviewClient) StatsByProperty(ctx context.Context, propertyID string) (*model.ReviewStats, error) {
	resp, err := rc.c.GET(ctx, "/review/stats/property/"+url.PathEscape(propertyID))
	if err != nil {
		return nil, err
	}
	var stats model.ReviewStats
	if err := unwrap(resp, "stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

type NotificationClient struct {
	c *Client
}

func NewNotificationClient(c *Client) *NotificationClient {
	return &NotificationClient{c: c}
}

func (nc *NotificationClient) List(ctx context.Context) ([]*model.Notification, error) {
	resp, err := nc.c.GET(ctx, "/notifications")
	if err != nil {
		return nil, err
	}
	var notifications []*model.Notification
	if err := unwrap(resp, "notifications", &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

func (nc *NotificationClient) MarkRead(ctx context.Context, id string) error {
	_, err := nc.c.PATCH(ctx, "/notifications/"+url.PathEscape(id)+"/read", nil)
	return err
}
