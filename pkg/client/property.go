package client

import (
	"context"
	"fmt"
	"net/url"

	"homegate/pkg/model"
)

type PropertyClient struct {
	c *Client
}

func NewPropertyClient(c *Client) *PropertyClient {
	return &PropertyClient{c: c}
}

func (pc *PropertyClient) List(ctx context.Context, filter model.PropertyFilter) ([]*model.Property, error) {
	q := url.Values{}
	if filter.City != "" {
		q.Set("city", filter.City)
	}
	if filter.ListingType != "" {
		q.Set("listingType", string(filter.ListingType))
	}
	if filter.MinPrice > 0 {
		q.Set("price[gte]", fmt.Sprintf("%.0f", filter.MinPrice))
	}
	if filter.MaxPrice > 0 {
		q.Set("price[lte]", fmt.Sprintf("%.0f", filter.MaxPrice))
	}
	if filter.Bedrooms > 0 {
		q.Set("bedrooms", fmt.Sprintf("%d", filter.Bedrooms))
	}
	if filter.Page > 0 {
		q.Set("page", fmt.Sprintf("%d", filter.Page))
	}
	if filter.Limit > 0 {
		q.Set("limit", fmt.Sprintf("%d", filter.Limit))
	}

	path := "/properties"
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}

	resp, err := pc.c.GET(ctx, path)
	if err != nil {
		return nil, err
	}
	var properties []*model.Property
	if err := unwrap(resp, "properties", &properties); err != nil {
		return nil, err
	}
	return properties, nil
}

func (pc *PropertyClient) Get(ctx context.Context, id string) (*model.Property, error) {
	resp, err := pc.c.GET(ctx, "/properties/"+url.PathEscape(id))
	if err != nil {
		return nil, err
	}
	var property model.Property
	if err := unwrap(resp, "property", &property); err != nil {
		return nil, err
	}
	return &property, nil
}

func (pc *PropertyClient) Create(ctx context.Context, property *model.Property) (*model.Property, error) {
	resp, err := pc.c.POST(ctx, "/properties", property)
	if err != nil {
		return nil, err
	}
	var created model.Property
	if err := unwrap(resp, "property", &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (pc *PropertyClient) Update(ctx context.Context, id string, patch map[string]any) (*model.Property, error) {
	resp, err := pc.c.PATCH(ctx, "/properties/"+url.PathEscape(id), patch)
	if err != nil {
		return nil, err
	}
	var updated model.Property
	if err := unwrap(resp, "property", &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (pc *PropertyClient) Delete(ctx context.Context, id string) error {
	_, err := pc.c.DELETE(ctx, "/properties/"+url.PathEscape(id))
	return err
}
