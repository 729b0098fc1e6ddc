package model

import "time"

type Review struct {
	ID          string    `json:"_id,omitempty"`
	PropertyRef string    `json:"property" validate:"required"`
	UserRef     string    `json:"user,omitempty"`
	Rating      int       `json:"rating" validate:"required,min=1,max=5"`
	Comment     string    `json:"comment,omitempty" validate:"omitempty,max=2000"`
	CreatedAt   time.Time `json:"createdAt,omitempty"`
}

type ReviewStats struct {
	PropertyRef   string  `json:"property"`
	AverageRating float64 `json:"avgRating"`
	Count         int     `json:"count"`
}

type WishlistItem struct {
	ID          string    `json:"_id,omitempty"`
	PropertyRef string    `json:"property"`
	Property    *Property `json:"propertyDetails,omitempty"`
	AddedAt     time.Time `json:"addedAt,omitempty"`
}

type Notification struct {
	ID        string    `json:"_id"`
	Type      string    `json:"type"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}
