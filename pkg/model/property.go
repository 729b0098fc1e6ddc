package model

type ListingType string

const (
	ListingSale ListingType = "sale"
	ListingRent ListingType = "rent"
)

// Property is read-mostly: the remote server owns it, the gateway only
// renders it and references it by ID from bookings and wishlist entries.
type Property struct {
	ID          string      `json:"_id"`
	Title       string      `json:"title" validate:"required,min=2,max=150"`
	Price       float64     `json:"price" validate:"required,gt=0"`
	Address     string      `json:"address" validate:"required"`
	City        string      `json:"city,omitempty"`
	State       string      `json:"state,omitempty"`
	Bedrooms    int         `json:"bedrooms" validate:"gte=0,lte=50"`
	Bathrooms   int         `json:"bathrooms" validate:"gte=0,lte=50"`
	AreaSqFt    float64     `json:"areaSqFt,omitempty" validate:"omitempty,gt=0"`
	Images      []string    `json:"images,omitempty"`
	ListingType ListingType `json:"listingType" validate:"required,oneof=sale rent"`
	AgentRef    string      `json:"agent,omitempty"`
	Featured    bool        `json:"featured,omitempty"`
	Description string      `json:"description,omitempty" validate:"omitempty,max=5000"`
}

// PropertyFilter carries the browse-page query parameters forwarded to the
// remote listing endpoint.
type PropertyFilter struct {
	City        string
	ListingType ListingType
	MinPrice    float64
	MaxPrice    float64
	Bedrooms    int
	Page        int
	Limit       int
}
