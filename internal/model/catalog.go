package model

// Service is an entry in the studio's service catalog (custom design, flash
// sheets, printing). Services are seeded at startup and never created through
// the API — the catalog is read-only from the client's perspective.
type Service struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
	PriceMin    int      `json:"priceMin"`
	PriceMax    *int     `json:"priceMax"`
	Icon        string   `json:"icon"`
	Color       string   `json:"color"`
}

// InsertService is used by seeding and by tests; there is no create endpoint.
type InsertService struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Features    []string `json:"features" validate:"required"`
	PriceMin    int      `json:"priceMin" validate:"required"`
	PriceMax    *int     `json:"priceMax"`
	Icon        string   `json:"icon" validate:"required"`
	Color       string   `json:"color" validate:"required"`
}

// NewService builds a full catalog record from an insert payload.
func NewService(in InsertService, id int) Service {
	features := in.Features
	if features == nil {
		features = []string{}
	}
	return Service{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Features:    features,
		PriceMin:    in.PriceMin,
		PriceMax:    in.PriceMax,
		Icon:        in.Icon,
		Color:       in.Color,
	}
}
