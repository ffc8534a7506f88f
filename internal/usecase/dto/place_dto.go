package dto

import "github.com/places-service/internal/domain"

// RadiusRequest is the radius-search input.
type RadiusRequest struct {
	Zipcode  string  `json:"zipcode" validate:"required"`
	RadiusKm float64 `json:"radius_km" validate:"required,gt=0"`
}

// SearchRequest is the free-text search input.
type SearchRequest struct {
	Query string `json:"query" validate:"required,min=1"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

// PlaceIDRequest is the (zipcode, name) lookup input.
type PlaceIDRequest struct {
	Zipcode string `json:"zipcode" validate:"required"`
	City    string `json:"city" validate:"required"`
}

// RadiusResponse lists places within the requested radius, nearest first.
type RadiusResponse struct {
	Places []*domain.PlaceWithDistance `json:"places"`
	Total  int                         `json:"total"`
}

// SearchResponse lists places matching a free-text query.
type SearchResponse struct {
	Places []*domain.Place `json:"places"`
	Total  int             `json:"total"`
}
