package repository

import (
	"context"

	"github.com/places-service/internal/domain"
)

// GeocoderRepository resolves free text into a coordinate via an external
// geocoding service.
type GeocoderRepository interface {
	// Geocode returns the best match for the given text, or (nil, nil) when
	// the geocoder has no match or no endpoint could be reached.
	Geocode(ctx context.Context, text string) (*domain.GeocodedPlace, error)
}

// RoutingRepository computes driving routes via an external routing backend.
type RoutingRepository interface {
	// DrivingRoute returns the first route between the two coordinates. When
	// every candidate endpoint fails it returns an upstream error that maps
	// to 502.
	DrivingRoute(ctx context.Context, from, to domain.Coordinate) (*domain.RouteResult, error)
}
