package repository

import (
	"context"

	"github.com/places-service/internal/domain"
)

// PlaceRepository defines read access to the places dataset.
type PlaceRepository interface {
	// GetByID returns the place with the given primary key, or nil when no
	// row matches.
	GetByID(ctx context.Context, id int64) (*domain.Place, error)

	// GetByZipcode returns the first place with an exact zipcode match, or
	// nil when no row matches.
	GetByZipcode(ctx context.Context, zipcode string) (*domain.Place, error)

	// GetByZipcodeAndName returns the place matching both zipcode and exact
	// name, or nil when no row matches.
	GetByZipcodeAndName(ctx context.Context, zipcode, name string) (*domain.Place, error)

	// Search performs a substring search over name and zipcode. When zipcode
	// is non-empty the match is exact on zipcode and substring on name.
	Search(ctx context.Context, zipcode, name string, limit int) ([]*domain.Place, error)

	// FindWithinRadius returns places within radiusKm of the given point,
	// nearest first, with the distance evaluated inside the query.
	FindWithinRadius(ctx context.Context, lat, lon, radiusKm float64) ([]*domain.PlaceWithDistance, error)
}
