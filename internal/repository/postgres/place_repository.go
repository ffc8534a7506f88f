package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/places-service/internal/domain"
	"github.com/places-service/internal/domain/repository"
	apperrors "github.com/places-service/internal/pkg/errors"
	"go.uber.org/zap"
)

const placeColumns = `id, country, zipcode, name, region, short_region, lat, lon, created_at, updated_at`

type placeRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewPlaceRepository(db *DB) repository.PlaceRepository {
	return &placeRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *placeRepository) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE id = $1`

	var place domain.Place
	err := r.db.GetContext(ctx, &place, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get place by ID", zap.Int64("id", id), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &place, nil
}

func (r *placeRepository) GetByZipcode(ctx context.Context, zipcode string) (*domain.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE zipcode = $1 ORDER BY id LIMIT 1`

	var place domain.Place
	err := r.db.GetContext(ctx, &place, query, zipcode)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get place by zipcode", zap.String("zipcode", zipcode), zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &place, nil
}

func (r *placeRepository) GetByZipcodeAndName(ctx context.Context, zipcode, name string) (*domain.Place, error) {
	query := `SELECT ` + placeColumns + ` FROM places WHERE zipcode = $1 AND name = $2 LIMIT 1`

	var place domain.Place
	err := r.db.GetContext(ctx, &place, query, zipcode, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get place by zipcode and name",
			zap.String("zipcode", zipcode),
			zap.String("name", name),
			zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return &place, nil
}

func (r *placeRepository) Search(ctx context.Context, zipcode, name string, limit int) ([]*domain.Place, error) {
	var (
		query string
		args  []interface{}
	)

	if zipcode != "" {
		query = `SELECT ` + placeColumns + ` FROM places
			WHERE zipcode = $1 AND name ILIKE '%' || $2 || '%'
			ORDER BY name LIMIT $3`
		args = []interface{}{zipcode, name, limit}
	} else {
		query = `SELECT ` + placeColumns + ` FROM places
			WHERE name ILIKE '%' || $1 || '%' OR zipcode LIKE '%' || $1 || '%'
			ORDER BY name LIMIT $2`
		args = []interface{}{name, limit}
	}

	places := make([]*domain.Place, 0)
	if err := r.db.SelectContext(ctx, &places, query, args...); err != nil {
		r.logger.Error("Failed to search places",
			zap.String("zipcode", zipcode),
			zap.String("name", name),
			zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return places, nil
}

// FindWithinRadius evaluates the great-circle distance inside the query so
// filtering and ordering stay in the database.
func (r *placeRepository) FindWithinRadius(ctx context.Context, lat, lon, radiusKm float64) ([]*domain.PlaceWithDistance, error) {
	query := `
		SELECT name, zipcode,
			(6371 * acos(
				cos(radians($1)) * cos(radians(lat)) * cos(radians(lon) - radians($2)) +
				sin(radians($1)) * sin(radians(lat))
			)) AS distance
		FROM places
		WHERE lat IS NOT NULL AND lon IS NOT NULL
		  AND (6371 * acos(
				cos(radians($1)) * cos(radians(lat)) * cos(radians(lon) - radians($2)) +
				sin(radians($1)) * sin(radians(lat))
			)) < $3
		ORDER BY distance
	`

	results := make([]*domain.PlaceWithDistance, 0)
	if err := r.db.SelectContext(ctx, &results, query, lat, lon, radiusKm); err != nil {
		r.logger.Error("Failed to find places within radius",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon),
			zap.Float64("radius_km", radiusKm),
			zap.Error(err))
		return nil, apperrors.ErrDatabaseError
	}

	return results, nil
}
