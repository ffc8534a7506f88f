package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/places-service/internal/domain"
	"github.com/places-service/internal/domain/repository"
	"github.com/places-service/internal/pkg/errors"
	"github.com/places-service/internal/pkg/utils"
	"github.com/places-service/internal/usecase/dto"
)

const defaultSearchLimit = 50

// Queries like "10115 Berlin" combine a zipcode with a name filter.
var zipcodeWithName = regexp.MustCompile(`^\d+\s+.+`)

// PlaceUseCase serves the read-only places dataset: radius search, free-text
// search and direct lookups. Radius and search responses are cached.
type PlaceUseCase struct {
	placeRepo      repository.PlaceRepository
	cacheRepo      repository.CacheRepository
	logger         *zap.Logger
	radiusCacheTTL time.Duration
	searchCacheTTL time.Duration
}

func NewPlaceUseCase(
	placeRepo repository.PlaceRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	radiusCacheTTL time.Duration,
	searchCacheTTL time.Duration,
) *PlaceUseCase {
	return &PlaceUseCase{
		placeRepo:      placeRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
		radiusCacheTTL: radiusCacheTTL,
		searchCacheTTL: searchCacheTTL,
	}
}

// FindWithinRadius returns places within radiusKm of the place identified by
// zipcode, nearest first.
func (uc *PlaceUseCase) FindWithinRadius(ctx context.Context, req dto.RadiusRequest) (*dto.RadiusResponse, error) {
	if !utils.ValidateRadius(req.RadiusKm) {
		return nil, errors.ErrInvalidRadius
	}

	cacheKey := fmt.Sprintf("radius:%s:%g", req.Zipcode, req.RadiusKm)
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		var resp dto.RadiusResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
	}

	center, err := uc.placeRepo.GetByZipcode(ctx, req.Zipcode)
	if err != nil {
		return nil, err
	}
	if center == nil {
		return nil, errors.ErrPlaceNotFound
	}
	if !center.HasCoordinates() {
		uc.logger.Warn("Radius center has unusable coordinates",
			zap.Int64("id", center.ID),
			zap.String("zipcode", center.Zipcode))
		return nil, errors.ErrPlaceNotFound
	}

	places, err := uc.placeRepo.FindWithinRadius(ctx, *center.Lat, *center.Lon, req.RadiusKm)
	if err != nil {
		return nil, err
	}

	resp := &dto.RadiusResponse{
		Places: places,
		Total:  len(places),
	}
	uc.toCache(ctx, cacheKey, resp, uc.radiusCacheTTL)

	return resp, nil
}

// Search performs a free-text search. A query shaped like "<digits> <text>"
// is split into an exact zipcode and a name filter; anything else matches
// name or zipcode by substring.
func (uc *PlaceUseCase) Search(ctx context.Context, req dto.SearchRequest) (*dto.SearchResponse, error) {
	if req.Limit == 0 {
		req.Limit = defaultSearchLimit
	}

	cacheKey := fmt.Sprintf("search:%s:%d", req.Query, req.Limit)
	if cached := uc.fromCache(ctx, cacheKey); cached != nil {
		var resp dto.SearchResponse
		if err := json.Unmarshal(cached, &resp); err == nil {
			return &resp, nil
		}
	}

	var (
		zipcode string
		name    string
	)
	if zipcodeWithName.MatchString(req.Query) {
		parts := strings.SplitN(req.Query, " ", 2)
		zipcode = parts[0]
		name = strings.TrimSpace(parts[1])
	} else {
		name = req.Query
	}

	places, err := uc.placeRepo.Search(ctx, zipcode, name, req.Limit)
	if err != nil {
		return nil, err
	}

	resp := &dto.SearchResponse{
		Places: places,
		Total:  len(places),
	}
	uc.toCache(ctx, cacheKey, resp, uc.searchCacheTTL)

	return resp, nil
}

// GetByZipcodeAndName returns the place matching both fields exactly.
func (uc *PlaceUseCase) GetByZipcodeAndName(ctx context.Context, req dto.PlaceIDRequest) (*domain.Place, error) {
	place, err := uc.placeRepo.GetByZipcodeAndName(ctx, req.Zipcode, req.City)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, errors.ErrPlaceNotFound
	}
	return place, nil
}

// GetByID returns the place with the given primary key.
func (uc *PlaceUseCase) GetByID(ctx context.Context, id int64) (*domain.Place, error) {
	place, err := uc.placeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if place == nil {
		return nil, errors.ErrPlaceNotFound
	}
	return place, nil
}

// fromCache is best-effort: cache failures never fail the request.
func (uc *PlaceUseCase) fromCache(ctx context.Context, key string) []byte {
	if uc.cacheRepo == nil {
		return nil
	}
	val, err := uc.cacheRepo.Get(ctx, key)
	if err != nil {
		return nil
	}
	return val
}

func (uc *PlaceUseCase) toCache(ctx context.Context, key string, v interface{}, ttl time.Duration) {
	if uc.cacheRepo == nil {
		return
	}
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, ttl); err != nil {
		uc.logger.Warn("Failed to cache response", zap.String("key", key), zap.Error(err))
	}
}
