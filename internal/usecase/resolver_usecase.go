package usecase

import (
	"context"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/places-service/internal/domain"
	"github.com/places-service/internal/domain/repository"
)

var numericIdentifier = regexp.MustCompile(`^[0-9]+$`)

// ResolverUseCase turns an opaque place identifier (database id, postal code
// or free text) into a resolved location.
type ResolverUseCase struct {
	placeRepo repository.PlaceRepository
	geocoder  repository.GeocoderRepository
	logger    *zap.Logger
}

func NewResolverUseCase(
	placeRepo repository.PlaceRepository,
	geocoder repository.GeocoderRepository,
	logger *zap.Logger,
) *ResolverUseCase {
	return &ResolverUseCase{
		placeRepo: placeRepo,
		geocoder:  geocoder,
		logger:    logger,
	}
}

// Resolve classifies the identifier and resolves it, in order: primary key
// for all-numeric tokens, then exact postal code, then the geocoder. An
// all-numeric token is far more likely an internal id than a geocodable
// string, but a numeric postal code typed into an id-looking field must still
// hit the zipcode path when the id lookup misses.
//
// A (nil, nil) return means "not found". A stored record with missing or
// non-finite coordinates also resolves to nil: corrupt storage is never
// silently substituted with geocoding.
func (uc *ResolverUseCase) Resolve(ctx context.Context, identifier string) (*domain.ResolvedLocation, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, nil
	}

	var place *domain.Place

	if numericIdentifier.MatchString(identifier) {
		id, err := strconv.ParseInt(identifier, 10, 64)
		if err == nil {
			place, err = uc.placeRepo.GetByID(ctx, id)
			if err != nil {
				return nil, err
			}
		}
	}

	if place == nil {
		var err error
		place, err = uc.placeRepo.GetByZipcode(ctx, identifier)
		if err != nil {
			return nil, err
		}
	}

	if place != nil {
		if !place.HasCoordinates() {
			uc.logger.Warn("Stored place has unusable coordinates",
				zap.Int64("id", place.ID),
				zap.String("zipcode", place.Zipcode))
			return nil, nil
		}
		return domain.ResolvedFromStore(place), nil
	}

	geocoded, err := uc.geocoder.Geocode(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if geocoded == nil {
		return nil, nil
	}

	return domain.ResolvedFromGeocoder(geocoded), nil
}
