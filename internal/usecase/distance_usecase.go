package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/places-service/internal/domain"
	"github.com/places-service/internal/domain/repository"
	"github.com/places-service/internal/pkg/errors"
	"github.com/places-service/internal/pkg/utils"
	"github.com/places-service/internal/usecase/dto"
)

// DistanceUseCase answers straight-line and driving distance queries between
// two place identifiers.
type DistanceUseCase struct {
	resolver *ResolverUseCase
	routing  repository.RoutingRepository
	logger   *zap.Logger
}

func NewDistanceUseCase(
	resolver *ResolverUseCase,
	routing repository.RoutingRepository,
	logger *zap.Logger,
) *DistanceUseCase {
	return &DistanceUseCase{
		resolver: resolver,
		routing:  routing,
		logger:   logger,
	}
}

// StraightLine resolves both identifiers and returns the great-circle
// distance between them, rounded to two decimals at this boundary.
func (uc *DistanceUseCase) StraightLine(ctx context.Context, req dto.DistanceRequest) (*dto.DistanceResponse, error) {
	from, to, err := uc.resolvePair(ctx, req.From, req.To)
	if err != nil {
		return nil, err
	}

	a := from.Coordinate()
	b := to.Coordinate()
	distance := utils.HaversineDistance(a.Lat, a.Lon, b.Lat, b.Lon)

	return &dto.DistanceResponse{
		From:       dto.FormatLocation(from, req.From),
		To:         dto.FormatLocation(to, req.To),
		DistanceKm: utils.Round(distance, 2),
	}, nil
}

// Driving resolves both identifiers and asks the routing backend for a
// drivable route. Routing exhaustion surfaces as a 502-class error, distinct
// from unresolved identifiers.
func (uc *DistanceUseCase) Driving(ctx context.Context, req dto.DistanceRequest) (*dto.DrivingDistanceResponse, error) {
	from, to, err := uc.resolvePair(ctx, req.From, req.To)
	if err != nil {
		return nil, err
	}

	route, err := uc.routing.DrivingRoute(ctx, from.Coordinate(), to.Coordinate())
	if err != nil {
		return nil, err
	}

	return &dto.DrivingDistanceResponse{
		From:            dto.FormatLocation(from, req.From),
		To:              dto.FormatLocation(to, req.To),
		DistanceKm:      route.Kilometers,
		DistanceMeters:  route.Meters,
		DurationSeconds: route.DurationSeconds,
		DurationMinutes: route.DurationMinutes,
		RoutingCode:     route.Code,
		Geometry:        route.Geometry,
		Waypoints:       route.Waypoints,
	}, nil
}

// resolvePair resolves both identifiers concurrently and joins the results.
// Errors propagate only after both resolutions finish, preserving the "both
// resolved or neither" contract.
func (uc *DistanceUseCase) resolvePair(ctx context.Context, fromID, toID string) (*domain.ResolvedLocation, *domain.ResolvedLocation, error) {
	var (
		wg      sync.WaitGroup
		from    *domain.ResolvedLocation
		to      *domain.ResolvedLocation
		fromErr error
		toErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		from, fromErr = uc.resolver.Resolve(ctx, fromID)
	}()
	go func() {
		defer wg.Done()
		to, toErr = uc.resolver.Resolve(ctx, toID)
	}()
	wg.Wait()

	if fromErr != nil {
		return nil, nil, fromErr
	}
	if toErr != nil {
		return nil, nil, toErr
	}

	if from == nil || to == nil {
		uc.logger.Debug("Identifier resolution failed",
			zap.String("from", fromID),
			zap.Bool("from_resolved", from != nil),
			zap.String("to", toID),
			zap.Bool("to_resolved", to != nil))
		return nil, nil, errors.ErrPlaceNotFound.WithMessage("One or both places could not be found")
	}

	return from, to, nil
}
