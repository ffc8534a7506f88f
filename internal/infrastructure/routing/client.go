// Package routing computes driving routes against an OSRM-compatible
// backend, using the same candidate-iteration pattern as the geocoder.
package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/places-service/internal/config"
	"github.com/places-service/internal/domain"
	"github.com/places-service/internal/domain/repository"
	"github.com/places-service/internal/infrastructure/webclient"
	"github.com/places-service/internal/pkg/endpoints"
	"github.com/places-service/internal/pkg/errors"
	"github.com/places-service/internal/pkg/utils"
	"go.uber.org/zap"
)

// DefaultBaseURLs are tried after any configured override.
var DefaultBaseURLs = []string{
	"https://router.project-osrm.org",
}

type client struct {
	web      *webclient.Client
	cfg      config.RoutingConfig
	fallback []string
	logger   *zap.Logger
}

func NewClient(cfg config.RoutingConfig, web *webclient.Client, logger *zap.Logger) repository.RoutingRepository {
	return &client{
		web:      web,
		cfg:      cfg,
		fallback: DefaultBaseURLs,
		logger:   logger,
	}
}

type routeResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64         `json:"distance"` // meters
		Duration float64         `json:"duration"` // seconds
		Geometry json.RawMessage `json:"geometry"`
	} `json:"routes"`
	Waypoints json.RawMessage `json:"waypoints"`
}

// DrivingRoute asks each candidate in order for a route between the two
// coordinates. The first candidate returning at least one route wins. A
// reachable backend with zero routes counts as that candidate's failure.
// Exhaustion maps to ErrRoutingUnavailable carrying the last failure.
func (c *client) DrivingRoute(ctx context.Context, from, to domain.Coordinate) (*domain.RouteResult, error) {
	candidates := endpoints.Candidates(c.cfg.BaseURLs, c.fallback)
	if len(candidates) == 0 {
		return nil, errors.ErrRoutingUnavailable.WithMessage("no routing endpoints configured")
	}

	var lastErr error
	for _, base := range candidates {
		// OSRM takes longitude first.
		reqURL := fmt.Sprintf(
			"%s/route/v1/driving/%f,%f;%f,%f?overview=false&alternatives=false&steps=false&geometries=geojson",
			strings.TrimRight(base, "/"),
			from.Lon, from.Lat,
			to.Lon, to.Lat,
		)

		var resp routeResponse
		if err := c.web.GetJSON(ctx, reqURL, c.cfg.Timeout, &resp); err != nil {
			c.logger.Warn("Routing candidate failed",
				zap.String("base_url", base),
				zap.Error(err))
			lastErr = err
			continue
		}

		if len(resp.Routes) == 0 {
			c.logger.Warn("Routing candidate returned no routes",
				zap.String("base_url", base),
				zap.String("code", resp.Code))
			lastErr = fmt.Errorf("no routes from %s (code %s)", base, resp.Code)
			continue
		}

		route := resp.Routes[0]
		meters := int(route.Distance)
		seconds := int(route.Duration)

		return &domain.RouteResult{
			Meters:          meters,
			Kilometers:      utils.Round(route.Distance/1000, 3),
			DurationSeconds: seconds,
			DurationMinutes: utils.Round(route.Duration/60, 1),
			Geometry:        route.Geometry,
			Code:            resp.Code,
			Waypoints:       resp.Waypoints,
		}, nil
	}

	c.logger.Error("All routing endpoints failed",
		zap.Int("candidates", len(candidates)),
		zap.Error(lastErr))

	return nil, errors.ErrRoutingUnavailable.WithMessage(fmt.Sprintf("routing backend unreachable: %v", lastErr))
}
