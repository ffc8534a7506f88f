// Package geocoder resolves free-text addresses against a Photon-compatible
// geocoding service, iterating candidate endpoints until one yields a usable
// answer.
package geocoder

import (
	"context"
	"fmt"
	"math"
	"net/url"
	"strings"

	"github.com/places-service/internal/config"
	"github.com/places-service/internal/domain"
	"github.com/places-service/internal/domain/repository"
	"github.com/places-service/internal/infrastructure/webclient"
	"github.com/places-service/internal/pkg/endpoints"
	"go.uber.org/zap"
)

const searchPath = "/api"

// DefaultBaseURLs are tried after any configured override.
var DefaultBaseURLs = []string{
	"https://photon.komoot.io",
}

type client struct {
	web      *webclient.Client
	cfg      config.GeocoderConfig
	fallback []string
	logger   *zap.Logger
}

func NewClient(cfg config.GeocoderConfig, web *webclient.Client, logger *zap.Logger) repository.GeocoderRepository {
	return &client{
		web:      web,
		cfg:      cfg,
		fallback: DefaultBaseURLs,
		logger:   logger,
	}
}

type searchResponse struct {
	Features []feature `json:"features"`
}

type feature struct {
	Geometry struct {
		Coordinates []float64 `json:"coordinates"` // [lon, lat]
	} `json:"geometry"`
	Properties struct {
		Label       string `json:"label"`
		Name        string `json:"name"`
		Street      string `json:"street"`
		Housenumber string `json:"housenumber"`
		Postcode    string `json:"postcode"`
		City        string `json:"city"`
		Locality    string `json:"locality"`
		State       string `json:"state"`
		Country     string `json:"country"`
	} `json:"properties"`
}

// Geocode resolves text to a coordinate. A well-formed empty answer from a
// reachable endpoint is authoritative: no further candidates are tried.
// Transport failures advance to the next candidate. Both "no match" and "all
// endpoints failed" return (nil, nil); the latter is logged for diagnostics.
func (c *client) Geocode(ctx context.Context, text string) (*domain.GeocodedPlace, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}

	candidates := endpoints.Candidates(c.cfg.BaseURLs, c.fallback)
	if len(candidates) == 0 {
		c.logger.Warn("No geocoder endpoints configured")
		return nil, nil
	}

	var lastErr error
	for _, base := range candidates {
		reqURL := fmt.Sprintf("%s%s?q=%s&limit=1&lang=%s",
			strings.TrimRight(base, "/"),
			searchPath,
			url.QueryEscape(text),
			url.QueryEscape(c.cfg.Lang),
		)

		var resp searchResponse
		if err := c.web.GetJSON(ctx, reqURL, c.cfg.Timeout, &resp); err != nil {
			c.logger.Warn("Geocoder candidate failed",
				zap.String("base_url", base),
				zap.Error(err))
			lastErr = err
			continue
		}

		if len(resp.Features) == 0 || len(resp.Features[0].Geometry.Coordinates) < 2 {
			// Reachable geocoder with no match: conclusive, stop here.
			c.logger.Debug("Geocoder returned no match",
				zap.String("base_url", base),
				zap.String("query", text))
			return nil, nil
		}

		f := resp.Features[0]
		lon, lat := f.Geometry.Coordinates[0], f.Geometry.Coordinates[1]
		if !isFinite(lat) || !isFinite(lon) {
			c.logger.Warn("Geocoder returned non-finite coordinates",
				zap.String("base_url", base),
				zap.String("query", text))
			lastErr = fmt.Errorf("non-finite coordinates from %s", base)
			continue
		}

		place := &domain.GeocodedPlace{
			Label:       f.Properties.Label,
			Lat:         lat,
			Lon:         lon,
			Street:      f.Properties.Street,
			Housenumber: f.Properties.Housenumber,
			Postcode:    f.Properties.Postcode,
			City:        f.Properties.City,
			State:       f.Properties.State,
			Country:     f.Properties.Country,
		}
		if place.Label == "" {
			place.Label = f.Properties.Name
		}
		if place.City == "" {
			place.City = f.Properties.Locality
		}
		return place, nil
	}

	if lastErr != nil {
		c.logger.Warn("All geocoder endpoints failed",
			zap.Int("candidates", len(candidates)),
			zap.Error(lastErr))
	}
	return nil, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
