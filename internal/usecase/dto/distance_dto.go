package dto

import (
	"encoding/json"
	"strings"

	"github.com/places-service/internal/domain"
)

// DistanceRequest carries the two place identifiers of a distance query.
type DistanceRequest struct {
	From string `json:"from" validate:"required"`
	To   string `json:"to" validate:"required"`
}

// LocationDetails are geocoder address fields, passed through verbatim.
type LocationDetails struct {
	Street      string `json:"street,omitempty"`
	Housenumber string `json:"housenumber,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
	City        string `json:"city,omitempty"`
	State       string `json:"state,omitempty"`
	Country     string `json:"country,omitempty"`
}

// LocationView is the public shape of a resolved location, tagged by origin:
// "database" for stored places, "geocoded" for geocoder results.
type LocationView struct {
	Type    string           `json:"type"`
	ID      int64            `json:"id,omitempty"`
	Zipcode string           `json:"zipcode,omitempty"`
	Name    string           `json:"name,omitempty"`
	Label   string           `json:"label"`
	Details *LocationDetails `json:"details,omitempty"`
}

// DistanceResponse is the straight-line distance answer.
type DistanceResponse struct {
	From       *LocationView `json:"from"`
	To         *LocationView `json:"to"`
	DistanceKm float64       `json:"distanceKm"`
}

// DrivingDistanceResponse adds the routing backend's answer.
type DrivingDistanceResponse struct {
	From            *LocationView   `json:"from"`
	To              *LocationView   `json:"to"`
	DistanceKm      float64         `json:"distanceKm"`
	DistanceMeters  int             `json:"distanceMeters"`
	DurationSeconds int             `json:"durationSeconds"`
	DurationMinutes float64         `json:"durationMinutes"`
	RoutingCode     string          `json:"routingCode,omitempty"`
	Geometry        json.RawMessage `json:"geometry,omitempty"`
	Waypoints       json.RawMessage `json:"waypoints,omitempty"`
}

// FormatLocation maps a resolved location to its public shape. Nil passes
// through as nil. fallbackLabel fills in when neither store fields nor the
// geocoder provided a usable label.
func FormatLocation(loc *domain.ResolvedLocation, fallbackLabel string) *LocationView {
	if loc == nil {
		return nil
	}

	switch loc.Source {
	case domain.LocationSourceStore:
		p := loc.Place
		label := strings.TrimSpace(strings.TrimSpace(p.Zipcode) + " " + strings.TrimSpace(p.Name))
		if label == "" {
			label = fallbackLabel
		}
		return &LocationView{
			Type:    string(domain.LocationSourceStore),
			ID:      p.ID,
			Zipcode: p.Zipcode,
			Name:    p.Name,
			Label:   label,
		}
	case domain.LocationSourceGeocoder:
		g := loc.Geocoded
		label := g.Label
		if label == "" {
			label = fallbackLabel
		}
		return &LocationView{
			Type:  string(domain.LocationSourceGeocoder),
			Label: label,
			Details: &LocationDetails{
				Street:      g.Street,
				Housenumber: g.Housenumber,
				Postcode:    g.Postcode,
				City:        g.City,
				State:       g.State,
				Country:     g.Country,
			},
		}
	}
	return nil
}
