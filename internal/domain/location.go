package domain

// LocationSource tags a ResolvedLocation with its origin.
type LocationSource string

const (
	LocationSourceStore    LocationSource = "database"
	LocationSourceGeocoder LocationSource = "geocoded"
)

// GeocodedPlace is a geocoder hit: a label, finite coordinates and whatever
// address details the geocoder reported.
type GeocodedPlace struct {
	Label       string  `json:"label"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Street      string  `json:"street,omitempty"`
	Housenumber string  `json:"housenumber,omitempty"`
	Postcode    string  `json:"postcode,omitempty"`
	City        string  `json:"city,omitempty"`
	State       string  `json:"state,omitempty"`
	Country     string  `json:"country,omitempty"`
}

// ResolvedLocation is the normalized answer to "where is this identifier".
// Exactly one of Place and Geocoded is set, selected by Source. Coordinates
// are always finite once a value exists; construction goes through
// ResolvedFromStore / ResolvedFromGeocoder only.
type ResolvedLocation struct {
	Source   LocationSource
	Place    *Place
	Geocoded *GeocodedPlace
}

// ResolvedFromStore wraps a stored place. The caller must have checked
// HasCoordinates first; a place without finite coordinates yields nil.
func ResolvedFromStore(p *Place) *ResolvedLocation {
	if p == nil || !p.HasCoordinates() {
		return nil
	}
	return &ResolvedLocation{Source: LocationSourceStore, Place: p}
}

// ResolvedFromGeocoder wraps a geocoder result. Non-finite coordinates yield
// nil.
func ResolvedFromGeocoder(g *GeocodedPlace) *ResolvedLocation {
	if g == nil || !isFinite(g.Lat) || !isFinite(g.Lon) {
		return nil
	}
	return &ResolvedLocation{Source: LocationSourceGeocoder, Geocoded: g}
}

// Coordinate returns the location's coordinate pair.
func (l *ResolvedLocation) Coordinate() Coordinate {
	if l.Source == LocationSourceStore {
		return Coordinate{Lat: *l.Place.Lat, Lon: *l.Place.Lon}
	}
	return Coordinate{Lat: l.Geocoded.Lat, Lon: l.Geocoded.Lon}
}
