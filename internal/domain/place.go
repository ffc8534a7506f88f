package domain

import (
	"math"
	"time"
)

// Place is a row of the read-only places dataset. Latitude and longitude are
// nullable: the upstream dataset carries entries without coordinates.
type Place struct {
	ID          int64     `json:"id" db:"id"`
	Country     string    `json:"country" db:"country"`
	Zipcode     string    `json:"zipcode" db:"zipcode"`
	Name        string    `json:"name" db:"name"`
	Region      string    `json:"region" db:"region"`
	ShortRegion string    `json:"short_region" db:"short_region"`
	Lat         *float64  `json:"lat" db:"lat"`
	Lon         *float64  `json:"lon" db:"lon"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at"`
}

// HasCoordinates reports whether both coordinates are present and finite.
// A record failing this check must never leave the resolver.
func (p *Place) HasCoordinates() bool {
	if p.Lat == nil || p.Lon == nil {
		return false
	}
	return isFinite(*p.Lat) && isFinite(*p.Lon)
}

// PlaceWithDistance is a radius-search row: the distance column is computed
// inside the SQL query.
type PlaceWithDistance struct {
	Name     string  `json:"name" db:"name"`
	Zipcode  string  `json:"zipcode" db:"zipcode"`
	Distance float64 `json:"distance" db:"distance"`
}

// Coordinate is a latitude/longitude pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
