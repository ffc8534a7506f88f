package testhelpers

import "testing"

const placesSchema = `
CREATE TABLE IF NOT EXISTS places (
	id BIGINT PRIMARY KEY,
	country CHAR(2) NOT NULL,
	zipcode CHAR(5) NOT NULL,
	name VARCHAR(255) NOT NULL,
	region VARCHAR(255),
	short_region VARCHAR(16),
	lat DECIMAL(10,6),
	lon DECIMAL(10,6),
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_places_zipcode ON places (zipcode);
CREATE INDEX IF NOT EXISTS idx_places_name ON places (name);
`

// PlaceFixture is a seed row for integration tests. Nil coordinates model
// records the importer could not geocode.
type PlaceFixture struct {
	ID      int64
	Country string
	Zipcode string
	Name    string
	Lat     *float64
	Lon     *float64
}

// BerlinFixtures covers the lookup, search and radius test cases: three
// geocoded Berlin districts and one row without coordinates.
func BerlinFixtures() []PlaceFixture {
	mitte := PlaceFixture{ID: 1, Country: "DE", Zipcode: "10115", Name: "Berlin", Lat: f(52.532162), Lon: f(13.384209)}
	linden := PlaceFixture{ID: 2, Country: "DE", Zipcode: "10117", Name: "Berlin", Lat: f(52.517037), Lon: f(13.388860)}
	pankow := PlaceFixture{ID: 3, Country: "DE", Zipcode: "13187", Name: "Berlin", Lat: f(52.567570), Lon: f(13.401300)}
	orphan := PlaceFixture{ID: 4, Country: "DE", Zipcode: "99998", Name: "Nowhere", Lat: nil, Lon: nil}
	return []PlaceFixture{mitte, linden, pankow, orphan}
}

// SeedPlaces recreates the places table and loads the given fixtures.
func (tdb *TestDB) SeedPlaces(t *testing.T, fixtures []PlaceFixture) {
	tdb.DB.MustExec("DROP TABLE IF EXISTS places")
	tdb.DB.MustExec(placesSchema)

	for _, p := range fixtures {
		tdb.DB.MustExec(
			`INSERT INTO places (id, country, zipcode, name, lat, lon) VALUES ($1, $2, $3, $4, $5, $6)`,
			p.ID, p.Country, p.Zipcode, p.Name, p.Lat, p.Lon,
		)
	}
}

func f(v float64) *float64 {
	return &v
}
