package domain

import "encoding/json"

// RouteResult is a driving route computed by the routing backend. Geometry
// and waypoints are opaque payloads passed through verbatim.
type RouteResult struct {
	Meters          int             `json:"meters"`
	Kilometers      float64         `json:"kilometers"`
	DurationSeconds int             `json:"durationSeconds"`
	DurationMinutes float64         `json:"durationMinutes"`
	Geometry        json.RawMessage `json:"geometry,omitempty"`
	Code            string          `json:"code"`
	Waypoints       json.RawMessage `json:"waypoints,omitempty"`
}
