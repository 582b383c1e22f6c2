package route

import "github.com/kendea1221/Hiromap/internal/shared/geo"

// Route is an ordered waypoint sequence with its cumulative
// straight-line length and a bounding region for viewport framing.
type Route struct {
	SpotIDs []string    `json:"spot_ids"`
	Points  []geo.Point `json:"points"`
	TotalKm float64     `json:"total_km"`
	Bounds  geo.Bounds  `json:"bounds"`
}
