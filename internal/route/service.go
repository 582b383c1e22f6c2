package route

import (
	"github.com/kendea1221/Hiromap/internal/shared/geo"
	"github.com/kendea1221/Hiromap/internal/spot"
)

// Service builds routes over spots from the registry.
type Service struct {
	reg *spot.Registry
}

func NewService(reg *spot.Registry) *Service {
	return &Service{reg: reg}
}

// Build connects the identified spots in the caller's selection order.
// Unknown ids are skipped; fewer than two resolvable spots yields no
// route. The input order is preserved, this is not a shortest-path
// solver.
func (s *Service) Build(ids []string) (Route, bool) {
	var (
		route Route
		prev  geo.Point
	)
	for _, id := range ids {
		sp, ok := s.reg.FindByID(id)
		if !ok {
			continue
		}
		p := geo.Point{Lat: sp.Lat, Lng: sp.Lng}
		if len(route.Points) > 0 {
			route.TotalKm += geo.DistanceKm(prev, p)
		}
		route.SpotIDs = append(route.SpotIDs, sp.ID)
		route.Points = append(route.Points, p)
		prev = p
	}
	if len(route.Points) < 2 {
		return Route{}, false
	}
	bounds, _ := geo.BoundingBox(route.Points)
	route.Bounds = bounds
	return route, true
}
