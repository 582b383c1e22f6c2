package spot

import (
	"sort"
	"strings"
)

type SortBy string

const (
	SortNewest  SortBy = "newest"
	SortPopular SortBy = "popular"
	SortRating  SortBy = "rating"
)

// Query composes optional conjunctive predicates with exactly one
// ordering. The zero value matches everything, newest first.
type Query struct {
	Text          string
	Kind          Kind
	Category      Category
	FavoritesOnly bool
	VisitedOnly   bool
	SortBy        SortBy
}

// Apply filters and orders spots without mutating the input. The
// favorite/visited predicates are scoped to username and are skipped
// entirely while nobody is logged in. Sorts are stable so ties keep
// their relative registry order.
func (q Query) Apply(spots []Spot, username string) []Spot {
	result := make([]Spot, 0, len(spots))
	text := strings.ToLower(strings.TrimSpace(q.Text))
	for _, s := range spots {
		if text != "" && !strings.Contains(strings.ToLower(s.Name), text) {
			continue
		}
		if q.Kind != "" && s.Kind != q.Kind {
			continue
		}
		if q.Category != "" && s.Category != q.Category {
			continue
		}
		if q.FavoritesOnly && username != "" && !s.FavoriteOf(username) {
			continue
		}
		if q.VisitedOnly && username != "" && !s.VisitedBy(username) {
			continue
		}
		result = append(result, s)
	}

	switch q.SortBy {
	case SortPopular:
		sort.SliceStable(result, func(i, j int) bool {
			return len(result[i].Comments) > len(result[j].Comments)
		})
	case SortRating:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].AvgRating() > result[j].AvgRating()
		})
	default:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	}
	return result
}
