package spot

import "time"

type Kind string

const (
	KindIndoor  Kind = "indoor"
	KindOutdoor Kind = "outdoor"
	KindUser    Kind = "user"
)

type Category string

const (
	CategoryFood     Category = "food"
	CategoryShopping Category = "shopping"
	CategoryHistory  Category = "history"
	CategoryNature   Category = "nature"
	CategoryMuseum   Category = "museum"
	CategoryShrine   Category = "shrine"
	CategoryOther    Category = "other"
)

// OpeningHours is one weekday entry. Day is 0=Sunday..6=Saturday, Open
// and Close are "HH:MM" at minute resolution, Close after Open within
// the same day.
type OpeningHours struct {
	Day   int    `json:"day"`
	Open  string `json:"open"`
	Close string `json:"close"`
}

type Reply struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
	Photo     string    `json:"photo,omitempty"`
	Likes     []string  `json:"likes"`
	Replies   []Reply   `json:"replies"`
}

type Rating struct {
	UserID string `json:"user_id"`
	Score  int    `json:"score"`
}

// Spot is a point of interest. Social fields are always present,
// defaulting to empty containers; seed spots are never persisted, only
// kind=user spots are.
type Spot struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Lat          float64        `json:"lat"`
	Lng          float64        `json:"lng"`
	Kind         Kind           `json:"kind"`
	Category     Category       `json:"category,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	Photos       []string       `json:"photos"`
	Comments     []Comment      `json:"comments"`
	Ratings      []Rating       `json:"ratings"`
	Favorites    []string       `json:"favorites"`
	Visited      []string       `json:"visited"`
	OpeningHours []OpeningHours `json:"opening_hours,omitempty"`
	ClosedDays   []int          `json:"closed_days,omitempty"`
}

// AvgRating is the mean score over all ratings, 0 when there are none.
func (s *Spot) AvgRating() float64 {
	if len(s.Ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range s.Ratings {
		sum += r.Score
	}
	return float64(sum) / float64(len(s.Ratings))
}

func (s *Spot) FavoriteOf(username string) bool {
	return contains(s.Favorites, username)
}

func (s *Spot) VisitedBy(username string) bool {
	return contains(s.Visited, username)
}

// FindComment returns a pointer into the spot's comment list, nil when
// the id is unknown. Callers must hold the registry lock via Mutate.
func (s *Spot) FindComment(commentID string) *Comment {
	for i := range s.Comments {
		if s.Comments[i].ID == commentID {
			return &s.Comments[i]
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

// Toggle flips membership of v in list and returns the new list.
func Toggle(list []string, v string) []string {
	if !contains(list, v) {
		return append(list, v)
	}
	out := list[:0:0]
	for _, item := range list {
		if item != v {
			out = append(out, item)
		}
	}
	return out
}
