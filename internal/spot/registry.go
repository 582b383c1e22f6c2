package spot

import (
	"context"
	"encoding/json"
	"log"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kendea1221/Hiromap/internal/shared/geo"
	"github.com/kendea1221/Hiromap/internal/store"
)

// PlaceholderName is used when a user spot is logged without a name.
const PlaceholderName = "ユーザ投稿スポット"

const (
	maxNameRunes = 20
	jitterDeg    = 0.009
)

// Registry owns the canonical spot collection: the seed catalog plus
// user-created spots restored from the store. Mutation of social fields
// goes through Mutate so every effective change is mirrored to the
// store as the full user-spot set.
type Registry struct {
	mu    sync.RWMutex
	kv    store.KV
	spots []*Spot
	byID  map[string]*Spot
}

func NewRegistry(ctx context.Context, kv store.KV) *Registry {
	r := &Registry{kv: kv, byID: map[string]*Spot{}}
	for _, s := range Seed(time.Now()) {
		r.spots = append(r.spots, s)
		r.byID[s.ID] = s
	}
	r.restoreUserSpots(ctx)
	return r
}

// restoreUserSpots loads persisted user spots, treating missing or
// corrupt data as an empty list.
func (r *Registry) restoreUserSpots(ctx context.Context) {
	data, ok, err := r.kv.Load(ctx, store.UserSpotsKey)
	if err != nil {
		log.Printf("load user spots: %v", err)
		return
	}
	if !ok {
		return
	}
	var loaded []*Spot
	if err := json.Unmarshal(data, &loaded); err != nil {
		log.Printf("decode user spots, starting empty: %v", err)
		return
	}
	for _, s := range loaded {
		if s.Kind != KindUser || s.ID == "" {
			continue
		}
		if _, exists := r.byID[s.ID]; exists {
			continue
		}
		ensureDefaults(s)
		r.spots = append(r.spots, s)
		r.byID[s.ID] = s
	}
}

// CreateUserSpot allocates a new user-kind spot at base. When explicit
// is false the point is perturbed by a small random jitter so implicit
// logs do not stack on the focused pin.
func (r *Registry) CreateUserSpot(ctx context.Context, name string, base geo.Point, explicit bool, photo string) Spot {
	s := &Spot{
		ID:        uuid.NewString(),
		Name:      PlaceholderName,
		Lat:       base.Lat,
		Lng:       base.Lng,
		Kind:      KindUser,
		Category:  CategoryOther,
		CreatedAt: time.Now(),
	}
	if trimmed := TruncateRunes(name, maxNameRunes); trimmed != "" {
		s.Name = trimmed
	}
	if !explicit {
		s.Lat += rand.Float64()*2*jitterDeg - jitterDeg
		s.Lng += rand.Float64()*2*jitterDeg - jitterDeg
	}
	if photo != "" {
		s.Photos = []string{photo}
	}
	ensureDefaults(s)

	r.mu.Lock()
	r.spots = append([]*Spot{s}, r.spots...)
	r.byID[s.ID] = s
	payload := r.userSpotsLocked()
	r.mu.Unlock()

	r.sync(ctx, payload)
	return s.clone()
}

// FindByID returns a snapshot of the spot.
func (r *Registry) FindByID(id string) (Spot, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.byID[id]
	if !ok {
		return Spot{}, false
	}
	return s.clone(), true
}

// All returns snapshots of every spot in registry order.
func (r *Registry) All() []Spot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Spot, 0, len(r.spots))
	for _, s := range r.spots {
		out = append(out, s.clone())
	}
	return out
}

// Mutate applies fn to the identified spot under the registry lock. fn
// reports whether it changed anything; only then is the user-spot set
// written back. Unknown ids and no-op mutations leave all state
// untouched.
func (r *Registry) Mutate(ctx context.Context, id string, fn func(*Spot) bool) bool {
	r.mu.Lock()
	s, ok := r.byID[id]
	if !ok {
		r.mu.Unlock()
		return false
	}
	changed := fn(s)
	var payload []byte
	if changed {
		payload = r.userSpotsLocked()
	}
	r.mu.Unlock()

	if !changed {
		return false
	}
	r.sync(ctx, payload)
	return true
}

func (r *Registry) userSpotsLocked() []byte {
	userSpots := []*Spot{}
	for _, s := range r.spots {
		if s.Kind == KindUser {
			userSpots = append(userSpots, s)
		}
	}
	data, err := json.Marshal(userSpots)
	if err != nil {
		log.Printf("encode user spots: %v", err)
		return nil
	}
	return data
}

// sync writes the user-spot set to the store. Failures are logged and
// swallowed: durability is best effort.
func (r *Registry) sync(ctx context.Context, payload []byte) {
	if payload == nil {
		return
	}
	if err := r.kv.Save(ctx, store.UserSpotsKey, payload); err != nil {
		log.Printf("save user spots: %v", err)
	}
}

func (s *Spot) clone() Spot {
	out := *s
	out.Photos = append([]string{}, s.Photos...)
	out.Ratings = append([]Rating{}, s.Ratings...)
	out.Favorites = append([]string{}, s.Favorites...)
	out.Visited = append([]string{}, s.Visited...)
	out.Comments = make([]Comment, len(s.Comments))
	for i, c := range s.Comments {
		c.Likes = append([]string{}, c.Likes...)
		c.Replies = append([]Reply{}, c.Replies...)
		out.Comments[i] = c
	}
	return out
}

// TruncateRunes trims surrounding whitespace and caps the result at
// limit runes, never splitting a multibyte character.
func TruncateRunes(s string, limit int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) > limit {
		runes = runes[:limit]
	}
	return string(runes)
}

// TrimText trims surrounding whitespace without a length cap.
func TrimText(s string) string {
	return strings.TrimSpace(s)
}
