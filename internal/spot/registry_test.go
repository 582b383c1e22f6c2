package spot

import (
	"context"
	"encoding/json"
	"math"
	"testing"

	"github.com/kendea1221/Hiromap/internal/shared/geo"
	"github.com/kendea1221/Hiromap/internal/store"
)

func TestNewRegistrySeeds(t *testing.T) {
	reg := NewRegistry(context.Background(), store.NewMemory())

	all := reg.All()
	if len(all) < 20 {
		t.Fatalf("expected seed catalog, got %d spots", len(all))
	}
	if _, ok := reg.FindByID(LandmarkID); !ok {
		t.Fatalf("expected landmark %q in seeds", LandmarkID)
	}
	for _, s := range all {
		if s.Kind == KindUser {
			t.Fatalf("seed catalog must not contain user spots")
		}
		if s.Favorites == nil || s.Comments == nil || s.Ratings == nil || s.Visited == nil {
			t.Fatalf("spot %s missing default containers", s.ID)
		}
	}
}

func TestCreateUserSpotExplicit(t *testing.T) {
	reg := NewRegistry(context.Background(), store.NewMemory())

	created := reg.CreateUserSpot(context.Background(), "  夜のカフェ  ", geo.Point{Lat: 34.40, Lng: 132.46}, true, "photo.jpg")
	if created.Name != "夜のカフェ" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.Lat != 34.40 || created.Lng != 132.46 {
		t.Fatalf("explicit coordinates must not be jittered: %v,%v", created.Lat, created.Lng)
	}
	if created.Kind != KindUser || created.Category != CategoryOther {
		t.Fatalf("unexpected kind/category: %v %v", created.Kind, created.Category)
	}
	if len(created.Photos) != 1 || created.Photos[0] != "photo.jpg" {
		t.Fatalf("expected photo attached")
	}

	// New spots go to the front of registry order.
	if all := reg.All(); all[0].ID != created.ID {
		t.Fatalf("expected new spot first")
	}
}

func TestCreateUserSpotImplicitJitter(t *testing.T) {
	reg := NewRegistry(context.Background(), store.NewMemory())
	base := geo.Point{Lat: DefaultCenter.Lat, Lng: DefaultCenter.Lng}

	created := reg.CreateUserSpot(context.Background(), "散歩", base, false, "")
	if math.Abs(created.Lat-base.Lat) > 0.009 || math.Abs(created.Lng-base.Lng) > 0.009 {
		t.Fatalf("jitter out of bounds: %v,%v", created.Lat, created.Lng)
	}
}

func TestCreateUserSpotDefaults(t *testing.T) {
	reg := NewRegistry(context.Background(), store.NewMemory())

	created := reg.CreateUserSpot(context.Background(), "   ", geo.Point{Lat: 34.4, Lng: 132.45}, true, "")
	if created.Name != PlaceholderName {
		t.Fatalf("expected placeholder name, got %q", created.Name)
	}

	long := "あいうえおかきくけこさしすせそたちつてとなにぬねの"
	created = reg.CreateUserSpot(context.Background(), long, geo.Point{Lat: 34.4, Lng: 132.45}, true, "")
	if len([]rune(created.Name)) != 20 {
		t.Fatalf("expected 20-rune cap, got %d", len([]rune(created.Name)))
	}
}

func TestUserSpotsPersistAndRestore(t *testing.T) {
	kv := store.NewMemory()
	reg := NewRegistry(context.Background(), kv)

	created := reg.CreateUserSpot(context.Background(), "隠れ家", geo.Point{Lat: 34.41, Lng: 132.47}, true, "")

	data, ok, err := kv.Load(context.Background(), store.UserSpotsKey)
	if err != nil || !ok {
		t.Fatalf("expected persisted user spots: %v", err)
	}
	var persisted []Spot
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("decode persisted spots: %v", err)
	}
	if len(persisted) != 1 || persisted[0].ID != created.ID {
		t.Fatalf("unexpected persisted set: %+v", persisted)
	}

	restored := NewRegistry(context.Background(), kv)
	got, ok := restored.FindByID(created.ID)
	if !ok || got.Name != "隠れ家" {
		t.Fatalf("expected user spot restored, got %+v ok=%v", got, ok)
	}
}

func TestRestoreCorruptPayload(t *testing.T) {
	kv := store.NewMemory()
	if err := kv.Save(context.Background(), store.UserSpotsKey, []byte("{not json")); err != nil {
		t.Fatalf("save: %v", err)
	}

	reg := NewRegistry(context.Background(), kv)
	for _, s := range reg.All() {
		if s.Kind == KindUser {
			t.Fatalf("corrupt payload must restore empty")
		}
	}
}

func TestMutateUnknownID(t *testing.T) {
	reg := NewRegistry(context.Background(), store.NewMemory())
	if reg.Mutate(context.Background(), "missing", func(*Spot) bool { return true }) {
		t.Fatalf("expected no-op for unknown id")
	}
}

func TestMutateDeclined(t *testing.T) {
	kv := store.NewMemory()
	reg := NewRegistry(context.Background(), kv)

	if reg.Mutate(context.Background(), LandmarkID, func(*Spot) bool { return false }) {
		t.Fatalf("declined mutation must report false")
	}
	if _, ok, _ := kv.Load(context.Background(), store.UserSpotsKey); ok {
		t.Fatalf("declined mutation must not write the store")
	}
}

func TestMutateSyncsUserSpots(t *testing.T) {
	kv := store.NewMemory()
	reg := NewRegistry(context.Background(), kv)
	created := reg.CreateUserSpot(context.Background(), "露店", geo.Point{Lat: 34.4, Lng: 132.45}, true, "")

	ok := reg.Mutate(context.Background(), created.ID, func(s *Spot) bool {
		s.Favorites = Toggle(s.Favorites, "hana")
		return true
	})
	if !ok {
		t.Fatalf("expected mutation applied")
	}

	data, _, _ := kv.Load(context.Background(), store.UserSpotsKey)
	var persisted []Spot
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(persisted) != 1 || !persisted[0].FavoriteOf("hana") {
		t.Fatalf("mutation not mirrored to store: %+v", persisted)
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	reg := NewRegistry(context.Background(), store.NewMemory())

	snap, _ := reg.FindByID(LandmarkID)
	snap.Favorites = append(snap.Favorites, "hana")

	again, _ := reg.FindByID(LandmarkID)
	if again.FavoriteOf("hana") {
		t.Fatalf("snapshot mutation leaked into registry")
	}
}
