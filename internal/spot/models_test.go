package spot

import "testing"

func TestAvgRating(t *testing.T) {
	s := &Spot{}
	if got := s.AvgRating(); got != 0 {
		t.Fatalf("expected 0 without ratings, got %v", got)
	}

	s.Ratings = []Rating{{UserID: "hana", Score: 3}, {UserID: "taro", Score: 5}}
	if got := s.AvgRating(); got != 4.0 {
		t.Fatalf("expected 4.0, got %v", got)
	}
}

func TestToggleInvolution(t *testing.T) {
	list := Toggle(nil, "hana")
	if len(list) != 1 || list[0] != "hana" {
		t.Fatalf("expected membership after first toggle, got %v", list)
	}
	list = Toggle(list, "hana")
	if len(list) != 0 {
		t.Fatalf("expected empty after second toggle, got %v", list)
	}
}

func TestTogglePreservesOthers(t *testing.T) {
	list := []string{"hana", "taro", "jiro"}
	list = Toggle(list, "taro")
	if len(list) != 2 || list[0] != "hana" || list[1] != "jiro" {
		t.Fatalf("unexpected list: %v", list)
	}
}

func TestFindComment(t *testing.T) {
	s := &Spot{Comments: []Comment{{ID: "c1"}, {ID: "c2"}}}
	if c := s.FindComment("c2"); c == nil || c.ID != "c2" {
		t.Fatalf("expected c2")
	}
	if c := s.FindComment("missing"); c != nil {
		t.Fatalf("expected nil for unknown id")
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("  hello  ", 20); got != "hello" {
		t.Fatalf("expected trimmed, got %q", got)
	}
	// Multibyte input is capped by rune count, not bytes.
	long := "あいうえおかきくけこさしすせそたちつてとなにぬねの"
	got := TruncateRunes(long, 20)
	if runes := []rune(got); len(runes) != 20 || string(runes[:5]) != "あいうえお" {
		t.Fatalf("unexpected truncation: %q", got)
	}
}
