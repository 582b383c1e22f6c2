package social

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/kendea1221/Hiromap/internal/session"
	"github.com/kendea1221/Hiromap/internal/spot"
	"github.com/kendea1221/Hiromap/internal/store"
)

func passthrough(c *fiber.Ctx) error { return c.Next() }

func newTestApp(t *testing.T, notify func(string)) (*fiber.App, *spot.Registry, *session.Service) {
	t.Helper()
	reg := spot.NewRegistry(context.Background(), store.NewMemory())
	sessions := session.New(context.Background(), store.NewMemory())
	svc := NewService(reg, sessions)
	app := fiber.New()
	RegisterRoutes(app.Group("/spots"), svc, reg, notify, passthrough)
	return app, reg, sessions
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request %s: %v", path, err)
	}
	return resp
}

func TestFavoriteHandler(t *testing.T) {
	app, _, sessions := newTestApp(t, nil)
	sessions.Login(context.Background(), "hana")

	resp := postJSON(t, app, "/spots/"+spot.LandmarkID+"/favorite", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("favorite status: %d", resp.StatusCode)
	}
	var body struct {
		Favorites []string `json:"favorites"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Favorites) != 1 || body.Favorites[0] != "hana" {
		t.Fatalf("unexpected favorites: %v", body.Favorites)
	}

	resp = postJSON(t, app, "/spots/missing/favorite", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestVisitedHandler(t *testing.T) {
	app, _, sessions := newTestApp(t, nil)
	sessions.Login(context.Background(), "hana")

	resp := postJSON(t, app, "/spots/"+spot.LandmarkID+"/visited", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("visited status: %d", resp.StatusCode)
	}
}

func TestRatingHandlerValidatesScore(t *testing.T) {
	app, _, sessions := newTestApp(t, nil)
	sessions.Login(context.Background(), "hana")

	for _, score := range []int{0, 6} {
		resp := postJSON(t, app, "/spots/"+spot.LandmarkID+"/ratings", map[string]int{"score": score})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("score %d: expected 400, got %d", score, resp.StatusCode)
		}
	}

	resp := postJSON(t, app, "/spots/"+spot.LandmarkID+"/ratings", map[string]int{"score": 4})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("rating status: %d", resp.StatusCode)
	}
	var body struct {
		AvgRating float64 `json:"avg_rating"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.AvgRating != 4.0 {
		t.Fatalf("expected avg 4.0, got %v", body.AvgRating)
	}
}

func TestCommentHandlerNotifies(t *testing.T) {
	var notices []string
	app, reg, sessions := newTestApp(t, func(text string) { notices = append(notices, text) })
	sessions.Login(context.Background(), "hana")

	resp := postJSON(t, app, "/spots/"+spot.LandmarkID+"/comments", map[string]string{"text": "絶景でした"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("comment status: %d", resp.StatusCode)
	}

	landmark, _ := reg.FindByID(spot.LandmarkID)
	if len(notices) != 1 || notices[0] != landmark.Name+"にコメントを追加しました。" {
		t.Fatalf("unexpected notices: %v", notices)
	}

	resp = postJSON(t, app, "/spots/"+spot.LandmarkID+"/comments", map[string]string{"text": "   "})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for blank text, got %d", resp.StatusCode)
	}
	if len(notices) != 1 {
		t.Fatalf("rejected comment must not notify")
	}
}

func TestCommentListHandler(t *testing.T) {
	app, _, sessions := newTestApp(t, nil)
	sessions.Login(context.Background(), "hana")

	postJSON(t, app, "/spots/"+spot.LandmarkID+"/comments", map[string]string{"text": "また来たい"})

	resp, _ := app.Test(httptest.NewRequest(http.MethodGet, "/spots/"+spot.LandmarkID+"/comments", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status: %d", resp.StatusCode)
	}
	var comments []spot.Comment
	if err := json.NewDecoder(resp.Body).Decode(&comments); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(comments) != 1 || comments[0].Text != "また来たい" {
		t.Fatalf("unexpected comments: %+v", comments)
	}

	resp, _ = app.Test(httptest.NewRequest(http.MethodGet, "/spots/missing/comments", nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestLikeAndReplyHandlers(t *testing.T) {
	app, reg, sessions := newTestApp(t, nil)
	sessions.Login(context.Background(), "hana")

	resp := postJSON(t, app, "/spots/"+spot.LandmarkID+"/comments", map[string]string{"text": "紅葉がきれい"})
	var comment spot.Comment
	if err := json.NewDecoder(resp.Body).Decode(&comment); err != nil {
		t.Fatalf("decode comment: %v", err)
	}

	resp = postJSON(t, app, "/spots/"+spot.LandmarkID+"/comments/"+comment.ID+"/like", nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("like status: %d", resp.StatusCode)
	}

	resp = postJSON(t, app, "/spots/"+spot.LandmarkID+"/comments/"+comment.ID+"/replies", map[string]string{"text": "同感です"})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("reply status: %d", resp.StatusCode)
	}

	s, _ := reg.FindByID(spot.LandmarkID)
	if len(s.Comments[0].Likes) != 1 || len(s.Comments[0].Replies) != 1 {
		t.Fatalf("expected like and reply stored")
	}

	resp = postJSON(t, app, "/spots/"+spot.LandmarkID+"/comments/missing/like", nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown comment, got %d", resp.StatusCode)
	}
}
