package route

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/kendea1221/Hiromap/internal/spot"
	"github.com/kendea1221/Hiromap/internal/store"
)

func passthrough(c *fiber.Ctx) error { return c.Next() }

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	reg := spot.NewRegistry(context.Background(), store.NewMemory())
	app := fiber.New()
	RegisterRoutes(app.Group("/routes"), NewService(reg), passthrough)
	return app
}

func buildRequest(t *testing.T, ids []string) *http.Request {
	t.Helper()
	body, _ := json.Marshal(map[string][]string{"spot_ids": ids})
	req := httptest.NewRequest(http.MethodPost, "/routes", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func TestBuildRouteHandler(t *testing.T) {
	app := newTestApp(t)

	resp, err := app.Test(buildRequest(t, []string{"miyajima", "dome"}))
	if err != nil || resp.StatusCode != http.StatusOK {
		t.Fatalf("build status: %v %v", err, resp.StatusCode)
	}

	var built Route
	if err := json.NewDecoder(resp.Body).Decode(&built); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(built.SpotIDs) != 2 || built.TotalKm <= 0 {
		t.Fatalf("unexpected route: %+v", built)
	}
}

func TestBuildRouteHandlerRejectsShortSelection(t *testing.T) {
	app := newTestApp(t)

	resp, _ := app.Test(buildRequest(t, []string{"miyajima"}))
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
