package spot

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/kendea1221/Hiromap/internal/session"
	"github.com/kendea1221/Hiromap/internal/shared/geo"
)

func RegisterRoutes(r fiber.Router, reg *Registry, sessions *session.Service, authMiddleware fiber.Handler) {
	r.Get("/", func(c *fiber.Ctx) error {
		q := Query{
			Text:          c.Query("q"),
			Kind:          Kind(c.Query("kind")),
			Category:      Category(c.Query("category")),
			FavoritesOnly: c.QueryBool("favorites"),
			VisitedOnly:   c.QueryBool("visited"),
			SortBy:        SortBy(c.Query("sort")),
		}
		return c.JSON(q.Apply(reg.All(), sessions.Current()))
	})

	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req struct {
			Name  string   `json:"name"`
			Lat   *float64 `json:"lat"`
			Lng   *float64 `json:"lng"`
			Photo string   `json:"photo"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		base := geo.Point{Lat: DefaultCenter.Lat, Lng: DefaultCenter.Lng}
		explicit := req.Lat != nil && req.Lng != nil
		if explicit {
			base = geo.Point{Lat: *req.Lat, Lng: *req.Lng}
			if base.Lat < -90 || base.Lat > 90 || base.Lng < -180 || base.Lng > 180 {
				return fiber.NewError(fiber.StatusBadRequest, "coordinate out of range")
			}
		}

		created := reg.CreateUserSpot(c.Context(), req.Name, base, explicit, req.Photo)
		return c.Status(fiber.StatusCreated).JSON(created)
	})

	r.Get("/:id", func(c *fiber.Ctx) error {
		s, ok := reg.FindByID(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "spot not found")
		}
		return c.JSON(s)
	})

	r.Get("/:id/open", func(c *fiber.Ctx) error {
		s, ok := reg.FindByID(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "spot not found")
		}
		return c.JSON(fiber.Map{
			"state":      s.OpenStateAt(time.Now()).String(),
			"avg_rating": s.AvgRating(),
		})
	})
}
