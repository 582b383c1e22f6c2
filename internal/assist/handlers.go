package assist

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kendea1221/Hiromap/internal/recommend"
	"github.com/kendea1221/Hiromap/internal/spot"
)

func RegisterRoutes(r fiber.Router, svc *Service, snapshot *recommend.Snapshot, reg *spot.Registry) {
	r.Get("/messages", func(c *fiber.Ctx) error {
		return c.JSON(svc.Messages())
	})

	r.Post("/messages", func(c *fiber.Ctx) error {
		var req struct {
			Text string `json:"text"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		reply, ok := svc.HandleInput(req.Text)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "text required")
		}
		return c.Status(fiber.StatusCreated).JSON(reply)
	})

	r.Get("/weather", func(c *fiber.Ctx) error {
		return c.JSON(snapshot.Get())
	})

	r.Put("/weather", func(c *fiber.Ctx) error {
		var req recommend.Weather
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		snapshot.Set(req)
		return c.JSON(snapshot.Get())
	})

	r.Get("/share/:spotID", func(c *fiber.Ctx) error {
		s, ok := reg.FindByID(c.Params("spotID"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "spot not found")
		}
		return c.JSON(svc.Share(s, c.BaseURL()))
	})
}
