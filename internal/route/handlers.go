package route

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service, authMiddleware fiber.Handler) {
	r.Post("/", authMiddleware, func(c *fiber.Ctx) error {
		var req struct {
			SpotIDs []string `json:"spot_ids"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		built, ok := svc.Build(req.SpotIDs)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "at least two known spots required")
		}
		return c.JSON(built)
	})
}
