package auth

import (
	"github.com/gofiber/fiber/v2"
)

func RegisterRoutes(r fiber.Router, svc *Service) {
	r.Post("/login", func(c *fiber.Ctx) error {
		var req struct {
			Username string `json:"username"`
		}
		if err := c.BodyParser(&req); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "invalid payload")
		}
		username, tokens, err := svc.Login(c.Context(), req.Username)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.JSON(fiber.Map{"username": username, "tokens": tokens})
	})

	r.Post("/logout", func(c *fiber.Ctx) error {
		svc.Logout(c.Context())
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Get("/me", func(c *fiber.Ctx) error {
		username := svc.Current()
		if username == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "no active session")
		}
		return c.JSON(fiber.Map{"username": username})
	})

	r.Get("/verify", func(c *fiber.Ctx) error {
		token := bearerFromHeader(c.Get("Authorization"))
		if token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		username, err := svc.ValidateToken(token)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}
		return c.JSON(fiber.Map{"username": username})
	})
}
