package social

import (
	"github.com/gofiber/fiber/v2"

	"github.com/kendea1221/Hiromap/internal/spot"
)

// RegisterRoutes mounts the social mutators under the spots group.
// notify posts a status line to the assistant feed after an effective
// change; nil disables notices.
func RegisterRoutes(r fiber.Router, svc *Service, reg *spot.Registry, notify func(string), authMiddleware fiber.Handler) {
	if notify == nil {
		notify = func(string) {}
	}

	r.Post("/:id/favorite", authMiddleware, func(c *fiber.Ctx) error {
		if !svc.ToggleFavorite(c.Context(), c.Params("id")) {
			return fiber.NewError(fiber.StatusNotFound, "spot not found")
		}
		s, _ := reg.FindByID(c.Params("id"))
		return c.JSON(fiber.Map{"favorites": s.Favorites})
	})

	r.Post("/:id/visited", authMiddleware, func(c *fiber.Ctx) error {
		if !svc.ToggleVisited(c.Context(), c.Params("id")) {
			return fiber.NewError(fiber.StatusNotFound, "spot not found")
		}
		s, _ := reg.FindByID(c.Params("id"))
		return c.JSON(fiber.Map{"visited": s.Visited})
	})

	r.Post("/:id/ratings", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Score int `json:"score"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		if body.Score < 1 || body.Score > 5 {
			return fiber.NewError(fiber.StatusBadRequest, "score must be between 1 and 5")
		}
		if !svc.Rate(c.Context(), c.Params("id"), body.Score) {
			return fiber.NewError(fiber.StatusNotFound, "spot not found")
		}
		s, _ := reg.FindByID(c.Params("id"))
		return c.JSON(fiber.Map{"avg_rating": s.AvgRating(), "ratings": s.Ratings})
	})

	r.Get("/:id/comments", func(c *fiber.Ctx) error {
		s, ok := reg.FindByID(c.Params("id"))
		if !ok {
			return fiber.NewError(fiber.StatusNotFound, "spot not found")
		}
		return c.JSON(s.Comments)
	})

	r.Post("/:id/comments", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Text  string `json:"text"`
			Photo string `json:"photo"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		comment, ok := svc.AddComment(c.Context(), c.Params("id"), body.Text, body.Photo)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "empty text or unknown spot")
		}
		if s, found := reg.FindByID(c.Params("id")); found {
			notify(s.Name + "にコメントを追加しました。")
		}
		return c.Status(fiber.StatusCreated).JSON(comment)
	})

	r.Post("/:id/comments/:commentID/like", authMiddleware, func(c *fiber.Ctx) error {
		if !svc.ToggleCommentLike(c.Context(), c.Params("id"), c.Params("commentID")) {
			return fiber.NewError(fiber.StatusNotFound, "comment not found")
		}
		return c.SendStatus(fiber.StatusNoContent)
	})

	r.Post("/:id/comments/:commentID/replies", authMiddleware, func(c *fiber.Ctx) error {
		var body struct {
			Text string `json:"text"`
		}
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		reply, ok := svc.AddReply(c.Context(), c.Params("id"), c.Params("commentID"), body.Text)
		if !ok {
			return fiber.NewError(fiber.StatusBadRequest, "empty text or unknown comment")
		}
		return c.Status(fiber.StatusCreated).JSON(reply)
	})
}
