package handler

import "github.com/gofiber/fiber/v2"

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"message": "VitalPlan API is running",
	})
}

func (h *Handler) Root(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, "Welcome to VitalPlan API", fiber.Map{
		"version": h.Config.Version,
	})
}
