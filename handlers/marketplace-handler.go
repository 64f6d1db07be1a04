package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/krishkalaria12/vitalplan-api/marketplace"
)

const recommendationReason = "Based on your health goals and preferences"

func (h *Handler) ListItems(c *fiber.Ctx) error {
	page, err := h.Catalog.List(marketplace.Query{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		SortBy:   c.Query("sort_by", "featured"),
		Limit:    c.QueryInt("limit", marketplace.DefaultLimit),
		Offset:   c.QueryInt("offset", 0),
	})
	if err != nil {
		return badRequest("Invalid limit or offset")
	}
	return respond(c, fiber.StatusOK, "Items found", page)
}

func (h *Handler) ListCategories(c *fiber.Ctx) error {
	return respond(c, fiber.StatusOK, "Categories found", h.Catalog.Categories())
}

func (h *Handler) GetItem(c *fiber.Ctx) error {
	item, ok := h.Catalog.Get(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Item not found")
	}
	return respond(c, fiber.StatusOK, "Item found", item)
}

func (h *Handler) Recommendations(c *fiber.Ctx) error {
	items, err := h.Catalog.Recommendations(c.QueryInt("limit", marketplace.DefaultRecommendationLimit))
	if err != nil {
		return badRequest("Invalid limit")
	}
	return respond(c, fiber.StatusOK, "Recommendations found", fiber.Map{
		"recommendations": items,
		"reason":          recommendationReason,
	})
}
