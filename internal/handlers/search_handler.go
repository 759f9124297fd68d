package handlers

import (
	"net/http"

	"Klutterbox/internal/services"
	"github.com/gofiber/fiber/v2"
)

type SearchHandler struct {
	service services.SearchService
}

func NewSearchHandler(service services.SearchService) *SearchHandler {
	return &SearchHandler{service: service}
}

func (h *SearchHandler) Search(c *fiber.Ctx) error {
	items, err := h.service.Search(c.Query("q"), c.Query("box_code"))
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Search failed"})
	}
	return c.JSON(items)
}
