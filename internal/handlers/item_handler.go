package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"Klutterbox/internal/dto"
	"Klutterbox/internal/services"
	"github.com/gofiber/fiber/v2"
)

const maxBatchSize = 100

type ItemHandler struct {
	service services.ItemService
}

func NewItemHandler(service services.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) ListItems(c *fiber.Ctx) error {
	boxCode := c.Query("box_code")
	limit, err := strconv.Atoi(c.Query("limit", "100"))
	if err != nil {
		limit = 100
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		offset = 0
	}
	items, err := h.service.GetItems(boxCode, limit, offset)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch items"})
	}
	return c.JSON(items)
}

func (h *ItemHandler) CreateItem(c *fiber.Ctx) error {
	var req dto.ItemCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	item, err := h.service.CreateItem(req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNameRequired), errors.Is(err, services.ErrUnknownBox):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create item"})
		}
	}
	return c.Status(http.StatusCreated).JSON(item)
}

func (h *ItemHandler) UpdateItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	var patch dto.ItemPatchDTO
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	item, err := h.service.UpdateItemPartial(uint(id), patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrItemNotFound):
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		case errors.Is(err, services.ErrNameRequired), errors.Is(err, services.ErrUnknownBox):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update item"})
		}
	}
	return c.JSON(item)
}

func (h *ItemHandler) DeleteItem(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}
	if err := h.service.DeleteItem(uint(id)); err != nil {
		if errors.Is(err, services.ErrItemNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete item"})
	}
	return c.JSON(fiber.Map{"success": true})
}

func (h *ItemHandler) CreateBatch(c *fiber.Ctx) error {
	var req dto.ItemBatchDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	if len(req.Items) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "items array required"})
	}
	if len(req.Items) > maxBatchSize {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "too many items (max 100)"})
	}
	items, err := h.service.CreateItems(req.Items)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNameRequired):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "Each item requires name"})
		case errors.Is(err, services.ErrUnknownBox):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		default:
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create items batch"})
		}
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"items": items})
}
