package handlers

import (
	"errors"
	"net/http"

	"Klutterbox/internal/dto"
	"Klutterbox/internal/services"
	"github.com/gofiber/fiber/v2"
)

type BoxHandler struct {
	service services.BoxService
}

func NewBoxHandler(service services.BoxService) *BoxHandler {
	return &BoxHandler{service: service}
}

func (h *BoxHandler) ListBoxes(c *fiber.Ctx) error {
	boxes, err := h.service.GetBoxes()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "could not list boxes"})
	}
	return c.JSON(boxes)
}

func (h *BoxHandler) CreateBox(c *fiber.Ctx) error {
	var req dto.BoxCreateDTO
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	box, err := h.service.CreateBox(req.Code, req.Label)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBoxCodeRequired):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "code is required"})
		case errors.Is(err, services.ErrBoxExists):
			return c.Status(http.StatusConflict).JSON(fiber.Map{"error": "Box code already exists"})
		default:
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create box"})
		}
	}
	return c.Status(http.StatusCreated).JSON(box)
}

func (h *BoxHandler) GetSummary(c *fiber.Ctx) error {
	summaries, err := h.service.GetSummaries()
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to load box summary"})
	}
	return c.JSON(summaries)
}

func (h *BoxHandler) UpdateBox(c *fiber.Ctx) error {
	code := c.Params("code")
	var patch dto.BoxUpdateDTO
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid input"})
	}
	box, err := h.service.UpdateBox(code, patch)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBoxNotFound):
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		case errors.Is(err, services.ErrBoxCodeRequired):
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "code is required"})
		case errors.Is(err, services.ErrBoxExists):
			return c.Status(http.StatusConflict).JSON(fiber.Map{"error": "Box code already exists"})
		default:
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update box"})
		}
	}
	return c.JSON(box)
}

func (h *BoxHandler) DeleteBox(c *fiber.Ctx) error {
	code := c.Params("code")
	if err := h.service.DeleteBox(code); err != nil {
		switch {
		case errors.Is(err, services.ErrBoxNotEmpty):
			return c.Status(http.StatusConflict).JSON(fiber.Map{"error": "Box not empty"})
		case errors.Is(err, services.ErrBoxNotFound):
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "Not found"})
		default:
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete box"})
		}
	}
	return c.JSON(fiber.Map{"success": true})
}
