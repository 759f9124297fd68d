package handlers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"Klutterbox/internal/dto"
	"Klutterbox/internal/models"
	"Klutterbox/internal/services"
	"github.com/gofiber/fiber/v2"
)

type VisionHandler struct {
	fileService   services.FileService
	visionService services.VisionService
	itemService   services.ItemService
	boxService    services.BoxService
}

func NewVisionHandler(
	fileService services.FileService,
	visionService services.VisionService,
	itemService services.ItemService,
	boxService services.BoxService,
) *VisionHandler {
	return &VisionHandler{
		fileService:   fileService,
		visionService: visionService,
		itemService:   itemService,
		boxService:    boxService,
	}
}

// VisionSuggest infers item candidates from an uploaded image without
// persisting anything. An unknown box_code silently falls back to the
// default box; the caller confirms suggestions explicitly.
func (h *VisionHandler) VisionSuggest(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "No image uploaded"})
	}

	boxCode := c.FormValue("box_code")
	if boxCode == "" {
		boxCode = models.DefaultBoxCode
	} else {
		box, err := h.boxService.GetBoxByCode(boxCode)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Vision suggest failed"})
		}
		if box == nil {
			boxCode = models.DefaultBoxCode
		}
	}

	imagePath, err := h.fileService.SaveUpload(fileHeader)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store image"})
	}

	suggestions := h.suggest(fileHeader, imagePath)
	return c.JSON(fiber.Map{
		"items":      suggestions,
		"image_path": imagePath,
		"box_code":   boxCode,
	})
}

// QuickAdd persists one inferred item with the uploaded image attached.
func (h *VisionHandler) QuickAdd(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "No image uploaded"})
	}

	imagePath, err := h.fileService.SaveUpload(fileHeader)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store image"})
	}

	suggestion := h.suggest(fileHeader, imagePath)[0]
	req := dto.ItemCreateDTO{
		Name:      suggestion.Name,
		ImagePath: &imagePath,
		BoxCode:   c.FormValue("box_code"),
	}
	if suggestion.Description != "" {
		req.Description = &suggestion.Description
	}

	item, err := h.itemService.CreateItem(req)
	if err != nil {
		if errors.Is(err, services.ErrUnknownBox) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Quick add failed"})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"item": item})
}

func (h *VisionHandler) suggest(fileHeader *multipart.FileHeader, imagePath string) []dto.SuggestionDTO {
	absolutePath, _ := h.fileService.ResolveUpload(imagePath)
	return h.visionService.SuggestItems(absolutePath, fileHeader.Header.Get("Content-Type"), fileHeader.Filename)
}
