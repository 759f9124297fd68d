package handlers

import (
	"net/http"

	"Klutterbox/internal/services"
	"github.com/gofiber/fiber/v2"
)

type FileHandler struct {
	service services.FileService
}

func NewFileHandler(service services.FileService) *FileHandler {
	return &FileHandler{service: service}
}

func (h *FileHandler) UploadImage(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "No image uploaded"})
	}
	imagePath, err := h.service.SaveUpload(fileHeader)
	if err != nil {
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to store image"})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"image_path": imagePath})
}
