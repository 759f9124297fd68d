package routers

import (
	"Klutterbox/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupUploadRouter(api fiber.Router, server *cmd.Server) {
	api.Post("/upload", server.FileHandler.UploadImage)
	api.Post("/vision-suggest", server.VisionHandler.VisionSuggest)
	api.Post("/quick-add", server.VisionHandler.QuickAdd)
}
