package routers

import (
	"path/filepath"
	"strings"

	"Klutterbox/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupRoutes(app *fiber.App, server *cmd.Server) {
	api := app.Group("/api")
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	SetupBoxRouter(api, server)
	SetupItemRouter(api, server)
	SetupSearchRouter(api, server)
	SetupUploadRouter(api, server)

	app.Static("/uploads", server.Cfg.Storage.UploadsPath)
	app.Static("/", server.Cfg.Storage.PublicPath)

	// SPA fallback for non-API GETs.
	indexFile := filepath.Join(server.Cfg.Storage.PublicPath, "index.html")
	app.Use(func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodGet && !strings.HasPrefix(c.Path(), "/api/") {
			return c.SendFile(indexFile)
		}
		return c.SendStatus(fiber.StatusNotFound)
	})
}
