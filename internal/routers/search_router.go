package routers

import (
	"Klutterbox/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupSearchRouter(api fiber.Router, server *cmd.Server) {
	api.Get("/search", server.SearchHandler.Search)
}
