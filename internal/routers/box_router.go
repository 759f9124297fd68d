package routers

import (
	"Klutterbox/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupBoxRouter(api fiber.Router, server *cmd.Server) {
	boxHandler := server.BoxHandler
	api.Get("/boxes", boxHandler.ListBoxes)
	api.Post("/boxes", boxHandler.CreateBox)
	api.Get("/boxes/summary", boxHandler.GetSummary)
	api.Put("/boxes/:code", boxHandler.UpdateBox)
	api.Delete("/boxes/:code", boxHandler.DeleteBox)
}
