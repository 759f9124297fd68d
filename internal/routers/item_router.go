package routers

import (
	"Klutterbox/cmd"
	"github.com/gofiber/fiber/v2"
)

func SetupItemRouter(api fiber.Router, server *cmd.Server) {
	itemHandler := server.ItemHandler
	api.Get("/items", itemHandler.ListItems)
	api.Post("/items", itemHandler.CreateItem)
	api.Post("/items/batch", itemHandler.CreateBatch)
	api.Put("/items/:id", itemHandler.UpdateItem)
	api.Delete("/items/:id", itemHandler.DeleteItem)
}
