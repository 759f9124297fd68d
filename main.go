package main

import (
	"fmt"
	"log"

	"Klutterbox/database"
	"Klutterbox/internal/routers"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	server, err := InitializeServer()
	if err != nil {
		log.Fatal(err)
	}
	defer database.CloseDatabase(server.DB)

	server.JanitorService.StartCleanCycle()

	app := fiber.New(fiber.Config{
		BodyLimit: server.Cfg.Server.SizeLimit * 1024 * 1024,
		AppName:   "Klutterbox",
	})
	app.Use(logger.New())
	routers.SetupRoutes(app, server)

	if err := app.Listen(fmt.Sprintf(":%d", server.Cfg.Server.Port)); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
