//go:build wireinject
// +build wireinject

package main

import (
	"Klutterbox/cmd"
	"Klutterbox/database"
	"Klutterbox/internal/config"
	"Klutterbox/internal/handlers"
	"Klutterbox/internal/repository"
	"Klutterbox/internal/services"
	"github.com/google/wire"
)

func Provider() (*config.Configuration, error) {
	return config.LoadConfiguration("klutterbox.yaml")
}

func InitializeServer() (*cmd.Server, error) {
	wire.Build(
		cmd.NewServer,
		database.SetupDatabase,
		repository.NewBoxRepository,
		repository.NewItemRepository,
		services.NewLogService,
		services.NewSearchService,
		services.NewBoxService,
		services.NewFileService,
		services.NewItemService,
		services.NewVisionService,
		services.NewJanitorService,
		handlers.NewBoxHandler,
		handlers.NewItemHandler,
		handlers.NewSearchHandler,
		handlers.NewFileHandler,
		handlers.NewVisionHandler,
		Provider,
	)
	return nil, nil
}
