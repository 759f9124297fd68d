package cmd

import (
	"Klutterbox/internal/config"
	"Klutterbox/internal/handlers"
	"Klutterbox/internal/services"
	"gorm.io/gorm"
)

type Server struct {
	Cfg            *config.Configuration
	DB             *gorm.DB
	BoxHandler     *handlers.BoxHandler
	ItemHandler    *handlers.ItemHandler
	SearchHandler  *handlers.SearchHandler
	FileHandler    *handlers.FileHandler
	VisionHandler  *handlers.VisionHandler
	LogService     services.LogService
	JanitorService *services.Janitor
}

func NewServer(
	cfg *config.Configuration,
	db *gorm.DB,
	boxHandler *handlers.BoxHandler,
	itemHandler *handlers.ItemHandler,
	searchHandler *handlers.SearchHandler,
	fileHandler *handlers.FileHandler,
	visionHandler *handlers.VisionHandler,
	logService services.LogService,
	janitorService *services.Janitor,
) *Server {
	return &Server{
		Cfg:            cfg,
		DB:             db,
		BoxHandler:     boxHandler,
		ItemHandler:    itemHandler,
		SearchHandler:  searchHandler,
		FileHandler:    fileHandler,
		VisionHandler:  visionHandler,
		LogService:     logService,
		JanitorService: janitorService,
	}
}
