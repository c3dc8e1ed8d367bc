package main

import (
	"go.uber.org/zap"

	"cognitrack/internal/config"
	"cognitrack/internal/database"
	logger "cognitrack/internal/logging"
	"cognitrack/internal/models"
	"cognitrack/internal/router"
	"cognitrack/internal/services"
)

func main() {
	log, err := logger.Init(".")
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer log.Sync()

	if err := config.Init(".", log); err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	database.Init(log)

	catalog, err := models.LoadCatalog(config.Conf.Catalog.Path)
	if err != nil {
		log.Fatal("Failed to load test catalog", zap.Error(err))
	}

	emailService := services.NewEmailService(log)
	scheduler := services.NewScheduler(log, emailService)
	scheduler.Start()

	r := router.Setup(log, catalog)

	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
