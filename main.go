package main

import (
	"log"
	"net/http"

	"storeapi/config"
	"storeapi/jobs"
	"storeapi/repositories"
	"storeapi/routes"
	"storeapi/services"
	"storeapi/services/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	appLogger := logger.NewDefaultLogger(logger.ParseLevel(cfg.LogLevel))
	defer func() { _ = appLogger.Sync() }()

	router, c, err := config.InitApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer c.Stop()

	reportLocation := cfg.ReportLocation()
	reportService := services.NewReportService(services.ReportServiceOptions{
		Orders:   repositories.NewOrderRepository(config.DB),
		Logger:   appLogger,
		Location: reportLocation,
	})
	if err := jobs.InitCronJobs(c, reportService, appLogger, reportLocation); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.ElasticClient, appLogger, reportLocation)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	appLogger.Info("Server starting on port %s...", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
