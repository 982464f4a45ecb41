package server

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/aurelianno/advinow-interview-challenge/internal/config"
	"github.com/aurelianno/advinow-interview-challenge/internal/database"
	"github.com/aurelianno/advinow-interview-challenge/internal/handlers"
	"github.com/aurelianno/advinow-interview-challenge/internal/middlewares"
	"github.com/aurelianno/advinow-interview-challenge/internal/repositories"
	"github.com/aurelianno/advinow-interview-challenge/internal/routes"
	"github.com/aurelianno/advinow-interview-challenge/internal/services"
)

func New(cfg *config.Config, log *logrus.Logger) (*http.Server, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("database connected and schema migrated")

	// Dependency injection
	linkRepo := repositories.NewBusinessSymptomRepository(db)
	runRepo := repositories.NewImportRunRepository(db)
	importService := services.NewImportService(linkRepo, runRepo, log)
	linkService := services.NewLinkService(linkRepo, log)
	linkHandler := handlers.NewBusinessSymptomHandler(linkService)
	importHandler := handlers.NewImportHandler(importService)

	router := gin.New()
	router.Use(gin.Recovery(), middlewares.RequestLogger(log), cors.Default())
	routes.RegisterRoutes(router, linkHandler, importHandler)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServicePort),
		Handler:      router,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}, nil
}
