package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aurelianno/advinow-interview-challenge/internal/handlers"
)

type ImportRoutes struct {
	handler *handlers.ImportHandler
}

func NewImportRoutes(handler *handlers.ImportHandler) *ImportRoutes {
	return &ImportRoutes{handler: handler}
}

func (r *ImportRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/import-business-symptoms", r.handler.ImportBusinessSymptoms)
	router.GET("/import-runs", r.handler.ListImportRuns)
}
