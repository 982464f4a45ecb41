package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/aurelianno/advinow-interview-challenge/internal/handlers"
)

type BusinessSymptomRoutes struct {
	handler *handlers.BusinessSymptomHandler
}

func NewBusinessSymptomRoutes(handler *handlers.BusinessSymptomHandler) *BusinessSymptomRoutes {
	return &BusinessSymptomRoutes{handler: handler}
}

func (r *BusinessSymptomRoutes) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/business-symptoms", r.handler.ListBusinessSymptoms)
}
