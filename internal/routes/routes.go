package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aurelianno/advinow-interview-challenge/internal/handlers"
)

func RegisterRoutes(router *gin.Engine, linkHandler *handlers.BusinessSymptomHandler, importHandler *handlers.ImportHandler) {
	api := router.Group("")

	linkRoutes := NewBusinessSymptomRoutes(linkHandler)
	linkRoutes.RegisterRoutes(api)

	importRoutes := NewImportRoutes(importHandler)
	importRoutes.RegisterRoutes(api)

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})
}
