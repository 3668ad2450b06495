package info

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRouter, details Details) {
	api := router.Group("/api")
	api.GET("/info", Handler(details))
}
