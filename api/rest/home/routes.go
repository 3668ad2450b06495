package home

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRouter, version string) {
	router.GET("/", Handler(version))
}
