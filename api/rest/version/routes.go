package version

import "github.com/gin-gonic/gin"

func RegisterRoutes(router gin.IRouter, version string) {
	router.GET("/version", Handler(version))
}
