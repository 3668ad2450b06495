package main

import (
	"net/http"

	"codeberg.org/cicddemo/server/api/rest/deploy"
	"codeberg.org/cicddemo/server/api/rest/health"
	"codeberg.org/cicddemo/server/api/rest/home"
	"codeberg.org/cicddemo/server/api/rest/info"
	"codeberg.org/cicddemo/server/api/rest/version"
	"codeberg.org/cicddemo/server/docs"
	"codeberg.org/cicddemo/server/internal/config"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(CORSMiddleware())

	home.RegisterRoutes(router, config.Version)
	health.RegisterRoutes(router)
	version.RegisterRoutes(router, config.Version)
	deploy.RegisterRoutes(router)
	info.RegisterRoutes(router, info.Details{
		AppName:     config.AppName,
		Environment: server.config.Environment,
		Version:     config.Version,
	})

	router.GET("/swagger/doc.json", SwaggerDocHandler)
}

// serves the generated OpenAPI document
func SwaggerDocHandler(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(docs.SwaggerInfo.ReadDoc()))
}
