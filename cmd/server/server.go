package main

import (
	"codeberg.org/cicddemo/server/internal/config"
	"codeberg.org/cicddemo/server/internal/errors"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance
func NewServer(cfg *config.Config) *Server {
	router := gin.New()

	// matched path with the wrong method answers 405 instead of 404
	router.HandleMethodNotAllowed = true

	router.Use(gin.Logger(), errors.Recovery(), RequestLoggerMiddleware())

	server := &Server{
		config: cfg,
		router: router,
	}

	RegisterRoutes(router, server)

	return server
}
