package main

import (
	"time"

	"codeberg.org/cicddemo/server/internal/config"
	"codeberg.org/cicddemo/server/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// allows browser clients (pipeline dashboards) to call the API from any origin
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Accept"},
		MaxAge:          12 * time.Hour,
	})
}

// attaches a request-scoped logger carrying the service name and client IP
func RequestLoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		l := logger.With(
			"service", config.ServiceName,
			"client_ip", c.ClientIP(),
		)

		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), l))
		c.Next()
	}
}
