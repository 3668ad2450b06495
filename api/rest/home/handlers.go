package home

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	WelcomeMessage = "Welcome to Jenkins CI/CD Automation Demo"
	StatusRunning  = "running"
)

// Handler godoc
// @Summary Service landing
// @Description Returns a welcome message, the running status and the build version
// @Tags home
// @Produce json
// @Success 200 {object} Response
// @Router / [get]
func Handler(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Message: WelcomeMessage,
			Status:  StatusRunning,
			Version: version,
		})
	}
}
