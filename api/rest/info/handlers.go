package info

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler godoc
// @Summary Application info
// @Description Returns the application name, the ENVIRONMENT it runs in and its version
// @Tags info
// @Produce json
// @Success 200 {object} Response
// @Router /api/info [get]
func Handler(details Details) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			AppName:     details.AppName,
			Environment: details.Environment,
			Version:     details.Version,
		})
	}
}
