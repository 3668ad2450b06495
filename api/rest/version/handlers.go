package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler godoc
// @Summary Build version
// @Description Returns the deployed build version
// @Tags version
// @Produce json
// @Success 200 {object} Response
// @Router /version [get]
func Handler(version string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{Version: version})
	}
}
