package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const StatusOK = "ok"

// Handler godoc
// @Summary Health check
// @Description Liveness probe used by the pipeline's smoke test stage
// @Tags health
// @Produce json
// @Success 200 {object} Response
// @Router /health [get]
func Handler(c *gin.Context) {
	c.JSON(http.StatusOK, Response{
		Status: StatusOK,
	})
}
