package deploy

import (
	"net/http"

	"codeberg.org/cicddemo/server/internal/logger"
	"github.com/gin-gonic/gin"
)

const (
	StatusSuccess = "success"

	// logged on every trigger; pipeline smoke tests grep for it
	TriggeredMessage = "Deployment triggered"
)

// Handler godoc
// @Summary Trigger a deployment
// @Description Logs the trigger and acknowledges it. The request body is ignored and no deployment is performed.
// @Tags deploy
// @Accept json
// @Produce json
// @Success 200 {object} Response
// @Router /deploy [post]
func Handler(c *gin.Context) {
	logger.FromContext(c.Request.Context()).Info(TriggeredMessage,
		"path", c.Request.URL.Path,
	)

	c.JSON(http.StatusOK, Response{
		Status: StatusSuccess,
	})
}
