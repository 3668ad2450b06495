package errors

import (
	"fmt"
	"net/http"
	"strings"

	"codeberg.org/cicddemo/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError() for failures; it logs and writes the response
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller decide how to log and respond
//
// 404 and 405 responses are left to gin's defaults.

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	// log full error server-side with context
	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	// return sanitized error to client
	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: sanitizeError(err),
	})
}

// returns a gin recovery middleware that reports panics as InternalError
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		InternalError(c, "internal server error", panicError(recovered))
		c.Abort()
	})
}

func panicError(recovered any) error {
	if err, ok := recovered.(error); ok {
		return err
	}

	return fmt.Errorf("panic: %v", recovered)
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()

	if !logger.IsProduction() {
		return errMsg
	}

	lower := strings.ToLower(errMsg)

	if strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline") {
		return "request timed out"
	}

	if strings.Contains(lower, "connection") || strings.Contains(lower, "network") {
		return "connection error occurred"
	}

	return "an error occurred"
}
