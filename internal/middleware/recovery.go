package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	httperr "github.com/fakturo-lab/fakturo/internal/core/errors"
	"github.com/gin-gonic/gin"
)

// Recovery recovers from handler panics, logs them with the stack trace and
// returns a 500.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)

				slog.Error("panic recovered",
					"error", err,
					"request_id", requestID,
					"method", c.Request.Method,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, httperr.ErrorResponse{
					ErrorType: httperr.HttpInternalError,
					Message:   "Internal server error",
					Details:   requestID,
				})
			}
		}()

		c.Next()
	}
}
