package middleware

import (
	"log/slog"
	"net/http"

	"grandehotel-core/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the most recent public error attached to the context
// as the JSON error envelope. Handlers that already wrote a body win.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		for i := len(c.Errors) - 1; i >= 0; i-- {
			ginErr := c.Errors[i]
			if !ginErr.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ginErr.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if status := c.Writer.Status(); status != http.StatusOK {
			c.Status(status)
			c.Writer.WriteHeaderNow()
			return
		}

		c.JSON(http.StatusInternalServerError,
			httperr.NewResponse(http.StatusInternalServerError, "Internal server error"))
	}
}

// CustomRecovery converts panics into a 500 envelope instead of gin's
// default plaintext response. Must be the outermost middleware.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic", "panic", r, "path", c.Request.URL.Path)
				c.JSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, "Internal server error"))
				c.Abort()
			}
		}()
		c.Next()
	}
}
