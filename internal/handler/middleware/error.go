package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"

	"github.com/Fox-16s/reservat-io/internal/handler/httperr"
	"github.com/Fox-16s/reservat-io/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

const logStackLines = 12

// ErrorHandler turns errors left on the context into the JSON error envelope.
// The newest public error wins. Private errors are logged with their stack
// and answered with a generic 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}
		for i := len(c.Errors) - 1; i >= 0; i-- {
			ge := c.Errors[i]
			if !ge.IsType(gin.ErrorTypePublic) {
				continue
			}
			if resp, ok := ge.Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		last := c.Errors.Last()
		attrs := []any{
			"path", c.FullPath(),
			"method", c.Request.Method,
			"error", last.Err.Error(),
			"stack", errs.ExtractStackLines(last.Err, logStackLines),
		}
		if id := GetRequestID(c); id != "" {
			attrs = append(attrs, "request_id", id)
		}
		if uid, ok := GetUserID(c); ok {
			attrs = append(attrs, "user_id", uid.String())
		}
		slog.Error("unhandled request error", attrs...)

		c.JSON(http.StatusInternalServerError, internalError())
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				slog.Error("recovered from panic",
					"panic", r,
					"path", c.Request.URL.Path,
					"stack", string(debug.Stack()))
				c.AbortWithStatusJSON(http.StatusInternalServerError, internalError())
			}
		}()
		c.Next()
	}
}

func internalError() httperr.Response {
	resp := httperr.Response{Status: http.StatusInternalServerError}
	resp.Error.Message = "Internal server error"
	return resp
}
