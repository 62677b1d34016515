package middleware

import (
	"log/slog"
	"net/http"

	"shareit/internal/handler/httperr"
	"shareit/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders whatever the handler left in c.Errors when nothing was
// written. Responses built by httperr are replayed; bare errors go through the
// taxonomy so c.Error(err) alone is enough in a handler.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		if last == nil {
			if status := c.Writer.Status(); status != http.StatusOK {
				c.Status(status)
				c.Writer.WriteHeaderNow()
				return
			}
			writeInternal(c)
			return
		}

		if resp, ok := last.Meta.(httperr.Response); ok {
			c.JSON(resp.Status, resp)
			return
		}

		status := httperr.StatusOf(last.Err)
		if status == http.StatusInternalServerError {
			slog.ErrorContext(c.Request.Context(), "unclassified error",
				"route", c.FullPath(),
				"error", last.Err.Error(),
				"stack", errs.ExtractStackLines(last.Err, 8))
			writeInternal(c)
			return
		}
		c.JSON(status, httperr.NewResponse(status, last.Err, httperr.Message(last.Err)))
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.ErrorContext(c.Request.Context(), "recovered from panic",
					"path", c.Request.URL.Path,
					"panic", rec)
				writeInternal(c)
				c.Abort()
			}
		}()
		c.Next()
	}
}

func writeInternal(c *gin.Context) {
	resp := httperr.NewResponse(http.StatusInternalServerError, nil, "Internal server error")
	c.JSON(http.StatusInternalServerError, resp)
}
