package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	apperrors "github.com/jwalitptl/clinic-records/pkg/errors"
)

// ErrorHandler logs the errors pushed by handlers and renders the last one
// as an HTML error page with its mapped status.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		logger := log.Ctx(c.Request.Context())
		for _, e := range c.Errors {
			status := apperrors.StatusOf(e.Err)
			var event *zerolog.Event
			if status >= 500 {
				event = logger.Error()
			} else {
				event = logger.Debug()
			}
			event.
				Err(e.Err).
				Int("status", status).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("Request error")
		}

		lastErr := c.Errors.Last().Err
		RenderError(c, apperrors.StatusOf(lastErr), apperrors.MessageOf(lastErr))
	}
}
