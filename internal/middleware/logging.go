package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/trackpro/trackpro/internal/pkg/logger"
)

func logRequest(c *gin.Context, duration time.Duration) {
	event := logger.Info()
	if c.Writer.Status() >= 500 {
		event = logger.Error()
	} else if c.Writer.Status() >= 400 {
		event = logger.Warn()
	}

	event.
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", c.Writer.Status()).
		Dur("duration", duration).
		Str("clientIp", c.ClientIP()).
		Msg("Request handled")
}
