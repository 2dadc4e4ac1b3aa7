package v1

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDCtxKey = "request_id"
)

func (h *handlerImpl) HandleRequestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if id == "" {
		id = uuid.NewString()
	}

	c.Set(requestIDCtxKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func (h *handlerImpl) HandleAccessLog(c *gin.Context) {
	start := time.Now()
	c.Next()

	path := c.FullPath()
	if path == "" {
		path = c.Request.URL.Path
	}

	status := c.Writer.Status()
	event := h.logger.Info()
	if status >= 500 {
		event = h.logger.Error()
	}
	event.
		Str("method", c.Request.Method).
		Str("path", path).
		Int("status", status).
		Dur("latency", time.Since(start)).
		Str("client_ip", c.ClientIP()).
		Str("request_id", requestID(c)).
		Msg("handled request")
}

// Timeout gives every request a deadline that the store call inherits.
// A zero d leaves requests unbounded.
func Timeout(d time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if d <= 0 {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), d)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(requestIDCtxKey)
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
