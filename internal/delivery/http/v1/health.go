package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (h *handlerImpl) HandleHealth(c *gin.Context) {
	err := h.store.Ping(c.Request.Context())
	if err != nil {
		h.logger.Error().
			Err(err).
			Msg("store is unreachable")
		c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
