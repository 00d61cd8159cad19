package handlers

import (
	"net/http"
	"time"

	"kurumaya-backend/pkg/redis"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	redisClient *redis.Client
	startedAt   time.Time
}

func NewHealthHandler(redisClient *redis.Client) *HealthHandler {
	return &HealthHandler{
		redisClient: redisClient,
		startedAt:   time.Now(),
	}
}

// Health reports process liveness. The cache being down degrades reads but
// never fails the service, so it does not flip the overall status.
func (h *HealthHandler) Health(c *gin.Context) {
	response := gin.H{
		"status": "ok",
		"uptime": time.Since(h.startedAt).String(),
	}

	if h.redisClient != nil {
		status := h.redisClient.HealthCheck()
		response["cache"] = gin.H{
			"connected":    status.IsConnected,
			"responseTime": status.ResponseTime.String(),
		}
	}

	c.JSON(http.StatusOK, response)
}
