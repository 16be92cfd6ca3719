package handlers

import (
	"context"
	"net/http"
	"time"

	intconfig "travelmap/internal/config"

	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "travelmap"})
}

// Ready reports whether both backing stores answer.
func Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	deps := gin.H{"mysql": "ok", "redis": "ok"}
	healthy := true

	if intconfig.DB == nil {
		deps["mysql"] = "not connected"
		healthy = false
	} else if err := intconfig.DB.PingContext(ctx); err != nil {
		deps["mysql"] = err.Error()
		healthy = false
	}

	if intconfig.Redis == nil {
		deps["redis"] = "not connected"
		healthy = false
	} else if err := intconfig.Redis.Ping(ctx).Err(); err != nil {
		deps["redis"] = err.Error()
		healthy = false
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{"ready": healthy, "deps": deps})
}
