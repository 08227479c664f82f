package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "SentinelX Backend Running",
		"version":   "1.0.0",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
