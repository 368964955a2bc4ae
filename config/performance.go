package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const defaultSlowThreshold = 200 * time.Millisecond

// slowThreshold reads the slow-request cutoff from SLOW_REQUEST_MS.
func slowThreshold() time.Duration {
	if env := os.Getenv("SLOW_REQUEST_MS"); env != "" {
		if ms, err := strconv.Atoi(env); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return defaultSlowThreshold
}

// PerformanceLogger times every request and flags the ones that exceed the
// slow threshold.
func PerformanceLogger() gin.HandlerFunc {
	threshold := slowThreshold()

	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)

		log.Printf("[STUDIO] %s %s | Status: %d | Time: %v",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency)

		if latency > threshold {
			log.Printf("[STUDIO] SLOW REQUEST: %s %s took %v (threshold %v)",
				c.Request.Method, c.Request.URL.Path, latency, threshold)
		}
	}
}
