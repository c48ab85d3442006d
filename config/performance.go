package config

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// slowThreshold flags requests that waited too long on the remote store.
const slowThreshold = 500 * time.Millisecond

// PerformanceLogger logs every request with its latency. Most handlers
// proxy the remote store, so latency here is dominated by the upstream call.
func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		log.Printf("[PERF] %s %s | Status: %d | Time: %v",
			c.Request.Method,
			c.Request.URL.Path,
			c.Writer.Status(),
			latency)

		if latency > slowThreshold {
			log.Printf("SLOW REQUEST: %s %s took %v",
				c.Request.Method, c.Request.URL.Path, latency)
		}
	}
}
