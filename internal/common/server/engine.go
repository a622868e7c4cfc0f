// internal/common/server/engine.go
package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"resume-services/internal/common/logger"
	"resume-services/internal/common/metrics"
)

const RequestIDHeader = "X-Request-ID"

// NewEngine builds a gin engine with the shared middleware chain and a
// Prometheus scrape endpoint. Service handlers register their routes on top.
func NewEngine(service string, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), AccessLog(service, log), Metrics(service))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

// RequestID attaches a request id to the context and response headers,
// honoring an id supplied by the caller.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("requestID", id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog emits one structured line per request.
func AccessLog(service string, log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("request handled", map[string]interface{}{
			"service":   service,
			"method":    c.Request.Method,
			"path":      c.Request.URL.Path,
			"status":    c.Writer.Status(),
			"duration":  time.Since(start).String(),
			"requestId": c.GetString("requestID"),
		})
	}
}

// Metrics records request counts and latencies per route.
func Metrics(service string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		metrics.HTTPRequestsTotal.WithLabelValues(
			service, c.Request.Method, path, strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			service, c.Request.Method, path,
		).Observe(time.Since(start).Seconds())
	}
}
