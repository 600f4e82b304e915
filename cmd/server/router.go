package main

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"glg-capital.backend/internal/interfaces/http/handlers"
	"glg-capital.backend/internal/interfaces/http/middleware"
	"glg-capital.backend/pkg/metrics"
)

var corsAllowedHeaders = strings.Join([]string{
	"Content-Type",
	middleware.AuthorizationHeader,
	middleware.SessionHeader,
	middleware.IdempotencyHeader,
	middleware.RequestIDHeader,
}, ", ")

// applyCORSMiddleware echoes the caller's origin and answers preflights.
func applyCORSMiddleware(r *gin.Engine) {
	r.Use(func(c *gin.Context) {
		if origin := c.GetHeader("Origin"); origin != "" {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", corsAllowedHeaders)

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine, h *handlers.HealthHandler) {
	r.GET("/health", h.Health)
}

func registerMetricsRoute(r *gin.Engine, registry *prometheus.Registry) {
	r.GET("/metrics", gin.WrapH(metrics.Handler(registry)))
}

func newRouter(registry *prometheus.Registry, health *handlers.HealthHandler, d routeDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r, health)
	registerMetricsRoute(r, registry)
	registerAPIV1Routes(r, d)
	return r
}
