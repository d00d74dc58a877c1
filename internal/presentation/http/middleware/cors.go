package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sangkips/hospitality-pos/internal/config"
)

var (
	devOrigins     = []string{"http://localhost:3000", "http://localhost:5173", "http://127.0.0.1:3000"}
	defaultMethods = []string{"GET", "POST", "PUT", "PATCH", "OPTIONS"}
	defaultHeaders = []string{"Accept", "Authorization", "Content-Type", "Origin", "X-Request-ID"}

	// always allowed, whatever the configuration says
	posRequestHeaders = []string{IdempotencyKeyHeader}
	// readable by browser terminals
	posExposedHeaders = []string{
		"Content-Length", "Content-Type", "X-Request-ID",
		"X-Idempotency-Replayed", "X-RateLimit-Limit", "X-RateLimit-Remaining", "Retry-After",
	}
)

// CORSMiddleware allows the configured terminal origins. Empty settings fall
// back to local development origins and the default methods and headers.
func CORSMiddleware(cfg *config.CORSConfig) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowOrigins:     orDefault(cfg.AllowedOrigins, devOrigins),
		AllowMethods:     orDefault(cfg.AllowedMethods, defaultMethods),
		AllowHeaders:     withRequired(orDefault(cfg.AllowedHeaders, defaultHeaders), posRequestHeaders),
		ExposeHeaders:    posExposedHeaders,
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	return cors.New(corsConfig)
}

func orDefault(values, fallback []string) []string {
	if len(values) == 0 {
		return append([]string(nil), fallback...)
	}
	return values
}

func withRequired(headers, required []string) []string {
	out := append([]string(nil), headers...)
	for _, r := range required {
		found := false
		for _, h := range out {
			if h == r {
				found = true
				break
			}
		}
		if !found {
			out = append(out, r)
		}
	}
	return out
}
