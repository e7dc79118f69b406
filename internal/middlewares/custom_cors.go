package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salon-booking-api/internal/config"
)

// CustomCORS mirrors the teacher's origin-echo CORS handler, but only
// engages when the configured origin allowlist permits the request's
// Origin header.
func CustomCORS(cfg *config.Config) gin.HandlerFunc {
	allowed := make(map[string]bool, len(cfg.CORSOrigins))
	wildcard := false
	for _, o := range cfg.CORSOrigins {
		if o == "*" {
			wildcard = true
		}
		allowed[o] = true
	}

	return func(c *gin.Context) {
		if !cfg.EnableCORS {
			c.Next()
			return
		}

		origin := c.GetHeader("Origin")
		if origin == "" || !(wildcard || allowed[origin]) {
			c.Next()
			return
		}

		// Set CORS headers
		c.Header("Access-Control-Allow-Origin", origin)
		c.Header("Access-Control-Allow-Credentials", "true")
		c.Header("Access-Control-Allow-Headers", "Authorization, Content-Type, Accept, Origin, X-Requested-With, "+cfg.BotTokenHeader)
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Expose-Headers", "Content-Length, Content-Type")
		c.Header("Access-Control-Max-Age", "86400")

		// Handle preflight with proper status code
		if c.Request.Method == http.MethodOptions {
			c.Header("Content-Type", "text/plain")
			c.Header("Content-Length", "0")
			c.Status(http.StatusNoContent)
			c.Abort()
			return
		}

		c.Next()
	}
}
