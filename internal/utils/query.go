package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetIntQuery reads an integer query parameter, falling back to def when
// absent or unparsable.
func GetIntQuery(c *gin.Context, key string, def int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// GetStringQuery reads a string query parameter, falling back to def when
// absent.
func GetStringQuery(c *gin.Context, key, def string) string {
	if v := c.Query(key); v != "" {
		return v
	}
	return def
}
