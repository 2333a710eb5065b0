package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// Cache sets Cache-Control for client files. API responses, including the
// API 404, are left alone.
func Cache() func(c *gin.Context) {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api" || strings.HasPrefix(path, "/api/") {
			c.Next()
			return
		}
		if c.Request.RequestURI == "/" || c.Request.RequestURI == "/index.html" {
			c.Header("Cache-Control", "no-cache")
		} else {
			c.Header("Cache-Control", "max-age=604800") // one week
		}
		c.Next()
	}
}
