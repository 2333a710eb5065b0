package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	cors "github.com/rs/cors/wrapper/gin"
)

// CORS allows every origin. Credentials are not allowed since the key
// travels in a header, never in a cookie. Preflights pass through to
// Preflight, which answers them.
func CORS() gin.HandlerFunc {
	options := cors.Options{
		AllowedOrigins:       []string{"*"},
		AllowedMethods:       []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowedHeaders:       []string{"*"},
		OptionsSuccessStatus: http.StatusOK,
		OptionsPassthrough:   true,
	}
	return cors.New(options)
}

// Preflight answers every OPTIONS request with 200, including plain OPTIONS
// requests that carry no CORS headers and paths with no route.
func Preflight() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method != http.MethodOptions {
			c.Next()
			return
		}
		header := c.Writer.Header()
		if header.Get("Access-Control-Allow-Origin") == "" {
			header.Set("Access-Control-Allow-Origin", "*")
		}
		if header.Get("Access-Control-Allow-Methods") == "" {
			header.Set("Access-Control-Allow-Methods", "*")
		}
		if header.Get("Access-Control-Allow-Headers") == "" {
			header.Set("Access-Control-Allow-Headers", "*")
		}
		c.AbortWithStatus(http.StatusOK)
	}
}
