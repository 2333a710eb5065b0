package middleware

import (
	"net/http"
	"strings"

	"github.com/drunkenberger/akiba/common/config"
	"github.com/gin-gonic/gin"
)

// ApiKeyAuth only checks that the caller sent a key. The key itself is
// checked by the generation service on first use.
func ApiKeyAuth() func(c *gin.Context) {
	return func(c *gin.Context) {
		key := strings.TrimSpace(c.Request.Header.Get(config.ApiKeyHeader))
		if key == "" {
			abortWithMessage(c, http.StatusUnauthorized, "missing API key")
			return
		}
		c.Next()
	}
}
