package middleware

import (
	"github.com/drunkenberger/akiba/common/logger"
	"github.com/gin-gonic/gin"
)

// abortWithMessage writes a plain-text body; the browser shows it as-is.
func abortWithMessage(c *gin.Context, statusCode int, message string) {
	c.String(statusCode, message)
	c.Abort()
	logger.Warn(c.Request.Context(), message)
}
