package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/drunkenberger/akiba/common/logger"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

func RelayPanicRecover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.SysError(fmt.Sprintf("panic detected: %v", err))
				logger.SysError(fmt.Sprintf("stacktrace from panic: %s", string(debug.Stack())))
				if hub := sentrygin.GetHubFromContext(c); hub != nil {
					hub.RecoverWithContext(c.Request.Context(), err)
				}
				c.String(http.StatusInternalServerError, fmt.Sprintf("Internal Server Error: %v", err))
				c.Abort()
			}
		}()
		c.Next()
	}
}
