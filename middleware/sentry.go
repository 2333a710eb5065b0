package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/drunkenberger/akiba/common/config"
	"github.com/drunkenberger/akiba/common/logger"
	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

const SentryFlushTimeout = 2 * time.Second

var sensitiveHeaders = map[string]bool{
	"authorization":    true,
	"cookie":           true,
	config.ApiKeyHeader: true,
}

func Sentry() gin.HandlerFunc {
	return sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         SentryFlushTimeout,
	})
}

// RedactSensitiveHeaders replaces credentials before an event leaves the
// process. Used as the sentry BeforeSend hook.
func RedactSensitiveHeaders(event *sentry.Event, _ *sentry.EventHint) *sentry.Event {
	if event.Request == nil {
		return event
	}
	for k := range event.Request.Headers {
		if sensitiveHeaders[strings.ToLower(k)] {
			event.Request.Headers[k] = "[REDACTED]"
		}
	}
	return event
}

// ReportError sends server-side failures to sentry. Client errors are
// skipped. A no-op when sentry is not set up for the request.
func ReportError(c *gin.Context, statusCode int, message string) {
	if statusCode < http.StatusInternalServerError {
		return
	}
	hub := sentrygin.GetHubFromContext(c)
	if hub == nil {
		return
	}
	hub.WithScope(func(scope *sentry.Scope) {
		scope.SetTag("path", c.Request.URL.Path)
		scope.SetTag("status", http.StatusText(statusCode))
		scope.SetContext("request", map[string]interface{}{
			"request_id": c.GetString(logger.RequestIdKey),
			"method":     c.Request.Method,
		})
		hub.CaptureMessage(message)
	})
}
