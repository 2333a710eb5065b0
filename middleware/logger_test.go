package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetUpLoggerOnlyLogsFailures(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	prev := gin.DefaultWriter
	gin.DefaultWriter = &buf
	t.Cleanup(func() { gin.DefaultWriter = prev })

	engine := gin.New()
	engine.Use(RequestId())
	SetUpLogger(engine)
	engine.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "ok") })
	engine.GET("/bad", func(c *gin.Context) { c.String(http.StatusBadGateway, "upstream down") })

	for _, path := range []string{"/ok", "/bad"} {
		engine.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	var entry AccessLogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "error", entry.Level)
	assert.Equal(t, http.StatusBadGateway, entry.Status)
	assert.Equal(t, "/bad", entry.Path)
	assert.NotEmpty(t, entry.RequestId)
}
