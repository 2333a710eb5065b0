package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCacheSkipsApiPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(Cache())
	engine.NoRoute(func(c *gin.Context) { c.String(http.StatusNotFound, "nope") })

	cases := map[string]string{
		"/":           "no-cache",
		"/index.html": "no-cache",
		"/app.js":     "max-age=604800",
		"/api":        "",
		"/api/nope":   "",
	}
	for path, want := range cases {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, w.Header().Get("Cache-Control"), path)
	}
}
