package router

import (
	"embed"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/drunkenberger/akiba/common"
	"github.com/drunkenberger/akiba/common/config"
	"github.com/drunkenberger/akiba/common/logger"
	"github.com/drunkenberger/akiba/controller"
	"github.com/drunkenberger/akiba/middleware"
	"github.com/drunkenberger/akiba/service"
	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/static"
	"github.com/gin-gonic/gin"
)

func isApiPath(path string) bool {
	return path == "/api" || strings.HasPrefix(path, "/api/")
}

// SetWebRouter must run after every API route is registered so the
// catch-all never shadows them.
func SetWebRouter(router *gin.Engine, buildFS embed.FS) error {
	if config.IsDevelopment() {
		return setDevWebRouter(router)
	}
	return setStaticWebRouter(router, buildFS)
}

func setDevWebRouter(router *gin.Engine) error {
	devProxy, err := service.NewDevProxy(config.DevServerURL)
	if err != nil {
		return fmt.Errorf("invalid DEV_SERVER_URL: %w", err)
	}
	router.NoRoute(func(c *gin.Context) {
		if isApiPath(c.Request.URL.Path) {
			controller.RelayNotFound(c)
			return
		}
		devProxy.ServeHTTP(c.Writer, c.Request)
	})
	logger.SysLog("proxying client requests to dev server " + config.DevServerURL)
	return nil
}

func setStaticWebRouter(router *gin.Engine, buildFS embed.FS) error {
	var fileSystem static.ServeFileSystem
	var indexPageData []byte

	if info, err := os.Stat(config.StaticDir); err == nil && info.IsDir() {
		indexPageData, err = os.ReadFile(filepath.Join(config.StaticDir, "index.html"))
		if err != nil {
			return fmt.Errorf("could not find index.html in %s, build the client first: %w", config.StaticDir, err)
		}
		fileSystem = static.LocalFile(config.StaticDir, false)
		logger.SysLog("serving client from " + config.StaticDir)
	} else {
		indexPageData, err = buildFS.ReadFile("web/build/index.html")
		if err != nil {
			return fmt.Errorf("embedded client is missing index.html: %w", err)
		}
		fileSystem = common.EmbedFolder(buildFS, "web/build")
		logger.SysLog("serving embedded client")
	}

	router.Use(gzip.Gzip(gzip.DefaultCompression))
	router.Use(middleware.Cache())
	router.Use(static.Serve("/", fileSystem))
	router.NoRoute(func(c *gin.Context) {
		if isApiPath(c.Request.URL.Path) {
			controller.RelayNotFound(c)
			return
		}
		c.Header("Cache-Control", "no-cache")
		c.Data(http.StatusOK, "text/html; charset=utf-8", indexPageData)
	})
	return nil
}
