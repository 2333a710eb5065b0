package main

import (
	"embed"
	"fmt"
	"os"
	"strconv"

	"github.com/drunkenberger/akiba/common"
	"github.com/drunkenberger/akiba/common/config"
	"github.com/drunkenberger/akiba/common/logger"
	"github.com/drunkenberger/akiba/middleware"
	"github.com/drunkenberger/akiba/relay/constant"
	"github.com/drunkenberger/akiba/relay/helper"
	"github.com/drunkenberger/akiba/relay/util"
	"github.com/drunkenberger/akiba/router"
	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

//go:embed web/build/*
var buildFS embed.FS

func main() {
	common.Init()
	logger.SetupLogger()
	logger.SysLog(fmt.Sprintf("Akiba %s started", common.Version))
	if os.Getenv("GIN_MODE") != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}
	if config.DebugEnabled {
		logger.SysLog("running in debug mode")
	}
	logger.SysLog("environment: " + config.Mode)

	if config.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         config.SentryDSN,
			Environment: config.Mode,
			Release:     "akiba@" + common.Version,
			Debug:       config.DebugEnabled,
			BeforeSend:  middleware.RedactSensitiveHeaders,
		}); err != nil {
			logger.SysError("failed to initialize sentry: " + err.Error())
		} else {
			logger.SysLog("sentry error reporting enabled")
			flush := func() { sentry.Flush(middleware.SentryFlushTimeout) }
			defer flush()
			logger.AddExitHook(flush)
		}
	}

	if helper.GetAdaptor(constant.Backend2APIType(config.GenerationBackend)) == nil {
		logger.FatalLog("unsupported GENERATION_BACKEND: " + config.GenerationBackend)
	}
	if err := util.InitHTTPClient(); err != nil {
		logger.FatalLog("failed to initialize relay http client: " + err.Error())
	}

	// Initialize HTTP server
	server := gin.New()
	server.Use(gin.Recovery())
	server.Use(middleware.RequestId())
	if config.SentryDSN != "" {
		server.Use(middleware.Sentry())
	}
	middleware.SetUpLogger(server)
	server.Use(middleware.SecurityHeaders())
	server.Use(middleware.CORS())
	server.Use(middleware.Preflight())

	if err := router.SetRouter(server, buildFS); err != nil {
		logger.FatalLog("failed to set up routes: " + err.Error())
	}

	var port = os.Getenv("PORT")
	if port == "" {
		port = strconv.Itoa(*common.Port)
	}
	logger.SysLog("serving on port " + port)
	if err := server.Run("0.0.0.0:" + port); err != nil {
		logger.FatalLog("failed to start HTTP server: " + err.Error())
	}
}
