package router

import (
	"embed"
	"net/http"

	"github.com/drunkenberger/akiba/common/logger"
	"github.com/drunkenberger/akiba/docs"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetRouter(router *gin.Engine, buildFS embed.FS) error {
	SetApiRouter(router)

	router.GET("/api/docs/swagger.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", docs.SwaggerJSON)
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("/api/docs/swagger.json"),
	))
	logger.SysLog("Swagger UI enabled at /swagger/index.html")

	return SetWebRouter(router, buildFS)
}
