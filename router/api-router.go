package router

import (
	"github.com/drunkenberger/akiba/controller"
	"github.com/drunkenberger/akiba/middleware"
	"github.com/gin-gonic/gin"
)

func SetApiRouter(router *gin.Engine) {
	apiRouter := router.Group("/api")
	{
		apiRouter.GET("/status", controller.GetStatus)
		apiRouter.GET("/styles", controller.ListStyles)
		apiRouter.GET("/music", controller.ListMusic)

		generateRouter := apiRouter.Group("")
		generateRouter.Use(middleware.RelayPanicRecover(), middleware.ApiKeyAuth())
		{
			generateRouter.POST("/generate-image", controller.GenerateImage)
			generateRouter.POST("/generate-video", controller.GenerateVideo)
		}
	}
}
