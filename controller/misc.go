package controller

import (
	"net/http"

	"github.com/drunkenberger/akiba/common"
	"github.com/drunkenberger/akiba/common/config"
	"github.com/drunkenberger/akiba/relay/constant"
	"github.com/drunkenberger/akiba/relay/helper"
	"github.com/drunkenberger/akiba/relay/model"
	"github.com/gin-gonic/gin"
)

type StyleListResponse struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Data    []model.Style `json:"data"`
	Default string        `json:"default"`
}

type MusicListResponse struct {
	Success bool               `json:"success"`
	Message string             `json:"message"`
	Data    []model.MusicTrack `json:"data"`
}

func GetStatus(c *gin.Context) {
	models := []string{}
	if adaptor := helper.GetAdaptor(constant.Backend2APIType(config.GenerationBackend)); adaptor != nil {
		models = adaptor.GetModelList()
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "",
		"data": gin.H{
			"version":     common.Version,
			"start_time":  common.StartTime,
			"system_name": config.SystemName,
			"mode":        config.Mode,
			"backend":     config.GenerationBackend,
			"models":      models,
		},
	})
}

// ListStyles godoc
// @Summary  Visual styles for the style picker
// @Tags     catalog
// @Produce  json
// @Success  200  {object}  controller.StyleListResponse
// @Router   /api/styles [get]
func ListStyles(c *gin.Context) {
	c.JSON(http.StatusOK, StyleListResponse{
		Success: true,
		Data:    model.Styles,
		Default: model.DefaultStyle,
	})
}

// ListMusic godoc
// @Summary  Music tracks for AMV generation
// @Tags     catalog
// @Produce  json
// @Success  200  {object}  controller.MusicListResponse
// @Router   /api/music [get]
func ListMusic(c *gin.Context) {
	c.JSON(http.StatusOK, MusicListResponse{
		Success: true,
		Data:    model.MusicTracks,
	})
}

func RelayNotFound(c *gin.Context) {
	c.String(http.StatusNotFound, "API not found: "+c.Request.Method+" "+c.Request.URL.Path)
}
