package controller

import (
	"net/http"

	"github.com/drunkenberger/akiba/relay/channel"
	"github.com/drunkenberger/akiba/relay/model"
	"github.com/drunkenberger/akiba/relay/util"
	"github.com/gin-gonic/gin"
)

func RelayImageHelper(c *gin.Context) *model.ErrorWithStatusCode {
	var request model.GenerationRequest
	mediaURL, err := relayGeneration(c, &request, func(adaptor channel.Adaptor, meta *util.RelayMeta, request *model.GenerationRequest) (any, error) {
		return adaptor.ConvertImageRequest(meta, request)
	})
	if err != nil {
		return err
	}
	c.JSON(http.StatusOK, model.ImageResponse{ImageUrl: mediaURL})
	return nil
}
