package controller

import (
	"net/http"

	"github.com/drunkenberger/akiba/relay/channel"
	"github.com/drunkenberger/akiba/relay/model"
	"github.com/drunkenberger/akiba/relay/util"
	"github.com/gin-gonic/gin"
)

// RelayVideoHelper generates the AMV clip. The chosen music track is not
// sent upstream; it is echoed back so the client can play it over the clip.
func RelayVideoHelper(c *gin.Context) *model.ErrorWithStatusCode {
	var request model.GenerationRequest
	mediaURL, err := relayGeneration(c, &request, func(adaptor channel.Adaptor, meta *util.RelayMeta, request *model.GenerationRequest) (any, error) {
		return adaptor.ConvertVideoRequest(meta, request)
	})
	if err != nil {
		return err
	}

	response := model.VideoResponse{VideoUrl: mediaURL}
	if track, ok := model.GetMusicTrack(request.Music); ok {
		response.Music = &track
	}
	c.JSON(http.StatusOK, response)
	return nil
}
