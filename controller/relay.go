package controller

import (
	"net/http"

	"github.com/drunkenberger/akiba/common/helper"
	"github.com/drunkenberger/akiba/common/logger"
	"github.com/drunkenberger/akiba/middleware"
	"github.com/drunkenberger/akiba/relay/controller"
	"github.com/drunkenberger/akiba/relay/model"
	"github.com/drunkenberger/akiba/relay/util"
	"github.com/gin-gonic/gin"
)

// GenerateImage godoc
// @Summary      Generate an image
// @Description  Forwards the prompt to the generation backend with the caller's key.
// @Tags         generation
// @Accept       json
// @Produce      json
// @Param        x-fal-api-key  header  string                   true  "fal.ai API key"
// @Param        request        body    model.GenerationRequest  true  "prompt and style"
// @Success      200  {object}  model.ImageResponse
// @Failure      400  {string}  string
// @Failure      401  {string}  string
// @Failure      502  {string}  string
// @Router       /api/generate-image [post]
func GenerateImage(c *gin.Context) {
	if bizErr := controller.RelayImageHelper(c); bizErr != nil {
		relayError(c, bizErr)
	}
}

// GenerateVideo godoc
// @Summary      Generate an AMV clip
// @Tags         generation
// @Accept       json
// @Produce      json
// @Param        x-fal-api-key  header  string                   true  "fal.ai API key"
// @Param        request        body    model.GenerationRequest  true  "prompt, style, music and strength"
// @Success      200  {object}  model.VideoResponse
// @Failure      400  {string}  string
// @Failure      401  {string}  string
// @Failure      502  {string}  string
// @Router       /api/generate-video [post]
func GenerateVideo(c *gin.Context) {
	if bizErr := controller.RelayVideoHelper(c); bizErr != nil {
		relayError(c, bizErr)
	}
}

// relayError writes the message as plain text so the browser can show the
// body verbatim. Our own 5xx failures carry the request id; upstream bodies
// are passed on untouched.
func relayError(c *gin.Context, bizErr *model.ErrorWithStatusCode) {
	logger.Errorf(c.Request.Context(), "relay error (status %d, type %s): %s", bizErr.StatusCode, bizErr.Type, bizErr.Message)
	middleware.ReportError(c, bizErr.StatusCode, bizErr.Message)
	message := bizErr.Message
	if bizErr.StatusCode >= http.StatusInternalServerError && bizErr.Type != util.UpstreamErrorType {
		message = helper.MessageWithRequestId(message, c.GetString(logger.RequestIdKey))
	}
	c.String(bizErr.StatusCode, message)
}
