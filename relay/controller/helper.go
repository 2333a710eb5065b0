package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/drunkenberger/akiba/common"
	"github.com/drunkenberger/akiba/common/config"
	"github.com/drunkenberger/akiba/common/logger"
	"github.com/drunkenberger/akiba/relay/channel"
	"github.com/drunkenberger/akiba/relay/helper"
	"github.com/drunkenberger/akiba/relay/model"
	"github.com/drunkenberger/akiba/relay/util"
	"github.com/gin-gonic/gin"
)

type convertFunc func(adaptor channel.Adaptor, meta *util.RelayMeta, request *model.GenerationRequest) (any, error)

// relayGeneration performs the single pass-through call shared by both
// generation endpoints and returns the media URL.
func relayGeneration(c *gin.Context, request *model.GenerationRequest, convert convertFunc) (string, *model.ErrorWithStatusCode) {
	ctx := c.Request.Context()
	meta := util.GetRelayMeta(c)
	if meta.APIKey == "" {
		return "", util.ErrorWrapperWithMessage("missing API key", "missing_api_key", http.StatusUnauthorized)
	}

	model.SetupValidator()
	if err := common.UnmarshalBodyReusable(c, request); err != nil {
		return "", util.ErrorWrapperWithMessage(model.ValidationMessage(err), "invalid_request", http.StatusBadRequest)
	}

	adaptor := helper.GetAdaptor(meta.APIType)
	if adaptor == nil {
		return "", util.ErrorWrapperWithMessage(fmt.Sprintf("invalid api type: %d", meta.APIType), "invalid_api_type", http.StatusInternalServerError)
	}
	adaptor.Init(meta)

	convertedRequest, err := convert(adaptor, meta, request)
	if err != nil {
		return "", util.ErrorWrapper(err, "convert_request_failed", http.StatusInternalServerError)
	}
	jsonData, err := json.Marshal(convertedRequest)
	if err != nil {
		return "", util.ErrorWrapper(err, "marshal_request_failed", http.StatusInternalServerError)
	}
	if config.DebugEnabled {
		logger.Debugf(ctx, "%s request body: %s", adaptor.GetChannelName(), string(jsonData))
	}

	logger.Infof(ctx, "relaying to %s model %s", adaptor.GetChannelName(), meta.ActualModelName)
	resp, err := adaptor.DoRequest(c, meta, bytes.NewBuffer(jsonData))
	if err != nil {
		logger.Errorf(ctx, "DoRequest failed: %s", err.Error())
		return "", util.ErrorWrapper(err, "do_request_failed", http.StatusBadGateway)
	}

	mediaURL, respErr := adaptor.DoResponse(c, resp, meta)
	if respErr != nil {
		return "", respErr
	}
	logger.Infof(ctx, "%s model %s returned media", adaptor.GetChannelName(), meta.ActualModelName)
	return mediaURL, nil
}
