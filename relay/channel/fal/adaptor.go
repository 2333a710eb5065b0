package fal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/drunkenberger/akiba/common/config"
	"github.com/drunkenberger/akiba/common/logger"
	"github.com/drunkenberger/akiba/relay/channel"
	"github.com/drunkenberger/akiba/relay/constant"
	"github.com/drunkenberger/akiba/relay/model"
	"github.com/drunkenberger/akiba/relay/util"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/copier"
)

type Adaptor struct {
}

func (a *Adaptor) Init(meta *util.RelayMeta) {
	if meta.BaseURL == "" {
		meta.BaseURL = config.FalBaseURL
	}
}

func (a *Adaptor) GetModelList() []string {
	return ModelList()
}

func (a *Adaptor) GetChannelName() string {
	return ChannelName
}

// GetRequestURL uses fal's synchronous endpoint: https://fal.run/<model>.
func (a *Adaptor) GetRequestURL(meta *util.RelayMeta) (string, error) {
	if meta.ActualModelName == "" {
		return "", errors.New("model is not selected")
	}
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(meta.BaseURL, "/"), strings.TrimPrefix(meta.ActualModelName, "/")), nil
}

func (a *Adaptor) SetupRequestHeader(c *gin.Context, req *http.Request, meta *util.RelayMeta) error {
	if meta.APIKey == "" {
		return errors.New("api key is empty")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Key "+meta.APIKey)
	if meta.RequestId != "" {
		req.Header.Set(logger.RequestIdKey, meta.RequestId)
	}
	return nil
}

func (a *Adaptor) ConvertImageRequest(meta *util.RelayMeta, request *model.GenerationRequest) (any, error) {
	if request == nil {
		return nil, errors.New("request cannot be nil")
	}
	var imageRequest ImageRequest
	if err := copier.Copy(&imageRequest, request); err != nil {
		return nil, err
	}
	imageRequest.NumImages = 1
	imageRequest.EnableSafetyChecker = true

	imageInput := IsImageURL(request.Prompt)
	imageRequest.Prompt = StylePrompt(request.Prompt, request.Style, imageInput)
	if imageInput {
		meta.ActualModelName = config.FalImageToImageModel
		imageRequest.ImageURL = strings.TrimSpace(request.Prompt)
		// sent even when zero, which is a valid strength
		strength := config.DefaultStyleStrength
		if request.StyleStrength != nil {
			strength = *request.StyleStrength
		}
		imageRequest.Strength = &strength
	} else {
		meta.ActualModelName = config.FalImageModel
		imageRequest.ImageSize = defaultImageSize
	}
	return imageRequest, nil
}

func (a *Adaptor) ConvertVideoRequest(meta *util.RelayMeta, request *model.GenerationRequest) (any, error) {
	if request == nil {
		return nil, errors.New("request cannot be nil")
	}
	if IsImageURL(request.Prompt) {
		meta.ActualModelName = config.FalImageToVideoModel
		strength := config.DefaultStyleStrength
		if request.StyleStrength != nil {
			strength = *request.StyleStrength
		}
		return VideoRequest{
			ImageURL:       strings.TrimSpace(request.Prompt),
			MotionBucketId: MotionBucket(strength),
		}, nil
	}

	meta.ActualModelName = config.FalVideoModel
	var videoRequest VideoRequest
	if err := copier.Copy(&videoRequest, request); err != nil {
		return nil, err
	}
	videoRequest.Prompt = StylePrompt(request.Prompt, request.Style, false)
	videoRequest.NegativePrompt = "lowres, watermark, text, blurry"
	videoRequest.NumFrames = defaultNumFrames
	videoRequest.Fps = defaultFps
	return videoRequest, nil
}

func (a *Adaptor) DoRequest(c *gin.Context, meta *util.RelayMeta, requestBody io.Reader) (*http.Response, error) {
	return channel.DoRequestHelper(a, c, meta, requestBody)
}

func (a *Adaptor) DoResponse(c *gin.Context, resp *http.Response, meta *util.RelayMeta) (string, *model.ErrorWithStatusCode) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", util.ErrorWrapper(err, "read_response_body_failed", http.StatusBadGateway)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		logger.Warnf(c.Request.Context(), "fal returned status %d for model %s", resp.StatusCode, meta.ActualModelName)
		return "", util.RelayUpstreamError(resp.StatusCode, body)
	}

	mediaURL := ""
	switch meta.Mode {
	case constant.RelayModeVideoGeneration:
		var videoResponse VideoResponse
		if err := json.Unmarshal(body, &videoResponse); err != nil {
			return "", util.ErrorWrapper(err, "unmarshal_response_body_failed", http.StatusBadGateway)
		}
		if videoResponse.Video != nil {
			mediaURL = videoResponse.Video.URL
		}
	default:
		var imageResponse ImageResponse
		if err := json.Unmarshal(body, &imageResponse); err != nil {
			return "", util.ErrorWrapper(err, "unmarshal_response_body_failed", http.StatusBadGateway)
		}
		if len(imageResponse.Images) > 0 {
			mediaURL = imageResponse.Images[0].URL
		}
	}
	if mediaURL == "" {
		return "", util.ErrorWrapperWithMessage("generation service returned no media", "empty_media", http.StatusBadGateway)
	}
	return mediaURL, nil
}
