package util

import (
	"strings"

	"github.com/drunkenberger/akiba/common/config"
	"github.com/drunkenberger/akiba/common/logger"
	"github.com/drunkenberger/akiba/relay/constant"
	"github.com/gin-gonic/gin"
)

type RelayMeta struct {
	Mode    int
	APIType int
	// APIKey is the caller's own key, taken from the request header and
	// forwarded as-is; it is never stored.
	APIKey  string
	BaseURL string
	// ActualModelName is picked by the adaptor once it has seen the request.
	ActualModelName string
	RequestId       string
}

func GetRelayMeta(c *gin.Context) *RelayMeta {
	meta := RelayMeta{
		Mode:      constant.Path2RelayMode(c.Request.URL.Path),
		APIType:   constant.Backend2APIType(config.GenerationBackend),
		APIKey:    strings.TrimSpace(c.Request.Header.Get(config.ApiKeyHeader)),
		BaseURL:   config.FalBaseURL,
		RequestId: c.GetString(logger.RequestIdKey),
	}
	return &meta
}
