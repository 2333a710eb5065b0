package channel

import (
	"io"
	"net/http"

	"github.com/drunkenberger/akiba/relay/model"
	"github.com/drunkenberger/akiba/relay/util"
	"github.com/gin-gonic/gin"
)

// Adaptor is the boundary to an external generation backend. Handlers only
// talk to this interface, so swapping the backend never touches them.
type Adaptor interface {
	Init(meta *util.RelayMeta)
	GetRequestURL(meta *util.RelayMeta) (string, error)
	SetupRequestHeader(c *gin.Context, req *http.Request, meta *util.RelayMeta) error
	// ConvertImageRequest and ConvertVideoRequest also choose meta.ActualModelName.
	ConvertImageRequest(meta *util.RelayMeta, request *model.GenerationRequest) (any, error)
	ConvertVideoRequest(meta *util.RelayMeta, request *model.GenerationRequest) (any, error)
	DoRequest(c *gin.Context, meta *util.RelayMeta, requestBody io.Reader) (*http.Response, error)
	// DoResponse returns the URL of the generated media.
	DoResponse(c *gin.Context, resp *http.Response, meta *util.RelayMeta) (mediaURL string, err *model.ErrorWithStatusCode)
	GetModelList() []string
	GetChannelName() string
}
