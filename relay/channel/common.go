package channel

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/drunkenberger/akiba/relay/util"
	"github.com/gin-gonic/gin"
)

func DoRequestHelper(a Adaptor, c *gin.Context, meta *util.RelayMeta, requestBody io.Reader) (*http.Response, error) {
	fullRequestURL, err := a.GetRequestURL(meta)
	if err != nil {
		return nil, fmt.Errorf("get request url failed: %w", err)
	}
	// Not bound to the client context: once sent, a generation runs to
	// completion even if the browser goes away. RELAY_TIMEOUT bounds it.
	req, err := http.NewRequest(http.MethodPost, fullRequestURL, requestBody)
	if err != nil {
		return nil, fmt.Errorf("new request failed: %w", err)
	}
	err = a.SetupRequestHeader(c, req, meta)
	if err != nil {
		return nil, fmt.Errorf("setup request header failed: %w", err)
	}
	resp, err := DoRequest(c, req)
	if err != nil {
		return nil, fmt.Errorf("do request failed: %w", err)
	}
	return resp, nil
}

func DoRequest(c *gin.Context, req *http.Request) (*http.Response, error) {
	defer func() {
		if req.Body != nil {
			_ = req.Body.Close()
		}
		if c.Request.Body != nil {
			_ = c.Request.Body.Close()
		}
	}()

	resp, err := util.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, errors.New("resp is nil")
	}
	return resp, nil
}
