package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/drunkenberger/akiba/common/config"
	"github.com/drunkenberger/akiba/relay/model"
	"github.com/pkg/errors"
)

// Dispatcher sends one generation request to the Akiba server proxy.
type Dispatcher struct {
	BaseURL    string
	HTTPClient *http.Client
}

func NewDispatcher(baseURL string, httpClient *http.Client) *Dispatcher {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Dispatcher{
		BaseURL:    strings.TrimSuffix(baseURL, "/"),
		HTTPClient: httpClient,
	}
}

// Send makes exactly one call to the proxy. The credential only ever travels
// in the key header. There is no retry.
func (d *Dispatcher) Send(ctx context.Context, request GenerationRequest, credential string) (*GenerationResult, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, errors.Wrap(err, "marshal generation request")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.BaseURL+request.Kind.path(), bytes.NewReader(body))
	if err != nil {
		return nil, errors.Wrap(err, "new generation request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(config.ApiKeyHeader, credential)

	resp, err := d.HTTPClient.Do(req)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError(err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &HTTPError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	result := &GenerationResult{Kind: request.Kind}
	if request.Kind == KindVideo {
		var videoResponse model.VideoResponse
		if err := json.Unmarshal(respBody, &videoResponse); err != nil {
			return nil, errors.Wrap(err, "decode video response")
		}
		result.MediaURL = videoResponse.VideoUrl
		result.Music = videoResponse.Music
	} else {
		var imageResponse model.ImageResponse
		if err := json.Unmarshal(respBody, &imageResponse); err != nil {
			return nil, errors.Wrap(err, "decode image response")
		}
		result.MediaURL = imageResponse.ImageUrl
	}
	if result.MediaURL == "" {
		return nil, errors.New("server response contained no media URL")
	}
	return result, nil
}
