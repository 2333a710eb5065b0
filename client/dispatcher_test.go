package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/drunkenberger/akiba/common/config"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherSendImage(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get(config.ApiKeyHeader)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"imageUrl":"https://cdn.example/out.png"}`))
	}))
	defer server.Close()

	strength := 0.4
	result, err := NewDispatcher(server.URL+"/", nil).Send(context.Background(), GenerationRequest{
		Kind:          KindImage,
		Prompt:        "neon alley",
		Style:         "cyberpunk",
		StyleStrength: &strength,
	}, "secret")
	require.NoError(t, err)

	assert.Equal(t, "/api/generate-image", gotPath)
	assert.Equal(t, "secret", gotKey)
	assert.Equal(t, "neon alley", gotBody["prompt"])
	assert.Equal(t, "cyberpunk", gotBody["style"])
	assert.Equal(t, 0.4, gotBody["styleStrength"])
	assert.NotContains(t, gotBody, "music")
	assert.NotContains(t, gotBody, "apiKey")
	assert.Equal(t, "https://cdn.example/out.png", result.MediaURL)
	assert.Equal(t, KindImage, result.Kind)
}

func TestDispatcherSendVideo(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate-video", r.URL.Path)
		w.Write([]byte(`{"videoUrl":"https://cdn.example/out.mp4","music":{"tag":"lofi","title":"Rainy Arcade"}}`))
	}))
	defer server.Close()

	result, err := NewDispatcher(server.URL, nil).Send(context.Background(), GenerationRequest{
		Kind:   KindVideo,
		Prompt: "rooftop chase",
		Music:  "lofi",
	}, "secret")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example/out.mp4", result.MediaURL)
	require.NotNil(t, result.Music)
	assert.Equal(t, "lofi", result.Music.Tag)
}

func TestDispatcherNon2xxBodyIsTheError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"detail":"Invalid API key"}`))
	}))
	defer server.Close()

	_, err := NewDispatcher(server.URL, nil).Send(context.Background(), GenerationRequest{Prompt: "x"}, "bad")
	require.Error(t, err)
	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusUnauthorized, httpErr.StatusCode)
	assert.Equal(t, `{"detail":"Invalid API key"}`, err.Error())
}

func TestDispatcherNetworkError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := NewDispatcher(url, nil).Send(context.Background(), GenerationRequest{Prompt: "x"}, "k")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetwork)
	assert.Equal(t, ErrNetwork.Error(), err.Error())
	assert.NotNil(t, errors.Cause(err))
}

func TestDispatcherMissingMedia(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, err := NewDispatcher(server.URL, nil).Send(context.Background(), GenerationRequest{Prompt: "x"}, "k")
	assert.Error(t, err)
}
