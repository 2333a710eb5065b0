package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	calls    atomic.Int32
	requests chan GenerationRequest
	release  chan struct{}
	result   *GenerationResult
	err      error
}

func (s *fakeSender) Send(ctx context.Context, request GenerationRequest, credential string) (*GenerationResult, error) {
	s.calls.Add(1)
	if s.requests != nil {
		s.requests <- request
	}
	if s.release != nil {
		<-s.release
	}
	return s.result, s.err
}

func unlockedStore(t *testing.T) *KeyStore {
	store := NewKeyStore()
	require.NoError(t, store.Unlock("fal-key"))
	return store
}

func TestSubmitEmptyPromptSendsNothing(t *testing.T) {
	sender := &fakeSender{}
	form := NewForm(unlockedStore(t), sender)
	form.SetPrompt("   ")

	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, ErrEmptyPrompt)
	assert.Equal(t, int32(0), sender.calls.Load())
	assert.Equal(t, StateIdle, form.State())
}

func TestSubmitWithoutKeySendsNothing(t *testing.T) {
	sender := &fakeSender{}
	form := NewForm(NewKeyStore(), sender)
	form.SetPrompt("sunset over Akihabara")

	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, ErrMissingCredential)
	assert.Equal(t, int32(0), sender.calls.Load())
}

func TestSubmitRejectsWhilePending(t *testing.T) {
	sender := &fakeSender{
		requests: make(chan GenerationRequest, 1),
		release:  make(chan struct{}),
		result:   &GenerationResult{Kind: KindImage, MediaURL: "https://cdn.example/a.png"},
	}
	form := NewForm(unlockedStore(t), sender)
	form.SetPrompt("sunset over Akihabara")

	done := make(chan error, 1)
	go func() {
		_, err := form.Submit(context.Background())
		done <- err
	}()
	<-sender.requests

	assert.Equal(t, StatePending, form.State())
	assert.False(t, form.CanSubmit())
	_, err := form.Submit(context.Background())
	assert.ErrorIs(t, err, ErrPending)

	close(sender.release)
	require.NoError(t, <-done)
	assert.Equal(t, int32(1), sender.calls.Load())
	assert.Equal(t, StateSucceeded, form.State())
	assert.True(t, form.CanSubmit())
	assert.Equal(t, "https://cdn.example/a.png", form.Result().MediaURL)
}

func TestSubmitBuildsRequest(t *testing.T) {
	sender := &fakeSender{
		requests: make(chan GenerationRequest, 1),
		result:   &GenerationResult{Kind: KindVideo, MediaURL: "https://cdn.example/a.mp4"},
	}
	form := NewForm(unlockedStore(t), sender)
	form.SetPrompt("  mecha duel  ")
	form.SetStyle("action")
	form.SetMusic("eurobeat")
	form.SetKind(KindVideo)
	require.NoError(t, form.SetStyleStrength(0.3))
	assert.Error(t, form.SetStyleStrength(1.5))

	_, err := form.Submit(context.Background())
	require.NoError(t, err)
	request := <-sender.requests
	assert.Equal(t, KindVideo, request.Kind)
	assert.Equal(t, "mecha duel", request.Prompt)
	assert.Equal(t, "action", request.Style)
	assert.Equal(t, "eurobeat", request.Music)
	require.NotNil(t, request.StyleStrength)
	assert.Equal(t, 0.3, *request.StyleStrength)

	// music only accompanies videos
	form.SetKind(KindImage)
	form.ClearStyleStrength()
	_, err = form.Submit(context.Background())
	require.NoError(t, err)
	request = <-sender.requests
	assert.Empty(t, request.Music)
	assert.Nil(t, request.StyleStrength)
}

func TestSubmitFailureKeepsMessage(t *testing.T) {
	sender := &fakeSender{err: &HTTPError{StatusCode: http.StatusUnauthorized, Message: "Invalid API key"}}
	form := NewForm(unlockedStore(t), sender)
	form.SetPrompt("retro city")

	_, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, StateFailed, form.State())
	assert.Equal(t, "Invalid API key", form.Err().Error())
	assert.Nil(t, form.Result())

	form.Discard()
	assert.Equal(t, StateIdle, form.State())
	assert.NoError(t, form.Err())
}

func TestDownload(t *testing.T) {
	media := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("PNGDATA"))
	}))
	defer media.Close()

	sender := &fakeSender{result: &GenerationResult{Kind: KindImage, MediaURL: media.URL + "/out.png"}}
	form := NewForm(unlockedStore(t), sender)
	form.now = func() time.Time { return time.UnixMilli(1700000000123) }
	dir := t.TempDir()

	_, err := form.Download(context.Background(), dir)
	assert.ErrorIs(t, err, ErrNoResult)

	form.SetPrompt("pixel shrine")
	_, err = form.Submit(context.Background())
	require.NoError(t, err)

	path, err := form.Download(context.Background(), dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "akiba-1700000000123.png"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "PNGDATA", string(data))

	form.Discard()
	_, err = form.Download(context.Background(), dir)
	assert.ErrorIs(t, err, ErrNoResult)
}

func TestDownloadVideoExtension(t *testing.T) {
	media := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("MP4"))
	}))
	defer media.Close()

	form := NewForm(unlockedStore(t), &fakeSender{result: &GenerationResult{Kind: KindVideo, MediaURL: media.URL}})
	form.SetPrompt("clip")
	_, err := form.Submit(context.Background())
	require.NoError(t, err)

	path, err := form.Download(context.Background(), t.TempDir())
	require.NoError(t, err)
	assert.Regexp(t, `akiba-\d+\.mp4$`, path)
}
