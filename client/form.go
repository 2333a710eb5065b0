package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
)

type State int

const (
	StateIdle State = iota
	StatePending
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePending:
		return "pending"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	default:
		return "idle"
	}
}

// Sender is satisfied by *Dispatcher.
type Sender interface {
	Send(ctx context.Context, request GenerationRequest, credential string) (*GenerationResult, error)
}

// Form holds the user's inputs and runs at most one generation at a time.
type Form struct {
	mu     sync.Mutex
	keys   *KeyStore
	sender Sender

	prompt        string
	style         string
	music         string
	styleStrength *float64
	kind          Kind

	state  State
	result *GenerationResult
	err    error

	// HTTPClient fetches media for Download.
	HTTPClient *http.Client
	now        func() time.Time
}

func NewForm(keys *KeyStore, sender Sender) *Form {
	return &Form{
		keys:       keys,
		sender:     sender,
		kind:       KindImage,
		HTTPClient: http.DefaultClient,
		now:        time.Now,
	}
}

func (f *Form) SetPrompt(prompt string) {
	f.mu.Lock()
	f.prompt = prompt
	f.mu.Unlock()
}

func (f *Form) SetStyle(style string) {
	f.mu.Lock()
	f.style = style
	f.mu.Unlock()
}

func (f *Form) SetMusic(music string) {
	f.mu.Lock()
	f.music = music
	f.mu.Unlock()
}

// SetStyleStrength accepts values in [0, 1].
func (f *Form) SetStyleStrength(strength float64) error {
	if strength < 0 || strength > 1 {
		return fmt.Errorf("style strength must be between 0 and 1, got %v", strength)
	}
	f.mu.Lock()
	f.styleStrength = &strength
	f.mu.Unlock()
	return nil
}

func (f *Form) ClearStyleStrength() {
	f.mu.Lock()
	f.styleStrength = nil
	f.mu.Unlock()
}

func (f *Form) SetKind(kind Kind) {
	f.mu.Lock()
	f.kind = kind
	f.mu.Unlock()
}

func (f *Form) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

func (f *Form) CanSubmit() bool {
	return f.State() != StatePending
}

func (f *Form) Result() *GenerationResult {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.result
}

// Err is the failure of the last submission, nil otherwise.
func (f *Form) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Submit validates the inputs and, when they are complete, sends exactly one
// request. Nothing is sent when the prompt is blank, the key store is locked
// or another request is still pending.
func (f *Form) Submit(ctx context.Context) (*GenerationResult, error) {
	f.mu.Lock()
	if f.state == StatePending {
		f.mu.Unlock()
		return nil, ErrPending
	}
	prompt := strings.TrimSpace(f.prompt)
	if prompt == "" {
		f.mu.Unlock()
		return nil, ErrEmptyPrompt
	}
	credential, ok := f.keys.Key()
	if !ok {
		f.mu.Unlock()
		return nil, ErrMissingCredential
	}
	request := GenerationRequest{
		Kind:   f.kind,
		Prompt: prompt,
		Style:  f.style,
	}
	if f.kind == KindVideo {
		request.Music = f.music
	}
	if f.styleStrength != nil {
		strength := *f.styleStrength
		request.StyleStrength = &strength
	}
	f.state = StatePending
	f.err = nil
	f.mu.Unlock()

	result, err := f.sender.Send(ctx, request, credential)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.state = StateFailed
		f.err = err
		return nil, err
	}
	f.state = StateSucceeded
	f.result = result
	return result, nil
}

// Discard drops the current result and returns the form to idle. It has no
// effect while a request is pending.
func (f *Form) Discard() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state == StatePending {
		return
	}
	f.state = StateIdle
	f.result = nil
	f.err = nil
}

// Download saves the current result into dir as akiba-<unix-millis>.png, or
// .mp4 for videos, and returns the written path.
func (f *Form) Download(ctx context.Context, dir string) (string, error) {
	result := f.Result()
	if result == nil {
		return "", ErrNoResult
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, result.MediaURL, nil)
	if err != nil {
		return "", errors.Wrap(err, "new download request")
	}
	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return "", newNetworkError(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return "", &HTTPError{StatusCode: resp.StatusCode, Message: string(body)}
	}

	name := fmt.Sprintf("akiba-%d.%s", f.now().UnixMilli(), result.Kind.extension())
	path := filepath.Join(dir, name)
	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "create download file")
	}
	if _, err := io.Copy(file, resp.Body); err != nil {
		file.Close()
		os.Remove(path)
		return "", newNetworkError(err)
	}
	if err := file.Close(); err != nil {
		return "", errors.Wrap(err, "close download file")
	}
	return path, nil
}
