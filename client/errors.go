package client

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	ErrEmptyPrompt       = errors.New("prompt must not be empty")
	ErrMissingCredential = errors.New("API key required")
	ErrPending           = errors.New("a generation is already in progress")
	ErrNoResult          = errors.New("nothing has been generated yet")
	ErrNetwork           = errors.New("network error, please check your connection and try again")
)

// HTTPError is returned for any non-2xx proxy response. Its message is the
// response body exactly as the server sent it.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// networkError reads as ErrNetwork but keeps the transport failure as its
// cause.
type networkError struct {
	cause error
}

func newNetworkError(err error) error {
	return &networkError{cause: errors.WithStack(err)}
}

func (e *networkError) Error() string {
	return ErrNetwork.Error()
}

func (e *networkError) Cause() error {
	return e.cause
}

func (e *networkError) Unwrap() error {
	return e.cause
}

func (e *networkError) Is(target error) bool {
	return target == ErrNetwork
}
