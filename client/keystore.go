package client

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
)

var ErrEmptyCredential = errors.New("API key must not be empty")

// KeyStore holds the user's fal.ai key in memory for the lifetime of the
// session. The key is never checked here; a bad key shows up on the first
// generation attempt.
type KeyStore struct {
	mu  sync.RWMutex
	key string
}

func NewKeyStore() *KeyStore {
	return &KeyStore{}
}

// Unlock stores key and moves the store to the unlocked state. An empty or
// blank key leaves the store as it was.
func (s *KeyStore) Unlock(key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyCredential
	}
	s.mu.Lock()
	s.key = key
	s.mu.Unlock()
	return nil
}

func (s *KeyStore) Key() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.key, s.key != ""
}

func (s *KeyStore) Unlocked() bool {
	_, ok := s.Key()
	return ok
}

func (s *KeyStore) Lock() {
	s.mu.Lock()
	s.key = ""
	s.mu.Unlock()
}
