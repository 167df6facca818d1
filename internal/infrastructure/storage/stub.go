package storage

import (
	"context"
	"errors"
	"io"
	"sync"

	catalogapp "github.com/africommerce/backend/internal/application/catalog"
)

// StubObjectStorage is an in-memory ObjectStorageService for development
// and tests. Uploaded payloads are held in a map keyed by object key.
type StubObjectStorage struct {
	// BaseURL is prepended to keys when building object URLs.
	// Defaults to "https://storage.example.com" if not set.
	BaseURL string

	mu      sync.Mutex
	objects map[string][]byte
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.example.com",
		objects: make(map[string][]byte),
	}
}

// Ensure StubObjectStorage implements ObjectStorageService
var _ catalogapp.ObjectStorageService = (*StubObjectStorage)(nil)

// Upload records the payload and returns a deterministic URL
func (s *StubObjectStorage) Upload(ctx context.Context, key, contentType string, body io.Reader) (string, error) {
	if key == "" {
		return "", errors.New("storage key is required")
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.objects[key] = data
	s.mu.Unlock()

	return s.BaseURL + "/" + key, nil
}

// Delete removes a previously uploaded object
func (s *StubObjectStorage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("storage key is required")
	}

	s.mu.Lock()
	delete(s.objects, key)
	s.mu.Unlock()
	return nil
}

// Object returns the stored payload for a key, if present
func (s *StubObjectStorage) Object(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	return data, ok
}
