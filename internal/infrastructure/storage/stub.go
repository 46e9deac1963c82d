package storage

import (
	"context"
	"errors"
	"sync"
	"time"

	catalogapp "github.com/shopadmin/backend/internal/application/catalog"
)

var _ catalogapp.ObjectStorage = (*StubObjectStorage)(nil)

// StubObjectStorage is an in-memory ObjectStorage for development and
// tests. URLs it hands out are not actually uploadable.
type StubObjectStorage struct {
	BaseURL string

	mu   sync.Mutex
	keys map[string]bool
}

// NewStubObjectStorage creates a new StubObjectStorage
func NewStubObjectStorage() *StubObjectStorage {
	return &StubObjectStorage{
		BaseURL: "https://storage.invalid",
		keys:    make(map[string]bool),
	}
}

// GenerateUploadURL records the key as uploaded and returns a fake URL
func (s *StubObjectStorage) GenerateUploadURL(ctx context.Context, storageKey, contentType string, expiresIn time.Duration) (string, time.Time, error) {
	if storageKey == "" {
		return "", time.Time{}, errors.New("storage key is required")
	}

	s.mu.Lock()
	s.keys[storageKey] = true
	s.mu.Unlock()

	expiresAt := time.Now().Add(expiresIn)
	return s.BaseURL + "/upload/" + storageKey, expiresAt, nil
}

// DeleteObject forgets the key
func (s *StubObjectStorage) DeleteObject(ctx context.Context, storageKey string) error {
	if storageKey == "" {
		return errors.New("storage key is required")
	}

	s.mu.Lock()
	delete(s.keys, storageKey)
	s.mu.Unlock()
	return nil
}

// ObjectExists reports whether an upload URL was issued for the key
func (s *StubObjectStorage) ObjectExists(ctx context.Context, storageKey string) (bool, error) {
	if storageKey == "" {
		return false, errors.New("storage key is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.keys[storageKey], nil
}
