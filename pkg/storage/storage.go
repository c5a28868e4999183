package storage

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -destination=../../internal/domain/mocks/mock_storage_backend.go -package=mocks github.com/RepliqStudio/repliq/pkg/storage Backend

// Backend is the capability set expected from a host storage layer.
// Implementations can be in-memory, Postgres, or any other backing store.
type Backend interface {
	// Get returns the raw stored value for a key.
	// A missing key is reported as ErrKeyNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set stores the raw value under the key, replacing any previous value.
	Set(ctx context.Context, key, value string) error

	// Delete removes a key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// List returns all keys starting with the given prefix.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Store wraps a Backend with JSON encoding and benign error handling:
// failures surface as nil/false/empty results instead of errors, so callers
// cannot distinguish an absent key from a backend failure. Callers that need
// that distinction should use the Backend directly.
type Store struct {
	backend Backend
}

// NewStore creates a Store over the given backend.
func NewStore(backend Backend) *Store {
	return &Store{backend: backend}
}

// GetItem retrieves and JSON-decodes the value for a key.
// Returns nil for a missing key, a backend failure, or an undecodable value.
func (s *Store) GetItem(ctx context.Context, key string) interface{} {
	raw, err := s.backend.Get(ctx, key)
	if err != nil {
		return nil
	}

	var value interface{}
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil
	}
	return value
}

// SetItem JSON-encodes the value and stores it under the key.
// Returns false if encoding or the backend write fails.
func (s *Store) SetItem(ctx context.Context, key string, value interface{}) bool {
	raw, err := json.Marshal(value)
	if err != nil {
		return false
	}
	if err := s.backend.Set(ctx, key, string(raw)); err != nil {
		return false
	}
	return true
}

// DeleteItem removes a key. Returns false only on backend failure.
func (s *Store) DeleteItem(ctx context.Context, key string) bool {
	return s.backend.Delete(ctx, key) == nil
}

// ListKeys returns all keys under the prefix, or an empty slice on failure.
func (s *Store) ListKeys(ctx context.Context, prefix string) []string {
	keys, err := s.backend.List(ctx, prefix)
	if err != nil || keys == nil {
		return []string{}
	}
	return keys
}

// Item is a key paired with its decoded value.
type Item struct {
	Key   string
	Value interface{}
}

// LoadAllItems lists every key under the prefix and fetches each value in
// turn. Keys whose value is missing or undecodable are skipped. Fetches are
// sequential, one round trip per key.
func (s *Store) LoadAllItems(ctx context.Context, prefix string) []Item {
	items := []Item{}
	for _, key := range s.ListKeys(ctx, prefix) {
		value := s.GetItem(ctx, key)
		if value == nil {
			continue
		}
		items = append(items, Item{Key: key, Value: value})
	}
	return items
}
