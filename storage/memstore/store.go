// Package memstore is an in-memory storage.Storage, used in tests and for
// ephemeral sessions that should not survive the process.
package memstore

import (
	"sync"

	"github.com/darasa/darasa-go/storage"
)

type Store struct {
	mu   sync.Mutex
	data map[string]string

	// FailWrites makes Set/Delete return this error when non-nil; tests use
	// it to exercise persistence failures.
	FailWrites error
}

var _ storage.Storage = (*Store)(nil)

func New() *Store {
	return &Store{data: make(map[string]string)}
}

func (s *Store) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	val, ok := s.data[key]
	return val, ok, nil
}

func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	s.data[key] = value
	return nil
}

func (s *Store) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailWrites != nil {
		return s.FailWrites
	}
	for _, k := range keys {
		delete(s.data, k)
	}
	return nil
}

// Len reports the number of stored keys.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.data)
}
