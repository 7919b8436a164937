// Package filestore persists the client key-value state to a single JSON
// file under the configured storage path.
package filestore

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"

	"github.com/darasa/darasa-go/storage"
)

const stateFile = "state.json"

type Store struct {
	mu   sync.Mutex
	path string
	data map[string]string
}

var _ storage.Storage = (*Store)(nil)

// Open loads (or creates) the store rooted at dir.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, errors.Wrapf(err, "filestore.MkdirAll(%s)", dir)
	}
	s := &Store{
		path: filepath.Join(dir, stateFile),
		data: make(map[string]string),
	}
	raw, err := ioutil.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, errors.Wrapf(err, "filestore.ReadFile(%s)", s.path)
	}
	// a corrupt state file is treated as empty, not as a fatal error
	if err := json.Unmarshal(raw, &s.data); err != nil {
		s.data = make(map[string]string)
	}
	return s, nil
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
	s.data[key] = value
	return s.save()
}

func (s *Store) Delete(keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		delete(s.data, k)
	}
	return s.save()
}

// save writes the whole state out via a temp file + rename so a crash never
// leaves a half-written file behind.
func (s *Store) save() error {
	raw, err := json.Marshal(s.data)
	if err != nil {
		return errors.Wrap(err, "filestore.Marshal")
	}
	tmp := s.path + ".tmp"
	if err := ioutil.WriteFile(tmp, raw, 0600); err != nil {
		return errors.Wrapf(err, "filestore.WriteFile(%s)", tmp)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return errors.Wrapf(err, "filestore.Rename(%s)", s.path)
	}
	return nil
}
