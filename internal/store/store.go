// Package store persists values remembered between xinit runs, such as the
// project directory and image of the last created layout.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Keys written by xinit.
const (
	KeyDirectory = "directory"
	KeyImage     = "image"
)

// Store is a flat key-value map backed by a YAML file.
// It is not safe for concurrent use.
type Store struct {
	path   string
	values map[string]string
}

// Open loads the store at path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: map[string]string{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, fmt.Errorf("reading store %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &s.values); err != nil {
		return nil, fmt.Errorf("parsing store %s: %w", path, err)
	}
	if s.values == nil {
		s.values = map[string]string{}
	}

	return s, nil
}

// Path returns the file backing the store.
func (s *Store) Path() string {
	return s.path
}

// Get returns the value for key.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key. Call Save to persist.
func (s *Store) Set(key, value string) {
	s.values[key] = value
}

// Delete removes key.
func (s *Store) Delete(key string) {
	delete(s.values, key)
}

// Keys returns the stored keys in sorted order.
func (s *Store) Keys() []string {
	keys := make([]string, 0, len(s.values))
	for k := range s.values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Save writes the store to its file, creating the parent directory.
func (s *Store) Save() error {
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("writing store %s: %w", s.path, err)
	}

	return nil
}
