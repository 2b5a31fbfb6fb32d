package kv

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
)

// Store is the durable key-value boundary: one JSON document per key,
// written whole on every save. Readers that find nothing usable keep
// their caller-supplied default, so a corrupt document degrades to a
// fresh start instead of an error.
type Store struct {
	dir string
}

func New(dir string) *Store {
	return &Store{dir: dir}
}

// Load decodes the document stored under key into target and reports
// whether a usable value was found. Absent and malformed documents both
// report false with target left untouched; target must be a non-nil
// pointer. Decoding goes through a scratch value so a document that
// fails partway through does not leak fields into the caller's default.
func (s *Store) Load(key string, target any) bool {
	dest := reflect.ValueOf(target)
	if dest.Kind() != reflect.Pointer || dest.IsNil() {
		return false
	}
	payload, err := os.ReadFile(s.path(key))
	if err != nil {
		return false
	}
	scratch := reflect.New(dest.Elem().Type())
	if err := json.Unmarshal(payload, scratch.Interface()); err != nil {
		return false
	}
	dest.Elem().Set(scratch.Elem())
	return true
}

// Save overwrites the document stored under key. Last write wins; there
// is no merge.
func (s *Store) Save(key string, value any) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), payload, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
