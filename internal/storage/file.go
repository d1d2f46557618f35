package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileAdapter persists all keys into a single JSON file on disk, the local
// single-user analog of browser storage. Every write serializes the whole
// key set and replaces the file through a rename, so a crash mid-write
// never leaves a half-applied state behind.
type FileAdapter struct {
	path   string
	values map[string]json.RawMessage
}

// NewFileAdapter opens (or initializes) the store at path.
func NewFileAdapter(path string) (*FileAdapter, error) {
	a := &FileAdapter{
		path:   path,
		values: make(map[string]json.RawMessage),
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return a, nil
	case err != nil:
		return nil, fmt.Errorf("read store %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &a.values); err != nil {
		return nil, fmt.Errorf("parse store %s: %w", path, err)
	}
	return a, nil
}

func (a *FileAdapter) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	value, ok := a.values[key]
	return value, ok, nil
}

func (a *FileAdapter) Set(_ context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for %q: %w", key, err)
	}
	a.values[key] = payload
	return a.flush()
}

func (a *FileAdapter) Remove(_ context.Context, key string) error {
	if _, ok := a.values[key]; !ok {
		return nil
	}
	delete(a.values, key)
	return a.flush()
}

// flush writes the whole key set to a temp file and renames it into place.
func (a *FileAdapter) flush() error {
	data, err := json.MarshalIndent(a.values, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	if dir := filepath.Dir(a.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create store directory: %w", err)
		}
	}

	tmp := a.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("write store: %w", err)
	}
	if err := os.Rename(tmp, a.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	return nil
}
