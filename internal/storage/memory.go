package storage

import (
	"context"
	"encoding/json"
	"fmt"
)

// MemoryAdapter keeps values in a plain map. Used by tests and as the
// fallback backend when no durable storage is configured.
type MemoryAdapter struct {
	values map[string]json.RawMessage
}

// NewMemoryAdapter creates an empty in-memory adapter.
func NewMemoryAdapter() *MemoryAdapter {
	return &MemoryAdapter{values: make(map[string]json.RawMessage)}
}

func (a *MemoryAdapter) Get(_ context.Context, key string) (json.RawMessage, bool, error) {
	value, ok := a.values[key]
	return value, ok, nil
}

func (a *MemoryAdapter) Set(_ context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value for %q: %w", key, err)
	}
	a.values[key] = payload
	return nil
}

func (a *MemoryAdapter) Remove(_ context.Context, key string) error {
	delete(a.values, key)
	return nil
}
