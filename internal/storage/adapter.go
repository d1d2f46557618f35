package storage

import (
	"context"
	"encoding/json"
)

// Keys under which the catalog state is persisted.
const (
	KeyFolders   = "catalog/folders"
	KeyDocuments = "catalog/documents"
)

// Adapter is durable key-value storage for serialized catalog state.
// Values are JSON-compatible; the concrete backing (memory, disk file,
// database) is irrelevant to the core's correctness.
type Adapter interface {
	// Get returns the raw value stored under key, or ok=false when absent.
	Get(ctx context.Context, key string) (value json.RawMessage, ok bool, err error)

	// Set stores the JSON serialization of value under key.
	Set(ctx context.Context, key string, value any) error

	// Remove deletes the value stored under key. Unknown keys are a no-op.
	Remove(ctx context.Context, key string) error
}
