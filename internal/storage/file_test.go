package storage

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
)

func TestFileAdapter_Roundtrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "store.json")

	adapter, err := NewFileAdapter(path)
	if err != nil {
		t.Fatalf("NewFileAdapter(): %v", err)
	}

	if _, ok, err := adapter.Get(ctx, KeyFolders); err != nil || ok {
		t.Fatalf("Get() on empty store = ok:%v err:%v", ok, err)
	}

	state := map[string]any{"ESIEA": map[string]any{}}
	if err := adapter.Set(ctx, KeyFolders, state); err != nil {
		t.Fatalf("Set(): %v", err)
	}

	// a second adapter over the same file sees the persisted value
	reopened, err := NewFileAdapter(path)
	if err != nil {
		t.Fatalf("NewFileAdapter() reopen: %v", err)
	}
	raw, ok, err := reopened.Get(ctx, KeyFolders)
	if err != nil || !ok {
		t.Fatalf("Get() after reopen = ok:%v err:%v", ok, err)
	}

	var decoded map[string]json.RawMessage
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal persisted value: %v", err)
	}
	if _, ok := decoded["ESIEA"]; !ok {
		t.Errorf("persisted value = %s, want ESIEA key", raw)
	}

	if err := reopened.Remove(ctx, KeyFolders); err != nil {
		t.Fatalf("Remove(): %v", err)
	}
	if _, ok, _ := reopened.Get(ctx, KeyFolders); ok {
		t.Errorf("key still present after Remove()")
	}

	// removing an absent key is a no-op
	if err := reopened.Remove(ctx, "missing"); err != nil {
		t.Errorf("Remove(missing) = %v, want nil", err)
	}
}

func TestMemoryAdapter_Roundtrip(t *testing.T) {
	ctx := context.Background()
	adapter := NewMemoryAdapter()

	if err := adapter.Set(ctx, KeyDocuments, []string{"a", "b"}); err != nil {
		t.Fatalf("Set(): %v", err)
	}

	raw, ok, err := adapter.Get(ctx, KeyDocuments)
	if err != nil || !ok {
		t.Fatalf("Get() = ok:%v err:%v", ok, err)
	}
	var values []string
	if err := json.Unmarshal(raw, &values); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(values) != 2 {
		t.Errorf("values = %v, want 2 entries", values)
	}

	if err := adapter.Remove(ctx, KeyDocuments); err != nil {
		t.Fatalf("Remove(): %v", err)
	}
	if _, ok, _ := adapter.Get(ctx, KeyDocuments); ok {
		t.Errorf("key still present after Remove()")
	}
}
