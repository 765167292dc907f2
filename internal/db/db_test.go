package db

import (
	"path/filepath"
	"testing"
)

func openTestKV(t *testing.T) (*KV, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "matwork.db")
	kv, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { kv.Close() })
	return kv, path
}

func TestKV_SetGetRemove(t *testing.T) {
	kv, _ := openTestKV(t)

	if _, ok, err := kv.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = %v, %v; want absent", ok, err)
	}

	if err := kv.Set("pilates_sessions", `[]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Set("pilates_sessions", `[{"id":"a"}]`); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	got, ok, err := kv.Get("pilates_sessions")
	if err != nil || !ok || got != `[{"id":"a"}]` {
		t.Fatalf("Get = %q, %v, %v", got, ok, err)
	}

	if err := kv.Remove("pilates_sessions"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if _, ok, _ := kv.Get("pilates_sessions"); ok {
		t.Fatal("value survived Remove")
	}
	if err := kv.Remove("pilates_sessions"); err != nil {
		t.Fatalf("Remove(missing) = %v", err)
	}
}

func TestKV_PersistsAcrossReopen(t *testing.T) {
	kv, path := openTestKV(t)
	if err := kv.Set("pilates_history", `[{"id":"h1"}]`); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := kv.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()

	got, ok, err := reopened.Get("pilates_history")
	if err != nil || !ok || got != `[{"id":"h1"}]` {
		t.Fatalf("Get after reopen = %q, %v, %v", got, ok, err)
	}
}
