// Package store persists sessions, history entries and the exercise bank as
// JSON arrays under fixed keys of a KV port.
package store

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/balkashynov/matwork/internal/models"
)

// Storage keys. They match data written by earlier versions and must not change.
const (
	SessionsKey = "pilates_sessions"
	HistoryKey  = "pilates_history"
	BankKey     = "pilates_exercises_bank"
)

// Catalog supplies the read-only preset sessions and exercises.
type Catalog interface {
	Sessions() []models.Session
	Session(id string) (models.Session, bool)
	Exercises() []models.Exercise
}

// Store is the data store. Every mutation is a read-modify-write of a whole
// collection; it expects a single writer.
type Store struct {
	kv      KV
	catalog Catalog
	log     *slog.Logger

	// Now and NewID are replaceable for deterministic tests.
	Now   func() time.Time
	NewID func() string
}

// New builds a Store over kv. A nil logger discards output.
func New(kv KV, catalog Catalog, log *slog.Logger) *Store {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Store{
		kv:      kv,
		catalog: catalog,
		log:     log,
		Now:     time.Now,
		NewID:   uuid.NewString,
	}
}

// load decodes the collection under key. Absent, unreadable or corrupt data
// yields an empty collection.
func load[T any](s *Store, key string) []T {
	raw, ok, err := s.kv.Get(key)
	if err != nil {
		s.log.Warn("reading collection failed, using empty", "key", key, "error", err)
		return []T{}
	}
	if !ok || raw == "" {
		return []T{}
	}

	var items []T
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		s.log.Warn("corrupt collection, using empty", "key", key, "error", err)
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

func save[T any](s *Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := s.kv.Set(key, string(raw)); err != nil {
		return fmt.Errorf("writing %s: %w", key, err)
	}
	return nil
}
