package store

import (
	"github.com/balkashynov/matwork/internal/models"
)

// ListHistory returns completed runs, newest first.
func (s *Store) ListHistory() []models.HistoryEntry {
	return load[models.HistoryEntry](s, HistoryKey)
}

// GetHistoryEntry finds a recorded run by id.
func (s *Store) GetHistoryEntry(id string) (models.HistoryEntry, bool) {
	for _, h := range s.ListHistory() {
		if h.ID == id {
			return h, true
		}
	}
	return models.HistoryEntry{}, false
}

// AddHistoryEntry assigns a fresh id to entry and records it at the head of
// the history. Any id already on entry is replaced.
func (s *Store) AddHistoryEntry(entry models.HistoryEntry) (models.HistoryEntry, error) {
	entry.ID = s.NewID()

	history := s.ListHistory()
	history = append([]models.HistoryEntry{entry}, history...)
	if err := save(s, HistoryKey, history); err != nil {
		return models.HistoryEntry{}, err
	}
	s.log.Info("history entry recorded", "id", entry.ID, "session", entry.SessionID, "duration", entry.TotalDurationSeconds)
	return entry, nil
}

// RateHistoryEntry attaches a rating to a recorded run. RatingNone clears it.
func (s *Store) RateHistoryEntry(id string, rating models.Rating) error {
	history := s.ListHistory()
	for i := range history {
		if history[i].ID == id {
			history[i].Rating = rating
			return save(s, HistoryKey, history)
		}
	}
	return ErrNotFound
}

// DeleteHistoryEntry removes a single entry. Unknown ids are a no-op.
func (s *Store) DeleteHistoryEntry(id string) error {
	history := s.ListHistory()
	kept := history[:0]
	for _, h := range history {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	if len(kept) == len(history) {
		return nil
	}
	return save(s, HistoryKey, kept)
}

// ClearHistory drops every entry.
func (s *Store) ClearHistory() error {
	return s.kv.Remove(HistoryKey)
}
