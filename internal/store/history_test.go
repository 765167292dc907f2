package store

import (
	"errors"
	"testing"

	"github.com/balkashynov/matwork/internal/models"
)

func TestAddHistoryEntry_NewestFirst(t *testing.T) {
	s, _, _ := newTestStore(t)

	a, err := s.AddHistoryEntry(models.HistoryEntry{SessionID: "s1", SessionName: "A", TotalDurationSeconds: 60})
	if err != nil {
		t.Fatalf("AddHistoryEntry: %v", err)
	}
	b, err := s.AddHistoryEntry(models.HistoryEntry{ID: "ignored", SessionID: "s2", SessionName: "B", TotalDurationSeconds: 90})
	if err != nil {
		t.Fatalf("AddHistoryEntry: %v", err)
	}
	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct fresh ids, got %q and %q", a.ID, b.ID)
	}
	if b.ID == "ignored" {
		t.Error("caller supplied id should be replaced")
	}

	history := s.ListHistory()
	if len(history) != 2 || history[0].ID != b.ID || history[1].ID != a.ID {
		t.Fatalf("history = %+v, want [b, a]", history)
	}
}

func TestRateHistoryEntry(t *testing.T) {
	s, _, _ := newTestStore(t)
	entry, _ := s.AddHistoryEntry(models.HistoryEntry{SessionID: "s1", SessionName: "A"})

	if err := s.RateHistoryEntry(entry.ID, models.RatingTooHard); err != nil {
		t.Fatalf("RateHistoryEntry: %v", err)
	}
	if got := s.ListHistory()[0].Rating; got != models.RatingTooHard {
		t.Errorf("rating = %q, want too-hard", got)
	}
	if err := s.RateHistoryEntry("missing", models.RatingPerfect); !errors.Is(err, ErrNotFound) {
		t.Errorf("RateHistoryEntry(missing) = %v, want ErrNotFound", err)
	}
}

func TestDeleteAndClearHistory(t *testing.T) {
	s, _, _ := newTestStore(t)
	a, _ := s.AddHistoryEntry(models.HistoryEntry{SessionID: "s1"})
	b, _ := s.AddHistoryEntry(models.HistoryEntry{SessionID: "s2"})

	if err := s.DeleteHistoryEntry(a.ID); err != nil {
		t.Fatalf("DeleteHistoryEntry: %v", err)
	}
	history := s.ListHistory()
	if len(history) != 1 || history[0].ID != b.ID {
		t.Fatalf("history = %+v, want only b", history)
	}

	if err := s.ClearHistory(); err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}
	if got := s.ListHistory(); len(got) != 0 {
		t.Fatalf("history after clear = %+v", got)
	}
}

func TestGetHistoryEntry(t *testing.T) {
	s, _, _ := newTestStore(t)
	entry, _ := s.AddHistoryEntry(models.HistoryEntry{SessionID: "s1", SessionName: "A"})

	got, ok := s.GetHistoryEntry(entry.ID)
	if !ok || got.SessionName != "A" {
		t.Fatalf("GetHistoryEntry(%q) = %+v, %v", entry.ID, got, ok)
	}
	if _, ok := s.GetHistoryEntry("missing"); ok {
		t.Error("GetHistoryEntry(missing) should report not found")
	}
}
