package presets

import (
	"strings"
	"testing"

	"github.com/balkashynov/matwork/internal/models"
)

func TestLoad(t *testing.T) {
	c, err := Load(false)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	sessions := c.Sessions()
	wantIDs := []string{"preset-beginner", "preset-intermediate", "preset-advanced"}
	if len(sessions) != len(wantIDs) {
		t.Fatalf("expected %d presets, got %d", len(wantIDs), len(sessions))
	}
	for i, s := range sessions {
		if s.ID != wantIDs[i] {
			t.Errorf("session %d id = %q, want %q", i, s.ID, wantIDs[i])
		}
		if !strings.HasPrefix(s.ID, models.PresetPrefix) {
			t.Errorf("session %q lacks preset prefix", s.ID)
		}
		if s.CreatedAt != PresetDate || s.UpdatedAt != PresetDate {
			t.Errorf("session %q timestamps = %d/%d, want %d", s.ID, s.CreatedAt, s.UpdatedAt, PresetDate)
		}
		if s.Name == "" || len(s.Exercises) == 0 {
			t.Errorf("session %q is incomplete: %+v", s.ID, s)
		}
		for _, e := range s.Exercises {
			if e.DurationSeconds <= 0 || e.RestSeconds < 0 {
				t.Errorf("session %q exercise %q has invalid timing", s.ID, e.Name)
			}
		}
	}

	if len(c.Exercises()) == 0 {
		t.Error("expected bodyweight exercises")
	}
	for _, e := range c.Exercises() {
		if !e.Category.IsSet() {
			t.Errorf("bodyweight exercise %q should carry a category", e.Name)
		}
	}
}

func TestLoad_TestSession(t *testing.T) {
	c := MustLoad(true)
	s, ok := c.Session(TestSessionID)
	if !ok {
		t.Fatal("expected development test session")
	}
	if len(s.Exercises) != 4 {
		t.Errorf("expected 4 exercises, got %d", len(s.Exercises))
	}

	if _, ok := MustLoad(false).Session(TestSessionID); ok {
		t.Error("test session should be absent unless requested")
	}
}

func TestSessions_ReturnsCopies(t *testing.T) {
	c := MustLoad(false)

	first := c.Sessions()
	first[0].Name = "mutated"
	first[0].Exercises[0].Name = "mutated"

	again, _ := c.Session(first[0].ID)
	if again.Name == "mutated" || again.Exercises[0].Name == "mutated" {
		t.Fatal("catalog data was mutated through a returned copy")
	}
}
