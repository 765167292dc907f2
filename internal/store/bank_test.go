package store

import (
	"errors"
	"testing"

	"github.com/balkashynov/matwork/internal/models"
)

func TestUpsertBankExercise_Dedupes(t *testing.T) {
	s, _, _ := newTestStore(t)

	if err := s.UpsertBankExercise(models.Exercise{Name: "Plank", DurationSeconds: 30}); err != nil {
		t.Fatalf("UpsertBankExercise: %v", err)
	}
	if err := s.UpsertBankExercise(models.Exercise{Name: " plank ", DurationSeconds: 60}); err != nil {
		t.Fatalf("UpsertBankExercise: %v", err)
	}

	bank := s.ListBankExercises()
	if len(bank) != 1 {
		t.Fatalf("expected one entry, got %+v", bank)
	}
	if bank[0].DurationSeconds != 60 {
		t.Errorf("duration = %d, want the latest upsert", bank[0].DurationSeconds)
	}
	if bank[0].Category != models.CategoryAbdominals {
		t.Errorf("category = %q, want inferred abdominals", bank[0].Category)
	}
}

func TestUpsertBankExercise_Validation(t *testing.T) {
	s, kv, _ := newTestStore(t)
	err := s.UpsertBankExercise(models.Exercise{Name: "", DurationSeconds: 0})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok, _ := kv.Get(BankKey); ok {
		t.Error("invalid exercise must not be written")
	}
}

func TestDeleteBankExercise(t *testing.T) {
	s, _, _ := newTestStore(t)
	_ = s.UpsertBankExercise(models.Exercise{Name: "Plank", DurationSeconds: 30})
	_ = s.UpsertBankExercise(models.Exercise{Name: "Swan", DurationSeconds: 30})

	if err := s.DeleteBankExercise("  PLANK"); err != nil {
		t.Fatalf("DeleteBankExercise: %v", err)
	}
	bank := s.ListBankExercises()
	if len(bank) != 1 || bank[0].Name != "Swan" {
		t.Fatalf("bank = %+v, want only Swan", bank)
	}
	if err := s.DeleteBankExercise("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteBankExercise(nope) = %v, want ErrNotFound", err)
	}
}

func TestInitializeBankIfEmpty(t *testing.T) {
	s, _, _ := newTestStore(t)
	if _, err := s.CreateSession("Mine", []models.Exercise{
		{Name: "Custom roll", DurationSeconds: 20},
		{Name: "plank", DurationSeconds: 99},
	}); err != nil {
		t.Fatal(err)
	}

	seeded, err := s.InitializeBankIfEmpty()
	if err != nil || !seeded {
		t.Fatalf("InitializeBankIfEmpty = %v, %v", seeded, err)
	}

	bank := s.ListBankExercises()
	seen := make(map[string]bool)
	for _, e := range bank {
		if seen[e.Key()] {
			t.Errorf("duplicate bank entry %q", e.Name)
		}
		seen[e.Key()] = true
		if !e.Category.IsSet() {
			t.Errorf("bank entry %q is uncategorized", e.Name)
		}
	}
	for _, want := range []string{"custom roll", "plank", "squat", "breathing"} {
		if !seen[want] {
			t.Errorf("bank is missing %q", want)
		}
	}

	seeded, err = s.InitializeBankIfEmpty()
	if err != nil || seeded {
		t.Fatalf("second InitializeBankIfEmpty = %v, %v, want no-op", seeded, err)
	}
}

func TestResetBank_DiscardsCustomizations(t *testing.T) {
	s, _, _ := newTestStore(t)
	if _, err := s.InitializeBankIfEmpty(); err != nil {
		t.Fatal(err)
	}
	seededCount := len(s.ListBankExercises())

	if err := s.UpsertBankExercise(models.Exercise{Name: "My own move", DurationSeconds: 15}); err != nil {
		t.Fatal(err)
	}
	if err := s.ResetBank(); err != nil {
		t.Fatalf("ResetBank: %v", err)
	}

	bank := s.ListBankExercises()
	if len(bank) != seededCount {
		t.Fatalf("bank size after reset = %d, want %d", len(bank), seededCount)
	}
	for _, e := range bank {
		if e.Key() == "my own move" {
			t.Fatal("customization survived reset")
		}
	}
}

func TestSearchBank_Ranking(t *testing.T) {
	s, _, _ := newTestStore(t)
	for _, e := range []models.Exercise{
		{Name: "Side plank", DurationSeconds: 30},
		{Name: "Plank", DurationSeconds: 30},
		{Name: "Plank jacks", DurationSeconds: 30},
		{Name: "Swan", DurationSeconds: 30, Description: "like a plank but lifted"},
		{Name: "Mermaid plankish stretch", DurationSeconds: 30},
		{Name: "Bridge", DurationSeconds: 30},
	} {
		if err := s.UpsertBankExercise(e); err != nil {
			t.Fatalf("UpsertBankExercise(%s): %v", e.Name, err)
		}
	}

	got := s.SearchBank("  PLANK ")
	var names []string
	for _, r := range got {
		names = append(names, r.Exercise.Name)
	}
	want := []string{"Plank", "Plank jacks", "Side plank", "Swan", "Mermaid plankish stretch"}
	if len(names) != len(want) {
		t.Fatalf("results = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("results = %v, want %v", names, want)
		}
	}
	if got[0].Rank != MatchExact || got[2].Rank != MatchSuffix {
		t.Errorf("ranks = %d/%d", got[0].Rank, got[2].Rank)
	}
}

func TestSearchBank_ByCategory(t *testing.T) {
	s, _, _ := newTestStore(t)
	_ = s.UpsertBankExercise(models.Exercise{Name: "Bridge", DurationSeconds: 30})
	got := s.SearchBank("glutes")
	if len(got) != 1 || got[0].Exercise.Name != "Bridge" {
		t.Fatalf("results = %+v", got)
	}
	if s.SearchBank("   ") != nil {
		t.Error("blank query should return nothing")
	}
}
