package store

import (
	"github.com/balkashynov/matwork/internal/categorizer"
	"github.com/balkashynov/matwork/internal/models"
)

// ListBankExercises returns the exercise bank in stored order.
func (s *Store) ListBankExercises() []models.Exercise {
	return load[models.Exercise](s, BankKey)
}

// UpsertBankExercise inserts or replaces the entry with the same
// case-insensitive trimmed name. A missing category is inferred.
func (s *Store) UpsertBankExercise(e models.Exercise) error {
	if err := ValidateExercise(e); err != nil {
		return err
	}
	e = categorizer.WithCategory(e)

	bank := s.ListBankExercises()
	key := e.Key()
	for i := range bank {
		if bank[i].Key() == key {
			bank[i] = e
			return save(s, BankKey, bank)
		}
	}
	return save(s, BankKey, append(bank, e))
}

// DeleteBankExercise removes the entry matching name, ignoring case and
// surrounding whitespace.
func (s *Store) DeleteBankExercise(name string) error {
	key := models.ExerciseKey(name)
	bank := s.ListBankExercises()
	kept := bank[:0]
	for _, e := range bank {
		if e.Key() != key {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(bank) {
		return ErrNotFound
	}
	return save(s, BankKey, kept)
}

// InitializeBankIfEmpty seeds the bank when it holds nothing yet. It reports
// whether seeding happened.
func (s *Store) InitializeBankIfEmpty() (bool, error) {
	if len(s.ListBankExercises()) > 0 {
		return false, nil
	}
	return true, s.seedBank()
}

// ResetBank discards the bank, customizations included, and seeds it again.
func (s *Store) ResetBank() error {
	if err := s.kv.Remove(BankKey); err != nil {
		return err
	}
	return s.seedBank()
}

// seedBank stores the deduplicated union of every session's exercises and the
// bodyweight preset list.
func (s *Store) seedBank() error {
	var all []models.Exercise
	for _, session := range s.ListAllSessions() {
		all = append(all, session.Exercises...)
	}
	all = append(all, s.catalog.Exercises()...)

	unique := categorizer.UniqueExercises(all)
	s.log.Info("seeding exercise bank", "exercises", len(unique))
	return save(s, BankKey, unique)
}
