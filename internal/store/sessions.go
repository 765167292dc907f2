package store

import (
	"github.com/balkashynov/matwork/internal/models"
)

// ListSessions returns the user's sessions in insertion order. Presets are not
// included.
func (s *Store) ListSessions() []models.Session {
	return load[models.Session](s, SessionsKey)
}

// ListAllSessions returns presets followed by the user's sessions.
func (s *Store) ListAllSessions() []models.Session {
	return append(s.catalog.Sessions(), s.ListSessions()...)
}

// GetSession looks in the preset catalog first, then in user sessions. A
// preset id is never resolved against user data.
func (s *Store) GetSession(id string) (models.Session, bool) {
	if preset, ok := s.catalog.Session(id); ok {
		return preset, true
	}
	if models.IsPresetID(id) {
		return models.Session{}, false
	}
	for _, session := range s.ListSessions() {
		if session.ID == id {
			return session, true
		}
	}
	return models.Session{}, false
}

// EditableSession returns a user session for editing. Presets yield
// ErrImmutableRecord, unknown ids ErrNotFound.
func (s *Store) EditableSession(id string) (models.Session, error) {
	if models.IsPresetID(id) {
		return models.Session{}, ErrImmutableRecord
	}
	session, ok := s.GetSession(id)
	if !ok {
		return models.Session{}, ErrNotFound
	}
	return session, nil
}

// UpsertSession replaces the user session with the same id, refreshing
// updatedAt, or appends it. Invalid sessions and preset ids are rejected
// before anything is written.
func (s *Store) UpsertSession(session models.Session) error {
	if session.Origin() == models.OriginPreset {
		s.log.Warn("refusing to write preset session", "id", session.ID)
		return ErrImmutableRecord
	}
	if err := ValidateSession(session.Name, session.Exercises); err != nil {
		return err
	}

	now := models.MillisOf(s.Now())
	sessions := s.ListSessions()
	session = session.Clone()

	replaced := false
	for i := range sessions {
		if sessions[i].ID == session.ID {
			session.UpdatedAt = now
			sessions[i] = session
			replaced = true
			break
		}
	}
	if !replaced {
		if session.CreatedAt == 0 {
			session.CreatedAt = now
		}
		if session.UpdatedAt == 0 {
			session.UpdatedAt = now
		}
		sessions = append(sessions, session)
	}

	return save(s, SessionsKey, sessions)
}

// DeleteSession removes a user session. Preset ids are ignored.
func (s *Store) DeleteSession(id string) error {
	if models.IsPresetID(id) {
		s.log.Warn("ignoring delete of preset session", "id", id)
		return nil
	}

	sessions := s.ListSessions()
	kept := sessions[:0]
	for _, session := range sessions {
		if session.ID != id {
			kept = append(kept, session)
		}
	}
	if len(kept) == len(sessions) {
		return nil
	}
	return save(s, SessionsKey, kept)
}

// CreateSession stores a new user session under a fresh id.
func (s *Store) CreateSession(name string, exercises []models.Exercise) (models.Session, error) {
	if err := ValidateSession(name, exercises); err != nil {
		return models.Session{}, err
	}

	now := models.MillisOf(s.Now())
	session := models.Session{
		ID:        s.NewID(),
		Name:      name,
		Exercises: append([]models.Exercise(nil), exercises...),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.UpsertSession(session); err != nil {
		return models.Session{}, err
	}
	return session, nil
}

// ImportPreset copies a preset into a new user session.
func (s *Store) ImportPreset(id string) (models.Session, error) {
	preset, ok := s.catalog.Session(id)
	if !ok {
		return models.Session{}, ErrNotFound
	}
	return s.CreateSession(preset.Name, preset.Exercises)
}
