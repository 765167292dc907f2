package models

import (
	"strings"
	"time"
)

// PresetPrefix marks built-in session ids. Persisted data relies on it, so it
// must not change.
const PresetPrefix = "preset-"

// Origin tells built-in sessions apart from user-owned ones.
type Origin int

const (
	OriginUser Origin = iota
	OriginPreset
)

func (o Origin) String() string {
	if o == OriginPreset {
		return "preset"
	}
	return "user"
}

// Millis is a timestamp in milliseconds since the Unix epoch.
type Millis int64

// MillisOf converts a time to Millis.
func MillisOf(t time.Time) Millis {
	return Millis(t.UnixMilli())
}

// Time converts back to a time.Time.
func (m Millis) Time() time.Time {
	return time.UnixMilli(int64(m))
}

// Session is a named, ordered sequence of exercises.
type Session struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Exercises []Exercise `json:"exercises"`
	CreatedAt Millis     `json:"createdAt"`
	UpdatedAt Millis     `json:"updatedAt"`
}

// IsPresetID reports whether id names a built-in session.
func IsPresetID(id string) bool {
	return strings.HasPrefix(id, PresetPrefix)
}

// Origin derives the session's origin from its id.
func (s Session) Origin() Origin {
	if IsPresetID(s.ID) {
		return OriginPreset
	}
	return OriginUser
}

// Clone returns a copy that shares no exercise storage with s.
func (s Session) Clone() Session {
	out := s
	out.Exercises = append([]Exercise(nil), s.Exercises...)
	return out
}

// TotalDuration sums every exercise and rest interval of the session.
func (s Session) TotalDuration() time.Duration {
	total := 0
	for _, e := range s.Exercises {
		total += e.DurationSeconds + e.RestSeconds
	}
	return time.Duration(total) * time.Second
}
