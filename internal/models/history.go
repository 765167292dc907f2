package models

import (
	"strings"
	"time"
)

// Rating is the user's optional feedback on a completed run.
type Rating string

const (
	RatingNone    Rating = ""
	RatingTooEasy Rating = "too-easy"
	RatingPerfect Rating = "perfect"
	RatingTooHard Rating = "too-hard"
)

// ParseRating accepts the wire values plus a few shorthands.
func ParseRating(s string) (Rating, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "too-easy", "easy", "1":
		return RatingTooEasy, true
	case "perfect", "ok", "2":
		return RatingPerfect, true
	case "too-hard", "hard", "3":
		return RatingTooHard, true
	default:
		return RatingNone, false
	}
}

// Label returns a display label.
func (r Rating) Label() string {
	switch r {
	case RatingTooEasy:
		return "Too easy"
	case RatingPerfect:
		return "Perfect"
	case RatingTooHard:
		return "Too hard"
	default:
		return "-"
	}
}

// HistoryEntry records one completed playback run.
type HistoryEntry struct {
	ID                   string `json:"id"`
	SessionID            string `json:"sessionId"`
	SessionName          string `json:"sessionName"`
	CompletedAt          Millis `json:"completedAt"`
	TotalDurationSeconds int    `json:"totalDuration"`
	Rating               Rating `json:"rating,omitempty"`
}

// Duration returns the recorded wall-clock duration.
func (h HistoryEntry) Duration() time.Duration {
	return time.Duration(h.TotalDurationSeconds) * time.Second
}
