package models

import "strings"

// Exercise is one timed step of a session.
type Exercise struct {
	Name            string   `json:"name" yaml:"name"`
	DurationSeconds int      `json:"duration" yaml:"duration"`
	Description     string   `json:"description" yaml:"description"`
	RestSeconds     int      `json:"restTime" yaml:"restTime"`
	Category        Category `json:"category,omitempty" yaml:"category,omitempty"`
}

// Key returns the case-insensitive identity used by the exercise bank.
func (e Exercise) Key() string {
	return ExerciseKey(e.Name)
}

// ExerciseKey normalizes an exercise name into a bank key.
func ExerciseKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
