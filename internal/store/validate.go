package store

import (
	"fmt"
	"strings"

	"github.com/balkashynov/matwork/internal/models"
)

// ValidateExercise checks a single exercise.
func ValidateExercise(e models.Exercise) error {
	v := &ValidationError{}
	validateExercise(v, "", e)
	return v.orNil()
}

// ValidateSession checks a session before it is written.
func ValidateSession(name string, exercises []models.Exercise) error {
	v := &ValidationError{}
	if strings.TrimSpace(name) == "" {
		v.add("name", "enter a name")
	}
	if len(exercises) == 0 {
		v.add("exercises", "add at least one exercise")
	}
	for i, e := range exercises {
		validateExercise(v, fmt.Sprintf("exercises[%d].", i), e)
	}
	return v.orNil()
}

func validateExercise(v *ValidationError, prefix string, e models.Exercise) {
	label := strings.TrimSpace(e.Name)
	if label == "" {
		v.add(prefix+"name", "exercise name is required")
		label = "exercise"
	}
	if e.DurationSeconds <= 0 {
		v.add(prefix+"duration", fmt.Sprintf("%s: duration must be positive", label))
	}
	if e.RestSeconds < 0 {
		v.add(prefix+"restTime", fmt.Sprintf("%s: rest cannot be negative", label))
	}
}
