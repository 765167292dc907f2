package parser

import (
	"regexp"
	"strings"

	"github.com/balkashynov/matwork/internal/models"
)

// ParsedExercise represents an exercise parsed from the quick syntax
type ParsedExercise struct {
	Exercise models.Exercise
	Errors   []string
}

var (
	restRegex     = regexp.MustCompile(`\brest:([^\s]*)`)
	categoryRegex = regexp.MustCompile(`#([a-zA-Z0-9_-]+)`)
)

// ParseExercise extracts an exercise from a single line of quick syntax
// Syntax: "Name words 45s rest:15 #abdominals -- optional description"
func ParseExercise(input string) ParsedExercise {
	result := ParsedExercise{Errors: []string{}}

	// Description runs from the first " -- " to the end
	if idx := strings.Index(input, " -- "); idx >= 0 {
		result.Exercise.Description = strings.TrimSpace(input[idx+4:])
		input = input[:idx]
	} else if strings.HasPrefix(strings.TrimSpace(input), "-- ") {
		result.Exercise.Description = strings.TrimSpace(strings.TrimSpace(input)[3:])
		input = ""
	}

	// Extract rest (rest:15, rest:1m)
	if m := restRegex.FindStringSubmatch(input); len(m) > 1 {
		seconds, err := ParseSeconds(m[1])
		if err != nil {
			result.Errors = append(result.Errors, "Invalid rest '"+m[1]+"': "+err.Error())
		} else {
			result.Exercise.RestSeconds = seconds
		}
		input = restRegex.ReplaceAllString(input, "")
	}

	// Extract category (#abdominals, #dos)
	if m := categoryRegex.FindStringSubmatch(input); len(m) > 1 {
		category, ok := NormalizeCategory(m[1])
		if !ok {
			result.Errors = append(result.Errors, "Unknown category '"+m[1]+"'. Use: "+CategoryNames())
		} else {
			result.Exercise.Category = category
		}
		input = categoryRegex.ReplaceAllString(input, "")
	}

	// The last token that reads as a duration is the exercise length
	fields := strings.Fields(input)
	durationAt := -1
	for i := len(fields) - 1; i >= 0; i-- {
		if seconds, err := ParseSeconds(fields[i]); err == nil {
			result.Exercise.DurationSeconds = seconds
			durationAt = i
			break
		}
	}
	if durationAt < 0 {
		result.Errors = append(result.Errors, "Missing duration. Use: 45, 45s, 1m30s or 2m")
	} else {
		fields = append(fields[:durationAt], fields[durationAt+1:]...)
	}

	result.Exercise.Name = strings.Join(fields, " ")
	if result.Exercise.Name == "" {
		result.Errors = append(result.Errors, "Missing exercise name")
	}

	return result
}

// FormatExercise renders an exercise back into quick syntax
func FormatExercise(e models.Exercise) string {
	var b strings.Builder
	b.WriteString(e.Name)
	b.WriteString(" ")
	b.WriteString(FormatSeconds(e.DurationSeconds))
	if e.RestSeconds > 0 {
		b.WriteString(" rest:")
		b.WriteString(FormatSeconds(e.RestSeconds))
	}
	if e.Category.IsSet() {
		b.WriteString(" #")
		b.WriteString(string(e.Category))
	}
	if e.Description != "" {
		b.WriteString(" -- ")
		b.WriteString(e.Description)
	}
	return b.String()
}
