// Package categorizer infers muscle-group categories for exercises from their
// name and description.
package categorizer

import (
	"strings"

	"github.com/balkashynov/matwork/internal/models"
)

type rule struct {
	category models.Category
	keywords []string
}

// rules is scanned in order and the first hit wins. Keywords cover both the
// English and French wording found in older data files.
var rules = []rule{
	{models.CategoryWarmup, []string{"warmup", "warm-up", "warm up", "échauffement"}},
	{models.CategoryStretch, []string{"stretch", "étirement"}},
	{models.CategoryAbdominals, []string{"plank", "planche", "crunch", "abdo", "core", "dead bug", "hundred"}},
	{models.CategoryBack, []string{"spine", "back", "cat-cow", "extension", "swan", "dos", "colonne"}},
	{models.CategoryLegs, []string{"leg", "jambe", "cuisse", "squat", "lunge", "thigh"}},
	{models.CategoryGlutes, []string{"bridge", "pont", "glute", "fessier", "clam"}},
	{models.CategoryShouldersArms, []string{"shoulder", "arm", "push-up", "pushup", "tricep", "épaule", "bras", "rotation"}},
	{models.CategoryHips, []string{"hip", "hanche", "pelvic tilt"}},
	{models.CategoryFullBody, []string{"full body", "breathing", "respiration", "complet"}},
}

// Categorize returns the exercise's explicit category, or infers one from its
// text. Exercises matching no keyword are full-body.
func Categorize(e models.Exercise) models.Category {
	if e.Category.IsSet() {
		return e.Category
	}

	text := strings.ToLower(e.Name + " " + e.Description)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(text, kw) {
				return r.category
			}
		}
	}
	return models.CategoryFullBody
}

// WithCategory returns e with its category filled in.
func WithCategory(e models.Exercise) models.Exercise {
	e.Category = Categorize(e)
	return e
}

// UniqueExercises merges exercises by case-insensitive trimmed name. The first
// occurrence is kept unless a later one carries an explicit category the first
// lacked. Every returned exercise is categorized.
func UniqueExercises(exercises []models.Exercise) []models.Exercise {
	index := make(map[string]int)
	explicit := make([]bool, 0, len(exercises))
	out := make([]models.Exercise, 0, len(exercises))

	for _, e := range exercises {
		key := e.Key()
		if key == "" {
			continue
		}
		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			explicit = append(explicit, e.Category.IsSet())
			out = append(out, WithCategory(e))
			continue
		}
		if !explicit[i] && e.Category.IsSet() {
			out[i] = e
			explicit[i] = true
		}
	}
	return out
}

// Group is one category bucket of GroupByCategory.
type Group struct {
	Category  models.Category
	Exercises []models.Exercise
}

// GroupByCategory buckets exercises by category in canonical order. Empty
// buckets are omitted.
func GroupByCategory(exercises []models.Exercise) []Group {
	buckets := make(map[models.Category][]models.Exercise)
	for _, e := range exercises {
		c := Categorize(e)
		buckets[c] = append(buckets[c], e)
	}

	var groups []Group
	for _, c := range models.Categories {
		if len(buckets[c]) > 0 {
			groups = append(groups, Group{Category: c, Exercises: buckets[c]})
		}
	}
	return groups
}
