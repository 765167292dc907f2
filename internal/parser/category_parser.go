package parser

import (
	"strings"

	"github.com/balkashynov/matwork/internal/models"
)

// categoryAliases are shorthand names accepted on the command line
var categoryAliases = map[string]models.Category{
	"warm-up":   models.CategoryWarmup,
	"warm":      models.CategoryWarmup,
	"abs":       models.CategoryAbdominals,
	"core":      models.CategoryAbdominals,
	"leg":       models.CategoryLegs,
	"glute":     models.CategoryGlutes,
	"arms":      models.CategoryShouldersArms,
	"shoulders": models.CategoryShouldersArms,
	"hip":       models.CategoryHips,
	"full":      models.CategoryFullBody,
	"fullbody":  models.CategoryFullBody,
}

// NormalizeCategory converts a user-typed category to its canonical value
func NormalizeCategory(input string) (models.Category, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if c, ok := models.ParseCategory(input); ok {
		return c, true
	}
	if c, ok := categoryAliases[strings.ReplaceAll(input, "_", "-")]; ok {
		return c, true
	}
	return models.CategoryUnset, false
}

// CategoryNames lists the canonical category values for help text
func CategoryNames() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}
	return strings.Join(names, ", ")
}
