package models

import "strings"

// Category is the muscle-group tag of an exercise.
type Category string

// CategoryUnset marks an exercise whose category has not been given and must be
// inferred. It is distinct from CategoryFullBody, which is a real tag.
const CategoryUnset Category = ""

const (
	CategoryWarmup        Category = "warmup"
	CategoryStretch       Category = "stretch"
	CategoryAbdominals    Category = "abdominals"
	CategoryBack          Category = "back"
	CategoryLegs          Category = "legs"
	CategoryGlutes        Category = "glutes"
	CategoryShouldersArms Category = "shoulders-arms"
	CategoryHips          Category = "hips"
	CategoryFullBody      Category = "full-body"
)

// Categories lists every category in canonical order.
var Categories = []Category{
	CategoryWarmup,
	CategoryStretch,
	CategoryAbdominals,
	CategoryBack,
	CategoryLegs,
	CategoryGlutes,
	CategoryShouldersArms,
	CategoryHips,
	CategoryFullBody,
}

// legacyCategories maps values written by older versions of the data files.
var legacyCategories = map[string]Category{
	"abdominaux":   CategoryAbdominals,
	"dos":          CategoryBack,
	"jambes":       CategoryLegs,
	"fessiers":     CategoryGlutes,
	"epaules-bras": CategoryShouldersArms,
	"hanches":      CategoryHips,
	"corps-entier": CategoryFullBody,
}

// ParseCategory resolves a category name, accepting legacy aliases.
func ParseCategory(s string) (Category, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return CategoryUnset, false
	}
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}
	if c, ok := legacyCategories[s]; ok {
		return c, true
	}
	return CategoryUnset, false
}

// IsSet reports whether the category carries an explicit value.
func (c Category) IsSet() bool {
	return c != CategoryUnset
}

// Label returns a display label.
func (c Category) Label() string {
	switch c {
	case CategoryWarmup:
		return "Warm-up"
	case CategoryStretch:
		return "Stretch"
	case CategoryAbdominals:
		return "Abdominals"
	case CategoryBack:
		return "Back"
	case CategoryLegs:
		return "Legs"
	case CategoryGlutes:
		return "Glutes"
	case CategoryShouldersArms:
		return "Shoulders & arms"
	case CategoryHips:
		return "Hips"
	case CategoryFullBody:
		return "Full body"
	default:
		return "Uncategorized"
	}
}

// UnmarshalText decodes JSON and YAML values. Unknown values decode as unset so
// that the categorizer infers them again instead of failing the whole load.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, _ := ParseCategory(string(text))
	*c = parsed
	return nil
}
