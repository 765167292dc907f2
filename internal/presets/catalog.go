// Package presets supplies the built-in sessions and the bodyweight exercise
// list shipped with matwork. Catalog data is read-only at runtime.
package presets

import (
	"embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/balkashynov/matwork/internal/models"
)

//go:embed data/*.yaml
var dataFS embed.FS

// PresetDate stamps createdAt/updatedAt of every preset session.
var PresetDate = models.MillisOf(time.Date(2025, time.November, 8, 0, 0, 0, 0, time.UTC))

// TestSessionID is the development-only preset.
const TestSessionID = models.PresetPrefix + "test"

var sessionFiles = []struct {
	slug string
	file string
}{
	{"beginner", "data/beginner.yaml"},
	{"intermediate", "data/intermediate.yaml"},
	{"advanced", "data/advanced.yaml"},
}

type sessionFile struct {
	Name      string            `yaml:"name"`
	Exercises []models.Exercise `yaml:"exercises"`
}

// Catalog holds the built-in sessions and exercises.
type Catalog struct {
	sessions  []models.Session
	exercises []models.Exercise
}

// Load parses the embedded data files. includeTest adds a short session meant
// for exercising the player during development.
func Load(includeTest bool) (*Catalog, error) {
	c := &Catalog{}

	for _, sf := range sessionFiles {
		var data sessionFile
		if err := readYAML(sf.file, &data); err != nil {
			return nil, err
		}
		c.sessions = append(c.sessions, models.Session{
			ID:        models.PresetPrefix + sf.slug,
			Name:      data.Name,
			Exercises: data.Exercises,
			CreatedAt: PresetDate,
			UpdatedAt: PresetDate,
		})
	}

	if includeTest {
		c.sessions = append(c.sessions, testSession())
	}

	var bodyweight sessionFile
	if err := readYAML("data/bodyweight-exercises.yaml", &bodyweight); err != nil {
		return nil, err
	}
	c.exercises = bodyweight.Exercises

	return c, nil
}

// MustLoad is Load for the embedded data, which is known to be valid.
func MustLoad(includeTest bool) *Catalog {
	c, err := Load(includeTest)
	if err != nil {
		panic(err)
	}
	return c
}

func readYAML(name string, out any) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("reading preset %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing preset %s: %w", name, err)
	}
	return nil
}

func testSession() models.Session {
	return models.Session{
		ID:   TestSessionID,
		Name: "Test",
		Exercises: []models.Exercise{
			{Name: "Test", DurationSeconds: 10, Description: "Test", Category: models.CategoryWarmup},
			{Name: "Test 2", DurationSeconds: 10, Description: "Test 2", RestSeconds: 5},
			{Name: "Test 3", DurationSeconds: 10, Description: "Test 3", RestSeconds: 5},
			{Name: "Test 4", DurationSeconds: 10, Description: "Test 4", Category: models.CategoryStretch},
		},
		CreatedAt: PresetDate,
		UpdatedAt: PresetDate,
	}
}

// Sessions returns copies of the preset sessions in catalog order.
func (c *Catalog) Sessions() []models.Session {
	out := make([]models.Session, len(c.sessions))
	for i, s := range c.sessions {
		out[i] = s.Clone()
	}
	return out
}

// Session looks up a preset by id.
func (c *Catalog) Session(id string) (models.Session, bool) {
	for _, s := range c.sessions {
		if s.ID == id {
			return s.Clone(), true
		}
	}
	return models.Session{}, false
}

// Exercises returns a copy of the bodyweight exercise list.
func (c *Catalog) Exercises() []models.Exercise {
	return append([]models.Exercise(nil), c.exercises...)
}
