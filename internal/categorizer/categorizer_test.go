package categorizer

import (
	"testing"

	"github.com/balkashynov/matwork/internal/models"
)

func TestCategorize_ExplicitCategoryIsKept(t *testing.T) {
	for _, c := range models.Categories {
		e := models.Exercise{Name: "Side plank", Description: "warm-up stretch", Category: c}
		if got := Categorize(e); got != c {
			t.Errorf("Categorize(%q explicit) = %q, want %q", c, got, c)
		}
	}
}

func TestCategorize_Keywords(t *testing.T) {
	tests := []struct {
		name        string
		exercise    string
		description string
		want        models.Category
	}{
		{"warmup wins over later rules", "Warm-up leg swings", "", models.CategoryWarmup},
		{"stretch", "Hamstring stretch", "", models.CategoryStretch},
		{"abdominals from name", "Plank", "", models.CategoryAbdominals},
		{"back from description", "Cat-Cow", "mobilize the spine", models.CategoryBack},
		{"legs", "Single leg circles", "", models.CategoryLegs},
		{"glutes", "Shoulder bridge", "", models.CategoryGlutes},
		{"shoulders", "Arm circles", "", models.CategoryShouldersArms},
		{"hips", "Hip opener", "", models.CategoryHips},
		{"case insensitive", "PLANK HOLD", "", models.CategoryAbdominals},
		{"legacy french wording", "Étirement du dos", "", models.CategoryStretch},
		{"no keyword defaults to full body", "Roll down", "slow and controlled", models.CategoryFullBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := models.Exercise{Name: tt.exercise, Description: tt.description, DurationSeconds: 30}
			got := Categorize(e)
			if got != tt.want {
				t.Errorf("Categorize(%q) = %q, want %q", tt.exercise, got, tt.want)
			}
			if again := Categorize(e); again != got {
				t.Errorf("Categorize not deterministic: %q then %q", got, again)
			}
		})
	}
}

func TestUniqueExercises(t *testing.T) {
	in := []models.Exercise{
		{Name: "Plank", DurationSeconds: 30},
		{Name: " plank ", DurationSeconds: 60, Category: models.CategoryFullBody},
		{Name: "Swan", DurationSeconds: 20},
		{Name: "SWAN", DurationSeconds: 40},
		{Name: "   ", DurationSeconds: 10},
	}

	got := UniqueExercises(in)
	if len(got) != 2 {
		t.Fatalf("expected 2 unique exercises, got %d: %+v", len(got), got)
	}

	// Later occurrence with an explicit category replaces an inferred one.
	if got[0].DurationSeconds != 60 || got[0].Category != models.CategoryFullBody {
		t.Errorf("plank = %+v, want the explicitly categorized occurrence", got[0])
	}
	// Neither swan carried a category, the first stays.
	if got[1].DurationSeconds != 20 || got[1].Category != models.CategoryBack {
		t.Errorf("swan = %+v, want first occurrence categorized as back", got[1])
	}
}

func TestUniqueExercises_FirstExplicitWins(t *testing.T) {
	in := []models.Exercise{
		{Name: "Hundred", DurationSeconds: 60, Category: models.CategoryWarmup},
		{Name: "hundred", DurationSeconds: 90, Category: models.CategoryAbdominals},
	}
	got := UniqueExercises(in)
	if len(got) != 1 || got[0].Category != models.CategoryWarmup || got[0].DurationSeconds != 60 {
		t.Fatalf("got %+v, want first explicit occurrence", got)
	}
}

func TestGroupByCategory(t *testing.T) {
	groups := GroupByCategory([]models.Exercise{
		{Name: "Roll down"},
		{Name: "Plank"},
		{Name: "Breathing", Category: models.CategoryWarmup},
		{Name: "Crunch"},
	})

	want := []struct {
		category models.Category
		count    int
	}{
		{models.CategoryWarmup, 1},
		{models.CategoryAbdominals, 2},
		{models.CategoryFullBody, 1},
	}
	if len(groups) != len(want) {
		t.Fatalf("expected %d groups, got %d", len(want), len(groups))
	}
	for i, w := range want {
		if groups[i].Category != w.category || len(groups[i].Exercises) != w.count {
			t.Errorf("group %d = %s/%d, want %s/%d", i, groups[i].Category, len(groups[i].Exercises), w.category, w.count)
		}
	}
}
