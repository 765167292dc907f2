package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/matwork/internal/models"
	"github.com/balkashynov/matwork/internal/parser"
	"github.com/balkashynov/matwork/internal/store"
	"github.com/balkashynov/matwork/internal/tui"
)

var newCmd = &cobra.Command{
	Use:   "new [session name]",
	Short: "Create a new session",
	Long: `Create a new session of timed exercises.

Modes:
  Interactive: matwork new (or matwork new -i)
  Quick: matwork new "Morning mat" -e "Hundred 1m" -e "Roll up 45s rest:15"

Exercise syntax:
  <name> <duration> [rest:<duration>] [#category] [-- description]

  Durations: 45, 45s, 2m, 1m30s or 1:30
  Categories: warmup, stretch, abdominals, back, legs, glutes,
              shoulders-arms, hips, full-body

Example:
  matwork new "Core" -e "Plank 45s rest:15 #abdominals -- keep a long spine"`,
	Args: cobra.ArbitraryArgs,
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		interactive, _ := cmd.Flags().GetBool("interactive")
		specs, _ := cmd.Flags().GetStringArray("exercise")
		name := strings.Join(args, " ")

		exercises, problems := parseExerciseSpecs(specs)
		if len(problems) > 0 {
			fmt.Printf("⚠️  Found issues with parsing: %s\n", strings.Join(problems, ", "))
			fmt.Println("Opening interactive mode for confirmation...")
			interactive = true
		}
		if name == "" || len(exercises) == 0 {
			interactive = true
		}

		draft := models.Session{Name: name, Exercises: exercises}
		if interactive {
			runSessionForm(s, draft)
			return
		}

		session, err := s.CreateSession(draft.Name, draft.Exercises)
		if err != nil {
			printStoreError(err)
			return
		}
		fmt.Printf("✅ New session \"%s\" created - ID: %s (%d exercises, %s)\n",
			session.Name, session.ID, len(session.Exercises), formatDuration(session.TotalDuration()))
	}),
}

// parseExerciseSpecs parses every -e value, collecting what it could not read
func parseExerciseSpecs(specs []string) ([]models.Exercise, []string) {
	var exercises []models.Exercise
	var problems []string
	for _, spec := range specs {
		parsed := parser.ParseExercise(spec)
		if len(parsed.Errors) > 0 {
			problems = append(problems, fmt.Sprintf("%q: %s", spec, strings.Join(parsed.Errors, "; ")))
			continue
		}
		exercises = append(exercises, parsed.Exercise)
	}
	return exercises, problems
}

// runSessionForm opens the wizard for a new or existing session
func runSessionForm(s *store.Store, draft models.Session) {
	save := func(session models.Session) (models.Session, error) {
		if session.ID == "" {
			return s.CreateSession(session.Name, session.Exercises)
		}
		if err := s.UpsertSession(session); err != nil {
			return models.Session{}, err
		}
		saved, _ := s.GetSession(session.ID)
		return saved, nil
	}

	saved, ok, err := tui.RunSessionFormTUI(tui.SessionForm{
		Session: draft,
		Bank:    s.ListBankExercises(),
		Save:    save,
	})
	if err != nil {
		printStoreError(err)
		return
	}
	if ok {
		fmt.Printf("✅ Session \"%s\" saved - ID: %s (%d exercises, %s)\n",
			saved.Name, saved.ID, len(saved.Exercises), formatDuration(saved.TotalDuration()))
	}
}

// printStoreError explains store errors in user terms
func printStoreError(err error) {
	var verr *store.ValidationError
	switch {
	case errors.As(err, &verr):
		fmt.Println("Error: invalid input:")
		for _, field := range sortedFields(verr) {
			fmt.Printf("  - %s: %s\n", field, verr.FieldErrors[field])
		}
	case errors.Is(err, store.ErrImmutableRecord):
		fmt.Println("Error: presets are built in and cannot be changed. Use 'matwork import <id>' to make an editable copy.")
	case errors.Is(err, store.ErrNotFound):
		fmt.Println("Error: not found.")
	default:
		fmt.Printf("Error: %v\n", err)
	}
}

func init() {
	newCmd.Flags().BoolP("interactive", "i", false, "Use the interactive editor")
	newCmd.Flags().StringArrayP("exercise", "e", nil, "Exercise in quick syntax (repeatable)")
}
