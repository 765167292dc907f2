package tui

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/balkashynov/matwork/internal/models"
)

// RunPlayerTUI plays session full-screen and reports how the run ended
func RunPlayerTUI(session models.Session, opts PlayerOptions) (PlayerResult, error) {
	model, err := NewPlayerModel(session, opts)
	if err != nil {
		return PlayerResult{}, err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return PlayerResult{}, err
	}

	result := finalModel.(PlayerModel).Result()
	return result, reportPlayerResult(os.Stdout, result)
}

// reportPlayerResult prints how the run ended and returns any persistence
// error the player hit
func reportPlayerResult(w io.Writer, result PlayerResult) error {
	if !result.Completed {
		fmt.Fprintln(w, "⏹️  Workout stopped. Nothing was saved to history.")
		return nil
	}
	if result.Err != nil && result.Entry.ID == "" {
		fmt.Fprintf(w, "⚠️  Completed \"%s\" in %s, but it was not saved to history.\n",
			result.Entry.SessionName, formatDuration(result.Entry.Duration()))
		return result.Err
	}

	fmt.Fprintf(w, "✅ Completed \"%s\" in %s\n", result.Entry.SessionName, formatDuration(result.Entry.Duration()))
	if result.Err != nil {
		return result.Err
	}
	if result.Rating != models.RatingNone {
		fmt.Fprintf(w, "📊 Rated: %s\n", result.Rating.Label())
	}
	return nil
}

// RunSessionFormTUI opens the session wizard and returns the saved session
func RunSessionFormTUI(form SessionForm) (models.Session, bool, error) {
	p := tea.NewProgram(NewSessionFormModel(form), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return models.Session{}, false, err
	}

	m := finalModel.(SessionFormModel)
	switch {
	case m.err != nil:
		return models.Session{}, false, m.err
	case m.cancelled:
		fmt.Println("❌ Cancelled, nothing saved.")
		return models.Session{}, false, nil
	}
	return m.saved, m.completed, nil
}

// RunPickerTUI lets the user choose a session
func RunPickerTUI(sessions []models.Session) (models.Session, bool, error) {
	p := tea.NewProgram(NewPickerModel(sessions), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return models.Session{}, false, err
	}
	s, ok := finalModel.(PickerModel).Chosen()
	return s, ok, nil
}
