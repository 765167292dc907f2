package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/matwork/internal/models"
	"github.com/balkashynov/matwork/internal/parser"
	"github.com/balkashynov/matwork/internal/store"
)

// Step represents the current step in the session wizard
type Step int

const (
	StepName Step = iota
	StepExercises
	StepSave
)

var stepLabels = []string{"Name", "Exercises", "Save"}

// SessionForm configures the session wizard
type SessionForm struct {
	Session models.Session   // prefilled; empty ID creates a new session
	Bank    []models.Exercise // offered as completions
	Save    func(models.Session) (models.Session, error)
}

// SessionFormModel is a step-by-step editor for a session
type SessionFormModel struct {
	currentStep Step
	inputs      []textinput.Model
	width       int
	height      int

	session   models.Session
	original  models.Session
	save      func(models.Session) (models.Session, error)
	isEdit    bool
	saved     models.Session
	completed bool
	cancelled bool
	err       error

	validationErr string

	shimmer *Shimmer

	showSaveModal   bool
	saveModalChoice bool // true for Yes
}

// NewSessionFormModel creates the wizard
func NewSessionFormModel(form SessionForm) SessionFormModel {
	inputs := make([]textinput.Model, 2)
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Width = 60
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	inputs[StepName].Placeholder = "Session name... (required)"
	inputs[StepName].CharLimit = 100
	inputs[StepName].SetValue(form.Session.Name)
	inputs[StepName].Focus()

	inputs[StepExercises].Placeholder = "Roll up 45s rest:15 #abdominals -- slow and controlled"
	inputs[StepExercises].CharLimit = 300
	inputs[StepExercises].ShowSuggestions = true
	suggestions := make([]string, 0, len(form.Bank))
	for _, e := range form.Bank {
		suggestions = append(suggestions, parser.FormatExercise(e))
	}
	inputs[StepExercises].SetSuggestions(suggestions)

	session := form.Session.Clone()
	return SessionFormModel{
		currentStep: StepName,
		inputs:      inputs,
		session:     session,
		original:    form.Session.Clone(),
		save:        form.Save,
		isEdit:      form.Session.ID != "",
		shimmer:     NewShimmer(DefaultShimmerConfig()),
	}
}

// shimmerTickMsg is sent when shimmer should update
type shimmerTickMsg struct{}

func shimmerTick(s *Shimmer) tea.Cmd {
	if !s.ShouldTick() {
		return nil
	}
	return tea.Tick(s.Interval(), func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// Init initializes the model
func (m SessionFormModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, shimmerTick(m.shimmer))
}

// Update handles messages
func (m SessionFormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		return m, shimmerTick(m.shimmer)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		width := min(max(m.width*2/3-10, 30), 80)
		for i := range m.inputs {
			m.inputs[i].Width = width
		}
		return m, nil

	case tea.KeyMsg:
		if m.showSaveModal {
			return m.handleModalKeys(msg)
		}

		switch msg.String() {
		case "ctrl+c":
			m.cancelled = true
			return m, tea.Quit

		case "esc":
			if m.currentStep == StepSave {
				return m.prevStep()
			}
			if !m.hasChanges() {
				m.cancelled = true
				return m, tea.Quit
			}
			m.showSaveModal = true
			m.saveModalChoice = true
			return m, nil

		case "enter":
			return m.handleEnter()

		case "ctrl+d":
			// drop the last exercise
			if m.currentStep == StepExercises && len(m.session.Exercises) > 0 {
				m.session.Exercises = m.session.Exercises[:len(m.session.Exercises)-1]
			}
			return m, nil

		case "shift+tab", "up":
			return m.prevStep()
		}
	}

	var cmd tea.Cmd
	if m.currentStep < StepSave {
		m.inputs[m.currentStep], cmd = m.inputs[m.currentStep].Update(msg)
		if m.currentStep == StepName {
			m.session.Name = m.inputs[StepName].Value()
		}
	}
	return m, cmd
}

func (m SessionFormModel) handleModalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right":
		m.saveModalChoice = !m.saveModalChoice
	case "y", "Y":
		m.saveModalChoice = true
		return m.handleSaveChoice()
	case "n", "N":
		m.saveModalChoice = false
		return m.handleSaveChoice()
	case "enter":
		return m.handleSaveChoice()
	case "esc":
		m.showSaveModal = false
	case "ctrl+c":
		m.cancelled = true
		return m, tea.Quit
	}
	return m, nil
}

// handleEnter processes the Enter key
func (m SessionFormModel) handleEnter() (SessionFormModel, tea.Cmd) {
	m.validationErr = ""

	switch m.currentStep {
	case StepName:
		if strings.TrimSpace(m.session.Name) == "" {
			m.validationErr = "Enter a name"
			return m, nil
		}
		return m.nextStep()

	case StepExercises:
		line := strings.TrimSpace(m.inputs[StepExercises].Value())
		if line == "" {
			if len(m.session.Exercises) == 0 {
				m.validationErr = "Add at least one exercise"
				return m, nil
			}
			return m.nextStep()
		}
		parsed := parser.ParseExercise(line)
		if len(parsed.Errors) > 0 {
			m.validationErr = strings.Join(parsed.Errors, "; ")
			return m, nil
		}
		if err := store.ValidateExercise(parsed.Exercise); err != nil {
			m.validationErr = err.Error()
			return m, nil
		}
		m.session.Exercises = append(m.session.Exercises, parsed.Exercise)
		m.inputs[StepExercises].SetValue("")
		m.inputs[StepExercises].Placeholder = fmt.Sprintf("Add another exercise (%d so far, Enter on empty line to finish)", len(m.session.Exercises))
		m.shimmer.Reset()
		return m, nil

	case StepSave:
		return m.saveSession()
	}
	return m, nil
}

func (m SessionFormModel) nextStep() (SessionFormModel, tea.Cmd) {
	if m.currentStep < StepSave {
		m.inputs[m.currentStep].Blur()
		m.currentStep++
		if m.currentStep < StepSave {
			m.inputs[m.currentStep].Focus()
		}
		m.shimmer.Reset()
	}
	return m, textinput.Blink
}

func (m SessionFormModel) prevStep() (SessionFormModel, tea.Cmd) {
	if m.currentStep > StepName {
		if m.currentStep < StepSave {
			m.inputs[m.currentStep].Blur()
		}
		m.currentStep--
		m.inputs[m.currentStep].Focus()
		m.shimmer.Reset()
	}
	return m, textinput.Blink
}

func (m SessionFormModel) hasChanges() bool {
	if strings.TrimSpace(m.session.Name) != strings.TrimSpace(m.original.Name) {
		return true
	}
	if len(m.session.Exercises) != len(m.original.Exercises) {
		return true
	}
	for i := range m.session.Exercises {
		if m.session.Exercises[i] != m.original.Exercises[i] {
			return true
		}
	}
	return false
}

// saveSession persists the session; validation problems keep the form open
func (m SessionFormModel) saveSession() (SessionFormModel, tea.Cmd) {
	m.session.Name = strings.TrimSpace(m.session.Name)
	saved, err := m.save(m.session)
	if err != nil {
		var verr *store.ValidationError
		if errors.As(err, &verr) {
			m.validationErr = verr.Error()
			return m, nil
		}
		m.err = err
		return m, tea.Quit
	}
	m.saved = saved
	m.completed = true
	return m, tea.Quit
}

func (m SessionFormModel) handleSaveChoice() (SessionFormModel, tea.Cmd) {
	m.showSaveModal = false
	if m.saveModalChoice {
		return m.saveSession()
	}
	m.cancelled = true
	return m, tea.Quit
}

// View renders the TUI
func (m SessionFormModel) View() string {
	if m.cancelled || m.completed {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}
	if m.width < 85 {
		return lipgloss.NewStyle().Padding(1).Render(m.renderWizard() + "\n\n" + m.renderPreview(m.width-4))
	}

	rightWidth := 50
	leftWidth := m.width - rightWidth - 4

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(m.height - 2).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Padding(1).
		Render(m.renderWizard())
	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(m.height - 2).
		Padding(1).
		Render(m.renderPreview(rightWidth - 4))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
	if m.showSaveModal {
		return m.renderSaveModal()
	}
	return mainView
}

func (m SessionFormModel) renderWizard() string {
	var b strings.Builder

	titleText := "New Session"
	if m.isEdit {
		titleText = "Edit Session " + m.session.ID
	}
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Render(titleText))
	b.WriteString("\n\n")

	current := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	done := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	future := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	for i, label := range stepLabels {
		switch {
		case Step(i) == m.currentStep:
			b.WriteString(current.Render("▶ " + label))
		case Step(i) < m.currentStep:
			b.WriteString(done.Render("✓ " + label))
		default:
			b.WriteString(future.Render("  " + label))
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.currentStep {
	case StepName:
		b.WriteString("Session name\n")
		b.WriteString(m.inputs[StepName].View())
	case StepExercises:
		b.WriteString("Exercise: name duration [rest:15] [#category] [-- notes]\n")
		b.WriteString(m.inputs[StepExercises].View())
	case StepSave:
		b.WriteString("Press Enter to save")
	}

	if m.validationErr != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorError)).Render("✗ " + m.validationErr))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Render("Enter: Next | Tab: Complete | Ctrl+D: Drop last | Shift+Tab/↑: Back | Esc: Cancel"))
	return b.String()
}

func (m SessionFormModel) renderPreview(width int) string {
	var b strings.Builder

	name := strings.TrimSpace(m.session.Name)
	if name == "" {
		name = "Untitled session"
	}
	titleBox := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Padding(0, 1).
		Align(lipgloss.Center).
		Width(max(width-4, 10))
	b.WriteString(titleBox.Render(m.shimmer.Render(name, width-8) + "\033[0m"))
	b.WriteString("\n\n")

	if len(m.session.Exercises) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Italic(true).Render("No exercises yet"))
	}
	for i, e := range m.session.Exercises {
		line := fmt.Sprintf("%2d. %s  %s", i+1, truncate(e.Name, width-20), parser.FormatSeconds(e.DurationSeconds))
		if e.RestSeconds > 0 {
			line += " +" + parser.FormatSeconds(e.RestSeconds)
		}
		b.WriteString(line)
		if e.Category.IsSet() {
			b.WriteString(" ")
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(categoryColor(string(e.Category)))).Render("#" + string(e.Category)))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Render(fmt.Sprintf("Total: %s", formatDuration(m.session.TotalDuration()))))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentMain)).
		Padding(1).
		Width(width).
		Render(b.String())
}

func (m SessionFormModel) renderSaveModal() string {
	yes := lipgloss.NewStyle().Padding(0, 2)
	no := lipgloss.NewStyle().Padding(0, 2)
	if m.saveModalChoice {
		yes = yes.Background(lipgloss.Color(ColorAccentBright)).Foreground(lipgloss.Color("#000000")).Bold(true)
	} else {
		no = no.Background(lipgloss.Color(ColorError)).Foreground(lipgloss.Color("#FFFFFF")).Bold(true)
	}

	content := "Save changes?\n\n" +
		lipgloss.JoinHorizontal(lipgloss.Center, yes.Render("Yes"), "   ", no.Render("No")) +
		"\n\n← → or Y/N to choose, Enter to confirm\nEsc to keep editing"

	modal := lipgloss.NewStyle().
		Width(50).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentBright)).
		Background(lipgloss.Color(ColorCardBackground)).
		Padding(1).
		Align(lipgloss.Center).
		Render(content)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
