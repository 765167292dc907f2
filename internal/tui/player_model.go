package tui

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/matwork/internal/models"
	"github.com/balkashynov/matwork/internal/parser"
	"github.com/balkashynov/matwork/internal/playback"
)

// PlayerOptions wire the player to persistence and settings
type PlayerOptions struct {
	Recorder  playback.Recorder
	Rate      func(id string, rating models.Rating) error
	Logger    *slog.Logger
	Interval  time.Duration
	Autostart bool
	Now       func() time.Time
}

// PlayerResult describes how a player run ended
type PlayerResult struct {
	Completed bool
	Entry     models.HistoryEntry
	Rating    models.Rating
	Err       error
}

type playerStage int

const (
	stagePlaying playerStage = iota
	stageRating
	stageDone
)

// PlayerModel is the full-screen workout player
type PlayerModel struct {
	width  int
	height int

	engine   *playback.Engine
	sched    *teaScheduler
	rate     func(id string, rating models.Rating) error
	progress progress.Model

	stage  playerStage
	frame  int // header animation
	result PlayerResult
}

// animationTickMsg drives the header animation
type animationTickMsg struct{}

// NewPlayerModel starts playback of session and wraps it in a model
func NewPlayerModel(session models.Session, opts PlayerOptions) (PlayerModel, error) {
	sched := &teaScheduler{}
	engine, err := playback.Start(session, playback.Options{
		Scheduler: sched,
		Recorder:  opts.Recorder,
		Now:       opts.Now,
		Interval:  opts.Interval,
		Logger:    opts.Logger,
	})
	if err != nil {
		return PlayerModel{}, err
	}
	if !opts.Autostart {
		engine.Pause()
	}

	bar := progress.New(
		progress.WithGradient(ColorAccentMain, ColorAccentBright),
		progress.WithoutPercentage(),
	)

	return PlayerModel{
		engine:   engine,
		sched:    sched,
		rate:     opts.Rate,
		progress: bar,
	}, nil
}

// Init starts the phase ticks and the header animation
func (m PlayerModel) Init() tea.Cmd {
	return tea.Batch(
		m.sched.take(),
		tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
			return animationTickMsg{}
		}),
	)
}

// Update handles messages
func (m PlayerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case phaseTickMsg:
		if !m.sched.live(msg) {
			return m, nil
		}
		m.engine.Tick(msg.token)
		cmd := m.sched.take()
		if cmd == nil {
			cmd = m.sched.next()
		}
		return m.afterEngine(cmd)

	case animationTickMsg:
		if m.stage != stagePlaying {
			return m, nil
		}
		if m.engine.Running() {
			m.frame = (m.frame + 1) % 4
		}
		return m, tea.Tick(250*time.Millisecond, func(time.Time) tea.Msg {
			return animationTickMsg{}
		})

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width/2-8, 10), 60)
		return m, nil

	case tea.KeyMsg:
		if m.stage == stageRating {
			return m.handleRatingKeys(msg)
		}
		return m.handlePlayingKeys(msg)
	}

	return m, nil
}

func (m PlayerModel) handlePlayingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ", "p":
		m.engine.TogglePause()
	case "r":
		m.engine.ResetCurrentPhase()
	case "n", "right":
		m.engine.Skip()
	case "ctrl+c", "esc", "q":
		m.engine.Quit()
		m.stage = stageDone
		return m, tea.Quit
	default:
		return m, nil
	}
	return m.afterEngine(m.sched.take())
}

// afterEngine moves to the rating prompt once the engine completes
func (m PlayerModel) afterEngine(cmd tea.Cmd) (tea.Model, tea.Cmd) {
	if !m.engine.Finished() || m.engine.Abandoned() {
		return m, cmd
	}

	entry, completed := m.engine.Entry()
	m.result.Completed = completed
	m.result.Entry = entry
	m.result.Err = m.engine.Err()

	if m.rate == nil || entry.ID == "" {
		m.stage = stageDone
		return m, tea.Quit
	}
	m.stage = stageRating
	return m, nil
}

func (m PlayerModel) handleRatingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var rating models.Rating
	switch msg.String() {
	case "1", "e":
		rating = models.RatingTooEasy
	case "2", "p":
		rating = models.RatingPerfect
	case "3", "h":
		rating = models.RatingTooHard
	case "enter", "esc", "s", "q", "ctrl+c":
		m.stage = stageDone
		return m, tea.Quit
	default:
		return m, nil
	}

	if err := m.rate(m.result.Entry.ID, rating); err != nil {
		m.result.Err = fmt.Errorf("saving rating: %w", err)
	} else {
		m.result.Rating = rating
	}
	m.stage = stageDone
	return m, tea.Quit
}

// Result reports the outcome after the program exits
func (m PlayerModel) Result() PlayerResult {
	return m.result
}

// View renders the player
func (m PlayerModel) View() string {
	if m.stage == stageDone {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}
	if m.stage == stageRating {
		return m.renderRating()
	}

	helpBar := m.renderHelpBar()
	contentHeight := m.height - 2

	if m.width < 90 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			m.renderTimerPanel(m.width, contentHeight),
			helpBar,
		)
	}

	leftWidth := m.width / 2
	rightWidth := m.width - leftWidth - 2

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTimerPanel(leftWidth, contentHeight),
		"  ",
		m.renderExercisePanel(rightWidth, contentHeight),
	)
	return lipgloss.JoinVertical(lipgloss.Left, content, helpBar)
}

// phaseStyle picks the header label and clock color for the current phase
func (m PlayerModel) phaseStyle() (string, string) {
	current, total := m.engine.Progress()
	label := fmt.Sprintf("EXERCISE %d/%d", current, total)
	color := ColorAccentBright
	if m.engine.Phase().Kind == playback.KindRest {
		label = "REST"
		color = ColorRest
	}
	if !m.engine.Running() {
		label = "PAUSED · " + label
		color = ColorPaused
	}
	return label, color
}

func (m PlayerModel) renderTimerPanel(width, height int) string {
	var components []string
	center := lipgloss.NewStyle().Align(lipgloss.Center).Width(width)

	label, color := m.phaseStyle()
	breath := []string{"○", "◎", "●", "◎"}[m.frame]
	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(color)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, header.Render(fmt.Sprintf("%s  %s  %s", breath, label, breath)))

	name := m.engine.SessionName()
	if exercise, ok := m.engine.Current(); ok {
		name = exercise.Name
		if m.engine.Phase().Kind == playback.KindRest {
			if next, ok := m.engine.Next(); ok {
				name = "Up next: " + next.Name
			} else {
				name = "Cool down"
			}
		}
	}
	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Bold(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, title.Render(truncate(name, width-4)))

	clock := renderBigClock(parser.FormatClock(m.engine.Remaining()), color)
	var centered []string
	for _, line := range strings.Split(clock, "\n") {
		centered = append(centered, center.Render(line))
	}
	components = append(components, strings.Join(centered, "\n"))

	current, total := m.engine.Progress()
	components = append(components, center.Render(m.progress.ViewAs(float64(current)/float64(total))))

	elapsed := int(m.engine.Elapsed() / time.Second)
	info := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSecondaryText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(width)
	components = append(components, info.Render("Elapsed "+parser.FormatClock(elapsed)))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(strings.Join(components, "\n\n"))
}

func (m PlayerModel) renderExercisePanel(width, height int) string {
	var b strings.Builder
	inner := width - 8

	logo := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccentMain)).
		Bold(true).
		Align(lipgloss.Center).
		Width(inner)
	b.WriteString(logo.Render(m.engine.SessionName()))
	b.WriteString("\n\n")

	separator := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorBorder)).
		Align(lipgloss.Center).
		Width(inner)
	b.WriteString(separator.Render(strings.Repeat("─", min(max(inner-4, 0), 40))))
	b.WriteString("\n\n")

	exercise, ok := m.engine.Current()
	if ok {
		box := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ColorPrimaryText)).
			Align(lipgloss.Center).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorAccentMain)).
			Width(max(inner-4, 10)).
			Padding(0, 1)
		b.WriteString(box.Render(exercise.Name))
		b.WriteString("\n\n")

		line := lipgloss.NewStyle().Align(lipgloss.Center).Width(inner)
		if exercise.Category.IsSet() {
			badge := lipgloss.NewStyle().
				Foreground(lipgloss.Color(categoryColor(string(exercise.Category)))).
				Bold(true).
				Render(exercise.Category.Label())
			b.WriteString(line.Render("Category: " + badge))
			b.WriteString("\n")
		}
		b.WriteString(line.Render(fmt.Sprintf("Work %s · Rest %s",
			parser.FormatSeconds(exercise.DurationSeconds),
			parser.FormatSeconds(exercise.RestSeconds))))
		b.WriteString("\n")

		if exercise.Description != "" {
			desc := lipgloss.NewStyle().
				Foreground(lipgloss.Color(ColorSecondaryText)).
				Italic(true).
				Align(lipgloss.Center).
				Width(inner).
				MarginTop(1)
			b.WriteString(desc.Render(exercise.Description))
			b.WriteString("\n")
		}
	}

	nextText := "Last exercise"
	if next, ok := m.engine.Next(); ok {
		nextText = fmt.Sprintf("Next: %s (%s)", next.Name, parser.FormatSeconds(next.DurationSeconds))
	}
	nextStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDisabledText)).
		Align(lipgloss.Center).
		Width(inner).
		MarginTop(1)
	b.WriteString(nextStyle.Render(nextText))

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		AlignVertical(lipgloss.Center).
		Render(b.String())
}

func (m PlayerModel) renderRating() string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Bold(true)
	b.WriteString(title.Render("Workout complete!"))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("%s · %s\n\n", m.result.Entry.SessionName, formatDuration(m.result.Entry.Duration())))
	b.WriteString("How did it feel?\n\n")

	button := lipgloss.NewStyle().
		Padding(0, 2).
		Background(lipgloss.Color(ColorBorder)).
		Foreground(lipgloss.Color(ColorPrimaryText))
	b.WriteString(lipgloss.JoinHorizontal(
		lipgloss.Center,
		button.Render("1 Too easy"),
		"  ",
		button.Render("2 Perfect"),
		"  ",
		button.Render("3 Too hard"),
	))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText)).Render("Enter to skip"))

	modal := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentBright)).
		Background(lipgloss.Color(ColorCardBackground)).
		Padding(1, 3).
		Align(lipgloss.Center).
		Render(b.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}

func (m PlayerModel) renderHelpBar() string {
	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width)
	return help.Render("space pause/resume · r reset · n skip · q quit (no history)")
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	}
	if d >= time.Minute {
		return fmt.Sprintf("%dm%02ds", int(d.Minutes()), int(d.Seconds())%60)
	}
	return fmt.Sprintf("%ds", int(d.Seconds()))
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if width > 3 && len(runes) > width {
		return string(runes[:width-3]) + "..."
	}
	return s
}
