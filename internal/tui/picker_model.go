package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/matwork/internal/categorizer"
	"github.com/balkashynov/matwork/internal/models"
	"github.com/balkashynov/matwork/internal/parser"
)

// PickerModel lists sessions and lets the user choose one to play
type PickerModel struct {
	width  int
	height int

	sessions []models.Session
	selected int
	chosen   bool

	shimmer *Shimmer

	currentPage int
	perPage     int
}

// NewPickerModel creates a picker over sessions
func NewPickerModel(sessions []models.Session) PickerModel {
	return PickerModel{
		sessions: sessions,
		shimmer:  NewShimmer(DefaultShimmerConfig()),
		perPage:  10,
	}
}

// Init initializes the model
func (m PickerModel) Init() tea.Cmd {
	return shimmerTick(m.shimmer)
}

// Update handles messages
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		return m, shimmerTick(m.shimmer)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.perPage = max(m.height-10, 3)
		m.currentPage = m.selected / m.perPage
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "enter", " ":
			if len(m.sessions) > 0 {
				m.chosen = true
			}
			return m, tea.Quit
		case "up", "k":
			m.moveTo(m.selected - 1)
		case "down", "j":
			m.moveTo(m.selected + 1)
		case "left", "h":
			m.moveTo(m.selected - m.perPage)
		case "right", "l":
			m.moveTo(m.selected + m.perPage)
		}
	}
	return m, nil
}

// moveTo selects index i, clamped, and follows it with the page
func (m *PickerModel) moveTo(i int) {
	if len(m.sessions) == 0 {
		return
	}
	i = max(0, min(i, len(m.sessions)-1))
	if i == m.selected {
		return
	}
	m.selected = i
	m.currentPage = i / m.perPage
	m.shimmer.Reset()
}

// Chosen returns the selected session if the user confirmed one
func (m PickerModel) Chosen() (models.Session, bool) {
	if !m.chosen || m.selected >= len(m.sessions) {
		return models.Session{}, false
	}
	return m.sessions[m.selected], true
}

// View renders the TUI
func (m PickerModel) View() string {
	if m.chosen {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	leftWidth := m.width * 55 / 100
	rightWidth := m.width - leftWidth - 3

	content := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.renderTable(leftWidth),
		" ",
		m.renderDetails(rightWidth),
	)

	help := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true).
		Align(lipgloss.Center).
		Width(m.width).
		Render("↑/↓ nav · ←/→ page · enter play · q/esc quit")

	return lipgloss.JoinVertical(lipgloss.Left, "", content, "", help)
}

func (m PickerModel) renderTable(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Render("Sessions"))
	b.WriteString("\n\n")

	if len(m.sessions) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Italic(true).Render("No sessions yet. Create one with 'matwork new'."))
		return lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color(ColorBorder)).Width(width).Render(b.String())
	}

	nameWidth := max(width-30, 16)
	header := fmt.Sprintf("%-*s %-6s %-8s %s", nameWidth, "NAME", "EX", "TIME", "TYPE")
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorAccentBright)).Padding(0, 1).Render(header))
	b.WriteString("\n\n")

	start := m.currentPage * m.perPage
	end := min(start+m.perPage, len(m.sessions))
	for i := start; i < end; i++ {
		s := m.sessions[i]
		name := truncate(s.Name, nameWidth)
		padding := strings.Repeat(" ", max(nameWidth-len([]rune(name)), 0))
		if i == m.selected {
			name = m.shimmer.Render(name, nameWidth)
		}

		kind := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render("mine")
		if s.Origin() == models.OriginPreset {
			kind = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Render("preset")
		}
		row := fmt.Sprintf("%s%s %-6d %-8s %s", name, padding, len(s.Exercises), parser.FormatClock(int(s.TotalDuration().Seconds())), kind)

		if i == m.selected {
			b.WriteString(lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color(ColorAccentMain)).
				Bold(true).
				Padding(0, 1).
				Render(row))
		} else {
			b.WriteString(" " + row)
		}
		b.WriteString("\n")
	}

	if m.perPage < len(m.sessions) {
		pages := (len(m.sessions) + m.perPage - 1) / m.perPage
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorHelpText)).
			Align(lipgloss.Center).
			Width(width-2).
			MarginTop(1).
			Render(fmt.Sprintf("Page %d/%d (%d sessions)", m.currentPage+1, pages, len(m.sessions))))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width).
		Render(b.String())
}

func (m PickerModel) renderDetails(width int) string {
	var b strings.Builder

	if len(m.sessions) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentMain)).Bold(true).Align(lipgloss.Center).Width(width).Render("matwork"))
	} else {
		s := m.sessions[m.selected]
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorPrimaryText)).Width(width).Render(s.Name))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render(s.ID))
		b.WriteString("\n\n")

		// Exercises grouped the same way the bank is
		for _, group := range categorizer.GroupByCategory(s.Exercises) {
			if len(group.Exercises) == 0 {
				continue
			}
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(categoryColor(string(group.Category)))).Bold(true).Render(group.Category.Label()))
			b.WriteString("\n")
			for _, e := range group.Exercises {
				b.WriteString(fmt.Sprintf("  %s %s\n", truncate(e.Name, width-12), parser.FormatSeconds(e.DurationSeconds)))
			}
		}
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText)).Render("Total " + formatDuration(s.TotalDuration())))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Width(width).
		Render(b.String())
}
