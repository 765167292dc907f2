package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// bigDigits are 5x5 glyphs for the countdown display
var bigDigits = map[rune][5]string{
	'0': {" ███ ", "█   █", "█   █", "█   █", " ███ "},
	'1': {"  █  ", " ██  ", "  █  ", "  █  ", "█████"},
	'2': {" ███ ", "█   █", "   █ ", "  █  ", "█████"},
	'3': {" ███ ", "█   █", "  ██ ", "█   █", " ███ "},
	'4': {"█   █", "█   █", "█████", "    █", "    █"},
	'5': {"█████", "█    ", "████ ", "    █", "████ "},
	'6': {" ███ ", "█    ", "████ ", "█   █", " ███ "},
	'7': {"█████", "    █", "   █ ", "  █  ", " █   "},
	'8': {" ███ ", "█   █", " ███ ", "█   █", " ███ "},
	'9': {" ███ ", "█   █", " ████", "    █", " ███ "},
	':': {"     ", "  █  ", "     ", "  █  ", "     "},
}

// renderBigClock draws an MM:SS string in block digits
func renderBigClock(clock string, color string) string {
	var lines [5]strings.Builder
	for _, r := range clock {
		glyph, ok := bigDigits[r]
		if !ok {
			continue
		}
		for i := range glyph {
			lines[i].WriteString(glyph[i])
			lines[i].WriteString(" ")
		}
	}

	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
	rendered := make([]string, len(lines))
	for i := range lines {
		rendered[i] = style.Render(lines[i].String())
	}
	return strings.Join(rendered, "\n")
}
