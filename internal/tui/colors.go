package tui

// Color constants for the matwork TUI theme
const (
	// Base Colors
	ColorCardBackground = "#14241F" // Deep green
	ColorBorder         = "#3A5548" // Grey-green

	// Text Colors
	ColorPrimaryText   = "#E6F2EC" // Titles, exercise names, user input
	ColorSecondaryText = "#B1C7BC" // Descriptions, labels
	ColorDisabledText  = "#6D8379" // Muted text
	ColorPlaceholder   = "#B1C7BC"
	ColorHelpText      = "240" // Dark grey for help text

	// Accent Colors
	ColorAccentMain   = "#0F9D76" // Logo, active borders, exercise phase
	ColorAccentBright = "#5EEAD4" // Highlights, current step

	// Phase Colors
	ColorRest   = "#60A5FA" // Rest countdown
	ColorPaused = "#F59E0B" // Paused countdown

	// State Colors
	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"
)

// categoryColors tint category badges
var categoryColors = map[string]string{
	"warmup":         "#FBBF24",
	"stretch":        "#A78BFA",
	"abdominals":     "#F472B6",
	"back":           "#60A5FA",
	"legs":           "#34D399",
	"glutes":         "#FB7185",
	"shoulders-arms": "#F97316",
	"hips":           "#2DD4BF",
	"full-body":      "#E6F2EC",
}

func categoryColor(c string) string {
	if color, ok := categoryColors[c]; ok {
		return color
	}
	return ColorSecondaryText
}
