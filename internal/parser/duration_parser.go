package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	unitDurationRegex  = regexp.MustCompile(`^(?:(\d+)m)?(?:(\d+)s?)?$`)
	clockDurationRegex = regexp.MustCompile(`^(\d+):([0-5]\d)$`)
)

// ParseSeconds parses a phase length into whole seconds
// Supported formats:
// - bare seconds (e.g., "45")
// - unit suffixes (e.g., "45s", "2m", "1m30s")
// - clock style (e.g., "1:30")
func ParseSeconds(input string) (int, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return 0, fmt.Errorf("empty duration")
	}

	if m := clockDurationRegex.FindStringSubmatch(input); m != nil {
		return combine(m[1], m[2])
	}
	if m := unitDurationRegex.FindStringSubmatch(input); m != nil {
		return combine(m[1], m[2])
	}

	return 0, fmt.Errorf("invalid duration format. Use: 45, 45s, 2m, 1m30s or 1:30")
}

func combine(minutes, seconds string) (int, error) {
	total := 0
	if minutes != "" {
		m, err := strconv.Atoi(minutes)
		if err != nil {
			return 0, fmt.Errorf("invalid minutes")
		}
		total += m * 60
	}
	if seconds != "" {
		s, err := strconv.Atoi(seconds)
		if err != nil {
			return 0, fmt.Errorf("invalid seconds")
		}
		total += s
	}
	if total > 24*60*60 {
		return 0, fmt.Errorf("duration must be under 24 hours")
	}
	return total, nil
}

// FormatSeconds renders seconds in the shortest unit form ParseSeconds accepts
func FormatSeconds(seconds int) string {
	if seconds < 60 {
		return strconv.Itoa(seconds) + "s"
	}
	m, s := seconds/60, seconds%60
	if s == 0 {
		return strconv.Itoa(m) + "m"
	}
	return fmt.Sprintf("%dm%ds", m, s)
}

// FormatClock renders seconds as MM:SS
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
