package tui

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"
)

// ShimmerConfig holds configuration for shimmer effects
type ShimmerConfig struct {
	Enabled        bool
	ReduceMotion   bool    // static highlight instead of animation
	SpeedMs        int     // tick interval
	WidthRatio     float64 // highlight width relative to text length
	CycleMs        int     // time for one sweep across the text
	PauseBetweenMs int     // rest between sweeps
}

// DefaultShimmerConfig returns the default shimmer configuration.
// MATWORK_REDUCE_MOTION=1 turns the animation into a static highlight.
func DefaultShimmerConfig() ShimmerConfig {
	return ShimmerConfig{
		Enabled:        true,
		ReduceMotion:   os.Getenv("MATWORK_REDUCE_MOTION") != "",
		SpeedMs:        100,
		WidthRatio:     0.25,
		CycleMs:        1800,
		PauseBetweenMs: 500,
	}
}

// Shimmer sweeps a highlight across a line of text
type Shimmer struct {
	config     ShimmerConfig
	center     float64
	lastUpdate time.Time
	pausedAt   time.Time
	paused     bool
	active     bool
	trueColor  bool
	now        func() time.Time
}

// NewShimmer creates a shimmer in its start position
func NewShimmer(config ShimmerConfig) *Shimmer {
	return &Shimmer{
		config:     config,
		lastUpdate: time.Now(),
		active:     config.Enabled && !config.ReduceMotion,
		trueColor:  os.Getenv("COLORTERM") == "truecolor",
		now:        time.Now,
	}
}

// advance moves the highlight along a text of n runes
func (s *Shimmer) advance(n int) {
	if !s.active || n <= 0 {
		return
	}
	now := s.now()
	if now.Sub(s.lastUpdate) < time.Duration(s.config.SpeedMs)*time.Millisecond {
		return
	}
	s.lastUpdate = now

	margin := float64(n) * s.config.WidthRatio
	if s.paused {
		if now.Sub(s.pausedAt) >= time.Duration(s.config.PauseBetweenMs)*time.Millisecond {
			s.paused = false
			s.center = -margin
		}
		return
	}

	ticks := float64(s.config.CycleMs) / float64(s.config.SpeedMs)
	s.center += (float64(n) + 2*margin) / ticks
	if end := float64(n) + margin; s.center >= end {
		s.center = end
		s.paused = true
		s.pausedAt = now
	}
}

// Reset restarts the sweep, used when the highlighted item changes
func (s *Shimmer) Reset() {
	s.center = 0
	s.paused = false
	s.lastUpdate = s.now()
}

// SetActive enables or disables the animation
func (s *Shimmer) SetActive(active bool) {
	s.active = active && s.config.Enabled && !s.config.ReduceMotion
}

// Render returns text with the highlight applied, truncated to maxWidth runes
func (s *Shimmer) Render(text string, maxWidth int) string {
	runes := []rune(text)
	if maxWidth > 3 && len(runes) > maxWidth {
		runes = append(runes[:maxWidth-3], []rune("...")...)
	}
	if len(runes) == 0 {
		return ""
	}
	s.advance(len(runes))

	if !s.active {
		return fmt.Sprintf("\033[38;2;94;234;212m%s\033[0m", string(runes)) // ColorAccentBright
	}

	sigma := math.Max(1, s.config.WidthRatio*float64(len(runes))/2)
	var b strings.Builder
	for i, r := range runes {
		dx := float64(i) - s.center
		w := math.Exp(-(dx * dx) / (2 * sigma * sigma))
		if s.trueColor {
			// blend #B1C7BC toward #E6FFF7
			red := int(177 + (230-177)*w)
			green := int(199 + (255-199)*w)
			blue := int(188 + (247-188)*w)
			fmt.Fprintf(&b, "\033[38;2;%d;%d;%dm%c", red, green, blue, r)
			continue
		}
		if w > 0.5 {
			fmt.Fprintf(&b, "\033[38;5;122m%c", r)
		} else {
			fmt.Fprintf(&b, "\033[38;5;250m%c", r)
		}
	}
	b.WriteString("\033[0m")
	return b.String()
}

// Interval is the tea.Tick interval, zero when idle
func (s *Shimmer) Interval() time.Duration {
	if !s.ShouldTick() {
		return 0
	}
	return time.Duration(s.config.SpeedMs) * time.Millisecond
}

// ShouldTick reports whether the animation needs ticks
func (s *Shimmer) ShouldTick() bool {
	return s.active
}
