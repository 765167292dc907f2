package commands

import (
	"testing"
	"unicode/utf8"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"short", "Plank", 10, "Plank"},
		{"exact", "Roll up", 7, "Roll up"},
		{"ascii cut", "Single leg stretch", 10, "Single ..."},
		{"accented cut", "Élévation épaules", 8, "Éléva..."},
		{"multibyte at boundary", "ééééééééé", 6, "ééé..."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncate(tt.in, tt.width)
			if got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("truncate(%q, %d) produced invalid UTF-8", tt.in, tt.width)
			}
			if n := utf8.RuneCountInString(got); n > tt.width {
				t.Errorf("truncate(%q, %d) has %d runes", tt.in, tt.width, n)
			}
		})
	}
}
