package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/matwork/internal/models"
	"github.com/balkashynov/matwork/internal/parser"
	"github.com/balkashynov/matwork/internal/store"
)

var listCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List your sessions",
	Long:    "List your own sessions. Use --all to include the built-in presets.",
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		all, _ := cmd.Flags().GetBool("all")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		sessions := s.ListSessions()
		if all {
			sessions = s.ListAllSessions()
		}

		if jsonOutput {
			renderSessionsJSON(sessions)
			return
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions yet. Use 'matwork new' to create one, or 'matwork presets' to browse the built-in ones.")
			return
		}
		renderSessionTable(sessions)
	}),
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List the built-in preset sessions",
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		var presets []models.Session
		for _, session := range s.ListAllSessions() {
			if session.Origin() == models.OriginPreset {
				presets = append(presets, session)
			}
		}
		renderSessionTable(presets)
		fmt.Println("\nPlay one with 'matwork play <id>' or copy it with 'matwork import <id>'.")
	}),
}

// renderSessionTable prints sessions as a fixed-width table
func renderSessionTable(sessions []models.Session) {
	fmt.Printf("%-38s %-30s %-5s %-7s %s\n", "ID", "NAME", "EX", "TIME", "TYPE")
	fmt.Println(strings.Repeat("-", 90))

	for _, session := range sessions {
		name := truncate(session.Name, 28)
		fmt.Printf("%-38s %-30s %-5d %-7s %s\n",
			session.ID,
			name,
			len(session.Exercises),
			parser.FormatClock(int(session.TotalDuration().Seconds())),
			session.Origin())
	}
}

// truncate shortens s to at most width runes, marking the cut with "..."
func truncate(s string, width int) string {
	runes := []rune(s)
	if width > 3 && len(runes) > width {
		return string(runes[:width-3]) + "..."
	}
	return s
}

// renderSessionsJSON prints sessions in their stored JSON shape
func renderSessionsJSON(sessions []models.Session) {
	if sessions == nil {
		sessions = []models.Session{}
	}
	jsonBytes, err := json.MarshalIndent(sessions, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(jsonBytes))
}

func init() {
	listCmd.Flags().BoolP("all", "a", false, "Include preset sessions")
	listCmd.Flags().Bool("json", false, "Output as JSON")
}
