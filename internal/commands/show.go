package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/matwork/internal/categorizer"
	"github.com/balkashynov/matwork/internal/models"
	"github.com/balkashynov/matwork/internal/parser"
	"github.com/balkashynov/matwork/internal/store"
)

var showCmd = &cobra.Command{
	Use:   "show <session-id>",
	Short: "Show a session and its exercises",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		session, ok := s.GetSession(args[0])
		if !ok {
			fmt.Printf("Error: session '%s' not found.\n", args[0])
			return
		}

		fmt.Printf("%s (%s)\n", session.Name, session.Origin())
		fmt.Printf("ID: %s\n", session.ID)
		if session.CreatedAt > 0 {
			fmt.Printf("Created: %s\n", session.CreatedAt.Time().Local().Format("Jan 02, 2006 15:04"))
		}
		fmt.Printf("Total: %s over %d exercises\n\n", formatDuration(session.TotalDuration()), len(session.Exercises))

		fmt.Printf("%-3s %-32s %-7s %-7s %s\n", "#", "EXERCISE", "WORK", "REST", "CATEGORY")
		fmt.Println(strings.Repeat("-", 70))
		for i, e := range session.Exercises {
			fmt.Printf("%-3d %-32s %-7s %-7s %s\n",
				i+1,
				e.Name,
				parser.FormatSeconds(e.DurationSeconds),
				parser.FormatSeconds(e.RestSeconds),
				categorizer.Categorize(e).Label())
			if e.Description != "" {
				fmt.Printf("    %s\n", e.Description)
			}
		}

		if grouped, _ := cmd.Flags().GetBool("by-category"); grouped {
			fmt.Println()
			renderGroups(categorizer.GroupByCategory(session.Exercises))
		}
	}),
}

// renderGroups prints exercises under their category headings
func renderGroups(groups []categorizer.Group) {
	for _, group := range groups {
		if len(group.Exercises) == 0 {
			continue
		}
		fmt.Printf("%s (%d)\n", group.Category.Label(), len(group.Exercises))
		for _, e := range group.Exercises {
			fmt.Printf("  • %s\n", parser.FormatExercise(withoutCategory(e)))
		}
	}
}

func withoutCategory(e models.Exercise) models.Exercise {
	e.Category = models.CategoryUnset
	return e
}

func init() {
	showCmd.Flags().BoolP("by-category", "c", false, "Also group exercises by category")
}
