package commands

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/matwork/internal/export"
	"github.com/balkashynov/matwork/internal/models"
	"github.com/balkashynov/matwork/internal/store"
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"h"},
	Short:   "Show completed workouts",
	Run:     withStore(runHistoryList),
}

var historyListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List completed workouts, newest first",
	Run:     withStore(runHistoryList),
}

func runHistoryList(cmd *cobra.Command, args []string, s *store.Store) {
	history := s.ListHistory()
	if limit, _ := cmd.Flags().GetInt("limit"); limit > 0 && len(history) > limit {
		history = history[:limit]
	}
	if len(history) == 0 {
		fmt.Println("No workouts yet. Start one with 'matwork play'.")
		return
	}

	fmt.Printf("%-36s %-17s %-28s %-8s %s\n", "ID", "COMPLETED", "SESSION", "TIME", "RATING")
	fmt.Println(strings.Repeat("-", 100))
	for _, h := range history {
		name := truncate(h.SessionName, 26)
		fmt.Printf("%-36s %-17s %-28s %-8s %s\n",
			h.ID,
			h.CompletedAt.Time().Local().Format("Jan 02 15:04"),
			name,
			formatDuration(h.Duration()),
			h.Rating.Label())
	}
}

var historyRateCmd = &cobra.Command{
	Use:   "rate <entry-id> <easy|perfect|hard>",
	Short: "Rate a completed workout",
	Args:  cobra.ExactArgs(2),
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		rating, ok := models.ParseRating(args[1])
		if !ok {
			fmt.Printf("Error: invalid rating '%s'. Use: easy, perfect, hard (or 1, 2, 3)\n", args[1])
			return
		}
		if err := s.RateHistoryEntry(args[0], rating); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				fmt.Printf("Error: history entry '%s' not found.\n", args[0])
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("📊 Rated %s: %s\n", args[0], rating.Label())
	}),
}

var historyRmCmd = &cobra.Command{
	Use:   "rm <entry-id>",
	Short: "Delete a history entry",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		entry, err := removeHistoryEntry(s, args[0])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				fmt.Printf("Error: history entry '%s' not found.\n", args[0])
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Removed \"%s\" from %s\n", entry.SessionName, entry.CompletedAt.Time().Local().Format("Jan 02 15:04"))
	}),
}

// removeHistoryEntry deletes the entry with id, reporting ErrNotFound when
// there is none
func removeHistoryEntry(s *store.Store, id string) (models.HistoryEntry, error) {
	entry, ok := s.GetHistoryEntry(id)
	if !ok {
		return models.HistoryEntry{}, store.ErrNotFound
	}
	if err := s.DeleteHistoryEntry(id); err != nil {
		return models.HistoryEntry{}, err
	}
	return entry, nil
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history",
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		if yes, _ := cmd.Flags().GetBool("yes"); !yes {
			fmt.Printf("This deletes %d history entries. Run again with --yes to confirm.\n", len(s.ListHistory()))
			return
		}
		if err := s.ClearHistory(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Println("🧹 History cleared.")
	}),
}

var historyExportCmd = &cobra.Command{
	Use:   "export [file.xlsx]",
	Short: "Export history to an Excel workbook",
	Args:  cobra.MaximumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		path := fmt.Sprintf("matwork-history-%s.xlsx", time.Now().Format("2006-01-02"))
		if len(args) == 1 {
			path = args[0]
		}
		if filepath.Ext(path) != ".xlsx" {
			path += ".xlsx"
		}

		history := s.ListHistory()
		if err := export.WriteHistory(path, history, time.Local); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		logger(cmd).Info("history exported", "path", path, "entries", len(history))
		fmt.Printf("📄 Exported %d workouts to %s\n", len(history), path)
	}),
}

func init() {
	historyCmd.Flags().IntP("limit", "l", 0, "Show at most this many entries")
	historyListCmd.Flags().IntP("limit", "l", 0, "Show at most this many entries")
	historyClearCmd.Flags().Bool("yes", false, "Confirm deleting all history")

	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyRateCmd)
	historyCmd.AddCommand(historyRmCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyWeekCmd)
}
