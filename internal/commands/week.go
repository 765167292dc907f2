package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/balkashynov/matwork/internal/models"
	"github.com/balkashynov/matwork/internal/store"
)

var historyWeekCmd = &cobra.Command{
	Use:   "week",
	Short: "Show this week's workout minutes per session and day",
	Long: `Show a weekly table of workout minutes grouped by session and day.

Example output:
  Session              Mon  Tue  Wed  Thu  Fri  Sat  Sun  Total
  Beginner              20    -   20    -    -    -    -     40
  Core burner            -   15    -    -   15    -    -     30
  Total                 20   15   20    0   15    0    0     70`,
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		weeksAgo, _ := cmd.Flags().GetInt("weeks-ago")
		weekStart := getWeekStart(time.Now()).AddDate(0, 0, -7*weeksAgo)
		renderWeek(weekMinutes(s.ListHistory(), weekStart), weekStart)
	}),
}

var weekdays = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
	time.Friday, time.Saturday, time.Sunday,
}

// weekMinutes buckets workout minutes by session name and weekday
func weekMinutes(history []models.HistoryEntry, weekStart time.Time) map[string]map[time.Weekday]float64 {
	weekEnd := weekStart.AddDate(0, 0, 7)
	minutes := make(map[string]map[time.Weekday]float64)
	for _, h := range history {
		at := h.CompletedAt.Time().In(weekStart.Location())
		if at.Before(weekStart) || !at.Before(weekEnd) {
			continue
		}
		if minutes[h.SessionName] == nil {
			minutes[h.SessionName] = make(map[time.Weekday]float64)
		}
		minutes[h.SessionName][at.Weekday()] += h.Duration().Minutes()
	}
	return minutes
}

// getWeekStart returns the start of the calendar week (Monday) for the given time
func getWeekStart(t time.Time) time.Time {
	daysFromMonday := int(t.Weekday() - time.Monday)
	if t.Weekday() == time.Sunday {
		daysFromMonday = 6
	}
	start := t.AddDate(0, 0, -daysFromMonday)
	return time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
}

func renderWeek(minutes map[string]map[time.Weekday]float64, weekStart time.Time) {
	fmt.Printf("Week of %s\n\n", weekStart.Format("Jan 02, 2006"))
	if len(minutes) == 0 {
		fmt.Println("No workouts this week.")
		return
	}

	names := make([]string, 0, len(minutes))
	width := len("Session")
	for name := range minutes {
		names = append(names, name)
		width = max(width, utf8.RuneCountInString(name))
	}
	sort.Strings(names)

	var b strings.Builder
	fmt.Fprintf(&b, "%-*s", width, "Session")
	for _, d := range weekdays {
		fmt.Fprintf(&b, " %4s", d.String()[:3])
	}
	b.WriteString("  Total\n")

	dayTotals := make(map[time.Weekday]float64)
	var grand float64
	for _, name := range names {
		fmt.Fprintf(&b, "%-*s", width, name)
		var rowTotal float64
		for _, d := range weekdays {
			m := minutes[name][d]
			rowTotal += m
			dayTotals[d] += m
			if m == 0 {
				fmt.Fprintf(&b, " %4s", "-")
			} else {
				fmt.Fprintf(&b, " %4.0f", m)
			}
		}
		grand += rowTotal
		fmt.Fprintf(&b, " %6.0f\n", rowTotal)
	}

	fmt.Fprintf(&b, "%-*s", width, "Total")
	for _, d := range weekdays {
		fmt.Fprintf(&b, " %4.0f", dayTotals[d])
	}
	fmt.Fprintf(&b, " %6.0f\n", grand)
	fmt.Print(b.String())
}

func init() {
	historyWeekCmd.Flags().Int("weeks-ago", 0, "Show an earlier week (1 = last week)")
}
