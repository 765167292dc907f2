package commands

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/balkashynov/matwork/internal/models"
	"github.com/balkashynov/matwork/internal/parser"
	"github.com/balkashynov/matwork/internal/playback"
	"github.com/balkashynov/matwork/internal/store"
	"github.com/balkashynov/matwork/internal/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [session-id]",
	Short: "Play a session",
	Long: `Play a session with a countdown for every exercise and rest.

Without an id a picker opens. The full-screen player supports:
  space  pause/resume    r  reset current phase
  n      skip phase      q  quit (no history is recorded)

Examples:
  matwork play preset-beginner
  matwork play <id> --no-ui     # plain countdown, Ctrl+C to stop`,
	Args: cobra.MaximumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		var session models.Session
		if len(args) == 0 {
			chosen, ok, err := tui.RunPickerTUI(s.ListAllSessions())
			if err != nil {
				fmt.Printf("Error: %v\n", err)
				return
			}
			if !ok {
				return
			}
			session = chosen
		} else {
			found, ok := s.GetSession(args[0])
			if !ok {
				fmt.Printf("Error: session '%s' not found.\n", args[0])
				return
			}
			session = found
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		var err error
		if noUI {
			err = playPlain(cmd, s, session)
		} else {
			_, err = tui.RunPlayerTUI(session, tui.PlayerOptions{
				Recorder:  s,
				Rate:      s.RateHistoryEntry,
				Logger:    logger(cmd),
				Interval:  cfg.Player.TickInterval.Std(),
				Autostart: cfg.Player.Autostart,
			})
		}

		if errors.Is(err, playback.ErrNoExercises) {
			fmt.Printf("Error: \"%s\" has no exercises to play.\n", session.Name)
			return
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}),
}

// playPlain runs the engine from a ticker loop, printing each phase and second
func playPlain(cmd *cobra.Command, s *store.Store, session models.Session) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	total := len(session.Exercises)
	sched := playback.NewTickerScheduler()
	engine, err := playback.Start(session, playback.Options{
		Scheduler: sched,
		Recorder:  s,
		Interval:  cfg.Player.TickInterval.Std(),
		Logger:    logger(cmd),
		Events: playback.Events{
			PhaseChange: func(p playback.Phase) {
				switch p.Kind {
				case playback.KindExercise:
					e := session.Exercises[p.Index]
					fmt.Printf("\n▶ %d/%d %s (%s)\n", p.Index+1, total, e.Name, parser.FormatSeconds(e.DurationSeconds))
					if e.Description != "" {
						fmt.Printf("  %s\n", e.Description)
					}
				case playback.KindRest:
					fmt.Printf("\n☕ Rest (%s)\n", parser.FormatSeconds(session.Exercises[p.Index].RestSeconds))
				}
			},
			Tick: func(remaining int) {
				fmt.Printf("\r  %s ", parser.FormatClock(remaining))
			},
		},
	})
	if err != nil {
		return err
	}

	for !engine.Finished() {
		select {
		case <-ctx.Done():
			engine.Quit()
			fmt.Println("\n⏹️  Workout stopped. Nothing was saved to history.")
			return nil
		case token := <-sched.C():
			engine.Tick(token)
		}
	}

	entry, _ := engine.Entry()
	fmt.Printf("\n\n✅ Completed \"%s\" in %s\n", entry.SessionName, formatDuration(entry.Duration()))
	if err := engine.Err(); err != nil {
		return err
	}
	fmt.Printf("Rate it with 'matwork history rate %s <easy|perfect|hard>'.\n", entry.ID)
	return nil
}

// formatDuration formats a duration in a human-readable way
func formatDuration(d time.Duration) string {
	if d.Hours() >= 1 {
		return fmt.Sprintf("%.1fh", d.Hours())
	} else if d.Minutes() >= 1 {
		return fmt.Sprintf("%.0fm", d.Minutes())
	} else {
		return fmt.Sprintf("%.0fs", d.Seconds())
	}
}

func init() {
	playCmd.Flags().Bool("no-ui", false, "Plain countdown without the full-screen player")
}
