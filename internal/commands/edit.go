package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/balkashynov/matwork/internal/store"
)

var editCmd = &cobra.Command{
	Use:   "edit <session-id>",
	Short: "Edit one of your sessions",
	Long: `Edit an existing session.

Opens the same editor as 'matwork new' with the session's name and exercises
filled in. Presets cannot be edited; import one first.

Command line edits:
  matwork edit <id> --no-ui --name "Evening mat"
  matwork edit <id> --no-ui -e "Swan 30s" -e "Saw 45s"      (replace exercises)
  matwork edit <id> --no-ui --append -e "Seal 30s"          (add to the end)`,
	Args: cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		session, err := s.EditableSession(args[0])
		if err != nil {
			printStoreError(err)
			return
		}

		noUI, _ := cmd.Flags().GetBool("no-ui")
		if !noUI {
			runSessionForm(s, session)
			return
		}

		if name, _ := cmd.Flags().GetString("name"); name != "" {
			session.Name = name
		}
		specs, _ := cmd.Flags().GetStringArray("exercise")
		if len(specs) > 0 {
			exercises, problems := parseExerciseSpecs(specs)
			if len(problems) > 0 {
				for _, p := range problems {
					fmt.Printf("Error: %s\n", p)
				}
				return
			}
			if appendMode, _ := cmd.Flags().GetBool("append"); appendMode {
				session.Exercises = append(session.Exercises, exercises...)
			} else {
				session.Exercises = exercises
			}
		}

		if err := s.UpsertSession(session); err != nil {
			printStoreError(err)
			return
		}
		fmt.Printf("✏️  Updated session \"%s\" (%d exercises, %s)\n",
			session.Name, len(session.Exercises), formatDuration(session.TotalDuration()))
	}),
}

func sortedFields(verr *store.ValidationError) []string {
	fields := make([]string, 0, len(verr.FieldErrors))
	for field := range verr.FieldErrors {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fields
}

func init() {
	editCmd.Flags().Bool("no-ui", false, "Edit from the command line")
	editCmd.Flags().String("name", "", "New session name")
	editCmd.Flags().StringArrayP("exercise", "e", nil, "Exercise in quick syntax (repeatable)")
	editCmd.Flags().Bool("append", false, "Append exercises instead of replacing them")
}
