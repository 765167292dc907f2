package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var helpCmd = &cobra.Command{
	Use:   "help [command]",
	Short: "Show comprehensive help for matwork",
	Long:  `Display detailed help for all matwork commands and flags.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) > 0 {
			if target, _, err := cmd.Root().Find(args); err == nil && target != cmd.Root() {
				target.Help()
				return
			}
		}
		showCustomHelp()
	},
}

type helpSection struct {
	title    string
	commands []helpCommand
}

type helpCommand struct {
	name        string
	description string
	examples    []string
	flags       []helpFlag
}

type helpFlag struct {
	name        string
	description string
}

var helpSections = []helpSection{
	{
		title: "SESSIONS",
		commands: []helpCommand{
			{
				name:        "ls",
				description: "List your sessions",
				flags: []helpFlag{
					{"-a, --all", "Include built-in presets"},
					{"--json", "JSON output"},
				},
			},
			{name: "presets", description: "List the built-in preset sessions"},
			{
				name:        "show <id>",
				description: "Show a session's exercises",
				flags:       []helpFlag{{"-c, --by-category", "Also group exercises by category"}},
			},
			{
				name:        "new [name]",
				description: "Create a session",
				flags: []helpFlag{
					{"-e, --exercise", "Exercise in quick syntax (repeatable)"},
					{"-i, --interactive", "Use the interactive editor"},
				},
				examples: []string{
					`matwork new "Morning core" -e "Hundred 1m rest:15" -e "Roll up 45s #abdominals"`,
				},
			},
			{
				name:        "edit <id>",
				description: "Edit one of your sessions",
				flags: []helpFlag{
					{"--no-ui", "Edit from the command line"},
					{"--name", "New session name"},
					{"-e, --exercise", "Replace exercises (repeatable)"},
					{"--append", "Append instead of replacing"},
				},
			},
			{name: "rm <id>", description: "Delete one of your sessions"},
			{name: "import <preset-id>", description: "Copy a preset into an editable session"},
		},
	},
	{
		title: "PLAYBACK",
		commands: []helpCommand{
			{
				name:        "play [id]",
				description: "Play a session (opens a picker without an id)",
				flags:       []helpFlag{{"--no-ui", "Plain countdown without the full-screen player"}},
			},
		},
	},
	{
		title: "HISTORY",
		commands: []helpCommand{
			{
				name:        "history [ls]",
				description: "List completed workouts",
				flags:       []helpFlag{{"-l, --limit", "Show at most N entries"}},
			},
			{name: "history rate <id> <rating>", description: "Rate a workout: easy, perfect or hard"},
			{name: "history rm <id>", description: "Delete a history entry"},
			{name: "history clear --yes", description: "Delete all history"},
			{name: "history export [file.xlsx]", description: "Export history to Excel"},
			{
				name:        "history week",
				description: "Minutes per session and weekday",
				flags:       []helpFlag{{"--weeks-ago", "Show an earlier week"}},
			},
		},
	},
	{
		title: "EXERCISE BANK",
		commands: []helpCommand{
			{
				name:        "bank [ls]",
				description: "List bank exercises",
				flags:       []helpFlag{{"-c, --by-category", "Group by category"}},
			},
			{
				name:        "bank add <exercise>",
				description: "Add or replace a bank exercise",
				examples:    []string{`matwork bank add "Side plank 40s rest:10 #abdominals"`},
			},
			{name: "bank rm <name>", description: "Remove a bank exercise"},
			{name: "bank reset", description: "Rebuild the bank from sessions and presets"},
			{
				name:        "bank search <query>",
				description: "Search bank exercises",
				flags: []helpFlag{
					{"-l, --limit", "Limit number of results"},
					{"--json", "JSON output"},
				},
			},
		},
	},
}

func showCustomHelp() {
	fmt.Print(`
███╗   ███╗ █████╗ ████████╗██╗    ██╗ ██████╗ ██████╗ ██╗  ██╗
████╗ ████║██╔══██╗╚══██╔══╝██║    ██║██╔═══██╗██╔══██╗██║ ██╔╝
██╔████╔██║███████║   ██║   ██║ █╗ ██║██║   ██║██████╔╝█████╔╝
██║╚██╔╝██║██╔══██║   ██║   ██║███╗██║██║   ██║██╔══██╗██╔═██╗
██║ ╚═╝ ██║██║  ██║   ██║   ╚███╔███╔╝╚██████╔╝██║  ██║██║  ██╗
╚═╝     ╚═╝╚═╝  ╚═╝   ╚═╝    ╚══╝╚══╝  ╚═════╝ ╚═╝  ╚═╝╚═╝  ╚═╝

matwork - terminal pilates and mat-workout timer

`)
	fmt.Print(renderHelpSections(helpSections))
	fmt.Print(`QUICK SYNTAX:

  <name> <duration> [rest:<duration>] [#category] [-- description]

    Durations     45, 45s, 2m, 1m30s, 1:30
    Categories    warmup, stretch, abdominals, back, legs, glutes,
                  shoulders-arms, hips, full-body

PLAYER KEYS:

  space/p       Pause or resume
  r             Restart the current phase
  n/→           Skip to the next phase
  q/esc         Quit without recording

Global: --config <file> (default ~/.matwork/config.yaml)

`)
}

func renderHelpSections(sections []helpSection) string {
	const nameWidth = 28

	var b strings.Builder
	for _, section := range sections {
		b.WriteString(section.title + ":\n\n")
		for _, c := range section.commands {
			fmt.Fprintf(&b, "  %-*s %s\n", nameWidth-2, c.name, c.description)
			for _, f := range c.flags {
				fmt.Fprintf(&b, "    %-*s %s\n", nameWidth-4, f.name, f.description)
			}
			for _, ex := range c.examples {
				fmt.Fprintf(&b, "\n    Example:\n      %s\n", ex)
			}
			if len(c.examples) > 0 {
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}
	return b.String()
}
