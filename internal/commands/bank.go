package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/balkashynov/matwork/internal/categorizer"
	"github.com/balkashynov/matwork/internal/models"
	"github.com/balkashynov/matwork/internal/parser"
	"github.com/balkashynov/matwork/internal/store"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Manage the exercise bank used for suggestions",
	Run:   withStore(runBankList),
}

var bankListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List bank exercises",
	Run:     withStore(runBankList),
}

func runBankList(cmd *cobra.Command, args []string, s *store.Store) {
	bank := s.ListBankExercises()
	if len(bank) == 0 {
		fmt.Println("The exercise bank is empty. Run 'matwork bank reset' to seed it.")
		return
	}
	if byCategory, _ := cmd.Flags().GetBool("by-category"); byCategory {
		renderGroups(categorizer.GroupByCategory(bank))
		return
	}
	renderExerciseTable(bank)
}

var bankAddCmd = &cobra.Command{
	Use:   "add <exercise>",
	Short: "Add or replace a bank exercise",
	Long: `Add an exercise using the quick syntax. An exercise with the same name
(ignoring case) is replaced.

Example:
  matwork bank add "Side plank 40s rest:10 #abdominals -- hips stacked"`,
	Args: cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		parsed := parser.ParseExercise(strings.Join(args, " "))
		if len(parsed.Errors) > 0 {
			for _, e := range parsed.Errors {
				fmt.Printf("Error: %s\n", e)
			}
			return
		}
		if err := s.UpsertBankExercise(parsed.Exercise); err != nil {
			printStoreError(err)
			return
		}
		fmt.Printf("✅ Saved to bank: %s\n", parser.FormatExercise(categorizer.WithCategory(parsed.Exercise)))
	}),
}

var bankRmCmd = &cobra.Command{
	Use:   "rm <name>",
	Short: "Remove an exercise from the bank",
	Args:  cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		name := strings.Join(args, " ")
		if err := s.DeleteBankExercise(name); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				fmt.Printf("Error: no bank exercise named '%s'.\n", name)
				return
			}
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Removed '%s' from the bank\n", name)
	}),
}

var bankResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Rebuild the bank from sessions and presets",
	Long:  "Discard the bank, custom entries included, and seed it again from every session and the bodyweight preset list.",
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		if err := s.ResetBank(); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🔄 Bank reset: %d exercises\n", len(s.ListBankExercises()))
	}),
}

var bankSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search bank exercises",
	Long: `Search the exercise bank with ranked matching:
- Exact name match (highest priority)
- Name prefix match
- Name suffix match
- Substring match in name, description or category (lowest priority)

Search is case insensitive.`,
	Args: cobra.MinimumNArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		query := strings.Join(args, " ")
		limit, _ := cmd.Flags().GetInt("limit")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		results := s.SearchBank(query)
		if limit > 0 && len(results) > limit {
			results = results[:limit]
		}

		if jsonOutput {
			renderSearchJSON(results, query)
		} else {
			renderSearchTable(results, query)
		}
	}),
}

var matchNames = map[int]string{
	store.MatchExact:    "exact",
	store.MatchPrefix:   "prefix",
	store.MatchSuffix:   "suffix",
	store.MatchContains: "contains",
}

// renderSearchJSON outputs search results as JSON
func renderSearchJSON(results []store.SearchResult, query string) {
	type jsonResult struct {
		models.Exercise
		Match string `json:"match"`
	}
	type searchOutput struct {
		Query   string       `json:"query"`
		Count   int          `json:"count"`
		Results []jsonResult `json:"results"`
	}

	out := searchOutput{Query: query, Count: len(results), Results: []jsonResult{}}
	for _, r := range results {
		out.Results = append(out.Results, jsonResult{Exercise: r.Exercise, Match: matchNames[r.Rank]})
	}

	jsonBytes, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		fmt.Printf("Error marshaling JSON: %v\n", err)
		return
	}
	fmt.Println(string(jsonBytes))
}

// renderSearchTable outputs search results as a formatted table
func renderSearchTable(results []store.SearchResult, query string) {
	fmt.Printf("Search results for '%s' (%d found):\n", query, len(results))
	if len(results) == 0 {
		fmt.Println("No bank exercises match your search.")
		return
	}
	fmt.Println()

	exercises := make([]models.Exercise, 0, len(results))
	for _, r := range results {
		exercises = append(exercises, r.Exercise)
	}
	renderExerciseTable(exercises)
}

// renderExerciseTable prints exercises in fixed columns for 80-character terminals
func renderExerciseTable(exercises []models.Exercise) {
	fmt.Printf("%-30s %-8s %-6s %-14s %s\n", "NAME", "TIME", "REST", "CATEGORY", "DESCRIPTION")
	fmt.Println(strings.Repeat("-", 80))
	for _, e := range exercises {
		name := truncate(e.Name, 28)
		desc := truncate(e.Description, 18)
		rest := "-"
		if e.RestSeconds > 0 {
			rest = parser.FormatSeconds(e.RestSeconds)
		}
		fmt.Printf("%-30s %-8s %-6s %-14s %s\n",
			name,
			parser.FormatSeconds(e.DurationSeconds),
			rest,
			categorizer.Categorize(e).Label(),
			desc)
	}
}

func init() {
	bankCmd.Flags().BoolP("by-category", "c", false, "Group exercises by category")
	bankListCmd.Flags().BoolP("by-category", "c", false, "Group exercises by category")
	bankSearchCmd.Flags().IntP("limit", "l", 0, "Limit number of results")
	bankSearchCmd.Flags().Bool("json", false, "Output as JSON")

	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankAddCmd)
	bankCmd.AddCommand(bankRmCmd)
	bankCmd.AddCommand(bankResetCmd)
	bankCmd.AddCommand(bankSearchCmd)
}
