package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/balkashynov/matwork/internal/models"
	"github.com/balkashynov/matwork/internal/store"
)

var rmCmd = &cobra.Command{
	Use:     "rm <session-id>",
	Aliases: []string{"delete"},
	Short:   "Delete one of your sessions",
	Args:    cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		id := args[0]
		if models.IsPresetID(id) {
			fmt.Printf("ℹ️  '%s' is a built-in preset; nothing to delete.\n", id)
			return
		}

		session, ok := s.GetSession(id)
		if !ok {
			fmt.Printf("Error: session '%s' not found.\n", id)
			return
		}
		if err := s.DeleteSession(id); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("🗑️  Deleted session \"%s\"\n", session.Name)
	}),
}

var importCmd = &cobra.Command{
	Use:   "import <preset-id>",
	Short: "Copy a preset into an editable session",
	Args:  cobra.ExactArgs(1),
	Run: withStore(func(cmd *cobra.Command, args []string, s *store.Store) {
		session, err := s.ImportPreset(args[0])
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				fmt.Printf("Error: preset '%s' not found. See 'matwork presets'.\n", args[0])
				return
			}
			printStoreError(err)
			return
		}
		fmt.Printf("📥 Imported \"%s\" - ID: %s\n", session.Name, session.ID)
		fmt.Printf("Edit it with 'matwork edit %s'.\n", session.ID)
	}),
}
