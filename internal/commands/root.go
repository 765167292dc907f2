package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/balkashynov/matwork/internal/config"
	"github.com/balkashynov/matwork/internal/db"
	"github.com/balkashynov/matwork/internal/logging"
	"github.com/balkashynov/matwork/internal/presets"
	"github.com/balkashynov/matwork/internal/store"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	configPath string
	cfg        *config.Config
	logCloser  io.Closer
)

var rootCmd = &cobra.Command{
	Use:   "matwork",
	Short: "A terminal pilates and mat-workout timer",
	Long: `matwork plays timed mat-workout sessions in the terminal.
Build sessions from exercises, play them with a countdown for every exercise
and rest, and keep a history of completed workouts.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded

		logger, closer, err := logging.New(cfg.LogPath(), cfg.Log.Level)
		if err != nil {
			return err
		}
		logCloser = closer
		cmd.SetContext(logging.ContextWithLogger(cmd.Context(), logger))
		logger.Debug("command started", "command", cmd.CommandPath(), "version", version)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			logCloser.Close()
		}
	},
	SilenceUsage: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("matwork %s (commit %s, built %s)\n", version, commit, date)
	},
}

// openStore opens the database and preset catalog and seeds the bank on first use
func openStore(cmd *cobra.Command) (*store.Store, func(), error) {
	log := logging.FromContext(cmd.Context())

	kv, err := db.Open(cfg.DatabasePath())
	if err != nil {
		return nil, nil, err
	}
	catalog, err := presets.Load(cfg.Presets.IncludeTest)
	if err != nil {
		kv.Close()
		return nil, nil, err
	}

	s := store.New(kv, catalog, log)
	if seeded, err := s.InitializeBankIfEmpty(); err != nil {
		log.Warn("could not seed exercise bank", "error", err)
	} else if seeded {
		log.Info("exercise bank seeded", "path", cfg.DatabasePath())
	}

	closeFn := func() {
		if err := kv.Close(); err != nil {
			log.Warn("closing database", "error", err)
		}
	}
	return s, closeFn, nil
}

// withStore wraps a command function to open the store first
func withStore(fn func(*cobra.Command, []string, *store.Store)) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		s, closeFn, err := openStore(cmd)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		defer closeFn()
		fn(cmd, args, s)
	}
}

func logger(cmd *cobra.Command) *slog.Logger {
	return logging.FromContext(cmd.Context())
}

// SetVersion sets the version information
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "config file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.SetHelpCommand(helpCmd)
}
