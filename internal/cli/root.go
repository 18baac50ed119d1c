package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/charroster/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var cfgErr error
	cfg, cfgErr = LoadConfig()

	rootCmd := &cobra.Command{
		Use:   "charroster",
		Short: "Manage a roster of role-playing characters",
		Long: `charroster reads and updates a roster of role-playing characters kept in a
delimited text file (or in Redis).

Run "charroster shell" for the interactive menu, or use the subcommands
to list, find, add, and level up characters directly.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cfgErr != nil {
				return cfgErr
			}

			logger := slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: cfg.SlogLevel(),
			}))

			var err error
			app, err = factory.New(cfg.FactoryConfig(logger))
			if err != nil {
				return fmt.Errorf("failed to open roster: %w", err)
			}
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&cfg.FilePath, "file", "f", cfg.FilePath, "Roster file path (env: ROSTER_FILE)")
	rootCmd.PersistentFlags().StringVar(&cfg.Storage, "storage", cfg.Storage, "Storage backend: file, memory, redis (env: ROSTER_STORAGE)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisURL, "redis-url", cfg.RedisURL, "Redis URL (env: ROSTER_REDIS_URL)")
	rootCmd.PersistentFlags().StringVar(&cfg.RedisRoster, "redis-roster", cfg.RedisRoster, "Redis roster name (env: ROSTER_REDIS_KEY)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level: debug, info, warn, error (env: ROSTER_LOG_LEVEL)")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newFindCmd())
	rootCmd.AddCommand(newAddCmd())
	rootCmd.AddCommand(newLevelUpCmd())
	rootCmd.AddCommand(newShellCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := executeCommand(NewRootCmd()); err != nil {
		os.Exit(1)
	}
}

// executeCommand runs cmd and closes the app, whether or not the command failed
func executeCommand(cmd *cobra.Command) error {
	err := cmd.Execute()
	if app != nil {
		if closeErr := app.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close roster: %w", closeErr)
		}
		app = nil
	}
	return err
}
