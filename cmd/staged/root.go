package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/staged/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "staged",
	Short: "Staged generates fluent step-builder interfaces",
	Long: `Staged reads action definitions (YAML or JSON) and generates the Go interfaces of a
fluent API in which only legal call sequences compile.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging (shorthand for --log-level=debug)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level: debug, info, warn, error")
}

// createLogger configures the application logger from persistent flags.
func createLogger(cmd *cobra.Command) (*slog.Logger, error) {
	if debug, _ := cmd.Flags().GetBool("debug"); debug {
		return logging.New(slog.LevelDebug), nil
	}
	raw, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(raw)
	if err != nil {
		return nil, err
	}
	return logging.New(level), nil
}
