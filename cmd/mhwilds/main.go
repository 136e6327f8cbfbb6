// Package main is the entry point for the mhwilds CLI.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var (
	redisAddress string
	logLevel     string
)

var rootCmd = &cobra.Command{
	Use:   "mhwilds",
	Short: "Monster Hunter Wilds build optimizer",
	Long: `mhwilds scrapes the game catalog from kiranico.com and finds the
equipment build maximizing a prioritized wish list of talents for a
chosen weapon.`,
	PersistentPreRunE: setupLogging,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&redisAddress, "redis-address", "localhost:6379", "Redis address for catalog storage")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(optimizeCmd)
	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(catalogCmd)
}

func setupLogging(_ *cobra.Command, _ []string) error {
	var level slog.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", logLevel)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}
