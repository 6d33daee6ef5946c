package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/viewstack/internal/pancakes"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack"
	"github.com/BrandonKowalski/viewstack/pkg/viewstack/constants"
)

// Global flag values.
var (
	flagConfig string
	flagKey    string
)

// cfg is loaded by PersistentPreRunE so all subcommands can use it.
var cfg *pancakes.Config

var rootCmd = &cobra.Command{
	Use:   "pancakes",
	Short: "Pancakes is a navigation stack demo",
	Long: `Pancakes stacks colored screens in one SDL window. A confirms and pushes
the next screen, B pops back, Start resets. The stack is saved when the
window closes and restored the next time it opens.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}

		loaded, err := pancakes.LoadConfig(flagConfig)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if flagKey != "" {
			loaded.Store.Key = flagKey
		}
		cfg = loaded

		viewstack.SetLogPath(cfg.LogPath)
		viewstack.SetRawLogLevel(cfg.LogLevel)
		if constants.IsDevMode() {
			viewstack.SetEngineLogLevel(slog.LevelDebug)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		viewstack.CloseLog()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./pancakes.toml or <user config dir>/pancakes/pancakes.toml)")
	rootCmd.PersistentFlags().StringVar(&flagKey, "key", "", "store key the stack is saved under (overrides store.key)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}
