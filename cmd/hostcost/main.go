// hostcost is a terminal cost estimator for game server hosting.
//
// Usage:
//
//	hostcost                 - Edit parameters interactively with a live estimate
//	hostcost estimate        - Price parameters given as flags
//	hostcost ask             - Answer one question per parameter (no full-screen UI)
//	hostcost rates           - Show the rate card
//	hostcost serve           - Serve the estimator over SSH and/or a JSON API
//
// Global flags:
//
//	--config <path>      - Config file (default search: ~/.hostcost/config.yaml, ./configs/hostcost.yaml)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/hostcost/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "hostcost",
	Short: "Estimate game server hosting cost in your terminal",
	Long: `hostcost collects a handful of server parameters (RAM, player slots,
worlds, plugins, mods, servers) and shows a live cost estimate as you edit.

Controls:
  Up/Down/j/k  - Select field
  0-9          - Type into the selected field
  Backspace    - Delete last digit
  Q/Esc        - Quit

Examples:
  hostcost
  hostcost estimate --ram 8 --players 20
  hostcost ask
  hostcost serve --ssh :23235 --http :8080`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInteractive,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(askCmd)
	rootCmd.AddCommand(ratesCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig loads the config and applies global flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, nil
}
