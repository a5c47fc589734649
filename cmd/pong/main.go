// pong is a headless host for the Pong state-transition engine.
//
// Usage:
//
//	pong constants                          - Show engine constants
//	pong new                                - Print a fresh initial state
//	pong step --state <file> --p1 N --p2 N  - Advance a state by one tick
//	pong replay --state <file> --tape <f>   - Fold a tape of inputs over a state
//	pong verify --state <f> --tape <f> --expect <hash>
//	pong run                                - Drive a paced tick loop
//	pong simulate                           - Run many sessions concurrently
//	pong checkpoints                        - Manage saved states
//
// Global flags:
//
//	--config <path>    - Config YAML (default search: ~/.pong/config.yaml, ./configs/pong.yaml)
//	--seed <value>     - RNG seed for reproducible runs (0 = time based)
//	--db <path>        - Checkpoint database path
//	--log-level <lvl>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-engine/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	// Resolved in PersistentPreRunE
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong engine - compute and verify Pong game states",
	Long: `pong computes the tick-by-tick evolution of a two-player Pong match.

States are exchanged as JSON. Input tapes are YAML or JSON documents with
two equal-length lists of paddle deltas:

  p1: [0, 10, 10, -5]
  p2: [0, 0, -10, 5]

Examples:
  pong new --seed 42 > s0.json
  pong step --state s0.json --p1 10 --p2 -10
  pong replay --state s0.json --tape moves.yaml --seed 7
  pong run --ticks 3000 --log-level debug
  pong simulate --sessions 16 --workers 4`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to checkpoint database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(constantsCmd)
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(stepCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(verifyCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(checkpointsCmd)
}

// setup loads configuration, applies flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	if cmd.Flags().Changed("seed") {
		cfg.Runtime.Seed = flagSeed
	}
	if flagDBPath != "" {
		cfg.Storage.DBPath = flagDBPath
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.Log.Level, err)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: cfg.Log.Timestamps,
		Prefix:          cfg.Log.Prefix,
		Level:           level,
	})
	return nil
}
