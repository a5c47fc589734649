package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-engine/internal/games/pong"
)

var flagNewSave string

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Print a fresh initial state",
	Long: `Creates the initial state: paddles jittered around the field center,
full lives, centered ball moving at base speed.

Examples:
  pong new
  pong new --seed 42 --save opening`,
	Args: cobra.NoArgs,
	RunE: runNew,
}

func init() {
	newCmd.Flags().StringVar(&flagNewSave, "save", "", "Also store the state as a checkpoint with this label")
}

func runNew(cmd *cobra.Command, _ []string) error {
	s := pong.New(pong.NewRand(cfg.Runtime.Seed))
	return writeState(cmd.OutOrStdout(), s, flagNewSave)
}
