package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-engine/internal/games/pong"
)

var (
	flagStepState string
	flagStepFrom  string
	flagStepP1    int
	flagStepP2    int
	flagStepSave  string
)

var stepCmd = &cobra.Command{
	Use:   "step",
	Short: "Advance a state by one tick",
	Long: `Reads a state, applies both paddle deltas and prints the next state.

Examples:
  pong step --state s0.json --p1 10 --p2 -10
  pong new | pong step --state - --p1 5
  pong step --from <checkpoint-id> --save after`,
	Args: cobra.NoArgs,
	RunE: runStep,
}

func init() {
	stepCmd.Flags().StringVar(&flagStepState, "state", "", "State JSON file, - for stdin")
	stepCmd.Flags().StringVar(&flagStepFrom, "from", "", "Load the state from a checkpoint ID")
	stepCmd.Flags().IntVar(&flagStepP1, "p1", 0, "Player 1 paddle delta")
	stepCmd.Flags().IntVar(&flagStepP2, "p2", 0, "Player 2 paddle delta")
	stepCmd.Flags().StringVar(&flagStepSave, "save", "", "Also store the result as a checkpoint with this label")
}

func runStep(cmd *cobra.Command, _ []string) error {
	s, err := readState(flagStepState, flagStepFrom)
	if err != nil {
		return err
	}

	next := pong.Advance(pong.NewRand(cfg.Runtime.Seed), s, flagStepP1, flagStepP2)
	if next.LastEvent != pong.EventNone {
		logger.Debug("event", "step", next.Step, "event", next.LastEvent)
	}
	return writeState(cmd.OutOrStdout(), next, flagStepSave)
}
