package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-engine/internal/games/pong"
	"github.com/vovakirdan/pong-engine/internal/session"
)

var (
	flagRunTicks  int
	flagRunTape   string
	flagRunFrom   string
	flagRunSave   string
	flagRunStates bool
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Drive a paced tick loop",
	Long: `Runs one session at the configured tick delay, logging every event.
Without --tape both paddles stay still. The loop ends on game over, when
the tape runs out, after --ticks ticks, or on Ctrl+C.

Examples:
  pong run --ticks 3000
  pong run --tape moves.yaml --states > states.jsonl
  pong run --from <checkpoint-id> --save resumed`,
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runCmd.Flags().IntVar(&flagRunTicks, "ticks", 0, "Stop after this many ticks (0 = until game over)")
	runCmd.Flags().StringVar(&flagRunTape, "tape", "", "Input tape (YAML or JSON)")
	runCmd.Flags().StringVar(&flagRunFrom, "from", "", "Resume from a checkpoint ID")
	runCmd.Flags().StringVar(&flagRunSave, "save", "", "Store the final state as a checkpoint with this label")
	runCmd.Flags().BoolVar(&flagRunStates, "states", false, "Print every state as a JSON line")
}

func runRun(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sess := session.New(cfg.RuntimeConfig(), logger)

	if flagRunFrom != "" {
		s, err := readState("", flagRunFrom)
		if err != nil {
			return err
		}
		sess.Restore(s)
	}

	var inputs session.Inputs = session.IdleInputs{}
	if flagRunTape != "" {
		tape, err := pong.LoadTape(flagRunTape)
		if err != nil {
			return err
		}
		if tape.Len() < 0 {
			return fmt.Errorf("%w: p1=%d p2=%d", pong.ErrInputLengthMismatch, len(tape.P1), len(tape.P2))
		}
		inputs = session.NewTapeInputs(tape)
	}

	out := cmd.OutOrStdout()
	if flagRunStates {
		sess.OnTick = func(s pong.State) {
			if data, err := pong.MarshalState(s); err == nil {
				fmt.Fprintln(out, string(data))
			}
		}
	}

	logger.Info("session started", "id", sess.ID(), "tick_delay", cfg.RuntimeConfig().TickDelay)
	res := sess.Run(ctx, inputs, flagRunTicks)

	logger.Info("session ended",
		"reason", res.Reason,
		"ticks", res.Ticks,
		"p1_lives", res.Final.P1Lives,
		"p2_lives", res.Final.P2Lives,
		"fingerprint", res.Final.FingerprintHex(),
	)
	if res.Final.GameOver() {
		logger.Info("game over", "winner", res.Final.Winner())
	}

	if flagRunSave != "" {
		return writeState(out, res.Final, flagRunSave)
	}
	return nil
}
