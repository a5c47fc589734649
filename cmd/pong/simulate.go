package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/pong-engine/internal/session"
)

var (
	flagSimSessions int
	flagSimTicks    int
	flagSimWorkers  int
	flagSimDelta    int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run many independent sessions concurrently",
	Long: `Runs a batch of unpaced sessions in parallel, each with its own random
source and random paddle noise, and prints a summary per session.

Examples:
  pong simulate
  pong simulate --sessions 32 --ticks 10000 --workers 8 --seed 1`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimSessions, "sessions", 0, "Number of sessions (default from config)")
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 0, "Tick limit per session (default from config)")
	simulateCmd.Flags().IntVar(&flagSimWorkers, "workers", 0, "Max concurrent sessions (default from config)")
	simulateCmd.Flags().IntVar(&flagSimDelta, "max-delta", 10, "Max random paddle delta per tick")
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	simCfg := session.SimulateConfig{
		Sessions: cfg.Simulate.Sessions,
		Ticks:    cfg.Simulate.Ticks,
		Workers:  cfg.Simulate.Workers,
		Seed:     cfg.Runtime.Seed,
		MaxDelta: flagSimDelta,
	}
	if flagSimSessions > 0 {
		simCfg.Sessions = flagSimSessions
	}
	if flagSimTicks > 0 {
		simCfg.Ticks = flagSimTicks
	}
	if flagSimWorkers > 0 {
		simCfg.Workers = flagSimWorkers
	}

	results, err := session.Simulate(ctx, simCfg, logger)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  %-3s  %-8s  %-16s  %6s  %5s  %6s  %6s  %5s  %s\n",
		"#", "Session", "Reason", "Ticks", "Lives", "Paddle", "Edge", "Die", "Fingerprint")
	fmt.Fprintf(out, "  %-3s  %-8s  %-16s  %6s  %5s  %6s  %6s  %5s  %s\n",
		"-", "-------", "------", "-----", "-----", "------", "----", "---", "-----------")

	for i, res := range results {
		fmt.Fprintf(out, "  %-3d  %-8s  %-16s  %6d  %2d-%-2d  %6d  %6d  %5d  %s\n",
			i+1,
			string(res.ID)[:8],
			res.Reason,
			res.Ticks,
			res.Final.P1Lives, res.Final.P2Lives,
			res.Stats.PaddleCollisions,
			res.Stats.EdgeCollisions,
			res.Stats.Deaths,
			res.Final.FingerprintHex(),
		)
	}
	return nil
}
