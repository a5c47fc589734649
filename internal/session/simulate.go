package session

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/pong-engine/internal/games/pong"
)

// SimulateConfig configures a batch of independent sessions.
type SimulateConfig struct {
	Sessions int   // Number of sessions to run
	Ticks    int   // Tick limit per session
	Workers  int   // Max sessions running at once, <= 0 means one per session
	Seed     int64 // Base seed, 0 = time based
	MaxDelta int   // Max random paddle delta per tick
}

// Simulate runs cfg.Sessions independent sessions concurrently with random
// paddle inputs and no pacing. Session i is seeded with Seed+i, zero included.
// Results are returned in session order.
// Each session owns its own random source, so nothing is shared between goroutines.
func Simulate(ctx context.Context, cfg SimulateConfig, logger *log.Logger) ([]Result, error) {
	if cfg.Sessions < 0 {
		return nil, fmt.Errorf("session: sessions must be >= 0, got %d", cfg.Sessions)
	}
	if logger == nil {
		logger = log.Default()
	}

	base := cfg.Seed
	if base == 0 {
		base = time.Now().UnixNano()
	}

	results := make([]Result, cfg.Sessions)

	g, ctx := errgroup.WithContext(ctx)
	if cfg.Workers > 0 {
		g.SetLimit(cfg.Workers)
	}

	for i := range cfg.Sessions {
		g.Go(func() error {
			seed := base + int64(i)
			sess := newSession(pong.SeededRand(seed), 0, logger)
			inputs := NewRandomInputs(pong.SeededRand(^seed), cfg.MaxDelta)

			res := sess.Run(ctx, inputs, cfg.Ticks)
			results[i] = res
			if res.Reason == EndReasonCancelled {
				return ctx.Err()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	logger.Info("simulation finished", "sessions", cfg.Sessions, "ticks", cfg.Ticks)
	return results, nil
}
