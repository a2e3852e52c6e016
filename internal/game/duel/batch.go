package duel

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/la2duel/internal/game/combatlog"
	"github.com/udisondev/la2duel/internal/model"
	"github.com/udisondev/la2duel/internal/rng"
)

// Batch describes a sweep of independent duels between the same two
// fighters, seeded BaseSeed, BaseSeed+1, ... BaseSeed+Count-1.
type Batch struct {
	Fighter1  model.FighterStats
	Fighter2  model.FighterStats
	BaseSeed  uint64
	Count     int
	Lethality uint16
	Workers   int // 0 → runtime.NumCPU()
}

// Result is one resolved duel of a batch.
type Result struct {
	Seed rng.Seed
	Log  *combatlog.Log
	Raw  []byte
}

// RunBatch resolves every duel of the batch. Each duel owns its own stream
// and state; workers share nothing but the results slice, indexed per duel.
// Results are returned in seed order.
func RunBatch(ctx context.Context, b Batch) ([]Result, error) {
	if b.Count <= 0 {
		return nil, nil
	}
	workers := b.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	results := make([]Result, b.Count)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range b.Count {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			seed := rng.SeedFromUint64(b.BaseSeed + uint64(i))
			l, err := Simulate(b.Fighter1, b.Fighter2, seed, b.Lethality)
			if err != nil {
				return fmt.Errorf("duel %d: %w", i, err)
			}
			results[i] = Result{Seed: seed, Log: l, Raw: combatlog.Encode(l)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	slog.Info("batch resolved", "duels", b.Count, "workers", workers, "lethality", b.Lethality)
	return results, nil
}

// Summary aggregates batch results.
type Summary struct {
	Duels      int
	Wins       [2]int
	Conditions [4]int // indexed by model.WinCondition
	Attacks    [2]int
	Damage     [2]int
	Rounds     int
}

// Summarize aggregates results.
func Summarize(results []Result) Summary {
	var s Summary
	for _, r := range results {
		if r.Log == nil {
			continue
		}
		s.Duels++
		s.Wins[r.Log.Winner&1]++
		if int(r.Log.Condition) < len(s.Conditions) {
			s.Conditions[r.Log.Condition]++
		}
		for _, f := range []model.Fighter{model.Fighter1, model.Fighter2} {
			s.Attacks[f] += r.Log.Attacks(f)
			s.Damage[f] += r.Log.TotalDamage(f)
		}
		s.Rounds += len(r.Log.Rounds)
	}
	return s
}

// WinRate returns fighter f's share of wins in percent.
func (s Summary) WinRate(f model.Fighter) float64 {
	if s.Duels == 0 {
		return 0
	}
	return float64(s.Wins[f]) * 100 / float64(s.Duels)
}

// DeathRate returns the share of duels ending in death, in percent.
func (s Summary) DeathRate() float64 {
	if s.Duels == 0 {
		return 0
	}
	return float64(s.Conditions[model.WinDeath]) * 100 / float64(s.Duels)
}
