package main

import (
	"context"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/udisondev/la2duel/internal/config"
	"github.com/udisondev/la2duel/internal/db"
	"github.com/udisondev/la2duel/internal/game/combatlog"
	"github.com/udisondev/la2duel/internal/game/duel"
	"github.com/udisondev/la2duel/internal/model"
	"github.com/udisondev/la2duel/internal/rng"
)

var errArchiveDisabled = errors.New("archive disabled: set database.enabled or DUELSIM_DB_ENABLED")

type command struct {
	cfg config.DuelSim
	out io.Writer
}

func (c command) fighters() (model.FighterStats, model.FighterStats, error) {
	f1, err := c.cfg.Fighter1.Stats()
	if err != nil {
		return f1, f1, fmt.Errorf("fighter 1: %w", err)
	}
	f2, err := c.cfg.Fighter2.Stats()
	if err != nil {
		return f1, f2, fmt.Errorf("fighter 2: %w", err)
	}
	for i, fs := range []model.FighterStats{f1, f2} {
		if err := duel.CheckAttributes(fs.Attributes); err != nil {
			return f1, f2, fmt.Errorf("fighter %d: %w", i+1, err)
		}
	}
	return f1, f2, nil
}

// parseLethality rejects values that do not fit the engine's uint16 factor.
func parseLethality(v uint) (uint16, error) {
	if v > math.MaxUint16 {
		return 0, fmt.Errorf("lethality %d exceeds %d", v, math.MaxUint16)
	}
	return uint16(v), nil
}

func (c command) simulate(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("simulate", flag.ContinueOnError)
	fs.SetOutput(c.out)
	seedHex := fs.String("seed", "", "32-byte seed in hex (default: base_seed from config)")
	lethality := fs.Uint("lethality", uint(c.cfg.Lethality), "lethality percent, 0 disables death")
	save := fs.Bool("save", false, "store the duel in the archive")
	if err := fs.Parse(args); err != nil {
		return err
	}
	leth, err := parseLethality(*lethality)
	if err != nil {
		return err
	}

	seed := rng.SeedFromUint64(c.cfg.BaseSeed)
	if *seedHex != "" {
		if seed, err = rng.SeedFromHex(*seedHex); err != nil {
			return err
		}
	}
	f1, f2, err := c.fighters()
	if err != nil {
		return err
	}

	raw, err := duel.Resolve(f1, f2, seed, leth)
	if err != nil {
		return err
	}
	l, err := combatlog.Decode(raw)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "seed:      %s\n", seed)
	fmt.Fprintf(c.out, "fighter 1: %s\n", describeFighter(f1))
	fmt.Fprintf(c.out, "fighter 2: %s\n", describeFighter(f2))
	writeLog(c.out, l)
	fmt.Fprintf(c.out, "log:       %s\n", hex.EncodeToString(raw))

	if !*save {
		return nil
	}
	return c.withArchive(ctx, func(a *db.DuelArchive) error {
		id, err := a.Save(ctx, db.DuelRecord{
			Seed:      seed,
			Lethality: leth,
			Fighter1:  f1,
			Fighter2:  f2,
			Log:       raw,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "archived:  %s\n", id)
		return nil
	})
}

func (c command) batch(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	fs.SetOutput(c.out)
	count := fs.Int("count", c.cfg.BatchSize, "number of duels")
	workers := fs.Int("workers", c.cfg.Workers, "parallel workers, 0 = NumCPU")
	baseSeed := fs.Uint64("base-seed", c.cfg.BaseSeed, "seed of the first duel")
	lethality := fs.Uint("lethality", uint(c.cfg.Lethality), "lethality percent, 0 disables death")
	save := fs.Bool("save", false, "store every duel in the archive")
	if err := fs.Parse(args); err != nil {
		return err
	}
	leth, err := parseLethality(*lethality)
	if err != nil {
		return err
	}

	f1, f2, err := c.fighters()
	if err != nil {
		return err
	}

	results, err := duel.RunBatch(ctx, duel.Batch{
		Fighter1:  f1,
		Fighter2:  f2,
		BaseSeed:  *baseSeed,
		Count:     *count,
		Lethality: leth,
		Workers:   *workers,
	})
	if err != nil {
		return err
	}

	s := duel.Summarize(results)
	fmt.Fprintf(c.out, "fighter 1:   %s\n", describeFighter(f1))
	fmt.Fprintf(c.out, "fighter 2:   %s\n", describeFighter(f2))
	writeSummary(c.out, s)

	if !*save {
		return nil
	}
	return c.withArchive(ctx, func(a *db.DuelArchive) error {
		recs := make([]db.DuelRecord, len(results))
		for i, r := range results {
			recs[i] = db.DuelRecord{
				Seed:      r.Seed,
				Lethality: leth,
				Fighter1:  f1,
				Fighter2:  f2,
				Log:       r.Raw,
			}
		}
		ids, err := a.SaveBatch(ctx, recs)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "archived:    %d duels\n", len(ids))
		return nil
	})
}

func (c command) decode(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("decode takes one hex-encoded log: %w", errUsage)
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(args[0], "0x"))
	if err != nil {
		return fmt.Errorf("decoding hex: %w", err)
	}
	l, err := combatlog.Decode(raw)
	if err != nil {
		return err
	}
	writeLog(c.out, l)
	return nil
}

func (c command) show(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("show takes one duel id: %w", errUsage)
	}
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("parsing duel id: %w", err)
	}
	return c.withArchive(ctx, func(a *db.DuelArchive) error {
		rec, err := a.Get(ctx, id)
		if err != nil {
			return err
		}
		l, err := rec.Decode()
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "id:        %s\n", rec.ID)
		fmt.Fprintf(c.out, "created:   %s\n", rec.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(c.out, "seed:      %s\n", rec.Seed)
		fmt.Fprintf(c.out, "lethality: %d\n", rec.Lethality)
		fmt.Fprintf(c.out, "fighter 1: %s\n", describeFighter(rec.Fighter1))
		fmt.Fprintf(c.out, "fighter 2: %s\n", describeFighter(rec.Fighter2))
		writeLog(c.out, l)
		return nil
	})
}

// withArchive connects to the configured database, applies migrations and
// hands the archive to fn.
func (c command) withArchive(ctx context.Context, fn func(*db.DuelArchive) error) error {
	if !c.cfg.Database.Enabled {
		return errArchiveDisabled
	}
	dsn := c.cfg.Database.DSN()

	database, err := db.New(ctx, dsn)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	if err := db.RunMigrations(ctx, dsn); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Debug("archive ready", "host", c.cfg.Database.Host, "dbname", c.cfg.Database.DBName)

	return fn(database.Archive())
}
