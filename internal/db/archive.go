package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/la2duel/internal/game/combatlog"
	"github.com/udisondev/la2duel/internal/model"
	"github.com/udisondev/la2duel/internal/rng"
)

// ErrDuelNotFound is returned by Get for an unknown id.
var ErrDuelNotFound = errors.New("duel not found")

// DuelRecord is one archived duel: its inputs and the encoded combat log.
type DuelRecord struct {
	ID        uuid.UUID
	Seed      rng.Seed
	Lethality uint16
	Fighter1  model.FighterStats
	Fighter2  model.FighterStats
	Log       []byte
	CreatedAt time.Time
}

// Decode parses the stored combat log.
func (r *DuelRecord) Decode() (*combatlog.Log, error) {
	return combatlog.Decode(r.Log)
}

// fighterRow is the JSONB shape of a fighter.
type fighterRow struct {
	Strength     uint8 `json:"strength"`
	Constitution uint8 `json:"constitution"`
	Size         uint8 `json:"size"`
	Agility      uint8 `json:"agility"`
	Stamina      uint8 `json:"stamina"`
	Luck         uint8 `json:"luck"`
	Weapon       uint8 `json:"weapon"`
	Armor        uint8 `json:"armor"`
	Stance       uint8 `json:"stance"`
}

func toFighterRow(fs model.FighterStats) fighterRow {
	a := fs.Attributes
	return fighterRow{
		Strength:     a.Strength,
		Constitution: a.Constitution,
		Size:         a.Size,
		Agility:      a.Agility,
		Stamina:      a.Stamina,
		Luck:         a.Luck,
		Weapon:       uint8(fs.Weapon),
		Armor:        uint8(fs.Armor),
		Stance:       uint8(fs.Stance),
	}
}

func (r fighterRow) stats() model.FighterStats {
	return model.FighterStats{
		Attributes: model.Attributes{
			Strength:     r.Strength,
			Constitution: r.Constitution,
			Size:         r.Size,
			Agility:      r.Agility,
			Stamina:      r.Stamina,
			Luck:         r.Luck,
		},
		Weapon: model.WeaponID(r.Weapon),
		Armor:  model.ArmorID(r.Armor),
		Stance: model.StanceID(r.Stance),
	}
}

// DuelArchive stores resolved duels in PostgreSQL.
type DuelArchive struct {
	pool *pgxpool.Pool
}

// NewDuelArchive creates a new duel archive.
func NewDuelArchive(pool *pgxpool.Pool) *DuelArchive {
	return &DuelArchive{pool: pool}
}

// Save inserts a duel. A zero ID is replaced with a fresh random one;
// the assigned ID is returned.
func (a *DuelArchive) Save(ctx context.Context, rec DuelRecord) (uuid.UUID, error) {
	return insertDuel(ctx, a.pool, rec)
}

// SaveBatch inserts many duels in one transaction.
func (a *DuelArchive) SaveBatch(ctx context.Context, recs []DuelRecord) ([]uuid.UUID, error) {
	tx, err := a.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	ids := make([]uuid.UUID, 0, len(recs))
	for _, rec := range recs {
		id, err := insertDuel(ctx, tx, rec)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx: %w", err)
	}
	slog.Info("duels archived", "count", len(ids))
	return ids, nil
}

// Get loads a duel by id. Returns ErrDuelNotFound if it does not exist.
func (a *DuelArchive) Get(ctx context.Context, id uuid.UUID) (*DuelRecord, error) {
	row := a.pool.QueryRow(ctx,
		`SELECT id, seed, lethality, fighter1, fighter2, log, created_at
		 FROM duels WHERE id = $1`, id)

	rec, err := scanDuel(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("duel %s: %w", id, ErrDuelNotFound)
		}
		return nil, fmt.Errorf("query duel %s: %w", id, err)
	}
	return rec, nil
}

// ListBySeed returns every archived duel played with seed, oldest first.
func (a *DuelArchive) ListBySeed(ctx context.Context, seed rng.Seed) ([]*DuelRecord, error) {
	rows, err := a.pool.Query(ctx,
		`SELECT id, seed, lethality, fighter1, fighter2, log, created_at
		 FROM duels WHERE seed = $1 ORDER BY created_at, id`, seed[:])
	if err != nil {
		return nil, fmt.Errorf("query duels by seed: %w", err)
	}
	defer rows.Close()

	var result []*DuelRecord
	for rows.Next() {
		rec, err := scanDuel(rows)
		if err != nil {
			return nil, fmt.Errorf("scan duel row: %w", err)
		}
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate duel rows: %w", err)
	}
	return result, nil
}

// Delete removes a duel from the archive.
func (a *DuelArchive) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := a.pool.Exec(ctx, `DELETE FROM duels WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete duel %s: %w", id, err)
	}
	return nil
}

// execer is satisfied by both *pgxpool.Pool and pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func insertDuel(ctx context.Context, q execer, rec DuelRecord) (uuid.UUID, error) {
	l, err := combatlog.Decode(rec.Log)
	if err != nil {
		return uuid.Nil, fmt.Errorf("save duel: %w", err)
	}
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}

	if _, err := q.Exec(ctx,
		`INSERT INTO duels (id, seed, lethality, fighter1, fighter2,
		                    log_version, winner, win_condition, rounds, log)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		rec.ID, rec.Seed[:], int32(rec.Lethality),
		toFighterRow(rec.Fighter1), toFighterRow(rec.Fighter2),
		int32(l.Version), int16(l.Winner), int16(l.Condition), int32(len(l.Rounds)), rec.Log,
	); err != nil {
		return uuid.Nil, fmt.Errorf("insert duel %s: %w", rec.ID, err)
	}

	slog.Debug("duel archived", "id", rec.ID, "seed", rec.Seed.String(), "rounds", len(l.Rounds))
	return rec.ID, nil
}

func scanDuel(row pgx.Row) (*DuelRecord, error) {
	var (
		rec       DuelRecord
		seed      []byte
		lethality int32
		f1, f2    fighterRow
	)
	if err := row.Scan(&rec.ID, &seed, &lethality, &f1, &f2, &rec.Log, &rec.CreatedAt); err != nil {
		return nil, err
	}
	if len(seed) != rng.SeedSize {
		return nil, fmt.Errorf("stored seed has %d bytes", len(seed))
	}
	copy(rec.Seed[:], seed)
	rec.Lethality = uint16(lethality)
	rec.Fighter1 = f1.stats()
	rec.Fighter2 = f2.stats()
	return &rec, nil
}
