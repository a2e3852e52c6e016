// Package duel is the entry point for resolving duels: one duel into one
// combat log, or a batch of independent duels for balance sweeps.
package duel

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/udisondev/la2duel/internal/game/combat"
	"github.com/udisondev/la2duel/internal/game/combatlog"
	"github.com/udisondev/la2duel/internal/model"
	"github.com/udisondev/la2duel/internal/rng"
)

// Resolve runs one duel to completion and returns the encoded combat log.
// The only failure is an unknown equipment id (data.ErrInvalidEquipmentID).
func Resolve(f1, f2 model.FighterStats, seed rng.Seed, lethality uint16) ([]byte, error) {
	l, err := Simulate(f1, f2, seed, lethality)
	if err != nil {
		return nil, err
	}
	return combatlog.Encode(l), nil
}

// Simulate is Resolve without the encoding step.
func Simulate(f1, f2 model.FighterStats, seed rng.Seed, lethality uint16) (*combatlog.Log, error) {
	l, err := combat.Simulate(f1, f2, seed, lethality)
	if err != nil {
		return nil, fmt.Errorf("resolving duel: %w", err)
	}

	slog.Debug("duel resolved",
		"seed", seed.String(),
		"lethality", lethality,
		"winner", l.Winner.String(),
		"condition", l.Condition.String(),
		"rounds", len(l.Rounds))
	return l, nil
}

// ErrAttributeOutOfRange is returned by CheckAttributes.
var ErrAttributeOutOfRange = errors.New("attribute out of range")

// CheckAttributes checks that every primary attribute is within
// [model.MinAttribute, model.MaxAttribute]. The error names the first
// offending attribute and wraps ErrAttributeOutOfRange.
func CheckAttributes(a model.Attributes) error {
	fields := []struct {
		name  string
		value uint8
	}{
		{"strength", a.Strength},
		{"constitution", a.Constitution},
		{"size", a.Size},
		{"agility", a.Agility},
		{"stamina", a.Stamina},
		{"luck", a.Luck},
	}
	for _, f := range fields {
		if f.value < model.MinAttribute || f.value > model.MaxAttribute {
			return fmt.Errorf("%s %d outside [%d, %d]: %w",
				f.name, f.value, model.MinAttribute, model.MaxAttribute, ErrAttributeOutOfRange)
		}
	}
	return nil
}
