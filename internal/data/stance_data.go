package data

import (
	"fmt"

	"github.com/udisondev/la2duel/internal/model"
)

// StanceMultiplier holds per-stat percentage scalars applied to DerivedStats,
// plus the stamina cost modifier applied to every action.
type StanceMultiplier struct {
	DamageModifier      uint16
	HitChance           uint16
	CritChance          uint16
	CritMultiplier      uint16
	BlockChance         uint16
	ParryChance         uint16
	DodgeChance         uint16
	CounterChance       uint16
	RiposteChance       uint16
	StaminaCostModifier uint16
}

var stanceTable = [model.StanceCount]StanceMultiplier{
	model.StanceDefensive: {
		DamageModifier: 85, HitChance: 90, CritChance: 85, CritMultiplier: 90,
		BlockChance: 118, ParryChance: 118, DodgeChance: 118,
		CounterChance: 118, RiposteChance: 118,
		StaminaCostModifier: 85,
	},
	model.StanceBalanced: {
		DamageModifier: 100, HitChance: 100, CritChance: 100, CritMultiplier: 100,
		BlockChance: 100, ParryChance: 100, DodgeChance: 100,
		CounterChance: 100, RiposteChance: 100,
		StaminaCostModifier: 100,
	},
	model.StanceOffensive: {
		DamageModifier: 115, HitChance: 110, CritChance: 115, CritMultiplier: 110,
		BlockChance: 85, ParryChance: 85, DodgeChance: 85,
		CounterChance: 85, RiposteChance: 85,
		StaminaCostModifier: 115,
	},
}

// Stance returns the multipliers of a stance.
// Returns ErrInvalidEquipmentID for ids outside the catalog.
func Stance(id model.StanceID) (StanceMultiplier, error) {
	if int(id) >= model.StanceCount {
		return StanceMultiplier{}, fmt.Errorf("stance %d: %w", id, ErrInvalidEquipmentID)
	}
	return stanceTable[id], nil
}

// ParseStance resolves a catalog name (e.g. "offensive") to its id.
func ParseStance(name string) (model.StanceID, error) {
	for i := range model.StanceCount {
		id := model.StanceID(i)
		if id.String() == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("stance %q: %w", name, ErrInvalidEquipmentID)
}

// ShieldStats is the block/counter/dodge/stamina tuple of a shield type.
// All values are percentages.
type ShieldStats struct {
	BlockBonus      uint16
	CounterBonus    uint16
	DodgeModifier   uint16
	StaminaModifier uint16
}

var shieldTable = [model.ShieldCount]ShieldStats{
	model.ShieldNone:    {BlockBonus: 0, CounterBonus: 0, DodgeModifier: 100, StaminaModifier: 100},
	model.ShieldBuckler: {BlockBonus: 100, CounterBonus: 140, DodgeModifier: 85, StaminaModifier: 80},
	model.ShieldKite:    {BlockBonus: 150, CounterBonus: 110, DodgeModifier: 65, StaminaModifier: 100},
	model.ShieldTower:   {BlockBonus: 200, CounterBonus: 80, DodgeModifier: 40, StaminaModifier: 125},
}

// Shield returns the stats of a shield type.
// Returns ErrInvalidEquipmentID for unknown shield types.
func Shield(st model.ShieldType) (ShieldStats, error) {
	if int(st) >= model.ShieldCount {
		return ShieldStats{}, fmt.Errorf("shield %d: %w", st, ErrInvalidEquipmentID)
	}
	return shieldTable[st], nil
}
