package data

import (
	"errors"
	"fmt"

	"github.com/udisondev/la2duel/internal/model"
)

// ErrInvalidEquipmentID is returned by catalog lookups for unknown ids.
var ErrInvalidEquipmentID = errors.New("invalid equipment id")

// ArmorStats describes the protective properties of an armor.
// Resistances are percentages applied after the flat Defense reduction.
type ArmorStats struct {
	Defense      uint16
	Weight       uint16
	SlashResist  uint8
	PierceResist uint8
	BluntResist  uint8
}

// HeavyArmorWeight is the weight from which slow weapons gain armor penetration.
const HeavyArmorWeight = 50

var armorTable = [model.ArmorCount]ArmorStats{
	model.ArmorCloth:   {Defense: 1, Weight: 5, SlashResist: 5, PierceResist: 0, BluntResist: 0},
	model.ArmorLeather: {Defense: 3, Weight: 15, SlashResist: 15, PierceResist: 5, BluntResist: 10},
	model.ArmorChain:   {Defense: 6, Weight: 50, SlashResist: 35, PierceResist: 15, BluntResist: 10},
	model.ArmorPlate:   {Defense: 12, Weight: 100, SlashResist: 50, PierceResist: 35, BluntResist: 20},
}

// Armor returns the stats of an armor.
// Returns ErrInvalidEquipmentID for ids outside the catalog.
func Armor(id model.ArmorID) (ArmorStats, error) {
	if int(id) >= model.ArmorCount {
		return ArmorStats{}, fmt.Errorf("armor %d: %w", id, ErrInvalidEquipmentID)
	}
	return armorTable[id], nil
}

// Resistance returns the resistance against a damage type.
// Hybrid types take the lower of the two component resistances.
func (a ArmorStats) Resistance(dt model.DamageType) uint8 {
	switch dt {
	case model.DamageSlashing:
		return a.SlashResist
	case model.DamagePiercing:
		return a.PierceResist
	case model.DamageBlunt:
		return a.BluntResist
	case model.DamageSlashingPiercing:
		return min(a.SlashResist, a.PierceResist)
	case model.DamageSlashingBlunt:
		return min(a.SlashResist, a.BluntResist)
	case model.DamagePiercingBlunt:
		return min(a.PierceResist, a.BluntResist)
	default:
		return 0
	}
}

// ParseArmor resolves a catalog name (e.g. "plate") to its id.
func ParseArmor(name string) (model.ArmorID, error) {
	for i := range model.ArmorCount {
		id := model.ArmorID(i)
		if id.String() == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("armor %q: %w", name, ErrInvalidEquipmentID)
}
