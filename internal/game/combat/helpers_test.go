package combat

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/udisondev/la2duel/internal/model"
	"github.com/udisondev/la2duel/internal/rng"
)

// averageAttrs: средний боец, все атрибуты 12.
var averageAttrs = model.Attributes{
	Strength: 12, Constitution: 12, Size: 12, Agility: 12, Stamina: 12, Luck: 12,
}

func newFighterStats(w model.WeaponID, a model.ArmorID, s model.StanceID) model.FighterStats {
	return model.FighterStats{Attributes: averageAttrs, Weapon: w, Armor: a, Stance: s}
}

func mustDuel(t testing.TB, f1, f2 model.FighterStats, seed uint64, lethality uint16) *Duel {
	t.Helper()
	d, err := NewDuel(f1, f2, rng.SeedFromUint64(seed), lethality)
	require.NoError(t, err)
	return d
}

func mustFighter(t testing.TB, fs model.FighterStats) *fighter {
	t.Helper()
	f, err := newFighter(fs)
	require.NoError(t, err)
	return f
}

// matchups covers shields, hybrids, heavy weapons and every armor tier.
var matchups = []struct {
	name   string
	f1, f2 model.FighterStats
}{
	{
		"sword and kite vs rapier and buckler",
		newFighterStats(model.WeaponArmingSwordKite, model.ArmorChain, model.StanceBalanced),
		newFighterStats(model.WeaponRapierBuckler, model.ArmorLeather, model.StanceOffensive),
	},
	{
		"maul vs dual daggers",
		newFighterStats(model.WeaponMaul, model.ArmorPlate, model.StanceOffensive),
		newFighterStats(model.WeaponDualDaggers, model.ArmorCloth, model.StanceDefensive),
	},
	{
		"tower shield vs hybrid",
		newFighterStats(model.WeaponMaceTower, model.ArmorPlate, model.StanceDefensive),
		newFighterStats(model.WeaponScimitarDagger, model.ArmorLeather, model.StanceBalanced),
	},
	{
		"battleaxe vs quarterstaff",
		newFighterStats(model.WeaponBattleaxe, model.ArmorChain, model.StanceOffensive),
		newFighterStats(model.WeaponQuarterstaff, model.ArmorCloth, model.StanceBalanced),
	},
}
