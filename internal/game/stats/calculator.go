// Package stats turns raw fighter attributes into combat stats.
//
// Every formula is evaluated in a wide integer type and narrowed with
// saturation, so out-of-convention attributes never wrap around.
package stats

import (
	"github.com/udisondev/la2duel/internal/data"
	"github.com/udisondev/la2duel/internal/model"
)

// SizePivot is the size above which dodge is penalised.
const SizePivot = 21

// Calculate derives combat stats from attributes.
func Calculate(a model.Attributes) model.DerivedStats {
	str := int64(a.Strength)
	con := int64(a.Constitution)
	size := int64(a.Size)
	agi := int64(a.Agility)
	sta := int64(a.Stamina)
	luck := int64(a.Luck)

	return model.DerivedStats{
		MaxHealth:      Sat16(75 + 14*con + 3*size + 3*sta),
		MaxStamina:     Sat16(60 + 10*sta + 3*str),
		Initiative:     Sat16(20 + 3*agi + 2*luck),
		HitChance:      Sat8(50 + 2*agi + luck/2),
		DodgeChance:    Sat8(dodgeChance(agi, size)),
		BlockChance:    Sat8(10 + con + str),
		ParryChance:    Sat8(8 + str + agi),
		CounterChance:  Sat8(5 + (str+agi)/2),
		RiposteChance:  Sat8(5 + (agi+luck)/2),
		CritChance:     Sat8(2 + luck + agi/3),
		CritMultiplier: Sat16(150 + 2*str + luck),
		DamageModifier: Sat16(50 + 3*str + 2*size),
		SurvivalRate:   Sat8(70 + con + luck),
	}
}

// dodgeChance: small fighters are harder to hit; past the pivot every point
// of size costs 3 points of dodge, down to zero.
func dodgeChance(agi, size int64) int64 {
	base := 2 + 2*agi
	if size <= SizePivot {
		return base + (SizePivot - size)
	}
	return base - 3*(size-SizePivot)
}

// ApplyStance scales the combat stats by the stance multipliers.
// MaxHealth, MaxStamina, Initiative and SurvivalRate are left untouched.
func ApplyStance(d model.DerivedStats, m data.StanceMultiplier) model.DerivedStats {
	d.HitChance = Sat8(Percent(int64(d.HitChance), m.HitChance))
	d.DodgeChance = Sat8(Percent(int64(d.DodgeChance), m.DodgeChance))
	d.BlockChance = Sat8(Percent(int64(d.BlockChance), m.BlockChance))
	d.ParryChance = Sat8(Percent(int64(d.ParryChance), m.ParryChance))
	d.CounterChance = Sat8(Percent(int64(d.CounterChance), m.CounterChance))
	d.RiposteChance = Sat8(Percent(int64(d.RiposteChance), m.RiposteChance))
	d.CritChance = Sat8(Percent(int64(d.CritChance), m.CritChance))
	d.CritMultiplier = Sat16(Percent(int64(d.CritMultiplier), m.CritMultiplier))
	d.DamageModifier = Sat16(Percent(int64(d.DamageModifier), m.DamageModifier))
	return d
}

// ForFighter resolves the stance-adjusted stats of a fighter.
func ForFighter(f model.FighterStats) (model.DerivedStats, error) {
	stance, err := data.Stance(f.Stance)
	if err != nil {
		return model.DerivedStats{}, err
	}
	return ApplyStance(Calculate(f.Attributes), stance), nil
}
