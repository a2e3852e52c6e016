package combat

import (
	"github.com/udisondev/la2duel/internal/data"
	"github.com/udisondev/la2duel/internal/game/stats"
	"github.com/udisondev/la2duel/internal/model"
)

// Mitigation and lethality constants.
const (
	MaxResistance = 90 // percent, before penetration

	maxPenetration  = 40
	basePenetration = 20

	// LethalDamagePercent: blows below this share of max health never kill.
	LethalDamagePercent = 20
	BaseSurvivalChance  = 95
	MaxSurvivalPenalty  = 60
	MinSurvivalChance   = 35
)

// strike rolls base damage, the damage modifier and a crit for striker
// against target, then applies target's armor.
func (d *Duel) strike(striker, target *fighter, critMul int64) (uint16, bool) {
	w := striker.weapon
	span := uint64(w.MaxDamage-w.MinDamage) + 1
	base := int64(w.MinDamage) + int64(d.stream.Draw(span))

	damage := stats.Percent(base, striker.stats.DamageModifier)
	crit := d.roll(int64(striker.stats.CritChance))
	if crit {
		damage = damage * critMul / 100
	}
	return stats.Sat16(mitigate(damage, w, target.armor)), crit
}

// mitigate applies flat defense, then the percentage resistance for the
// weapon's damage type. Very slow weapons penetrate heavy armor.
func mitigate(damage int64, w data.WeaponStats, armor data.ArmorStats) int64 {
	resistance := min(int64(armor.Resistance(w.DamageType)), MaxResistance)
	if w.AttackSpeed <= HeavyWeaponSpeed && armor.Weight >= data.HeavyArmorWeight {
		resistance = stats.SubFloor(resistance, penetration(w.AttackSpeed))
	}
	damage = stats.SubFloor(damage, int64(armor.Defense))
	return damage * (100 - resistance) / 100
}

// penetration returns resistance points ignored by a heavy weapon.
func penetration(speed uint16) int64 {
	return min(maxPenetration, basePenetration+2*(HeavyWeaponSpeed-int64(speed)))
}

// applyDamage deals damage from striker id to its opponent. A blow that
// would reduce health to zero goes through the lethality roll when
// lethality is enabled: survivors are left at 1 health, a failed roll
// ends the duel with WinDeath.
func (d *Duel) applyDamage(id model.Fighter, damage uint16) {
	striker := d.fighters[id]
	victim := d.fighters[id.Opponent()]

	if damage < victim.health {
		victim.health -= damage
		return
	}
	if d.lethality == 0 {
		victim.health = 0
		return
	}
	if d.survives(striker, victim, damage) {
		victim.health = 1
		return
	}
	victim.health = 0
	d.conclude(id, model.WinDeath)
}

// survives rolls the victim's survival of a lethal blow.
func (d *Duel) survives(striker, victim *fighter, damage uint16) bool {
	chance, auto := survivalChance(striker, victim, damage, d.lethality)
	if auto {
		return true
	}
	return d.roll(chance)
}

// survivalChance returns the chance to survive a lethal blow, or auto=true
// when the blow is too small to kill.
func survivalChance(striker, victim *fighter, damage, lethality uint16) (chance int64, auto bool) {
	pct := int64(damage) * 100 / max(int64(victim.stats.MaxHealth), 1)
	if pct < LethalDamagePercent {
		return 0, true
	}

	chance = min(BaseSurvivalChance, int64(victim.stats.SurvivalRate))
	chance -= min(pct-LethalDamagePercent, MaxSurvivalPenalty)
	chance = chance * 100 / int64(lethality)
	chance = stats.Percent(chance, striker.weapon.SurvivalFactor)
	return stats.Clamp(chance, MinSurvivalChance, BaseSurvivalChance), false
}
