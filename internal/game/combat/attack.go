package combat

import (
	"github.com/udisondev/la2duel/internal/game/combatlog"
	"github.com/udisondev/la2duel/internal/game/stats"
	"github.com/udisondev/la2duel/internal/model"
)

// Chance limits, in percent.
const (
	MinHitChance   = 69
	MaxHitChance   = 97
	MaxBlockChance = 90
	MaxParryChance = 90
	MaxDodgeChance = 70

	// HeavyWeaponSpeed: wielders of weapons this slow cannot dodge,
	// and the weapons penetrate heavy armor.
	HeavyWeaponSpeed = 50
	// SlowWeaponSpeed: attacks this slow are easier to parry.
	SlowWeaponSpeed = 60
)

// Armor weight tiers for the dodge penalty.
const (
	clothWeightLimit   = 10
	leatherWeightLimit = 20
	chainWeightLimit   = 60
)

// roll draws against a percentage chance.
func (d *Duel) roll(chance int64) bool {
	return int64(d.stream.Draw(100)) < chance
}

// resolveAttack runs the per-attack pipeline for attacker id:
// affordability, hit, block/counter, parry/riposte, dodge, damage.
// The order of draws is part of the log format contract.
func (d *Duel) resolveAttack(id model.Fighter) (atk, def combatlog.Action) {
	attacker := d.fighters[id]
	defender := d.fighters[id.Opponent()]

	if attacker.stamina < attacker.attackCost {
		return combatlog.Action{Result: model.ResultExhausted}, combatlog.Action{Result: model.ResultNone}
	}
	attacker.spend(attacker.attackCost)
	atk.StaminaCost = stats.Sat8(int64(attacker.attackCost))

	if !d.roll(hitChance(attacker)) {
		atk.Result = model.ResultMiss
		def.Result = model.ResultNone
		return atk, def
	}
	atk.Result = model.ResultAttack

	if defender.hasShield() {
		blockCost := defender.cost(actionBlock)
		if defender.stamina >= blockCost && d.roll(blockChance(defender)) {
			counterCost := defender.cost(actionCounter)
			if defender.stamina >= counterCost && d.roll(counterChance(defender)) {
				def = d.counterAttack(id.Opponent(), counterCost, model.ResultCounter, model.ResultCounterCrit)
				return atk, def
			}
			defender.spend(blockCost)
			def = combatlog.Action{Result: model.ResultBlock, StaminaCost: stats.Sat8(int64(blockCost))}
			return atk, def
		}
	}

	parryCost := defender.cost(actionParry)
	if defender.stamina >= parryCost && d.roll(parryChance(defender, attacker)) {
		riposteCost := defender.cost(actionRiposte)
		if defender.stamina >= riposteCost && d.roll(riposteChance(defender)) {
			def = d.counterAttack(id.Opponent(), riposteCost, model.ResultRiposte, model.ResultRiposteCrit)
			return atk, def
		}
		defender.spend(parryCost)
		def = combatlog.Action{Result: model.ResultParry, StaminaCost: stats.Sat8(int64(parryCost))}
		return atk, def
	}

	if canDodge(defender) {
		dodgeCost := defender.cost(actionDodge)
		if defender.stamina >= dodgeCost && d.roll(dodgeChance(defender, attacker)) {
			defender.spend(dodgeCost)
			def = combatlog.Action{Result: model.ResultDodge, StaminaCost: stats.Sat8(int64(dodgeCost))}
			return atk, def
		}
	}

	damage, crit := d.strike(attacker, defender, int64(attacker.stats.CritMultiplier))
	if crit {
		atk.Result = model.ResultCrit
	}
	atk.Damage = damage
	def.Result = model.ResultHit
	d.applyDamage(id, damage)
	return atk, def
}

// counterAttack resolves a counter or riposte by fighter id against the
// original attacker. Crit multiplier is the product of the fighter's
// and the weapon's multipliers.
func (d *Duel) counterAttack(id model.Fighter, cost uint16, normal, critical model.ResultType) combatlog.Action {
	striker := d.fighters[id]
	target := d.fighters[id.Opponent()]

	striker.spend(cost)
	critMul := stats.Percent(int64(striker.stats.CritMultiplier), striker.weapon.CritMultiplier)
	damage, crit := d.strike(striker, target, critMul)

	act := combatlog.Action{Result: normal, Damage: damage, StaminaCost: stats.Sat8(int64(cost))}
	if crit {
		act.Result = critical
	}
	d.applyDamage(id, damage)
	return act
}

// hitChance scales the hit stat by weapon speed: faster weapons gain,
// slower ones lose a quarter of the speed difference.
func hitChance(attacker *fighter) int64 {
	speedFactor := 100 + (int64(attacker.weapon.AttackSpeed)-100)/4
	chance := int64(attacker.stats.HitChance) * speedFactor / 100
	return stats.Clamp(chance, MinHitChance, MaxHitChance)
}

func blockChance(defender *fighter) int64 {
	chance := stats.Percent(int64(defender.stats.BlockChance), defender.shield.BlockBonus)
	return min(chance, MaxBlockChance)
}

func counterChance(defender *fighter) int64 {
	return stats.Percent(int64(defender.stats.CounterChance), defender.shield.CounterBonus)
}

// parryChance: slow attacks (speed ≤ SlowWeaponSpeed) are easier to parry,
// the slower the easier.
func parryChance(defender, attacker *fighter) int64 {
	chance := stats.Percent(int64(defender.stats.ParryChance), defender.weapon.ParryChance)
	if speed := int64(attacker.weapon.AttackSpeed); speed <= SlowWeaponSpeed {
		chance += 5 + (SlowWeaponSpeed-speed)/2
	}
	return min(chance, MaxParryChance)
}

func riposteChance(defender *fighter) int64 {
	return stats.Percent(int64(defender.stats.RiposteChance), defender.weapon.RiposteChance)
}

// canDodge: heavy weapon wielders never dodge.
func canDodge(defender *fighter) bool {
	return defender.weapon.AttackSpeed > HeavyWeaponSpeed
}

// dodgeChance returns the defender's chance to dodge attacker's blow.
func dodgeChance(defender, attacker *fighter) int64 {
	if !canDodge(defender) {
		return 0
	}

	chance := int64(defender.stats.DodgeChance)
	if diff := int64(defender.weapon.AttackSpeed) - int64(attacker.weapon.AttackSpeed); diff > 0 {
		chance += diff / 5
	}

	switch w := defender.armor.Weight; {
	case w <= clothWeightLimit:
	case w <= leatherWeightLimit:
		chance = chance * 40 / 100
	case w <= chainWeightLimit:
		chance = chance * 20 / 100
	default:
		chance = 0
	}

	chance = stats.Percent(chance, defender.shield.DodgeModifier)
	return min(chance, MaxDodgeChance)
}
