package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udisondev/la2duel/internal/data"
	"github.com/udisondev/la2duel/internal/game/combatlog"
	"github.com/udisondev/la2duel/internal/game/stats"
	"github.com/udisondev/la2duel/internal/model"
)

func TestDodgeChance_HeavyWeaponCannotDodge(t *testing.T) {
	t.Parallel()

	defender := mustFighter(t, newFighterStats(model.WeaponMaul, model.ArmorCloth, model.StanceDefensive))
	defender.stats.DodgeChance = 200

	for i := range model.WeaponCount {
		attacker := mustFighter(t, newFighterStats(model.WeaponID(i), model.ArmorCloth, model.StanceBalanced))
		assert.Zero(t, dodgeChance(defender, attacker), model.WeaponID(i).String())
	}
	assert.False(t, canDodge(defender))
}

func TestDodgeChance_ArmorTiers(t *testing.T) {
	t.Parallel()

	attacker := mustFighter(t, newFighterStats(model.WeaponSpear, model.ArmorCloth, model.StanceBalanced))

	tests := []struct {
		armor model.ArmorID
		want  int64
	}{
		{model.ArmorCloth, 40},
		{model.ArmorLeather, 16},
		{model.ArmorChain, 8},
		{model.ArmorPlate, 0},
	}
	for _, tt := range tests {
		t.Run(tt.armor.String(), func(t *testing.T) {
			defender := mustFighter(t, newFighterStats(model.WeaponSpear, tt.armor, model.StanceBalanced))
			defender.stats.DodgeChance = 40
			assert.Equal(t, tt.want, dodgeChance(defender, attacker))
		})
	}
}

func TestDodgeChance_SpeedBonusAndCap(t *testing.T) {
	t.Parallel()

	slow := mustFighter(t, newFighterStats(model.WeaponMaul, model.ArmorCloth, model.StanceBalanced))
	quick := mustFighter(t, newFighterStats(model.WeaponDualDaggers, model.ArmorCloth, model.StanceBalanced))

	quick.stats.DodgeChance = 30
	assert.Equal(t, int64(30+(140-50)/5), dodgeChance(quick, slow))

	quick.stats.DodgeChance = 100
	assert.Equal(t, int64(MaxDodgeChance), dodgeChance(quick, slow))
}

func TestDodgeChance_ShieldModifier(t *testing.T) {
	t.Parallel()

	attacker := mustFighter(t, newFighterStats(model.WeaponArmingSwordKite, model.ArmorCloth, model.StanceBalanced))
	defender := mustFighter(t, newFighterStats(model.WeaponMaceTower, model.ArmorCloth, model.StanceBalanced))
	defender.stats.DodgeChance = 50

	// Tower shield keeps 40% of the dodge chance.
	assert.Equal(t, int64(20), dodgeChance(defender, attacker))
}

func TestHitChance_Clamped(t *testing.T) {
	t.Parallel()

	f := mustFighter(t, newFighterStats(model.WeaponMaul, model.ArmorCloth, model.StanceBalanced))
	f.stats.HitChance = 10
	assert.Equal(t, int64(MinHitChance), hitChance(f))

	f = mustFighter(t, newFighterStats(model.WeaponDualDaggers, model.ArmorCloth, model.StanceBalanced))
	f.stats.HitChance = 200
	assert.Equal(t, int64(MaxHitChance), hitChance(f))

	f.stats.HitChance = 70
	assert.Equal(t, int64(70*110/100), hitChance(f), "fast weapon bonus")
}

func TestBlockAndParryCaps(t *testing.T) {
	t.Parallel()

	attacker := mustFighter(t, newFighterStats(model.WeaponMaul, model.ArmorCloth, model.StanceBalanced))
	defender := mustFighter(t, newFighterStats(model.WeaponMaceTower, model.ArmorCloth, model.StanceDefensive))

	defender.stats.BlockChance = 80
	assert.Equal(t, int64(MaxBlockChance), blockChance(defender))

	defender.stats.BlockChance = 20
	assert.Equal(t, int64(40), blockChance(defender), "tower doubles block")

	defender.stats.ParryChance = 20
	// 20 × 70% + slow-attack bonus 5 + (60 − 50)/2.
	assert.Equal(t, int64(14+10), parryChance(defender, attacker))

	defender.stats.ParryChance = 250
	assert.Equal(t, int64(MaxParryChance), parryChance(defender, attacker))
}

func TestMitigate(t *testing.T) {
	t.Parallel()

	sword, err := data.Weapon(model.WeaponArmingSwordKite)
	require.NoError(t, err)
	maul, err := data.Weapon(model.WeaponMaul)
	require.NoError(t, err)
	plate, err := data.Armor(model.ArmorPlate)
	require.NoError(t, err)

	t.Run("defense then resistance", func(t *testing.T) {
		// (100 − 12) × (100 − 50) / 100
		assert.Equal(t, int64(44), mitigate(100, sword, plate))
	})

	t.Run("resistance capped at 90", func(t *testing.T) {
		armor := data.ArmorStats{SlashResist: 100}
		assert.Equal(t, int64(100), mitigate(1000, sword, armor))
	})

	t.Run("heavy weapon penetrates heavy armor", func(t *testing.T) {
		// blunt 20 − 20 penetration = 0
		assert.Equal(t, int64(100-12), mitigate(100, maul, plate))
	})

	t.Run("no penetration against light armor", func(t *testing.T) {
		leather, err := data.Armor(model.ArmorLeather)
		require.NoError(t, err)
		assert.Equal(t, int64((100-3)*90/100), mitigate(100, maul, leather))
	})

	t.Run("defense floors at zero", func(t *testing.T) {
		assert.Zero(t, mitigate(5, sword, plate))
	})
}

func TestPenetration(t *testing.T) {
	t.Parallel()

	assert.Equal(t, int64(20), penetration(50))
	assert.Equal(t, int64(30), penetration(45))
	assert.Equal(t, int64(maxPenetration), penetration(30))
	assert.Equal(t, int64(maxPenetration), penetration(1))
}

func TestStaminaCost(t *testing.T) {
	t.Parallel()

	spear := mustFighter(t, newFighterStats(model.WeaponSpear, model.ArmorCloth, model.StanceBalanced))
	// 800 × 110% × 101% = 888 → 8
	assert.Equal(t, uint16(8), spear.cost(actionAttack))
	// 400 × 102% = 408 → 4
	assert.Equal(t, uint16(4), spear.cost(actionDodge))

	plate := mustFighter(t, newFighterStats(model.WeaponArmingSwordKite, model.ArmorPlate, model.StanceBalanced))
	// block: 500 × kite 100% × 120% = 600 → 6
	assert.Equal(t, uint16(6), plate.cost(actionBlock))
	// dodge pays the steeper surcharge: 400 × 150% = 600 → 6
	assert.Equal(t, uint16(6), plate.cost(actionDodge))

	defensive := mustFighter(t, newFighterStats(model.WeaponSpear, model.ArmorCloth, model.StanceDefensive))
	offensive := mustFighter(t, newFighterStats(model.WeaponSpear, model.ArmorCloth, model.StanceOffensive))
	assert.Less(t, defensive.cost(actionAttack), offensive.cost(actionAttack))

	for a := actionAttack; a <= actionRiposte; a++ {
		assert.GreaterOrEqual(t, spear.cost(a), uint16(1))
	}
}

func TestSurvivalChance(t *testing.T) {
	t.Parallel()

	striker := mustFighter(t, newFighterStats(model.WeaponArmingSwordKite, model.ArmorCloth, model.StanceBalanced))
	victim := mustFighter(t, newFighterStats(model.WeaponArmingSwordKite, model.ArmorCloth, model.StanceBalanced))
	maxHP := victim.stats.MaxHealth // 315

	_, auto := survivalChance(striker, victim, maxHP/10, 100)
	assert.True(t, auto, "small blows never kill")

	// 95 damage is 30% of max health: min(95, 94) − 10 = 84
	chance, auto := survivalChance(striker, victim, 95, 100)
	assert.False(t, auto)
	assert.Equal(t, int64(84), chance)

	chance, _ = survivalChance(striker, victim, 95, 200)
	assert.Equal(t, int64(42), chance)

	chance, _ = survivalChance(striker, victim, 95, 10)
	assert.Equal(t, int64(BaseSurvivalChance), chance)

	chance, _ = survivalChance(striker, victim, maxHP*3, 1000)
	assert.Equal(t, int64(MinSurvivalChance), chance)
}

func TestApplyDamage_Lethality(t *testing.T) {
	t.Parallel()

	f := newFighterStats(model.WeaponArmingSwordKite, model.ArmorCloth, model.StanceBalanced)

	t.Run("disabled lethality knocks out", func(t *testing.T) {
		d := mustDuel(t, f, f, 1, 0)
		d.applyDamage(model.Fighter1, 5000)
		assert.Zero(t, d.Health(model.Fighter2))
		assert.False(t, d.Done())
	})

	t.Run("small finishing blow leaves 1 health", func(t *testing.T) {
		d := mustDuel(t, f, f, 1, 100)
		d.fighters[1].health = 10
		d.applyDamage(model.Fighter1, 20)
		assert.Equal(t, uint16(1), d.Health(model.Fighter2))
		assert.False(t, d.Done())
	})

	t.Run("lethal blow either kills or leaves 1 health", func(t *testing.T) {
		var died, survived int
		for seed := range uint64(40) {
			d := mustDuel(t, f, f, seed, 1000)
			d.applyDamage(model.Fighter2, 5000)
			if d.Done() {
				died++
				assert.Equal(t, model.WinDeath, d.Log().Condition)
				assert.Equal(t, model.Fighter2, d.Log().Winner)
				assert.Zero(t, d.Health(model.Fighter1))
			} else {
				survived++
				assert.Equal(t, uint16(1), d.Health(model.Fighter1))
			}
		}
		assert.Positive(t, died)
		assert.Positive(t, survived)
	})
}

// pipelineSeeds is enough duels for every capped chance to come up.
const pipelineSeeds = 60

// defenseAction maps a defender result to the action it pays for.
var defenseAction = map[model.ResultType]action{
	model.ResultBlock:       actionBlock,
	model.ResultCounter:     actionCounter,
	model.ResultCounterCrit: actionCounter,
	model.ResultParry:       actionParry,
	model.ResultRiposte:     actionRiposte,
	model.ResultRiposteCrit: actionRiposte,
	model.ResultDodge:       actionDodge,
}

// pipelineDuel sets up Fighter1 (arming sword, cloth) attacking the given
// defender with lethality off, then lets tweak adjust the defender.
func pipelineDuel(t *testing.T, seed uint64, defWeapon model.WeaponID, tweak func(def *fighter)) *Duel {
	t.Helper()
	d := mustDuel(t,
		newFighterStats(model.WeaponArmingSwordKite, model.ArmorCloth, model.StanceBalanced),
		newFighterStats(defWeapon, model.ArmorCloth, model.StanceBalanced),
		seed, 0)
	if tweak != nil {
		tweak(d.fighters[model.Fighter2])
	}
	return d
}

func TestResolveAttack_DefensePipeline(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		weapon  model.WeaponID
		tweak   func(def *fighter)
		want    model.ResultType
		allowed []model.ResultType
	}{
		{
			name:   "block without counter",
			weapon: model.WeaponArmingSwordKite,
			tweak: func(def *fighter) {
				def.stats.BlockChance, def.stats.CounterChance = 255, 0
				def.stats.ParryChance, def.stats.DodgeChance = 0, 0
			},
			want:    model.ResultBlock,
			allowed: []model.ResultType{model.ResultBlock, model.ResultHit},
		},
		{
			name:   "counter replaces block",
			weapon: model.WeaponArmingSwordKite,
			tweak: func(def *fighter) {
				def.stats.BlockChance, def.stats.CounterChance = 255, 255
				def.stats.ParryChance, def.stats.DodgeChance, def.stats.CritChance = 0, 0, 0
			},
			want:    model.ResultCounter,
			allowed: []model.ResultType{model.ResultCounter, model.ResultHit},
		},
		{
			name:   "counter needs its own stamina",
			weapon: model.WeaponArmingSwordKite,
			tweak: func(def *fighter) {
				def.stats.BlockChance, def.stats.CounterChance = 255, 255
				def.stats.ParryChance, def.stats.DodgeChance = 0, 0
				def.stamina = def.cost(actionCounter) - 1
			},
			want:    model.ResultBlock,
			allowed: []model.ResultType{model.ResultBlock, model.ResultHit},
		},
		{
			name:   "parry without riposte",
			weapon: model.WeaponSpear,
			tweak: func(def *fighter) {
				def.stats.ParryChance, def.stats.RiposteChance, def.stats.DodgeChance = 255, 0, 0
			},
			want:    model.ResultParry,
			allowed: []model.ResultType{model.ResultParry, model.ResultHit},
		},
		{
			name:   "riposte replaces parry",
			weapon: model.WeaponSpear,
			tweak: func(def *fighter) {
				def.stats.ParryChance, def.stats.RiposteChance = 255, 255
				def.stats.DodgeChance, def.stats.CritChance = 0, 0
			},
			want:    model.ResultRiposte,
			allowed: []model.ResultType{model.ResultRiposte, model.ResultHit},
		},
		{
			name:   "riposte needs its own stamina",
			weapon: model.WeaponSpear,
			tweak: func(def *fighter) {
				def.stats.ParryChance, def.stats.RiposteChance, def.stats.DodgeChance = 255, 255, 0
				def.stamina = def.cost(actionRiposte) - 1
			},
			want:    model.ResultParry,
			allowed: []model.ResultType{model.ResultParry, model.ResultHit},
		},
		{
			name:   "dodge",
			weapon: model.WeaponSpear,
			tweak: func(def *fighter) {
				def.stats.ParryChance, def.stats.DodgeChance = 0, 255
			},
			want:    model.ResultDodge,
			allowed: []model.ResultType{model.ResultDodge, model.ResultHit},
		},
		{
			name:   "exhausted defender takes the hit",
			weapon: model.WeaponArmingSwordKite,
			tweak: func(def *fighter) {
				def.stats.BlockChance, def.stats.CounterChance = 255, 255
				def.stats.ParryChance, def.stats.RiposteChance, def.stats.DodgeChance = 255, 255, 255
				def.stamina = 0
			},
			want:    model.ResultHit,
			allowed: []model.ResultType{model.ResultHit},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seen := 0
			for seed := range uint64(pipelineSeeds) {
				d := pipelineDuel(t, seed, tt.weapon, tt.tweak)
				attacker, defender := d.fighters[model.Fighter1], d.fighters[model.Fighter2]
				atkStamina, atkHealth := attacker.stamina, attacker.health
				defStamina, defHealth := defender.stamina, defender.health

				atk, def := d.resolveAttack(model.Fighter1)

				assert.Equal(t, stats.Sat8(int64(attacker.attackCost)), atk.StaminaCost)
				assert.Equal(t, atkStamina-attacker.attackCost, attacker.stamina, "attacker pays only the attack")

				if atk.Result == model.ResultMiss {
					assert.Equal(t, model.ResultNone, def.Result)
					assert.Equal(t, defStamina, defender.stamina)
					assert.Equal(t, atkHealth, attacker.health)
					assert.Equal(t, defHealth, defender.health)
					continue
				}
				require.Contains(t, tt.allowed, def.Result, "seed %d", seed)
				if def.Result == tt.want {
					seen++
				}

				switch def.Result {
				case model.ResultHit:
					assert.Contains(t, []model.ResultType{model.ResultAttack, model.ResultCrit}, atk.Result)
					assert.Equal(t, defStamina, defender.stamina, "taking a hit costs nothing")
					assert.Equal(t, defHealth-min(atk.Damage, defHealth), defender.health)
					assert.Equal(t, atkHealth, attacker.health)
				default:
					cost := defender.cost(defenseAction[def.Result])
					assert.Equal(t, model.ResultAttack, atk.Result)
					assert.Zero(t, atk.Damage)
					assert.Equal(t, stats.Sat8(int64(cost)), def.StaminaCost)
					assert.Equal(t, defStamina-cost, defender.stamina)
					assert.Equal(t, defHealth, defender.health)
					assert.Equal(t, atkHealth-min(def.Damage, atkHealth), attacker.health)
					if a := defenseAction[def.Result]; a == actionBlock || a == actionParry || a == actionDodge {
						assert.Zero(t, def.Damage, "only counters and ripostes strike back")
					}
				}
			}
			assert.Positive(t, seen, "%s never happened in %d duels", tt.want, pipelineSeeds)
		})
	}
}

func TestResolveAttack_DefenseCostOrder(t *testing.T) {
	t.Parallel()

	kite := mustFighter(t, newFighterStats(model.WeaponArmingSwordKite, model.ArmorCloth, model.StanceBalanced))
	assert.Less(t, kite.cost(actionBlock), kite.cost(actionCounter))

	spear := mustFighter(t, newFighterStats(model.WeaponSpear, model.ArmorCloth, model.StanceBalanced))
	assert.Less(t, spear.cost(actionParry), spear.cost(actionRiposte))
}

func TestResolveAttack_MissChargesAttacker(t *testing.T) {
	t.Parallel()

	misses := 0
	for seed := range uint64(pipelineSeeds) {
		d := pipelineDuel(t, seed, model.WeaponSpear, nil)
		attacker, defender := d.fighters[model.Fighter1], d.fighters[model.Fighter2]
		attacker.stats.HitChance = 0 // clamped up to MinHitChance
		atkStamina, defStamina := attacker.stamina, defender.stamina
		draws := d.stream.Draws()

		atk, def := d.resolveAttack(model.Fighter1)
		if atk.Result != model.ResultMiss {
			continue
		}
		misses++

		assert.Equal(t, combatlogAction(model.ResultMiss, 0, attacker.attackCost), atk)
		assert.Equal(t, combatlogAction(model.ResultNone, 0, 0), def)
		assert.Equal(t, atkStamina-attacker.attackCost, attacker.stamina)
		assert.Equal(t, defStamina, defender.stamina)
		assert.Equal(t, attacker.stats.MaxHealth, attacker.health)
		assert.Equal(t, defender.stats.MaxHealth, defender.health)
		assert.Equal(t, draws+1, d.stream.Draws(), "a miss consumes only the hit roll")
	}
	assert.Positive(t, misses)
}

func TestResolveAttack_Exhausted(t *testing.T) {
	t.Parallel()

	d := pipelineDuel(t, 3, model.WeaponSpear, nil)
	attacker, defender := d.fighters[model.Fighter1], d.fighters[model.Fighter2]
	attacker.stamina = attacker.attackCost - 1
	defStamina := defender.stamina
	draws := d.stream.Draws()

	atk, def := d.resolveAttack(model.Fighter1)
	assert.Equal(t, combatlogAction(model.ResultExhausted, 0, 0), atk)
	assert.Equal(t, combatlogAction(model.ResultNone, 0, 0), def)
	assert.Equal(t, attacker.attackCost-1, attacker.stamina)
	assert.Equal(t, defStamina, defender.stamina)
	assert.Equal(t, draws, d.stream.Draws())

	// The recorded round keeps the attacker's action points.
	attacker.actionPoints = AttackThreshold
	d.attack(model.Fighter1)
	require.Equal(t, 1, d.Rounds())
	assert.Equal(t, model.ResultExhausted, d.rounds[0].Fighter1.Result)
	assert.Equal(t, model.ResultNone, d.rounds[0].Fighter2.Result)
	assert.Equal(t, uint32(AttackThreshold), attacker.actionPoints)
}

func TestCounterAttack_CritMultipliesFighterAndWeapon(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		weapon model.WeaponID
		want   model.ResultType
	}{
		{"counter", model.WeaponArmingSwordKite, model.ResultCounterCrit},
		{"riposte", model.WeaponSpear, model.ResultRiposteCrit},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			crits := 0
			for seed := range uint64(pipelineSeeds) {
				d := pipelineDuel(t, seed, tt.weapon, func(def *fighter) {
					def.stats.BlockChance, def.stats.CounterChance = 255, 255
					def.stats.ParryChance, def.stats.RiposteChance = 255, 255
					def.stats.DodgeChance, def.stats.CritChance = 0, 255
				})
				attacker, defender := d.fighters[model.Fighter1], d.fighters[model.Fighter2]
				require.Greater(t, defender.weapon.CritMultiplier, uint16(100))
				replay := *d.stream

				_, def := d.resolveAttack(model.Fighter1)
				if def.Result != tt.want {
					continue
				}
				crits++

				// hit, block or parry, then counter or riposte precede the strike
				for range 3 {
					replay.Draw(100)
				}
				w := defender.weapon
				base := int64(w.MinDamage) + int64(replay.Draw(uint64(w.MaxDamage-w.MinDamage)+1))
				critMul := stats.Percent(int64(defender.stats.CritMultiplier), w.CritMultiplier)
				damage := stats.Percent(base, defender.stats.DamageModifier) * critMul / 100

				assert.Equal(t, stats.Sat16(mitigate(damage, w, attacker.armor)), def.Damage, "seed %d", seed)
				assert.Equal(t, replay.Draws()+1, d.stream.Draws(), "crit roll follows the damage roll")
			}
			assert.Positive(t, crits)
		})
	}
}

func combatlogAction(r model.ResultType, damage, cost uint16) combatlog.Action {
	return combatlog.Action{Result: r, Damage: damage, StaminaCost: stats.Sat8(int64(cost))}
}
