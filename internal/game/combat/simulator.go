// Package combat resolves a one-on-one duel into a deterministic combat log.
//
// The scheduler is driven by action points: every tick both fighters gain
// their weapon's attack speed, and a fighter holding at least
// AttackThreshold points (and enough stamina) may attack. Faster weapons
// therefore attack proportionally more often without strict turn order.
package combat

import (
	"github.com/udisondev/la2duel/internal/data"
	"github.com/udisondev/la2duel/internal/game/combatlog"
	"github.com/udisondev/la2duel/internal/game/stats"
	"github.com/udisondev/la2duel/internal/model"
	"github.com/udisondev/la2duel/internal/rng"
)

// Scheduler limits.
const (
	MaxRounds       = 70  // recorded rounds before the duel is decided on health
	AttackThreshold = 149 // action points consumed by one attack

	// maxIdleTicks bounds consecutive ticks without an attacker.
	// The slowest catalog weapon needs 3.
	maxIdleTicks = AttackThreshold
)

// fighter is the per-duel state of one side.
type fighter struct {
	stats  model.DerivedStats
	weapon data.WeaponStats
	armor  data.ArmorStats
	shield data.ShieldStats
	stance data.StanceMultiplier

	health       uint16
	stamina      uint16
	actionPoints uint32
	attackCost   uint16
}

func newFighter(fs model.FighterStats) (*fighter, error) {
	weapon, err := data.Weapon(fs.Weapon)
	if err != nil {
		return nil, err
	}
	armor, err := data.Armor(fs.Armor)
	if err != nil {
		return nil, err
	}
	stance, err := data.Stance(fs.Stance)
	if err != nil {
		return nil, err
	}
	shield, err := data.Shield(weapon.Shield)
	if err != nil {
		return nil, err
	}

	d := stats.ApplyStance(stats.Calculate(fs.Attributes), stance)
	f := &fighter{
		stats:   d,
		weapon:  weapon,
		armor:   armor,
		shield:  shield,
		stance:  stance,
		health:  d.MaxHealth,
		stamina: d.MaxStamina,
	}
	f.attackCost = f.cost(actionAttack)
	return f, nil
}

func (f *fighter) hasShield() bool {
	return f.weapon.Shield != model.ShieldNone
}

// exhausted reports whether the fighter can never pay for another attack.
func (f *fighter) exhausted() bool {
	return f.stamina < f.attackCost
}

func (f *fighter) canAttack() bool {
	return f.actionPoints >= AttackThreshold && !f.exhausted()
}

func (f *fighter) spend(cost uint16) {
	f.stamina = uint16(stats.SubFloor(int64(f.stamina), int64(cost)))
}

// healthPercent returns current health as a percentage of max health.
func (f *fighter) healthPercent() uint32 {
	if f.stats.MaxHealth == 0 {
		return 0
	}
	return uint32(f.health) * 100 / uint32(f.stats.MaxHealth)
}

// Duel holds the mutable state of one duel. Not safe for concurrent use.
type Duel struct {
	fighters   [2]*fighter
	stream     *rng.Stream
	lethality  uint16
	initiative model.Fighter

	rounds    []combatlog.Round
	idleTicks int

	done      bool
	winner    model.Fighter
	condition model.WinCondition
}

// NewDuel prepares a duel. Returns data.ErrInvalidEquipmentID if any
// weapon, armor or stance id is unknown.
//
// lethality 0 disables lethal outcomes; 100 is the neutral survival roll,
// higher values are harsher.
func NewDuel(f1, f2 model.FighterStats, seed rng.Seed, lethality uint16) (*Duel, error) {
	a, err := newFighter(f1)
	if err != nil {
		return nil, err
	}
	b, err := newFighter(f2)
	if err != nil {
		return nil, err
	}

	d := &Duel{
		fighters:  [2]*fighter{a, b},
		stream:    rng.New(seed),
		lethality: lethality,
		rounds:    make([]combatlog.Round, 0, MaxRounds),
	}

	switch {
	case a.stats.Initiative > b.stats.Initiative:
		d.initiative = model.Fighter1
	case a.stats.Initiative < b.stats.Initiative:
		d.initiative = model.Fighter2
	case d.stream.Draw(2) == 0:
		d.initiative = model.Fighter1
	default:
		d.initiative = model.Fighter2
	}
	return d, nil
}

// Simulate resolves a whole duel and returns its log.
func Simulate(f1, f2 model.FighterStats, seed rng.Seed, lethality uint16) (*combatlog.Log, error) {
	d, err := NewDuel(f1, f2, seed, lethality)
	if err != nil {
		return nil, err
	}
	return d.Run(), nil
}

// Run steps the duel to its end and returns the log.
func (d *Duel) Run() *combatlog.Log {
	for d.Step() {
	}
	return d.Log()
}

// Step advances the duel by one tick. Returns false once the duel is over.
func (d *Duel) Step() bool {
	if d.done {
		return false
	}
	if d.checkEnd() {
		return false
	}

	if attacker, ok := d.pickAttacker(); ok {
		d.idleTicks = 0
		d.attack(attacker)
		if d.done {
			return false
		}
	} else {
		d.idleTicks++
		if d.idleTicks > maxIdleTicks {
			d.concludeOnHealth(model.WinMaxRounds)
			return false
		}
	}

	for _, f := range d.fighters {
		f.actionPoints += uint32(f.weapon.AttackSpeed)
	}
	return true
}

// checkEnd evaluates terminal conditions in precedence order.
func (d *Duel) checkEnd() bool {
	a, b := d.fighters[0], d.fighters[1]

	switch {
	case a.health == 0:
		d.conclude(model.Fighter2, model.WinHealth)
	case b.health == 0:
		d.conclude(model.Fighter1, model.WinHealth)
	case a.exhausted() && b.exhausted():
		winner := model.Fighter1
		if b.healthPercent() > a.healthPercent() {
			winner = model.Fighter2
		}
		d.conclude(winner, model.WinExhaustion)
	case a.exhausted():
		d.conclude(model.Fighter2, model.WinExhaustion)
	case b.exhausted():
		d.conclude(model.Fighter1, model.WinExhaustion)
	case len(d.rounds) >= MaxRounds:
		d.concludeOnHealth(model.WinMaxRounds)
	}
	return d.done
}

// concludeOnHealth awards the duel to whoever has strictly more health.
func (d *Duel) concludeOnHealth(cond model.WinCondition) {
	winner := model.Fighter1
	if d.fighters[1].health > d.fighters[0].health {
		winner = model.Fighter2
	}
	d.conclude(winner, cond)
}

func (d *Duel) conclude(winner model.Fighter, cond model.WinCondition) {
	d.done = true
	d.winner = winner
	d.condition = cond
}

// pickAttacker selects who attacks this tick, if anyone.
// With both able, more action points wins; exact ties go to the initiative holder.
func (d *Duel) pickAttacker() (model.Fighter, bool) {
	a, b := d.fighters[0], d.fighters[1]
	canA, canB := a.canAttack(), b.canAttack()

	switch {
	case canA && canB:
		switch {
		case a.actionPoints > b.actionPoints:
			return model.Fighter1, true
		case b.actionPoints > a.actionPoints:
			return model.Fighter2, true
		default:
			return d.initiative, true
		}
	case canA:
		return model.Fighter1, true
	case canB:
		return model.Fighter2, true
	default:
		return 0, false
	}
}

// attack resolves one round and records it.
func (d *Duel) attack(id model.Fighter) {
	atk, def := d.resolveAttack(id)
	if atk.Result != model.ResultExhausted {
		d.fighters[id].actionPoints -= AttackThreshold
	}

	var r combatlog.Round
	if id == model.Fighter1 {
		r.Fighter1, r.Fighter2 = atk, def
	} else {
		r.Fighter1, r.Fighter2 = def, atk
	}
	d.rounds = append(d.rounds, r)
}

// Done reports whether the duel has ended.
func (d *Duel) Done() bool { return d.done }

// Rounds returns the number of recorded rounds.
func (d *Duel) Rounds() int { return len(d.rounds) }

// Initiative returns the fighter that wins exact action-point ties.
func (d *Duel) Initiative() model.Fighter { return d.initiative }

// Health returns the current health of fighter f.
func (d *Duel) Health(f model.Fighter) uint16 { return d.fighters[f].health }

// Stamina returns the current stamina of fighter f.
func (d *Duel) Stamina(f model.Fighter) uint16 { return d.fighters[f].stamina }

// ActionPoints returns the accumulated action points of fighter f.
func (d *Duel) ActionPoints(f model.Fighter) uint32 { return d.fighters[f].actionPoints }

// Stats returns the stance-adjusted stats of fighter f.
func (d *Duel) Stats(f model.Fighter) model.DerivedStats { return d.fighters[f].stats }

// Log returns the combat log recorded so far. Winner and condition are
// only meaningful once Done reports true.
func (d *Duel) Log() *combatlog.Log {
	return &combatlog.Log{
		Winner:    d.winner,
		Version:   combatlog.Version,
		Condition: d.condition,
		Rounds:    d.rounds,
	}
}
