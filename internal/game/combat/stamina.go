package combat

// action is a stamina-consuming action type.
type action int

const (
	actionAttack action = iota
	actionBlock
	actionParry
	actionDodge
	actionCounter
	actionRiposte
)

// Base stamina cost per action, in hundredths of a point.
var baseCost = [...]int64{
	actionAttack:  800,
	actionBlock:   500,
	actionParry:   500,
	actionDodge:   400,
	actionCounter: 700,
	actionRiposte: 700,
}

// cost returns the stamina cost of action a for this fighter:
// base × stance modifier × weapon (attack/parry/counter/riposte) or
// shield (block) multiplier × armor weight surcharge. Never below 1.
func (f *fighter) cost(a action) uint16 {
	c := baseCost[a] * int64(f.stance.StaminaCostModifier) / 100

	switch a {
	case actionAttack, actionParry, actionCounter, actionRiposte:
		c = c * int64(f.weapon.StaminaMultiplier) / 100
	case actionBlock:
		if f.hasShield() {
			c = c * int64(f.shield.StaminaModifier) / 100
		}
	}

	weight := int64(f.armor.Weight)
	if a == actionDodge {
		c = c * (100 + weight/2) / 100
	} else {
		c = c * (100 + weight/5) / 100
	}

	return uint16(max(c/100, 1))
}
