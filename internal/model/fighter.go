package model

// Attribute bounds conventionally enforced by callers before a duel.
const (
	MinAttribute = 3
	MaxAttribute = 21
)

// Attributes are the six raw attributes of a fighter.
type Attributes struct {
	Strength     uint8 `yaml:"strength"`
	Constitution uint8 `yaml:"constitution"`
	Size         uint8 `yaml:"size"`
	Agility      uint8 `yaml:"agility"`
	Stamina      uint8 `yaml:"stamina"`
	Luck         uint8 `yaml:"luck"`
}

// FighterStats is everything the engine needs to know about one side of a duel.
type FighterStats struct {
	Attributes Attributes
	Weapon     WeaponID
	Armor      ArmorID
	Stance     StanceID
}

// DerivedStats are computed once per fighter per duel from Attributes
// and then scaled by the stance.
//
// Chances are percentages; CritMultiplier and DamageModifier are
// percentage multipliers (100 = ×1).
type DerivedStats struct {
	MaxHealth      uint16
	MaxStamina     uint16
	Initiative     uint16
	HitChance      uint8
	DodgeChance    uint8
	BlockChance    uint8
	ParryChance    uint8
	CounterChance  uint8
	RiposteChance  uint8
	CritChance     uint8
	CritMultiplier uint16
	DamageModifier uint16
	// SurvivalRate caps the base chance of surviving a lethal blow.
	SurvivalRate uint8
}

// Fighter identifies a side of the duel.
type Fighter uint8

const (
	Fighter1 Fighter = 0
	Fighter2 Fighter = 1
)

// Opponent returns the other side.
func (f Fighter) Opponent() Fighter {
	return f ^ 1
}

// String returns "fighter1" or "fighter2".
func (f Fighter) String() string {
	if f == Fighter1 {
		return "fighter1"
	}
	return "fighter2"
}
