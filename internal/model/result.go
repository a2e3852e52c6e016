package model

// ResultType is the outcome of one round from the point of view of one fighter.
// Values are part of the combat log wire format and must never be renumbered.
type ResultType uint8

const (
	ResultNone        ResultType = 0  // Fighter took no part this round
	ResultMiss        ResultType = 1  // Attack missed
	ResultAttack      ResultType = 2  // Attack landed or was defended
	ResultCrit        ResultType = 3  // Attack landed as critical hit
	ResultBlock       ResultType = 4  // Shield block
	ResultCounter     ResultType = 5  // Block turned into counter-attack
	ResultCounterCrit ResultType = 6  // Critical counter-attack
	ResultDodge       ResultType = 7  // Attack dodged
	ResultParry       ResultType = 8  // Weapon parry
	ResultRiposte     ResultType = 9  // Parry turned into riposte
	ResultRiposteCrit ResultType = 10 // Critical riposte
	ResultExhausted   ResultType = 11 // Attacker could not pay the stamina cost
	ResultHit         ResultType = 12 // Defender took the blow
)

// IsOffensive reports whether the result belongs to the attacking fighter of a round.
func (r ResultType) IsOffensive() bool {
	switch r {
	case ResultMiss, ResultAttack, ResultCrit, ResultExhausted:
		return true
	default:
		return false
	}
}

// String returns human-readable result name.
func (r ResultType) String() string {
	switch r {
	case ResultNone:
		return "none"
	case ResultMiss:
		return "miss"
	case ResultAttack:
		return "attack"
	case ResultCrit:
		return "crit"
	case ResultBlock:
		return "block"
	case ResultCounter:
		return "counter"
	case ResultCounterCrit:
		return "counter_crit"
	case ResultDodge:
		return "dodge"
	case ResultParry:
		return "parry"
	case ResultRiposte:
		return "riposte"
	case ResultRiposteCrit:
		return "riposte_crit"
	case ResultExhausted:
		return "exhausted"
	case ResultHit:
		return "hit"
	default:
		return "unknown"
	}
}

// WinCondition describes how a duel ended.
// Values are part of the combat log wire format.
type WinCondition uint8

const (
	WinHealth     WinCondition = 0 // Opponent reduced to zero health
	WinExhaustion WinCondition = 1 // Opponent can no longer pay for an attack
	WinMaxRounds  WinCondition = 2 // Round cap reached, decided on health
	WinDeath      WinCondition = 3 // Opponent failed the lethality survival roll
)

// String returns human-readable condition name.
func (c WinCondition) String() string {
	switch c {
	case WinHealth:
		return "health"
	case WinExhaustion:
		return "exhaustion"
	case WinMaxRounds:
		return "max_rounds"
	case WinDeath:
		return "death"
	default:
		return "unknown"
	}
}
