// Package combatlog encodes resolved duels into the compact binary combat log.
//
// Layout (big-endian):
//
//	[0]     winner      (0 = fighter 1, 1 = fighter 2)
//	[1:3]   version     uint16
//	[3]     condition   model.WinCondition
//	[4:]    rounds      8 bytes each:
//	          fighter 1: result(1) damage(2) stamina(1)
//	          fighter 2: result(1) damage(2) stamina(1)
package combatlog

import (
	"errors"
	"fmt"

	"github.com/udisondev/la2duel/internal/model"
)

// Version identifies the rule set that produced a log. Bump it whenever
// catalog values, formulas or the draw order change.
const Version uint16 = 1

const (
	HeaderSize = 4
	RoundSize  = 8
)

// ErrTruncatedLog is returned when a buffer cannot be a valid combat log.
var ErrTruncatedLog = errors.New("truncated combat log")

// Action is one fighter's part of a round.
type Action struct {
	Result      model.ResultType
	Damage      uint16 // damage dealt by this fighter
	StaminaCost uint8  // stamina spent by this fighter
}

// Round is the outcome of one attack, seen from both sides.
type Round struct {
	Fighter1 Action
	Fighter2 Action
}

// Action returns the action of fighter f.
func (r Round) Action(f model.Fighter) Action {
	if f == model.Fighter1 {
		return r.Fighter1
	}
	return r.Fighter2
}

// Attacker returns the fighter who initiated the round.
func (r Round) Attacker() model.Fighter {
	if r.Fighter2.Result.IsOffensive() && !r.Fighter1.Result.IsOffensive() {
		return model.Fighter2
	}
	return model.Fighter1
}

// Log is a decoded combat log.
type Log struct {
	Winner    model.Fighter
	Version   uint16
	Condition model.WinCondition
	Rounds    []Round
}

// Attacks counts the rounds initiated by fighter f.
func (l *Log) Attacks(f model.Fighter) int {
	n := 0
	for _, r := range l.Rounds {
		if r.Attacker() == f {
			n++
		}
	}
	return n
}

// TotalDamage sums the damage dealt by fighter f.
func (l *Log) TotalDamage(f model.Fighter) int {
	total := 0
	for _, r := range l.Rounds {
		total += int(r.Action(f).Damage)
	}
	return total
}

// Encode serializes the log.
func Encode(l *Log) []byte {
	w := newWriter(HeaderSize + len(l.Rounds)*RoundSize)
	w.writeByte(byte(l.Winner))
	w.writeUint16(l.Version)
	w.writeByte(byte(l.Condition))
	for _, r := range l.Rounds {
		writeAction(w, r.Fighter1)
		writeAction(w, r.Fighter2)
	}
	return w.bytes()
}

func writeAction(w *writer, a Action) {
	w.writeByte(byte(a.Result))
	w.writeUint16(a.Damage)
	w.writeByte(a.StaminaCost)
}

// Decode parses a combat log.
// Returns ErrTruncatedLog if the buffer is shorter than the header or the
// round section is not a whole number of records.
func Decode(buf []byte) (*Log, error) {
	if len(buf) < HeaderSize {
		return nil, fmt.Errorf("decoding log of %d bytes: %w", len(buf), ErrTruncatedLog)
	}
	if (len(buf)-HeaderSize)%RoundSize != 0 {
		return nil, fmt.Errorf("decoding log: %d round bytes not a multiple of %d: %w",
			len(buf)-HeaderSize, RoundSize, ErrTruncatedLog)
	}

	r := newReader(buf)
	winner, _ := r.readByte()
	version, _ := r.readUint16()
	condition, _ := r.readByte()

	l := &Log{
		Winner:    model.Fighter(winner),
		Version:   version,
		Condition: model.WinCondition(condition),
		Rounds:    make([]Round, 0, r.remaining()/RoundSize),
	}
	for r.remaining() > 0 {
		f1, err := readAction(r)
		if err != nil {
			return nil, fmt.Errorf("decoding round %d: %w", len(l.Rounds), err)
		}
		f2, err := readAction(r)
		if err != nil {
			return nil, fmt.Errorf("decoding round %d: %w", len(l.Rounds), err)
		}
		l.Rounds = append(l.Rounds, Round{Fighter1: f1, Fighter2: f2})
	}
	return l, nil
}

func readAction(r *reader) (Action, error) {
	result, err := r.readByte()
	if err != nil {
		return Action{}, err
	}
	damage, err := r.readUint16()
	if err != nil {
		return Action{}, err
	}
	stamina, err := r.readByte()
	if err != nil {
		return Action{}, err
	}
	return Action{Result: model.ResultType(result), Damage: damage, StaminaCost: stamina}, nil
}
