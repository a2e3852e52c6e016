package main

import (
	"fmt"
	"io"

	"github.com/udisondev/la2duel/internal/game/combatlog"
	"github.com/udisondev/la2duel/internal/game/duel"
	"github.com/udisondev/la2duel/internal/model"
)

func describeFighter(fs model.FighterStats) string {
	a := fs.Attributes
	return fmt.Sprintf("%s/%s/%s STR %d CON %d SIZ %d AGI %d STA %d LCK %d",
		fs.Weapon, fs.Armor, fs.Stance,
		a.Strength, a.Constitution, a.Size, a.Agility, a.Stamina, a.Luck)
}

func describeAction(a combatlog.Action) string {
	if a.Result == model.ResultNone {
		return "-"
	}
	if a.Damage > 0 {
		return fmt.Sprintf("%s %d (st %d)", a.Result, a.Damage, a.StaminaCost)
	}
	return fmt.Sprintf("%s (st %d)", a.Result, a.StaminaCost)
}

func writeLog(w io.Writer, l *combatlog.Log) {
	for i, r := range l.Rounds {
		fmt.Fprintf(w, "%3d  %-26s | %s\n", i+1,
			describeAction(r.Fighter1), describeAction(r.Fighter2))
	}
	fmt.Fprintf(w, "winner:    %s by %s after %d rounds (log v%d)\n",
		l.Winner, l.Condition, len(l.Rounds), l.Version)
	fmt.Fprintf(w, "damage:    %d / %d\n",
		l.TotalDamage(model.Fighter1), l.TotalDamage(model.Fighter2))
}

func writeSummary(w io.Writer, s duel.Summary) {
	fmt.Fprintf(w, "duels:       %d\n", s.Duels)
	fmt.Fprintf(w, "win rate:    %.2f%% / %.2f%%\n", s.WinRate(model.Fighter1), s.WinRate(model.Fighter2))
	for c := model.WinHealth; c <= model.WinDeath; c++ {
		fmt.Fprintf(w, "  %-10s %d\n", c.String()+":", s.Conditions[c])
	}
	fmt.Fprintf(w, "death rate:  %.2f%%\n", s.DeathRate())
	if s.Duels > 0 {
		fmt.Fprintf(w, "avg rounds:  %.1f\n", float64(s.Rounds)/float64(s.Duels))
	}
	fmt.Fprintf(w, "attacks:     %d / %d\n", s.Attacks[0], s.Attacks[1])
	fmt.Fprintf(w, "damage:      %d / %d\n", s.Damage[0], s.Damage[1])
}
