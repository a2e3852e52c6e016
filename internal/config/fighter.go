package config

import (
	"fmt"

	"github.com/udisondev/la2duel/internal/data"
	"github.com/udisondev/la2duel/internal/model"
)

// FighterConfig describes one side of a duel by catalog names.
type FighterConfig struct {
	Attributes model.Attributes `yaml:"attributes"`
	Weapon     string           `yaml:"weapon" env:"WEAPON"`
	Armor      string           `yaml:"armor" env:"ARMOR"`
	Stance     string           `yaml:"stance" env:"STANCE"`
}

// Stats resolves the catalog names into engine ids.
func (f FighterConfig) Stats() (model.FighterStats, error) {
	weapon, err := data.ParseWeapon(f.Weapon)
	if err != nil {
		return model.FighterStats{}, fmt.Errorf("fighter config: %w", err)
	}
	armor, err := data.ParseArmor(f.Armor)
	if err != nil {
		return model.FighterStats{}, fmt.Errorf("fighter config: %w", err)
	}
	stance, err := data.ParseStance(f.Stance)
	if err != nil {
		return model.FighterStats{}, fmt.Errorf("fighter config: %w", err)
	}
	return model.FighterStats{
		Attributes: f.Attributes,
		Weapon:     weapon,
		Armor:      armor,
		Stance:     stance,
	}, nil
}

func defaultAttributes() model.Attributes {
	return model.Attributes{
		Strength:     12,
		Constitution: 12,
		Size:         12,
		Agility:      12,
		Stamina:      12,
		Luck:         12,
	}
}
