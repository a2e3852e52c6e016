package data

import (
	"fmt"

	"github.com/udisondev/la2duel/internal/model"
)

// WeaponStats describes the combat properties of a weapon set.
// All modifier fields are percentages (100 = neutral).
type WeaponStats struct {
	MinDamage uint16
	MaxDamage uint16

	// AttackSpeed is the action-point gain per tick (baseline 100).
	AttackSpeed uint16

	ParryChance       uint16 // scales the wielder's parry chance
	RiposteChance     uint16 // scales the wielder's riposte chance
	CritMultiplier    uint16 // applied on top of the wielder's crit multiplier for counters and ripostes
	StaminaMultiplier uint16 // scales attack/parry/counter/riposte costs
	SurvivalFactor    uint16 // scales the victim's survival chance in the lethality roll

	DamageType model.DamageType
	Shield     model.ShieldType
}

// weaponTable is indexed by model.WeaponID. Values are game balance; do not
// change them without bumping combatlog.Version.
var weaponTable = [model.WeaponCount]WeaponStats{
	model.WeaponArmingSwordKite: {
		MinDamage: 22, MaxDamage: 32, AttackSpeed: 100,
		ParryChance: 110, RiposteChance: 110, CritMultiplier: 110,
		StaminaMultiplier: 100, SurvivalFactor: 100,
		DamageType: model.DamageSlashing, Shield: model.ShieldKite,
	},
	model.WeaponMaceTower: {
		MinDamage: 26, MaxDamage: 38, AttackSpeed: 80,
		ParryChance: 70, RiposteChance: 70, CritMultiplier: 120,
		StaminaMultiplier: 115, SurvivalFactor: 85,
		DamageType: model.DamageBlunt, Shield: model.ShieldTower,
	},
	model.WeaponRapierBuckler: {
		MinDamage: 16, MaxDamage: 26, AttackSpeed: 110,
		ParryChance: 120, RiposteChance: 140, CritMultiplier: 125,
		StaminaMultiplier: 85, SurvivalFactor: 110,
		DamageType: model.DamagePiercing, Shield: model.ShieldBuckler,
	},
	model.WeaponGreatsword: {
		MinDamage: 34, MaxDamage: 50, AttackSpeed: 70,
		ParryChance: 140, RiposteChance: 110, CritMultiplier: 130,
		StaminaMultiplier: 140, SurvivalFactor: 80,
		DamageType: model.DamageSlashing, Shield: model.ShieldNone,
	},
	model.WeaponBattleaxe: {
		MinDamage: 40, MaxDamage: 58, AttackSpeed: 60,
		ParryChance: 70, RiposteChance: 65, CritMultiplier: 140,
		StaminaMultiplier: 150, SurvivalFactor: 70,
		DamageType: model.DamageSlashing, Shield: model.ShieldNone,
	},
	model.WeaponQuarterstaff: {
		MinDamage: 20, MaxDamage: 30, AttackSpeed: 100,
		ParryChance: 140, RiposteChance: 120, CritMultiplier: 100,
		StaminaMultiplier: 100, SurvivalFactor: 115,
		DamageType: model.DamageBlunt, Shield: model.ShieldNone,
	},
	model.WeaponSpear: {
		MinDamage: 28, MaxDamage: 40, AttackSpeed: 85,
		ParryChance: 100, RiposteChance: 115, CritMultiplier: 120,
		StaminaMultiplier: 110, SurvivalFactor: 95,
		DamageType: model.DamagePiercing, Shield: model.ShieldNone,
	},
	model.WeaponShortswordBuckler: {
		MinDamage: 18, MaxDamage: 26, AttackSpeed: 115,
		ParryChance: 110, RiposteChance: 120, CritMultiplier: 110,
		StaminaMultiplier: 90, SurvivalFactor: 105,
		DamageType: model.DamageSlashing, Shield: model.ShieldBuckler,
	},
	model.WeaponShortswordTower: {
		MinDamage: 18, MaxDamage: 26, AttackSpeed: 95,
		ParryChance: 90, RiposteChance: 90, CritMultiplier: 105,
		StaminaMultiplier: 105, SurvivalFactor: 100,
		DamageType: model.DamageSlashing, Shield: model.ShieldTower,
	},
	model.WeaponDualDaggers: {
		MinDamage: 12, MaxDamage: 20, AttackSpeed: 140,
		ParryChance: 80, RiposteChance: 130, CritMultiplier: 135,
		StaminaMultiplier: 80, SurvivalFactor: 115,
		DamageType: model.DamagePiercing, Shield: model.ShieldNone,
	},
	model.WeaponRapierDagger: {
		MinDamage: 16, MaxDamage: 26, AttackSpeed: 120,
		ParryChance: 130, RiposteChance: 150, CritMultiplier: 125,
		StaminaMultiplier: 90, SurvivalFactor: 110,
		DamageType: model.DamagePiercing, Shield: model.ShieldNone,
	},
	model.WeaponScimitarBuckler: {
		MinDamage: 20, MaxDamage: 30, AttackSpeed: 110,
		ParryChance: 105, RiposteChance: 115, CritMultiplier: 115,
		StaminaMultiplier: 95, SurvivalFactor: 100,
		DamageType: model.DamageSlashing, Shield: model.ShieldBuckler,
	},
	model.WeaponAxeKite: {
		MinDamage: 26, MaxDamage: 36, AttackSpeed: 90,
		ParryChance: 70, RiposteChance: 80, CritMultiplier: 120,
		StaminaMultiplier: 110, SurvivalFactor: 90,
		DamageType: model.DamageSlashing, Shield: model.ShieldKite,
	},
	model.WeaponAxeTower: {
		MinDamage: 26, MaxDamage: 36, AttackSpeed: 80,
		ParryChance: 60, RiposteChance: 70, CritMultiplier: 120,
		StaminaMultiplier: 120, SurvivalFactor: 90,
		DamageType: model.DamageSlashing, Shield: model.ShieldTower,
	},
	model.WeaponDualScimitars: {
		MinDamage: 20, MaxDamage: 30, AttackSpeed: 120,
		ParryChance: 100, RiposteChance: 120, CritMultiplier: 115,
		StaminaMultiplier: 105, SurvivalFactor: 100,
		DamageType: model.DamageSlashing, Shield: model.ShieldNone,
	},
	model.WeaponFlailBuckler: {
		MinDamage: 26, MaxDamage: 38, AttackSpeed: 85,
		ParryChance: 60, RiposteChance: 70, CritMultiplier: 125,
		StaminaMultiplier: 115, SurvivalFactor: 85,
		DamageType: model.DamageBlunt, Shield: model.ShieldBuckler,
	},
	model.WeaponMaceKite: {
		MinDamage: 26, MaxDamage: 38, AttackSpeed: 85,
		ParryChance: 75, RiposteChance: 75, CritMultiplier: 120,
		StaminaMultiplier: 110, SurvivalFactor: 85,
		DamageType: model.DamageBlunt, Shield: model.ShieldKite,
	},
	model.WeaponClubTower: {
		MinDamage: 22, MaxDamage: 32, AttackSpeed: 90,
		ParryChance: 60, RiposteChance: 60, CritMultiplier: 110,
		StaminaMultiplier: 105, SurvivalFactor: 95,
		DamageType: model.DamageBlunt, Shield: model.ShieldTower,
	},
	model.WeaponDualClubs: {
		MinDamage: 22, MaxDamage: 32, AttackSpeed: 110,
		ParryChance: 70, RiposteChance: 80, CritMultiplier: 110,
		StaminaMultiplier: 110, SurvivalFactor: 95,
		DamageType: model.DamageBlunt, Shield: model.ShieldNone,
	},
	model.WeaponArmingSwordShortsword: {
		MinDamage: 20, MaxDamage: 30, AttackSpeed: 115,
		ParryChance: 115, RiposteChance: 120, CritMultiplier: 110,
		StaminaMultiplier: 105, SurvivalFactor: 100,
		DamageType: model.DamageSlashing, Shield: model.ShieldNone,
	},
	model.WeaponScimitarDagger: {
		MinDamage: 18, MaxDamage: 28, AttackSpeed: 125,
		ParryChance: 105, RiposteChance: 125, CritMultiplier: 120,
		StaminaMultiplier: 95, SurvivalFactor: 105,
		DamageType: model.DamageSlashingPiercing, Shield: model.ShieldNone,
	},
	model.WeaponArmingSwordClub: {
		MinDamage: 22, MaxDamage: 32, AttackSpeed: 105,
		ParryChance: 100, RiposteChance: 100, CritMultiplier: 115,
		StaminaMultiplier: 110, SurvivalFactor: 95,
		DamageType: model.DamageSlashingBlunt, Shield: model.ShieldNone,
	},
	model.WeaponAxeMace: {
		MinDamage: 28, MaxDamage: 40, AttackSpeed: 90,
		ParryChance: 70, RiposteChance: 70, CritMultiplier: 125,
		StaminaMultiplier: 125, SurvivalFactor: 85,
		DamageType: model.DamageSlashingBlunt, Shield: model.ShieldNone,
	},
	model.WeaponFlailDagger: {
		MinDamage: 22, MaxDamage: 34, AttackSpeed: 105,
		ParryChance: 75, RiposteChance: 100, CritMultiplier: 125,
		StaminaMultiplier: 105, SurvivalFactor: 95,
		DamageType: model.DamagePiercingBlunt, Shield: model.ShieldNone,
	},
	model.WeaponMaceShortsword: {
		MinDamage: 24, MaxDamage: 34, AttackSpeed: 100,
		ParryChance: 85, RiposteChance: 95, CritMultiplier: 120,
		StaminaMultiplier: 110, SurvivalFactor: 90,
		DamageType: model.DamageSlashingBlunt, Shield: model.ShieldNone,
	},
	model.WeaponMaul: {
		MinDamage: 46, MaxDamage: 66, AttackSpeed: 50,
		ParryChance: 50, RiposteChance: 40, CritMultiplier: 150,
		StaminaMultiplier: 160, SurvivalFactor: 65,
		DamageType: model.DamageBlunt, Shield: model.ShieldNone,
	},
	model.WeaponTrident: {
		MinDamage: 30, MaxDamage: 42, AttackSpeed: 80,
		ParryChance: 110, RiposteChance: 110, CritMultiplier: 120,
		StaminaMultiplier: 120, SurvivalFactor: 90,
		DamageType: model.DamagePiercing, Shield: model.ShieldNone,
	},
}

// Weapon returns the stats of a weapon.
// Returns ErrInvalidEquipmentID for ids outside the catalog.
func Weapon(id model.WeaponID) (WeaponStats, error) {
	if int(id) >= model.WeaponCount {
		return WeaponStats{}, fmt.Errorf("weapon %d: %w", id, ErrInvalidEquipmentID)
	}
	return weaponTable[id], nil
}

// ParseWeapon resolves a catalog name (e.g. "dual_daggers") to its id.
func ParseWeapon(name string) (model.WeaponID, error) {
	for i := range model.WeaponCount {
		id := model.WeaponID(i)
		if id.String() == name {
			return id, nil
		}
	}
	return 0, fmt.Errorf("weapon %q: %w", name, ErrInvalidEquipmentID)
}
