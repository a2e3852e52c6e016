package model

// WeaponID identifies an entry in the weapon catalog.
type WeaponID uint8

const (
	WeaponArmingSwordKite WeaponID = iota
	WeaponMaceTower
	WeaponRapierBuckler
	WeaponGreatsword
	WeaponBattleaxe
	WeaponQuarterstaff
	WeaponSpear
	WeaponShortswordBuckler
	WeaponShortswordTower
	WeaponDualDaggers
	WeaponRapierDagger
	WeaponScimitarBuckler
	WeaponAxeKite
	WeaponAxeTower
	WeaponDualScimitars
	WeaponFlailBuckler
	WeaponMaceKite
	WeaponClubTower
	WeaponDualClubs
	WeaponArmingSwordShortsword
	WeaponScimitarDagger
	WeaponArmingSwordClub
	WeaponAxeMace
	WeaponFlailDagger
	WeaponMaceShortsword
	WeaponMaul
	WeaponTrident

	WeaponCount = int(WeaponTrident) + 1
)

var weaponNames = [WeaponCount]string{
	"arming_sword_kite",
	"mace_tower",
	"rapier_buckler",
	"greatsword",
	"battleaxe",
	"quarterstaff",
	"spear",
	"shortsword_buckler",
	"shortsword_tower",
	"dual_daggers",
	"rapier_dagger",
	"scimitar_buckler",
	"axe_kite",
	"axe_tower",
	"dual_scimitars",
	"flail_buckler",
	"mace_kite",
	"club_tower",
	"dual_clubs",
	"arming_sword_shortsword",
	"scimitar_dagger",
	"arming_sword_club",
	"axe_mace",
	"flail_dagger",
	"mace_shortsword",
	"maul",
	"trident",
}

// String returns the catalog name of the weapon (e.g. "rapier_buckler").
func (w WeaponID) String() string {
	if int(w) >= WeaponCount {
		return "unknown"
	}
	return weaponNames[w]
}

// ArmorID identifies an entry in the armor catalog.
type ArmorID uint8

const (
	ArmorCloth ArmorID = iota
	ArmorLeather
	ArmorChain
	ArmorPlate

	ArmorCount = int(ArmorPlate) + 1
)

var armorNames = [ArmorCount]string{"cloth", "leather", "chain", "plate"}

// String returns the catalog name of the armor.
func (a ArmorID) String() string {
	if int(a) >= ArmorCount {
		return "unknown"
	}
	return armorNames[a]
}

// StanceID identifies a fighting stance.
type StanceID uint8

const (
	StanceDefensive StanceID = iota
	StanceBalanced
	StanceOffensive

	StanceCount = int(StanceOffensive) + 1
)

var stanceNames = [StanceCount]string{"defensive", "balanced", "offensive"}

// String returns the catalog name of the stance.
func (s StanceID) String() string {
	if int(s) >= StanceCount {
		return "unknown"
	}
	return stanceNames[s]
}

// ShieldType определяет щит, прикреплённый к оружейному набору.
type ShieldType uint8

const (
	ShieldNone ShieldType = iota
	ShieldBuckler
	ShieldKite
	ShieldTower

	ShieldCount = int(ShieldTower) + 1
)

// String returns human-readable shield name.
func (s ShieldType) String() string {
	switch s {
	case ShieldNone:
		return "none"
	case ShieldBuckler:
		return "buckler"
	case ShieldKite:
		return "kite"
	case ShieldTower:
		return "tower"
	default:
		return "unknown"
	}
}

// DamageType is the primary or hybrid damage type of a weapon.
// Hybrid types are mitigated by the lower of their two component resistances.
type DamageType uint8

const (
	DamageSlashing DamageType = iota
	DamagePiercing
	DamageBlunt
	DamageSlashingPiercing
	DamageSlashingBlunt
	DamagePiercingBlunt
)

// String returns human-readable damage type name.
func (d DamageType) String() string {
	switch d {
	case DamageSlashing:
		return "slashing"
	case DamagePiercing:
		return "piercing"
	case DamageBlunt:
		return "blunt"
	case DamageSlashingPiercing:
		return "slashing/piercing"
	case DamageSlashingBlunt:
		return "slashing/blunt"
	case DamagePiercingBlunt:
		return "piercing/blunt"
	default:
		return "unknown"
	}
}
