package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DuelSim holds all configuration for the duelsim tool.
type DuelSim struct {
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	// Duel parameters
	Lethality uint16 `yaml:"lethality" env:"LETHALITY"` // percent, 0 disables death
	BaseSeed  uint64 `yaml:"base_seed" env:"BASE_SEED"`
	BatchSize int    `yaml:"batch_size" env:"BATCH_SIZE"`
	Workers   int    `yaml:"workers" env:"WORKERS"` // 0 = NumCPU

	Fighter1 FighterConfig `yaml:"fighter1" envPrefix:"FIGHTER1_"`
	Fighter2 FighterConfig `yaml:"fighter2" envPrefix:"FIGHTER2_"`

	// Archive
	Database DatabaseConfig `yaml:"database" envPrefix:"DB_"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Enabled  bool   `yaml:"enabled" env:"ENABLED"`
	Host     string `yaml:"host" env:"HOST"`
	Port     int    `yaml:"port" env:"PORT"`
	User     string `yaml:"user" env:"USER"`
	Password string `yaml:"password" env:"PASSWORD"`
	DBName   string `yaml:"dbname" env:"NAME"`
	SSLMode  string `yaml:"sslmode" env:"SSLMODE"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultDuelSim returns DuelSim config with sensible defaults.
func DefaultDuelSim() DuelSim {
	return DuelSim{
		LogLevel:  "info",
		Lethality: 100,
		BatchSize: 1000,
		Fighter1: FighterConfig{
			Attributes: defaultAttributes(),
			Weapon:     "arming_sword_kite",
			Armor:      "chain",
			Stance:     "balanced",
		},
		Fighter2: FighterConfig{
			Attributes: defaultAttributes(),
			Weapon:     "greatsword",
			Armor:      "leather",
			Stance:     "offensive",
		},
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "la2duel",
			Password: "la2duel",
			DBName:   "la2duel",
			SSLMode:  "disable",
		},
	}
}

// LoadDuelSim loads duelsim config from a YAML file and applies DUELSIM_*
// environment overrides on top. If the file doesn't exist, defaults are used.
func LoadDuelSim(path string) (DuelSim, error) {
	cfg := DefaultDuelSim()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case !os.IsNotExist(err):
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "DUELSIM_"}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
