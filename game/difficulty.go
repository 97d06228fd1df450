package game

import (
	"fmt"
	"strings"
)

// Difficulty identifies a named preset
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyMedium
	DifficultyHard
	DifficultyCount // Total number of presets
)

// String returns the display name of the difficulty
func (d Difficulty) String() string {
	switch d {
	case DifficultyEasy:
		return "Easy"
	case DifficultyMedium:
		return "Medium"
	case DifficultyHard:
		return "Hard"
	default:
		return fmt.Sprintf("Difficulty(%d)", int(d))
	}
}

// ParseDifficulty maps a case-insensitive name to a difficulty
func ParseDifficulty(name string) (Difficulty, bool) {
	for d := DifficultyEasy; d < DifficultyCount; d++ {
		if strings.EqualFold(name, d.String()) {
			return d, true
		}
	}
	return DifficultyEasy, false
}

// Profile holds the physics of a round. It is a plain value; a round keeps its own copy.
type Profile struct {
	Name                  string
	Gravity               float64 // added to plane velocity each tick
	BuildingSpeed         float64 // pixels per tick, leftward
	EnemySpeed            float64 // pixels per tick, leftward
	BuildingSpawnInterval int     // ticks between buildings
	EnemySpawnInterval    int     // ticks between enemies
	MaxBuildingHeight     float64
}

// ProfileOverride replaces the non-nil fields of a preset
type ProfileOverride struct {
	Gravity               *float64 `yaml:"gravity"`
	BuildingSpeed         *float64 `yaml:"buildingSpeed"`
	EnemySpeed            *float64 `yaml:"enemySpeed"`
	BuildingSpawnInterval *int     `yaml:"buildingSpawnInterval"`
	EnemySpawnInterval    *int     `yaml:"enemySpawnInterval"`
	MaxBuildingHeight     *float64 `yaml:"maxBuildingHeight"`
}

func (o ProfileOverride) apply(p Profile) Profile {
	if o.Gravity != nil {
		p.Gravity = *o.Gravity
	}
	if o.BuildingSpeed != nil {
		p.BuildingSpeed = *o.BuildingSpeed
	}
	if o.EnemySpeed != nil {
		p.EnemySpeed = *o.EnemySpeed
	}
	if o.BuildingSpawnInterval != nil {
		p.BuildingSpawnInterval = *o.BuildingSpawnInterval
	}
	if o.EnemySpawnInterval != nil {
		p.EnemySpawnInterval = *o.EnemySpawnInterval
	}
	if o.MaxBuildingHeight != nil {
		p.MaxBuildingHeight = *o.MaxBuildingHeight
	}
	return p
}

// ProfileTable is the fixed lookup of presets
type ProfileTable [DifficultyCount]Profile

// DefaultProfiles returns the built-in presets for a screen of the given config
func DefaultProfiles(cfg Config) ProfileTable {
	h := float64(cfg.ScreenHeight)
	return ProfileTable{
		DifficultyEasy: {
			Name:                  "Easy",
			Gravity:               0.5,
			BuildingSpeed:         3,
			EnemySpeed:            4,
			BuildingSpawnInterval: 120,
			EnemySpawnInterval:    180,
			MaxBuildingHeight:     h - h/2,
		},
		DifficultyMedium: {
			Name:                  "Medium",
			Gravity:               0.6,
			BuildingSpeed:         4,
			EnemySpeed:            5,
			BuildingSpawnInterval: 100,
			EnemySpawnInterval:    160,
			MaxBuildingHeight:     h - 350,
		},
		DifficultyHard: {
			Name:                  "Hard",
			Gravity:               0.7,
			BuildingSpeed:         5,
			EnemySpeed:            6,
			BuildingSpawnInterval: 80,
			EnemySpawnInterval:    140,
			MaxBuildingHeight:     h - 160,
		},
	}
}

// ProfilesFromConfig returns the presets with the config's difficulty overrides applied
func ProfilesFromConfig(cfg Config) (ProfileTable, error) {
	table := DefaultProfiles(cfg)
	for name, override := range cfg.Difficulty {
		d, ok := ParseDifficulty(name)
		if !ok {
			return table, fmt.Errorf("unknown difficulty %q", name)
		}
		table[d] = override.apply(table[d])
	}
	for d := DifficultyEasy; d < DifficultyCount; d++ {
		if err := table[d].Validate(cfg); err != nil {
			return table, fmt.Errorf("difficulty %s: %w", d, err)
		}
	}
	return table, nil
}

// Lookup returns a copy of the preset for d. It panics on an unknown preset;
// callers get d from ParseDifficulty or the menu.
func (t ProfileTable) Lookup(d Difficulty) Profile {
	if d < DifficultyEasy || d >= DifficultyCount {
		panic(fmt.Sprintf("difficulty: unknown preset %d", int(d)))
	}
	return t[d]
}

// Validate checks that a profile can drive a spawner on the given screen
func (p Profile) Validate(cfg Config) error {
	if p.BuildingSpawnInterval <= 0 || p.EnemySpawnInterval <= 0 {
		return fmt.Errorf("spawn intervals %d/%d must be positive", p.BuildingSpawnInterval, p.EnemySpawnInterval)
	}
	if cfg.MinBuildingHeight > p.MaxBuildingHeight {
		return fmt.Errorf("min building height %.0f exceeds max %.0f", cfg.MinBuildingHeight, p.MaxBuildingHeight)
	}
	if p.MaxBuildingHeight > cfg.GroundLine() {
		return fmt.Errorf("max building height %.0f exceeds ground line %.0f", p.MaxBuildingHeight, cfg.GroundLine())
	}
	return nil
}
