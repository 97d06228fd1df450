package game

import (
	"errors"
	"fmt"
	"math/rand"
)

// Spawner emits buildings and enemies on independent intervals of one tick counter
type Spawner struct {
	counter int

	buildingInterval int
	enemyInterval    int
	buildingSpeed    float64
	enemySpeed       float64

	// Building heights are sampled in [minHeight, maxHeight]
	minHeight, maxHeight int

	// Enemy top edges are sampled in [minEnemyY, maxEnemyY]
	minEnemyY, maxEnemyY int

	spawnX        float64
	groundLine    float64
	buildingWidth float64
	enemySize     float64

	rng *rand.Rand
}

// Spawned holds what one tick produced; either field may be nil
type Spawned struct {
	Building *Building
	Enemy    *Enemy
}

// NewSpawner creates a spawner for a round. Inconsistent parameters are rejected.
func NewSpawner(cfg Config, profile Profile, rng *rand.Rand) (*Spawner, error) {
	if err := profile.Validate(cfg); err != nil {
		return nil, fmt.Errorf("spawner: %w", err)
	}
	if rng == nil {
		return nil, errors.New("spawner: nil random source")
	}

	groundLine := cfg.GroundLine()
	minEnemyY := int(cfg.EnemyMargin)
	maxEnemyY := int(groundLine - cfg.EnemyMargin)
	if minEnemyY > maxEnemyY {
		return nil, fmt.Errorf("spawner: enemy band [%d, %d] is empty", minEnemyY, maxEnemyY)
	}

	return &Spawner{
		buildingInterval: profile.BuildingSpawnInterval,
		enemyInterval:    profile.EnemySpawnInterval,
		buildingSpeed:    profile.BuildingSpeed,
		enemySpeed:       profile.EnemySpeed,
		minHeight:        int(cfg.MinBuildingHeight),
		maxHeight:        int(profile.MaxBuildingHeight),
		minEnemyY:        minEnemyY,
		maxEnemyY:        maxEnemyY,
		spawnX:           float64(cfg.ScreenWidth),
		groundLine:       groundLine,
		buildingWidth:    cfg.BuildingWidth,
		enemySize:        cfg.EnemySize,
		rng:              rng,
	}, nil
}

// Counter returns the current tick counter
func (s *Spawner) Counter() int {
	return s.counter
}

// Spawn emits the entities due at the current counter. The counter starts at 0,
// so the first tick produces one of each.
func (s *Spawner) Spawn() Spawned {
	var out Spawned
	if s.counter%s.buildingInterval == 0 {
		out.Building = s.newBuilding()
	}
	if s.counter%s.enemyInterval == 0 {
		out.Enemy = s.newEnemy()
	}
	return out
}

// Advance moves the counter to the next tick
func (s *Spawner) Advance() {
	s.counter++
}

func (s *Spawner) newBuilding() *Building {
	height := float64(s.uniform(s.minHeight, s.maxHeight))
	return &Building{
		Rect: Rect{
			X: s.spawnX,
			Y: s.groundLine - height,
			W: s.buildingWidth,
			H: height,
		},
		Speed: s.buildingSpeed,
	}
}

func (s *Spawner) newEnemy() *Enemy {
	return &Enemy{
		Rect: Rect{
			X: s.spawnX,
			Y: float64(s.uniform(s.minEnemyY, s.maxEnemyY)),
			W: s.enemySize,
			H: s.enemySize,
		},
		Speed: s.enemySpeed,
	}
}

// uniform returns an integer in [lo, hi]
func (s *Spawner) uniform(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}
