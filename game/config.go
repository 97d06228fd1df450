package game

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds game configuration constants
type Config struct {
	// ScreenWidth is the window width in pixels
	ScreenWidth int `yaml:"screenWidth"`

	// ScreenHeight is the window height in pixels
	ScreenHeight int `yaml:"screenHeight"`

	// GroundHeight is the height of the ground strip at the bottom of the screen
	GroundHeight float64 `yaml:"groundHeight"`

	// TPS is the fixed simulation rate (one tick per rendered frame)
	TPS int `yaml:"tps"`

	// Plane spawn center and size
	PlaneStartX float64 `yaml:"planeStartX"`
	PlaneStartY float64 `yaml:"planeStartY"`
	PlaneWidth  float64 `yaml:"planeWidth"`
	PlaneHeight float64 `yaml:"planeHeight"`

	// JumpImpulse is the vertical velocity set on a jump (negative is up)
	JumpImpulse float64 `yaml:"jumpImpulse"`

	// Bullet geometry and rightward speed in pixels per tick
	BulletSpeed  float64 `yaml:"bulletSpeed"`
	BulletWidth  float64 `yaml:"bulletWidth"`
	BulletHeight float64 `yaml:"bulletHeight"`

	// BuildingWidth is the width of every building
	BuildingWidth float64 `yaml:"buildingWidth"`

	// MinBuildingHeight is the lower bound of sampled building heights
	MinBuildingHeight float64 `yaml:"minBuildingHeight"`

	// EnemySize is the side of the square enemy hitbox
	EnemySize float64 `yaml:"enemySize"`

	// EnemyMargin keeps spawned enemies away from the top and the ground
	EnemyMargin float64 `yaml:"enemyMargin"`

	// Explosion animation
	ExplosionSize          float64       `yaml:"explosionSize"`
	ExplosionFrames        int           `yaml:"explosionFrames"`
	ExplosionFrameDuration time.Duration `yaml:"explosionFrameDuration"`

	// DrainExplosions keeps animating explosions after a fatal collision
	// before the defeat screen is shown
	DrainExplosions bool `yaml:"drainExplosions"`

	// MusicVolume is the unmuted background track volume
	MusicVolume float64 `yaml:"musicVolume"`

	// AssetsDir is searched for image and sound files; missing files are generated
	AssetsDir string `yaml:"assetsDir"`

	// Difficulty overrides preset fields by name (easy, medium, hard)
	Difficulty map[string]ProfileOverride `yaml:"difficulty"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:            500,
		ScreenHeight:           600,
		GroundHeight:           50,
		TPS:                    60,
		PlaneStartX:            100,
		PlaneStartY:            300,
		PlaneWidth:             50,
		PlaneHeight:            35,
		JumpImpulse:            -10,
		BulletSpeed:            10,
		BulletWidth:            10,
		BulletHeight:           5,
		BuildingWidth:          80,
		MinBuildingHeight:      100,
		EnemySize:              50,
		EnemyMargin:            50,
		ExplosionSize:          120,
		ExplosionFrames:        12,
		ExplosionFrameDuration: 50 * time.Millisecond,
		DrainExplosions:        true,
		MusicVolume:            0.5,
		AssetsDir:              "assets",
	}
}

// GroundLine returns the Y coordinate of the top of the ground
func (c Config) GroundLine() float64 {
	return float64(c.ScreenHeight) - c.GroundHeight
}

// TickDuration returns the simulated time covered by one tick
func (c Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

// Validate rejects configurations the simulation cannot run with
func (c Config) Validate() error {
	var errs []error
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size %dx%d must be positive", c.ScreenWidth, c.ScreenHeight))
	}
	if c.GroundHeight < 0 || c.GroundHeight >= float64(c.ScreenHeight) {
		errs = append(errs, fmt.Errorf("ground height %.0f out of range", c.GroundHeight))
	}
	if c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps %d must be positive", c.TPS))
	}
	if c.PlaneWidth <= 0 || c.PlaneHeight <= 0 {
		errs = append(errs, errors.New("plane size must be positive"))
	}
	if c.BuildingWidth <= 0 || c.EnemySize <= 0 || c.BulletWidth <= 0 || c.BulletHeight <= 0 {
		errs = append(errs, errors.New("entity sizes must be positive"))
	}
	if c.MinBuildingHeight < 0 {
		errs = append(errs, fmt.Errorf("min building height %.0f must not be negative", c.MinBuildingHeight))
	}
	if c.ExplosionFrames <= 0 {
		errs = append(errs, fmt.Errorf("explosion frames %d must be positive", c.ExplosionFrames))
	}
	if c.ExplosionFrameDuration <= 0 {
		errs = append(errs, errors.New("explosion frame duration must be positive"))
	}
	if c.MusicVolume < 0 || c.MusicVolume > 1 {
		errs = append(errs, fmt.Errorf("music volume %.2f out of [0,1]", c.MusicVolume))
	}
	for name := range c.Difficulty {
		if _, ok := ParseDifficulty(name); !ok {
			errs = append(errs, fmt.Errorf("unknown difficulty %q", name))
		}
	}
	return errors.Join(errs...)
}

// LoadConfig reads a YAML file over DefaultConfig. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}
