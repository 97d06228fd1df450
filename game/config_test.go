package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "skyline.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("DefaultConfig is invalid: %v", err)
	}
	if cfg.GroundLine() != 550 {
		t.Errorf("GroundLine = %v, want 550", cfg.GroundLine())
	}
	if cfg.TickDuration() != time.Second/60 {
		t.Errorf("TickDuration = %v", cfg.TickDuration())
	}
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ScreenWidth != 500 || cfg.TPS != 60 {
		t.Errorf("Expected defaults, got %dx tps=%d", cfg.ScreenWidth, cfg.TPS)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
tps: 30
explosionFrameDuration: 80ms
drainExplosions: false
difficulty:
  hard:
    gravity: 0.9
    enemySpawnInterval: 100
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.TPS != 30 {
		t.Errorf("TPS = %d, want 30", cfg.TPS)
	}
	if cfg.ExplosionFrameDuration != 80*time.Millisecond {
		t.Errorf("ExplosionFrameDuration = %v, want 80ms", cfg.ExplosionFrameDuration)
	}
	if cfg.DrainExplosions {
		t.Error("DrainExplosions should be false")
	}
	if cfg.ScreenHeight != 600 || cfg.JumpImpulse != -10 {
		t.Error("Unset fields must keep their defaults")
	}

	table, err := ProfilesFromConfig(cfg)
	if err != nil {
		t.Fatalf("ProfilesFromConfig failed: %v", err)
	}
	if hard := table.Lookup(DifficultyHard); hard.Gravity != 0.9 || hard.EnemySpawnInterval != 100 {
		t.Errorf("Hard override not applied: %+v", hard)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad yaml", "tps: [", "failed to parse"},
		{"negative tps", "tps: -1", "tps -1 must be positive"},
		{"unknown difficulty", "difficulty:\n  brutal:\n    gravity: 1\n", `unknown difficulty "brutal"`},
		{"loud music", "musicVolume: 2", "music volume"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("Expected an error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Error %q does not mention %q", err, tt.want)
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestValidateReportsEveryProblem(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TPS = 0
	cfg.ExplosionFrames = 0
	cfg.PlaneWidth = -1

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Expected an error")
	}
	for _, part := range []string{"tps", "explosion frames", "plane size"} {
		if !strings.Contains(err.Error(), part) {
			t.Errorf("Error %q does not mention %q", err, part)
		}
	}
}
