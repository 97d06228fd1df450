package game

import "testing"

func TestDefaultProfiles(t *testing.T) {
	table := DefaultProfiles(DefaultConfig())
	tests := []struct {
		d                 Difficulty
		gravity           float64
		buildingSpeed     float64
		enemySpeed        float64
		buildingInterval  int
		enemyInterval     int
		maxBuildingHeight float64
	}{
		{DifficultyEasy, 0.5, 3, 4, 120, 180, 300},
		{DifficultyMedium, 0.6, 4, 5, 100, 160, 250},
		{DifficultyHard, 0.7, 5, 6, 80, 140, 440},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			p := table.Lookup(tt.d)
			if p.Name != tt.d.String() {
				t.Errorf("Name = %q", p.Name)
			}
			if p.Gravity != tt.gravity || p.BuildingSpeed != tt.buildingSpeed || p.EnemySpeed != tt.enemySpeed {
				t.Errorf("Physics = %v/%v/%v", p.Gravity, p.BuildingSpeed, p.EnemySpeed)
			}
			if p.BuildingSpawnInterval != tt.buildingInterval || p.EnemySpawnInterval != tt.enemyInterval {
				t.Errorf("Intervals = %d/%d", p.BuildingSpawnInterval, p.EnemySpawnInterval)
			}
			if p.MaxBuildingHeight != tt.maxBuildingHeight {
				t.Errorf("MaxBuildingHeight = %v, want %v", p.MaxBuildingHeight, tt.maxBuildingHeight)
			}
			if err := p.Validate(DefaultConfig()); err != nil {
				t.Errorf("Built-in preset is invalid: %v", err)
			}
		})
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	table := DefaultProfiles(DefaultConfig())
	p := table.Lookup(DifficultyHard)
	p.Gravity = 99

	if table.Lookup(DifficultyHard).Gravity != 0.7 {
		t.Error("Modifying a looked-up profile changed the table")
	}
}

func TestLookupPanicsOnUnknownPreset(t *testing.T) {
	table := DefaultProfiles(DefaultConfig())
	for _, d := range []Difficulty{-1, DifficultyCount, 7} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Lookup(%d) should panic", int(d))
				}
			}()
			table.Lookup(d)
		}()
	}
}

// Switching presets between rounds must not leak physics from the previous one
func TestDifficultySwitchRoundTrip(t *testing.T) {
	cfg := DefaultConfig()
	ctx := &SessionContext{}

	first := newTestRound(t, cfg, DifficultyEasy, ctx)
	medium := newTestRound(t, cfg, DifficultyMedium, ctx)
	again := newTestRound(t, cfg, DifficultyEasy, ctx)

	if medium.Profile() == first.Profile() {
		t.Fatal("Medium should differ from Easy")
	}
	if again.Profile() != first.Profile() {
		t.Errorf("Easy after Medium = %+v, want %+v", again.Profile(), first.Profile())
	}
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		name string
		want Difficulty
		ok   bool
	}{
		{"easy", DifficultyEasy, true},
		{"Medium", DifficultyMedium, true},
		{"HARD", DifficultyHard, true},
		{"insane", DifficultyEasy, false},
		{"", DifficultyEasy, false},
	}
	for _, tt := range tests {
		got, ok := ParseDifficulty(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseDifficulty(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}

func TestProfilesFromConfigOverrides(t *testing.T) {
	gravity := 0.9
	interval := 50
	cfg := DefaultConfig()
	cfg.Difficulty = map[string]ProfileOverride{
		"hard": {Gravity: &gravity, EnemySpawnInterval: &interval},
	}

	table, err := ProfilesFromConfig(cfg)
	if err != nil {
		t.Fatalf("ProfilesFromConfig failed: %v", err)
	}
	hard := table.Lookup(DifficultyHard)
	if hard.Gravity != 0.9 || hard.EnemySpawnInterval != 50 {
		t.Errorf("Override not applied: %+v", hard)
	}
	if hard.BuildingSpeed != 5 {
		t.Errorf("Unset fields must keep the preset value, building speed %v", hard.BuildingSpeed)
	}
	if table.Lookup(DifficultyEasy) != DefaultProfiles(cfg).Lookup(DifficultyEasy) {
		t.Error("Other presets must be unchanged")
	}
}

func TestProfilesFromConfigRejectsInvalid(t *testing.T) {
	zero := 0
	tall := 1000.0
	tests := []struct {
		name      string
		overrides map[string]ProfileOverride
	}{
		{"unknown name", map[string]ProfileOverride{"nightmare": {}}},
		{"zero interval", map[string]ProfileOverride{"easy": {BuildingSpawnInterval: &zero}}},
		{"too tall", map[string]ProfileOverride{"medium": {MaxBuildingHeight: &tall}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Difficulty = tt.overrides
			if _, err := ProfilesFromConfig(cfg); err == nil {
				t.Error("Expected an error")
			}
		})
	}
}
