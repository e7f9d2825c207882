package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) error: %v", err)
	}
	if cfg != DefaultDodgeConfig() {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultDodgeConfig())
	}
}

func TestDefaultGameValues(t *testing.T) {
	cfg := DefaultDodgeConfig()

	if cfg.World.Width != 800 || cfg.World.Height != 600 || cfg.World.GravityY != 200 {
		t.Errorf("world = %+v", cfg.World)
	}
	if cfg.Player.X != 400 || cfg.Player.Y != 550 || cfg.Player.Speed != 160 {
		t.Errorf("player = %+v", cfg.Player)
	}
	if cfg.Obstacles.MinVX != -200 || cfg.Obstacles.MaxVX != 200 || cfg.Obstacles.VY != 20 || cfg.Obstacles.Bounce != 1 {
		t.Errorf("obstacles = %+v", cfg.Obstacles)
	}
	if cfg.Spawner.Interval() != time.Second || cfg.Spawner.ScoreIncrement != 10 {
		t.Errorf("spawner = %+v", cfg.Spawner)
	}
	if cfg.Difficulty.Enabled {
		t.Error("difficulty should be disabled by default")
	}
}

func TestLoadCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dodge.yaml")
	data := []byte("spawner:\n  interval_ms: 500\nplayer:\n  speed: 200\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Spawner.IntervalMS != 500 {
		t.Errorf("IntervalMS = %d, want 500", cfg.Spawner.IntervalMS)
	}
	if cfg.Player.Speed != 200 {
		t.Errorf("Speed = %v, want 200", cfg.Player.Speed)
	}
	// Untouched keys keep defaults.
	if cfg.Spawner.ScoreIncrement != 10 || cfg.World.Width != 800 {
		t.Errorf("defaults lost: %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) should fail")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load(malformed) should fail")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("spawner:\n  interval_ms: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(invalid); err == nil {
		t.Error("Load(interval 0) should fail validation")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in   string
		want DifficultyPreset
		ok   bool
	}{
		{"easy", DifficultyEasy, true},
		{"normal", DifficultyNormal, true},
		{"hard", DifficultyHard, true},
		{"fixed", DifficultyFixed, true},
		{"", DifficultyFixed, true},
		{"insane", "", false},
	}
	for _, tt := range tests {
		got, ok := ParsePreset(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParsePreset(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultDodgeConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset: %+v", cfg.Difficulty)
	}

	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}

func TestDifficultyDisabledKeepsBaseValues(t *testing.T) {
	cfg := DefaultDodgeConfig().Difficulty
	cfg.InitialLevel = 0.9
	d := NewDifficultyManager(cfg)

	if got := d.Speed(200, 10000, time.Hour); got != 200 {
		t.Errorf("Speed = %v, want 200", got)
	}
	if got := d.Interval(time.Second, 10000, time.Hour); got != time.Second {
		t.Errorf("Interval = %v, want 1s", got)
	}
}

func TestDifficultyScoreProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 100},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0, IntervalReduction: 500, MinSpawnIntervalMS: 300},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		score        int
		wantLevel    float64
		wantSpeed    float64
		wantInterval time.Duration
	}{
		{0, 0, 20, time.Second},
		{50, 0.5, 30, 750 * time.Millisecond},
		{100, 1, 40, 500 * time.Millisecond},
		{1000, 1, 40, 500 * time.Millisecond},
	}
	for _, tt := range tests {
		if got := d.Level(tt.score, 0); got != tt.wantLevel {
			t.Errorf("Level(%d) = %v, want %v", tt.score, got, tt.wantLevel)
		}
		if got := d.Speed(20, tt.score, 0); got != tt.wantSpeed {
			t.Errorf("Speed(%d) = %v, want %v", tt.score, got, tt.wantSpeed)
		}
		if got := d.Interval(time.Second, tt.score, 0); got != tt.wantInterval {
			t.Errorf("Interval(%d) = %v, want %v", tt.score, got, tt.wantInterval)
		}
	}
}

func TestDifficultyIntervalFloor(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 10},
		Scaling:     ScalingConfig{IntervalReduction: 900, MinSpawnIntervalMS: 400},
	}
	d := NewDifficultyManager(cfg)

	if got := d.Interval(time.Second, 0, 20*time.Second); got != 400*time.Millisecond {
		t.Errorf("Interval = %v, want 400ms floor", got)
	}
	if d.Level(0, 5*time.Second) != 0.5 {
		t.Errorf("Level at half time = %v, want 0.5", d.Level(0, 5*time.Second))
	}
}
