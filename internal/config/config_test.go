package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchBuiltins(t *testing.T) {
	cfg := DefaultShooterConfig()
	if err := yaml.Unmarshal(GetDefaultYAML("space-shooter"), &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultShooterConfig()) {
		t.Errorf("embedded yaml drifted from DefaultShooterConfig:\n got %+v\nwant %+v", cfg, DefaultShooterConfig())
	}
}

func TestDefaultsValidate(t *testing.T) {
	if err := DefaultShooterConfig().Validate(); err != nil {
		t.Fatalf("defaults should validate: %v", err)
	}
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ShooterConfig)
	}{
		{"zero width", func(c *ShooterConfig) { c.Playfield.Width = 0 }},
		{"no lives", func(c *ShooterConfig) { c.Player.Lives = 0 }},
		{"max below lives", func(c *ShooterConfig) { c.Player.MaxLives = 1 }},
		{"negative star interval", func(c *ShooterConfig) { c.Spawning.StarInterval = -1 }},
		{"exclusion out of range", func(c *ShooterConfig) { c.Playfield.TopExclusion = 1 }},
		{"boss never", func(c *ShooterConfig) { c.Boss.EveryNLevels = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultShooterConfig()
			tc.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestLoadShooterCustomPathPartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shooter.yaml")
	data := []byte("player:\n  lives: 4\nenemies:\n  basic:\n    points: 15\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadShooter(path)
	if err != nil {
		t.Fatalf("LoadShooter: %v", err)
	}
	if cfg.Player.Lives != 4 {
		t.Errorf("lives = %d, expected 4", cfg.Player.Lives)
	}
	if cfg.Enemies.Basic.Points != 15 {
		t.Errorf("basic points = %d, expected 15", cfg.Enemies.Basic.Points)
	}
	if cfg.Player.Speed != 300 {
		t.Errorf("untouched keys should keep defaults, speed = %v", cfg.Player.Speed)
	}
}

func TestLoadShooterCustomPathErrors(t *testing.T) {
	if _, err := LoadShooter(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom path should fail")
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("player: [oops"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadShooter(bad); err == nil {
		t.Error("malformed yaml should fail")
	}

	invalid := filepath.Join(t.TempDir(), "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("player:\n  lives: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadShooter(invalid); err == nil {
		t.Error("invalid values should fail validation")
	}
}

func TestParsePreset(t *testing.T) {
	tests := []struct {
		in      string
		want    DifficultyPreset
		wantErr bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{" HARD ", DifficultyHard, false},
		{"fixed", DifficultyFixed, false},
		{"nightmare", "", true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParsePreset(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParsePreset(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if got != tc.want {
				t.Errorf("ParsePreset(%q) = %q, expected %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestApplyShooterPreset(t *testing.T) {
	base := DefaultShooterConfig()

	easy := DefaultShooterConfig()
	ApplyShooterPreset(&easy, DifficultyEasy)
	if easy.Player.Lives != 5 || easy.Spawning.EnemyInterval <= base.Spawning.EnemyInterval {
		t.Errorf("easy preset: lives=%d interval=%v", easy.Player.Lives, easy.Spawning.EnemyInterval)
	}
	if err := easy.Validate(); err != nil {
		t.Errorf("easy preset should stay valid: %v", err)
	}

	hard := DefaultShooterConfig()
	ApplyShooterPreset(&hard, DifficultyHard)
	if hard.Player.Lives != 2 || hard.Spawning.EnemyInterval >= base.Spawning.EnemyInterval {
		t.Errorf("hard preset: lives=%d interval=%v", hard.Player.Lives, hard.Spawning.EnemyInterval)
	}

	normal := DefaultShooterConfig()
	ApplyShooterPreset(&normal, DifficultyNormal)
	if !reflect.DeepEqual(normal, base) {
		t.Error("normal preset should not change the config")
	}
}
