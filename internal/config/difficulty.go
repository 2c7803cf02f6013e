package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a user-supplied name into a preset.
// The empty string selects normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(name))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyShooterPreset modifies the config based on a difficulty preset.
// Normal and fixed keep the loaded values. The shooter's own level curve is
// its progression, so presets only move the starting point.
func ApplyShooterPreset(cfg *ShooterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Player.MaxLives = max(cfg.Player.MaxLives, 5)
		cfg.Spawning.EnemyInterval *= 1.25
		cfg.Spawning.EnemyIntervalMin *= 1.25
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Spawning.EnemyInterval *= 0.8
		cfg.Spawning.EnemyIntervalMin *= 0.8
	}
}
