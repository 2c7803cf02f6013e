package config

import (
	_ "embed"
)

//go:embed defaults/shooter.yaml
var defaultShooterYAML []byte

func stats(color string, speed float64, points, hp int, size float64, unlock int) EnemyStats {
	return EnemyStats{Color: color, Speed: speed, Points: points, HP: hp, Width: size, Height: size, UnlockLevel: unlock}
}

// DefaultShooterConfig returns the built-in Space Shooter configuration.
// It mirrors defaults/shooter.yaml and is used when the embed cannot be parsed.
func DefaultShooterConfig() ShooterConfig {
	shooter := stats("#44ffff", 80, 35, 2, 38, 5)
	shooter.FireInterval = 2.0

	return ShooterConfig{
		Playfield: ShooterPlayfield{Width: 800, Height: 600, TopExclusion: 0.3},
		Player: ShooterPlayer{
			Width:            40,
			Height:           40,
			Speed:            300,
			Lives:            3,
			MaxLives:         5,
			FireRate:         0.25,
			RapidFireRate:    0.1,
			HitInvincibility: 2.0,
		},
		Bullets: ShooterBullets{Speed: 500, RapidSpeed: 600, EnemySpeed: 180},
		Enemies: ShooterEnemies{
			Basic:         stats("#ff4444", 100, 10, 1, 36, 1),
			Fast:          stats("#44ff44", 200, 20, 1, 30, 2),
			Zigzag:        stats("#ff44ff", 120, 25, 2, 34, 3),
			Tank:          stats("#ff8800", 60, 30, 3, 44, 4),
			Shooter:       shooter,
			SpeedPerLevel: 8,
		},
		Boss: ShooterBoss{
			EnemyStats: EnemyStats{
				Color: "#ff0000", Speed: 30, Points: 200, HP: 20,
				Width: 80, Height: 60, FireInterval: 0.6,
			},
			PointsPerLevel: 50,
			HPPerLevel:     5,
			MoveSpeed:      80,
			TopY:           30,
			EveryNLevels:   3,
			SpawnDelay:     1.5,
		},
		Spawning: ShooterSpawning{
			EnemyInterval:    1.0,
			EnemyIntervalMin: 0.3,
			EnemyIntervalCut: 0.08,
			PowerUpInterval:  6.0,
			StarInterval:     0.15,
		},
		PowerUps: ShooterPowerUps{
			Speed:          80,
			Size:           24,
			WeaponDuration: 10,
			ShieldDuration: 5,
			ScoreBonus:     100,
		},
		Progression: ShooterProgression{
			BaseThreshold:     15,
			ThresholdPerLevel: 5,
			LevelUpDisplay:    2.5,
			ComboWindow:       1.5,
			ComboCap:          5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "space-shooter":
		return defaultShooterYAML
	default:
		return nil
	}
}
