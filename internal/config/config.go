// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade.
package config

import (
	"errors"
	"fmt"
)

// ShooterConfig contains every tunable of the space shooter.
// Durations and intervals are in seconds, distances in playfield pixels.
type ShooterConfig struct {
	Playfield   ShooterPlayfield   `yaml:"playfield"`
	Player      ShooterPlayer      `yaml:"player"`
	Bullets     ShooterBullets     `yaml:"bullets"`
	Enemies     ShooterEnemies     `yaml:"enemies"`
	Boss        ShooterBoss        `yaml:"boss"`
	Spawning    ShooterSpawning    `yaml:"spawning"`
	PowerUps    ShooterPowerUps    `yaml:"powerups"`
	Progression ShooterProgression `yaml:"progression"`
}

// ShooterPlayfield defines the world surface.
type ShooterPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// TopExclusion is the fraction of the height the player may not enter.
	TopExclusion float64 `yaml:"top_exclusion"`
}

// ShooterPlayer defines the player ship.
type ShooterPlayer struct {
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Speed            float64 `yaml:"speed"`
	Lives            int     `yaml:"lives"`
	MaxLives         int     `yaml:"max_lives"`
	FireRate         float64 `yaml:"fire_rate"`
	RapidFireRate    float64 `yaml:"rapid_fire_rate"`
	HitInvincibility float64 `yaml:"hit_invincibility"`
}

// ShooterBullets defines projectile speeds.
type ShooterBullets struct {
	Speed      float64 `yaml:"speed"`
	RapidSpeed float64 `yaml:"rapid_speed"`
	EnemySpeed float64 `yaml:"enemy_speed"`
}

// EnemyStats are the base stats of one enemy kind at level 1.
type EnemyStats struct {
	Color       string  `yaml:"color"`
	Speed       float64 `yaml:"speed"`
	Points      int     `yaml:"points"`
	HP          int     `yaml:"hp"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	UnlockLevel int     `yaml:"unlock_level"`
	// FireInterval is only used by kinds that shoot.
	FireInterval float64 `yaml:"fire_interval,omitempty"`
}

// ShooterEnemies is the regular enemy catalog.
type ShooterEnemies struct {
	Basic   EnemyStats `yaml:"basic"`
	Fast    EnemyStats `yaml:"fast"`
	Tank    EnemyStats `yaml:"tank"`
	Zigzag  EnemyStats `yaml:"zigzag"`
	Shooter EnemyStats `yaml:"shooter"`
	// SpeedPerLevel is added to every regular enemy's speed per level above 1.
	SpeedPerLevel float64 `yaml:"speed_per_level"`
}

// ShooterBoss defines the milestone boss.
type ShooterBoss struct {
	EnemyStats     `yaml:",inline"`
	PointsPerLevel int     `yaml:"points_per_level"`
	HPPerLevel     int     `yaml:"hp_per_level"`
	MoveSpeed      float64 `yaml:"move_speed"`
	TopY           float64 `yaml:"top_y"`
	EveryNLevels   int     `yaml:"every_n_levels"`
	SpawnDelay     float64 `yaml:"spawn_delay"`
}

// ShooterSpawning defines spawner intervals.
type ShooterSpawning struct {
	EnemyInterval    float64 `yaml:"enemy_interval"`
	EnemyIntervalMin float64 `yaml:"enemy_interval_min"`
	EnemyIntervalCut float64 `yaml:"enemy_interval_cut"` // per level above 1
	PowerUpInterval  float64 `yaml:"powerup_interval"`
	StarInterval     float64 `yaml:"star_interval"`
}

// ShooterPowerUps defines pickup effects.
type ShooterPowerUps struct {
	Speed          float64 `yaml:"speed"`
	Size           float64 `yaml:"size"`
	WeaponDuration float64 `yaml:"weapon_duration"`
	ShieldDuration float64 `yaml:"shield_duration"`
	ScoreBonus     int     `yaml:"score_bonus"`
}

// ShooterProgression defines combo and level-up rules.
type ShooterProgression struct {
	BaseThreshold     int     `yaml:"base_threshold"`
	ThresholdPerLevel int     `yaml:"threshold_per_level"`
	LevelUpDisplay    float64 `yaml:"level_up_display"`
	ComboWindow       float64 `yaml:"combo_window"`
	ComboCap          int     `yaml:"combo_cap"`
}

// Validate rejects configurations the simulation cannot run with.
func (c ShooterConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	positive("playfield.width", c.Playfield.Width)
	positive("playfield.height", c.Playfield.Height)
	positive("player.width", c.Player.Width)
	positive("player.height", c.Player.Height)
	positive("player.lives", float64(c.Player.Lives))
	positive("player.fire_rate", c.Player.FireRate)
	positive("spawning.enemy_interval", c.Spawning.EnemyInterval)
	positive("spawning.enemy_interval_min", c.Spawning.EnemyIntervalMin)
	positive("spawning.powerup_interval", c.Spawning.PowerUpInterval)
	positive("spawning.star_interval", c.Spawning.StarInterval)
	positive("progression.combo_cap", float64(c.Progression.ComboCap))
	positive("boss.every_n_levels", float64(c.Boss.EveryNLevels))
	if c.Player.MaxLives < c.Player.Lives {
		errs = append(errs, fmt.Errorf("player.max_lives (%d) is below player.lives (%d)", c.Player.MaxLives, c.Player.Lives))
	}
	if c.Playfield.TopExclusion < 0 || c.Playfield.TopExclusion >= 1 {
		errs = append(errs, fmt.Errorf("playfield.top_exclusion must be in [0,1), got %v", c.Playfield.TopExclusion))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid shooter config: %w", err)
	}
	return nil
}
