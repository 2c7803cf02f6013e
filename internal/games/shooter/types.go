package shooter

import (
	"image/color"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

// Weapon is the player's current firing pattern.
type Weapon int

const (
	WeaponSingle Weapon = iota
	WeaponDouble
	WeaponTriple
	WeaponSpread
	WeaponRapid
)

func (w Weapon) String() string {
	switch w {
	case WeaponSingle:
		return "SINGLE"
	case WeaponDouble:
		return "DOUBLE"
	case WeaponTriple:
		return "TRIPLE"
	case WeaponSpread:
		return "SPREAD"
	case WeaponRapid:
		return "RAPID"
	default:
		return "UNKNOWN"
	}
}

// EnemyKind tags an enemy's shape and behavior.
type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyFast
	EnemyTank
	EnemyZigzag
	EnemyShooter
	EnemyBoss
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyBasic:
		return "basic"
	case EnemyFast:
		return "fast"
	case EnemyTank:
		return "tank"
	case EnemyZigzag:
		return "zigzag"
	case EnemyShooter:
		return "shooter"
	case EnemyBoss:
		return "boss"
	default:
		return "unknown"
	}
}

// PowerUpKind is a pickup type.
type PowerUpKind int

const (
	PowerDouble PowerUpKind = iota
	PowerTriple
	PowerSpread
	PowerRapid
	PowerHeal
	PowerShield
	PowerScore
	powerUpKinds // count
)

type powerUpInfo struct {
	Label string
	Desc  string
	Color color.RGBA
}

var powerUpCatalog = [powerUpKinds]powerUpInfo{
	PowerDouble: {"D", "Double Shot", core.Hex("#00ffff")},
	PowerTriple: {"T", "Triple Shot", core.Hex("#ff00ff")},
	PowerSpread: {"S", "Spread Shot", core.Hex("#ffaa00")},
	PowerRapid:  {"R", "Rapid Fire", core.Hex("#ff4444")},
	PowerHeal:   {"+", "Extra Life", core.Hex("#44ff44")},
	PowerShield: {"I", "Shield", core.Hex("#8888ff")},
	PowerScore:  {"$", "+100 Points", core.Hex("#ffff00")},
}

// Info returns the label, description and color of a pickup.
func (k PowerUpKind) Info() (label, desc string, c color.RGBA) {
	if k < 0 || k >= powerUpKinds {
		return "?", "Unknown", core.Hex("#ffffff")
	}
	i := powerUpCatalog[k]
	return i.Label, i.Desc, i.Color
}

// weapon returns the weapon a pickup grants, if any.
func (k PowerUpKind) weapon() (Weapon, bool) {
	switch k {
	case PowerDouble:
		return WeaponDouble, true
	case PowerTriple:
		return WeaponTriple, true
	case PowerSpread:
		return WeaponSpread, true
	case PowerRapid:
		return WeaponRapid, true
	default:
		return WeaponSingle, false
	}
}

// Player is the ship. LastShot is in session seconds.
type Player struct {
	core.Box
	Speed           float64
	Lives           int
	MaxLives        int
	Invincible      bool
	InvincibleTimer float64
	Weapon          Weapon
	WeaponTimer     float64
	LastShot        float64
	Color           color.RGBA
}

// Bullet is a player or enemy projectile.
type Bullet struct {
	core.Box
	VX, VY float64
	Color  color.RGBA
}

// ZigzagMotion is the payload of EnemyZigzag.
type ZigzagMotion struct {
	Phase     float64
	Amplitude float64
	BaseX     float64
}

// Gun is the payload of enemies that shoot back.
type Gun struct {
	Interval float64
	LastShot float64
}

// Enemy is a hostile ship. Only the payload matching Kind is meaningful.
type Enemy struct {
	core.Box
	Kind   EnemyKind
	Speed  float64
	HP     int
	MaxHP  int
	Points int
	Color  color.RGBA

	Zigzag ZigzagMotion // EnemyZigzag
	Gun    Gun          // EnemyShooter, EnemyBoss
	Dir    float64      // EnemyBoss: +1 right, -1 left
}

// PowerUp drifts down until collected or lost.
type PowerUp struct {
	core.Box
	Kind     PowerUpKind
	Speed    float64
	BobPhase float64
}

// Star is background decoration.
type Star struct {
	X, Y       float64
	Size       float64
	Speed      float64
	Brightness float64
}

// Particle is a cosmetic spark.
type Particle struct {
	X, Y    float64
	VX, VY  float64
	Life    float64
	MaxLife float64
	Size    float64
	Color   color.RGBA
}

// DamageNumber is floating feedback text.
type DamageNumber struct {
	X, Y  float64
	VY    float64
	Life  float64
	Text  string
	Color color.RGBA
}
