package shooter

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot is a primitive-only view of the simulation for determinism
// checks. Positions are stored in hundredths of a world unit.
type Snapshot struct {
	Now   int // milliseconds of running time
	State string

	PlayerX, PlayerY int
	Lives            int
	Weapon           int
	Invincible       bool

	Score       int
	HighScore   int
	Level       int
	Killed      int
	NextLevelAt int
	Combo       int

	// Enemies are flattened as 4 ints each: Kind, X, Y, HP.
	EnemyCount int
	EnemyData  []int

	BulletCount      int
	EnemyBulletCount int
	PowerUpCount     int
	PendingEvents    int
}

func centi(v float64) int {
	return int(math.Round(v * 100))
}

// Snapshot captures the current simulation state.
func (s *Session) Snapshot() Snapshot {
	enemyData := make([]int, 0, len(s.enemies)*4)
	for _, e := range s.enemies {
		enemyData = append(enemyData, int(e.Kind), centi(e.X), centi(e.Y), e.HP)
	}

	return Snapshot{
		Now:   int(math.Round(s.now * 1000)),
		State: s.state.String(),

		PlayerX:    centi(s.player.X),
		PlayerY:    centi(s.player.Y),
		Lives:      s.player.Lives,
		Weapon:     int(s.player.Weapon),
		Invincible: s.player.Invincible,

		Score:       s.score,
		HighScore:   s.highScore,
		Level:       s.level,
		Killed:      s.killed,
		NextLevelAt: s.nextLevelAt,
		Combo:       s.combo,

		EnemyCount: len(s.enemies),
		EnemyData:  enemyData,

		BulletCount:      len(s.bullets),
		EnemyBulletCount: len(s.enemyBullets),
		PowerUpCount:     len(s.powerUps),
		PendingEvents:    s.events.pending(),
	}
}

// Hash returns an FNV-1a digest of the snapshot.
func (snap Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash input
		_, _ = h.Write(buf[:])
	}

	put(snap.Now)
	_, _ = h.Write([]byte(snap.State))
	put(snap.PlayerX)
	put(snap.PlayerY)
	put(snap.Lives)
	put(snap.Weapon)
	if snap.Invincible {
		put(1)
	} else {
		put(0)
	}
	put(snap.Score)
	put(snap.HighScore)
	put(snap.Level)
	put(snap.Killed)
	put(snap.NextLevelAt)
	put(snap.Combo)
	put(snap.EnemyCount)
	for _, v := range snap.EnemyData {
		put(v)
	}
	put(snap.BulletCount)
	put(snap.EnemyBulletCount)
	put(snap.PowerUpCount)
	put(snap.PendingEvents)
	return h.Sum64()
}
