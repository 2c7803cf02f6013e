package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
)

// BestScore returns the stored best score under key, or 0 if none.
func (s *Store) BestScore(key string) (int, error) {
	var score int
	err := s.db.QueryRow("SELECT score FROM best_scores WHERE key = ?", key).Scan(&score)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return score, nil
}

// SetBestScore stores score under key, replacing any previous value.
func (s *Store) SetBestScore(key string, score int) error {
	_, err := s.db.Exec(
		`INSERT INTO best_scores (key, score, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET score = excluded.score, updated_at = excluded.updated_at`,
		key, score,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save best score: %w", err)
	}
	return nil
}

// SQLiteBestScore is a single best-score slot in a Store.
// Failures are logged and swallowed: reads fall back to 0.
type SQLiteBestScore struct {
	store  *Store
	key    string
	logger *log.Logger
}

// NewSQLiteBestScore binds key in store. A nil logger discards.
func NewSQLiteBestScore(store *Store, key string, logger *log.Logger) *SQLiteBestScore {
	return &SQLiteBestScore{store: store, key: key, logger: orDiscard(logger)}
}

// Read returns the stored best score, 0 on any failure.
func (b *SQLiteBestScore) Read() int {
	score, err := b.store.BestScore(b.key)
	if err != nil {
		b.logger.Warn("best score read failed", "key", b.key, "err", err)
		return 0
	}
	return score
}

// Write stores score.
func (b *SQLiteBestScore) Write(score int) {
	if err := b.store.SetBestScore(b.key, score); err != nil {
		b.logger.Warn("best score write failed", "key", b.key, "err", err)
	}
}

// MemoryBestScore keeps the best score for the life of the process.
type MemoryBestScore struct {
	mu    sync.Mutex
	score int
}

// NewMemoryBestScore returns a store seeded with initial.
func NewMemoryBestScore(initial int) *MemoryBestScore {
	return &MemoryBestScore{score: initial}
}

// Read returns the current best score.
func (m *MemoryBestScore) Read() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.score
}

// Write replaces the best score. Callers decide whether score is an improvement.
func (m *MemoryBestScore) Write(score int) {
	m.mu.Lock()
	m.score = score
	m.mu.Unlock()
}

func orDiscard(l *log.Logger) *log.Logger {
	if l == nil {
		return log.New(io.Discard)
	}
	return l
}
