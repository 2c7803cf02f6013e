package storage

import (
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata/v2"
)

const gdataObject = "highscore"

// GDataBestScore keeps a best score in the platform's per-user app data
// directory through gdata. Without a manager it degrades to memory only.
type GDataBestScore struct {
	manager *gdata.Manager
	key     string
	logger  *log.Logger

	mu  sync.Mutex
	mem int
}

// OpenGDataBestScore opens the app data store for appName. If the platform
// store is unavailable the returned value still works, in memory.
func OpenGDataBestScore(appName, key string, logger *log.Logger) *GDataBestScore {
	logger = orDiscard(logger)
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		logger.Warn("gdata unavailable, best score kept in memory", "app", appName, "err", err)
		m = nil
	}
	return NewGDataBestScore(m, key, logger)
}

// NewGDataBestScore wraps an existing manager, which may be nil.
func NewGDataBestScore(m *gdata.Manager, key string, logger *log.Logger) *GDataBestScore {
	return &GDataBestScore{manager: m, key: key, logger: orDiscard(logger)}
}

// Read returns the stored best score, 0 when absent or unreadable.
func (g *GDataBestScore) Read() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.manager == nil || !g.manager.ObjectPropExists(gdataObject, g.key) {
		return g.mem
	}
	data, err := g.manager.LoadObjectProp(gdataObject, g.key)
	if err != nil {
		g.logger.Warn("best score read failed", "key", g.key, "err", err)
		return g.mem
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		g.logger.Warn("best score is not a number", "key", g.key, "value", string(data))
		return 0
	}
	g.mem = score
	return score
}

// Write stores score as a decimal string.
func (g *GDataBestScore) Write(score int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.mem = score
	if g.manager == nil {
		return
	}
	if err := g.manager.SaveObjectProp(gdataObject, g.key, []byte(strconv.Itoa(score))); err != nil {
		g.logger.Warn("best score write failed", "key", g.key, "err", err)
	}
}
