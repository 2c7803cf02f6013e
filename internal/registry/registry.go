// Package registry maps game IDs to factories. Game packages register
// themselves from init, and the front ends (terminal, SSH, desktop window)
// look them up by the IDs the portal catalog uses.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

// Game is what every front end drives. Implementations hold simulation
// state only; input mapping, frame pacing and drawing belong to the platform.
type Game interface {
	// ID is the catalog slug, e.g. "space-shooter". Scores are keyed by it.
	ID() string
	Title() string

	// Reset starts a new run sized and seeded by cfg.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one platform frame.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a screen the caller has already cleared.
	Render(dst *core.Screen)

	State() core.GameState
}

// BestScore persists a game's best score. Failures are the implementation's
// problem: Read yields 0 when nothing can be read.
type BestScore interface {
	Read() int
	Write(score int)
}

// Sound plays audio cues without blocking.
type Sound interface {
	PlayCue(c core.Cue)
}

// Deps are the platform services handed to a game at creation. Nil fields
// select the game's own silent or in-memory fallback.
type Deps struct {
	Logger    *log.Logger
	BestScore BestScore
	Sound     Sound
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new instance of a game wired to deps.
type Factory func(deps Deps) Game

// ErrUnknownGame is returned by Create for IDs nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

type entry struct {
	title   string
	factory Factory
}

var (
	mu      sync.RWMutex
	entries = map[string]entry{}
)

// Register makes a game available under id. Games call it from init.
// Registering the same id twice is a programming error and panics.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := entries[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	entries[id] = entry{title: f(Deps{}).Title(), factory: f}
}

// List returns every registered game ordered by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(entries))
	for id, e := range entries {
		out = append(out, GameInfo{ID: id, Title: e.title})
	}
	slices.SortFunc(out, func(a, b GameInfo) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Create builds a fresh game for id.
func Create(id string, deps Deps) (Game, error) {
	mu.RLock()
	e, ok := entries[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	return e.factory(deps), nil
}

// Exists reports whether id can be passed to Create.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()
	_, ok := entries[id]
	return ok
}
