package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-portal/internal/core"
)

// scriptedGame reports whatever state the test sets and records its input.
type scriptedGame struct {
	state  core.GameState
	resets int
	inputs []core.InputFrame
}

func (g *scriptedGame) ID() string { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }
func (g *scriptedGame) Reset(core.RuntimeConfig) { g.resets++ }
func (g *scriptedGame) State() core.GameState { return g.state }
func (g *scriptedGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "hello", core.ColorGreen) }
func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	return core.StepResult{State: g.state}
}

type savedScore struct {
	game  string
	score int
}

type scoreLog struct {
	saved []savedScore
	err   error
}

func (s *scoreLog) SaveScore(gameID string, score int) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	s.saved = append(s.saved, savedScore{gameID, score})
	return int64(len(s.saved)), nil
}

func newTestModel(g *scriptedGame, scores ScoreRecorder) Model {
	m := NewModel(g, scores, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10})
	clock := time.Unix(0, 0)
	m.now = func() time.Time { return clock }
	return m
}

func tick(m Model) Model {
	next, _ := m.Update(TickMsg(time.Time{}))
	return next.(Model)
}

func press(m Model, msg tea.KeyMsg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func TestModelInitResetsGame(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, nil)
	if cmd := m.Init(); cmd == nil {
		t.Error("Init() should start the tick loop")
	}
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestModelForwardsKeys(t *testing.T) {
	g := &scriptedGame{}
	m := newTestModel(g, nil)

	m = press(m, runeKey('a'))
	m = press(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = tick(m)
	m = tick(m)

	if len(g.inputs) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(g.inputs))
	}
	first, second := g.inputs[0], g.inputs[1]
	if !first.Has(core.ActionLeft) || !first.Has(core.ActionStart) {
		t.Errorf("first frame = %v, expected Left and Start", first.Actions)
	}
	if !second.Has(core.ActionLeft) || second.Has(core.ActionStart) {
		t.Errorf("second frame = %v, expected Left held and Start consumed", second.Actions)
	}
}

func TestModelRecordsScoreOncePerGameOver(t *testing.T) {
	g := &scriptedGame{}
	scores := &scoreLog{}
	m := newTestModel(g, scores)

	g.state = core.GameState{Score: 120}
	m = tick(m)
	g.state = core.GameState{Score: 150, GameOver: true}
	m = tick(m)
	m = tick(m)
	m = tick(m)

	if len(scores.saved) != 1 || scores.saved[0] != (savedScore{"scripted", 150}) {
		t.Fatalf("saved = %v, expected one 150", scores.saved)
	}

	// Restarting and dying again records a second game.
	g.state = core.GameState{}
	m = tick(m)
	g.state = core.GameState{Score: 40, GameOver: true}
	tick(m)
	if len(scores.saved) != 2 || scores.saved[1].score != 40 {
		t.Errorf("saved = %v, expected a second entry of 40", scores.saved)
	}
}

func TestModelSkipsZeroScoresAndSurvivesErrors(t *testing.T) {
	g := &scriptedGame{state: core.GameState{GameOver: true}}
	scores := &scoreLog{}
	tick(newTestModel(g, scores))
	if len(scores.saved) != 0 {
		t.Errorf("zero score should not be saved: %v", scores.saved)
	}

	g = &scriptedGame{state: core.GameState{Score: 10, GameOver: true}}
	tick(newTestModel(g, &scoreLog{err: errors.New("disk full")}))
	tick(newTestModel(g, nil))
}

func TestModelBackOnlyWhenAllowed(t *testing.T) {
	g := &scriptedGame{state: core.GameState{Paused: true}}
	m := newTestModel(g, nil)
	m = tick(m)
	if m = press(m, runeKey('b')); m.BackToMenu() {
		t.Error("back should be ignored without WithBack")
	}

	m = newTestModel(g, nil).WithBack()
	g.state = core.GameState{}
	m = tick(m)
	if m = press(m, runeKey('b')); m.BackToMenu() {
		t.Error("back should be ignored while running")
	}

	g.state = core.GameState{GameOver: true, Score: 1}
	m = tick(m)
	if m = press(m, runeKey('b')); !m.BackToMenu() {
		t.Error("back should leave a finished game")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&scriptedGame{}, nil)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil || !next.(Model).IsQuitting() {
		t.Error("q should quit")
	}
	if next.View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&scriptedGame{}, nil)
	if !strings.Contains(m.View(), "hello") {
		t.Errorf("View() = %q, expected the game's text", m.View())
	}
}
