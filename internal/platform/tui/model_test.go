package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/storage"
)

// scriptGame ends its round after endAt frames and restarts on ActionRestart.
type scriptGame struct {
	endAt  int
	frames int
	resets int
	seen   [][]core.Action
	state  core.GameState
}

func (g *scriptGame) ID() string    { return "script" }
func (g *scriptGame) Title() string { return "Script" }

func (g *scriptGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.frames = 0
	g.state = core.GameState{}
}

func (g *scriptGame) Step(in core.InputFrame) core.StepResult {
	g.seen = append(g.seen, in.Actions())
	if g.state.GameOver {
		if in.Has(core.ActionRestart) {
			g.frames = 0
			g.state = core.GameState{HighScore: g.state.HighScore}
		}
		return core.StepResult{State: g.state}
	}

	g.frames++
	g.state.Score += 100
	g.state.Lines++
	g.state.Elapsed += time.Second
	if g.frames >= g.endAt {
		g.state.GameOver = true
		g.state.HighScore = max(g.state.HighScore, g.state.Score)
	}
	return core.StepResult{State: g.state}
}

func (g *scriptGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "script")
}

func (g *scriptGame) State() core.GameState { return g.state }

func newTestModel(t *testing.T, g *scriptGame) (Model, *storage.Store) {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	m := NewModel(g, store, nil, core.RuntimeConfig{ScreenW: 120, ScreenH: 10, TickRate: 60, Seed: 1})
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update() returned %T, expected Model", next)
	}
	return mm
}

func TestModelResetsGameOnce(t *testing.T) {
	g := &scriptGame{endAt: 100}
	m, _ := newTestModel(t, g)

	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if g.resets != 1 {
		t.Errorf("resize should not reset the round, resets = %d", g.resets)
	}
}

func TestModelForwardsKeysPerFrame(t *testing.T) {
	g := &scriptGame{endAt: 100}
	m, _ := newTestModel(t, g)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	m = update(t, m, runeKey('z'))
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))

	if len(g.seen) != 2 {
		t.Fatalf("Step() called %d times, expected 2", len(g.seen))
	}
	first := g.seen[0]
	if len(first) != 2 || first[0] != core.ActionLeft || first[1] != core.ActionRotateCCW {
		t.Errorf("first frame = %v, expected [Left RotateCCW]", first)
	}
	if len(g.seen[1]) != 0 {
		t.Errorf("second frame = %v, expected no actions", g.seen[1])
	}
}

func TestModelSavesRoundOnce(t *testing.T) {
	g := &scriptGame{endAt: 3}
	m, store := newTestModel(t, g)

	for range 10 {
		m = update(t, m, TickMsg(time.Now()))
	}

	if m.Rounds() != 1 {
		t.Errorf("Rounds() = %d, expected 1", m.Rounds())
	}
	rounds, err := store.AllScores("script")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(rounds) != 1 {
		t.Fatalf("saved %d rounds, expected 1", len(rounds))
	}
	r := rounds[0]
	if r.Score != 300 || r.Lines != 3 || r.Duration != 3*time.Second {
		t.Errorf("saved round = %+v, expected score 300, 3 lines, 3s", r)
	}

	// A second round after restart is saved separately
	m = update(t, m, runeKey('r'))
	for range 5 {
		m = update(t, m, TickMsg(time.Now()))
	}
	if m.Rounds() != 2 {
		t.Errorf("Rounds() = %d, expected 2", m.Rounds())
	}
	rounds, _ = store.AllScores("script")
	if len(rounds) != 2 {
		t.Errorf("saved %d rounds, expected 2", len(rounds))
	}
}

func TestModelQuit(t *testing.T) {
	m, _ := newTestModel(t, &scriptGame{endAt: 100})

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit key should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit key should return tea.Quit")
	}
	if next.View() != "" {
		t.Error("View() after quit should be empty")
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t, &scriptGame{endAt: 100})

	view := m.View()
	if !strings.Contains(view, "script") {
		t.Errorf("View() should contain the game frame, got %q", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("View() should contain the key help, got %q", view)
	}
}

func TestModelWithoutStore(t *testing.T) {
	g := &scriptGame{endAt: 1}
	m := NewModel(g, nil, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60})

	m = update(t, m, TickMsg(time.Now()))
	if !m.GameState().GameOver {
		t.Error("GameState().GameOver = false, expected true")
	}
}
