package tetris

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// testConfig makes the fall period 5 frames and the restart delay 10 frames at 50fps.
const testConfig = `
timing:
  base_tick_ms: 100
  fast_tick_ms: 40
  restart_delay_ms: 200
difficulty:
  enabled: true
  threshold: 1000
`

func newTestGame(t *testing.T, g *Game) *Game {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "tetris.yaml")
	if err := os.WriteFile(path, []byte(testConfig), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
	SetConfigPath(path)
	t.Cleanup(func() { SetConfigPath("") })

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 42})
	return g
}

func frameOf(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

func block(b engine.Block) *engine.Block {
	return &b
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"tetris", "tetris_fixed"} {
		g, err := registry.Create(id)
		if err != nil {
			t.Fatalf("Create(%q) failed: %v", id, err)
		}
		if g.ID() != id {
			t.Errorf("ID() = %q, expected %q", g.ID(), id)
		}
	}
}

func TestDeterminism(t *testing.T) {
	g1 := newTestGame(t, New())
	g2 := newTestGame(t, New())

	script := []core.Action{core.ActionLeft, core.ActionRotateCW, core.ActionRight, core.ActionHold, core.ActionDown}
	for i := range 2000 {
		in := core.NewInputFrame()
		if i%7 == 0 {
			in.Set(script[(i/7)%len(script)])
		}
		g1.Step(in)
		g2.Step(in)
	}

	if s1, s2 := g1.Snapshot(), g2.Snapshot(); s1 != s2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", s1, s2)
	}
}

func TestFallsOnTimer(t *testing.T) {
	g := newTestGame(t, New())
	top := g.Board().Current.MinY()

	empty := core.NewInputFrame()
	for i := 1; i < 5; i++ {
		g.Step(empty)
		if y := g.Board().Current.MinY(); y != top {
			t.Fatalf("block moved to row %d on frame %d, expected to wait 5 frames", y, i)
		}
	}

	g.Step(empty)
	if y := g.Board().Current.MinY(); y != top+1 {
		t.Errorf("row after 100ms = %d, expected %d", y, top+1)
	}
}

func TestActionsApplyInOrder(t *testing.T) {
	g := newTestGame(t, New())
	g.state.Current = block(engine.ShapeT.At(4))
	g.state.Next = block(engine.ShapeO.At(4))

	g.Step(frameOf(core.ActionLeft, core.ActionLeft))
	if got, want := *g.Board().Current, engine.ShapeT.At(2); got != want {
		t.Errorf("two lefts in one frame: current = %v, expected %v", got, want)
	}

	// Hold first, then the refilled block moves.
	g.Step(frameOf(core.ActionHold, core.ActionRight))
	if got, want := *g.Board().Current, engine.ShapeO.At(5); got != want {
		t.Errorf("hold then right: current = %v, expected %v", got, want)
	}
	if got := engine.Identify(*g.Board().Hold); got != engine.ShapeT {
		t.Errorf("held shape = %v, expected T", got)
	}
}

func TestPauseFreezes(t *testing.T) {
	g := newTestGame(t, New())
	g.Step(frameOf(core.ActionPause))
	before := g.Snapshot()

	if before.State != StatePaused {
		t.Fatalf("State = %q, expected paused", before.State)
	}
	for range 50 {
		g.Step(frameOf(core.ActionLeft))
	}
	after := g.Snapshot()
	if after.Current != before.Current {
		t.Error("block moved while paused")
	}
	if g.State().Elapsed != 0 {
		t.Errorf("Elapsed = %v while paused, expected 0", g.State().Elapsed)
	}

	g.Step(frameOf(core.ActionPause))
	if g.State().Paused {
		t.Error("second Pause should resume")
	}
}

// endRound forces a game over on the next fall tick.
func endRound(t *testing.T, g *Game, score int) {
	t.Helper()
	g.state.Score = score
	g.state.Settled = []engine.Group{{{X: 0, Y: 0}}}
	g.state.Current = block(engine.ShapeO.At(6))

	for range 5 {
		g.Step(core.NewInputFrame())
	}
	if !g.State().GameOver {
		t.Fatal("round did not end on the fall tick")
	}
}

func TestAutoRestart(t *testing.T) {
	g := newTestGame(t, New())
	endRound(t, g, 500)

	if g.State().HighScore != 500 {
		t.Errorf("HighScore = %d, expected 500", g.State().HighScore)
	}

	frames := 0
	for g.State().GameOver && frames < 100 {
		g.Step(frameOf(core.ActionLeft))
		frames++
	}
	if frames != 10 {
		t.Errorf("restarted after %d frames, expected 10 (200ms at 50fps)", frames)
	}

	st := g.State()
	if st.Score != 0 || st.Lines != 0 || st.Elapsed != 0 {
		t.Errorf("new round state = %+v, expected zeroed counters", st)
	}
	if st.HighScore != 500 {
		t.Errorf("HighScore = %d after restart, expected 500", st.HighScore)
	}
}

func TestRestartKey(t *testing.T) {
	g := newTestGame(t, New())

	g.Step(frameOf(core.ActionRestart))
	if g.Snapshot().Frame != 1 || g.State().GameOver {
		t.Fatal("Restart while playing should be ignored")
	}

	endRound(t, g, 100)
	g.Step(frameOf(core.ActionRestart))
	if g.State().GameOver {
		t.Error("Restart after game over should start a new round immediately")
	}
}

func TestFallRearmsOnSpeedUp(t *testing.T) {
	g := newTestGame(t, New())
	params := g.Params()

	g.state.Score = params.DifficultyThreshold - params.PointsPerRow
	full := make(engine.Group, 0, params.Width)
	for x := range params.Width {
		full = append(full, engine.Cell{X: x, Y: params.Height - 1})
	}
	g.state.Settled = []engine.Group{full}

	for range 5 {
		g.Step(core.NewInputFrame())
	}
	if g.State().Score != params.DifficultyThreshold {
		t.Fatalf("Score = %d, expected %d", g.State().Score, params.DifficultyThreshold)
	}
	if g.fall.Interval() != params.FastTickInterval {
		t.Errorf("fall interval = %v, expected %v", g.fall.Interval(), params.FastTickInterval)
	}
}

func TestFixedModeNeverSpeedsUp(t *testing.T) {
	g := newTestGame(t, NewFixed())
	p := g.Params()
	if p.FastTickInterval != p.BaseTickInterval {
		t.Errorf("FastTickInterval = %v, expected base %v", p.FastTickInterval, p.BaseTickInterval)
	}
}

func TestResetKeepsSessionHighScore(t *testing.T) {
	g := newTestGame(t, New())
	endRound(t, g, 300)

	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 7})
	if g.State().HighScore != 300 {
		t.Errorf("HighScore = %d after Reset, expected 300", g.State().HighScore)
	}
}

func TestResetFallsBackOnBadConfig(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var buf bytes.Buffer
	SetLogger(log.New(&buf))
	t.Cleanup(func() { SetLogger(nil) })

	missing := filepath.Join(t.TempDir(), "missing.yaml")
	SetConfigPath(missing)
	t.Cleanup(func() { SetConfigPath("") })

	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 42})

	if g.Err() == nil {
		t.Fatal("Err() = nil, expected the load failure")
	}
	if g.Board().Current == nil {
		t.Error("round should start on the built-in config")
	}
	if g.Params().Width != 10 || g.Params().Height != 20 {
		t.Errorf("Params() = %dx%d, expected the built-in 10x20", g.Params().Width, g.Params().Height)
	}
	if !strings.Contains(buf.String(), "using built-in") || !strings.Contains(buf.String(), "missing.yaml") {
		t.Errorf("log = %q, expected a fallback warning naming the path", buf.String())
	}

	SetConfigPath("")
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 50, Seed: 42})
	if err := g.Err(); err != nil {
		t.Errorf("Err() after a good Reset = %v, expected nil", err)
	}
}

func TestRender(t *testing.T) {
	g := newTestGame(t, New())
	screen := core.NewScreen(80, 24)
	g.Render(screen)

	out := screen.String()
	for _, want := range []string{"Score: 0", "Next", "Hold", "█"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q:\n%s", want, out)
		}
	}

	small := core.NewScreen(20, 10)
	g.Render(small)
	if !strings.Contains(small.String(), "too small") {
		t.Errorf("small screen should ask for a resize:\n%s", small.String())
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, New())
	endRound(t, g, 0)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Game Over") {
		t.Errorf("render missing game over overlay:\n%s", screen.String())
	}
}
