package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

// seqPicker hands out blocks in order and repeats the last one.
type seqPicker struct {
	blocks []engine.Block
	picks  int
}

func (p *seqPicker) Pick() engine.Block {
	i := min(p.picks, len(p.blocks)-1)
	p.picks++
	return p.blocks[i]
}

func pickerOf(blocks ...engine.Block) *seqPicker {
	return &seqPicker{blocks: blocks}
}

func newEngine(t *testing.T, p engine.Params, picker engine.ShapePicker) *engine.Engine {
	t.Helper()
	e, err := engine.New(p, picker)
	require.NoError(t, err)
	return e
}

// row returns a settled group covering columns [from, to) of row y.
func row(y, from, to int) engine.Group {
	g := make(engine.Group, 0, to-from)
	for x := from; x < to; x++ {
		g = append(g, engine.Cell{X: x, Y: y})
	}
	return g
}

// verticalI returns an upright I block in column x with its top cell on row top.
func verticalI(x, top int) engine.Block {
	return engine.Block{{X: x, Y: top}, {X: x, Y: top + 1}, {X: x, Y: top + 2}, {X: x, Y: top + 3}}
}

// checkSettled fails if settled cells repeat or leave the grid.
func checkSettled(t *testing.T, s engine.State, p engine.Params) {
	t.Helper()
	seen := make(map[engine.Cell]bool)
	for _, g := range s.Settled {
		require.NotEmpty(t, g, "empty group kept")
		for _, c := range g {
			require.False(t, seen[c], "duplicate settled cell %v", c)
			seen[c] = true
			require.True(t, c.X >= 0 && c.X < p.Width && c.Y >= 0 && c.Y < p.Height,
				"settled cell %v out of bounds", c)
		}
	}
}
