package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

func TestFullRows(t *testing.T) {
	settled := []engine.Group{
		row(19, 0, 10),
		row(18, 0, 9),
		row(17, 0, 5), row(17, 5, 10),
	}
	assert.Equal(t, []int{17, 19}, engine.FullRows(settled, 10, 20))
	assert.Empty(t, engine.FullRows(nil, 10, 20))
}

func TestClearFullRowsNothingFull(t *testing.T) {
	p := engine.DefaultParams()
	settled := []engine.Group{row(19, 0, 9), {{X: 3, Y: 18}}}

	got, score, cleared := engine.ClearFullRows(settled, 40, p)
	assert.Equal(t, settled, got)
	assert.Equal(t, 40, score)
	assert.Zero(t, cleared)
}

func TestClearFullRowsSingle(t *testing.T) {
	p := engine.DefaultParams()
	settled := []engine.Group{
		row(19, 0, 10),
		{{X: 3, Y: 17}, {X: 3, Y: 18}},
	}

	got, score, cleared := engine.ClearFullRows(settled, 0, p)
	require.Equal(t, 1, cleared)
	assert.Equal(t, p.PointsPerRow, score)
	// The emptied group is dropped, the survivor falls by one.
	assert.Equal(t, []engine.Group{{{X: 3, Y: 18}, {X: 3, Y: 19}}}, got)
}

func TestClearFullRowsGapped(t *testing.T) {
	p := engine.DefaultParams()
	settled := []engine.Group{
		row(19, 0, 10),
		{{X: 0, Y: 18}},
		row(17, 0, 10),
		{{X: 0, Y: 16}, {X: 1, Y: 16}},
	}

	got, score, cleared := engine.ClearFullRows(settled, 100, p)
	require.Equal(t, 2, cleared)
	assert.Equal(t, 100+2*p.PointsPerRow, score, "clears score linearly")
	assert.Equal(t, []engine.Group{
		{{X: 0, Y: 19}},
		{{X: 0, Y: 18}, {X: 1, Y: 18}},
	}, got)
}

func TestClearFullRowsSplitsGroup(t *testing.T) {
	p := engine.DefaultParams()
	// An upright I completes rows 18 and 19; its top half survives and falls.
	settled := []engine.Group{
		row(19, 0, 9),
		row(18, 0, 9),
		{{X: 9, Y: 16}, {X: 9, Y: 17}, {X: 9, Y: 18}, {X: 9, Y: 19}},
	}

	got, _, cleared := engine.ClearFullRows(settled, 0, p)
	require.Equal(t, 2, cleared)
	assert.Equal(t, []engine.Group{{{X: 9, Y: 18}, {X: 9, Y: 19}}}, got)
}

func TestClearFullRowsIdempotent(t *testing.T) {
	p := engine.DefaultParams()
	settled := []engine.Group{
		row(19, 0, 10),
		row(18, 2, 7),
		row(17, 0, 10),
		{{X: 4, Y: 16}},
	}

	once, score, _ := engine.ClearFullRows(settled, 0, p)
	twice, score2, cleared := engine.ClearFullRows(once, score, p)
	assert.Equal(t, once, twice)
	assert.Equal(t, score, score2)
	assert.Zero(t, cleared)
}

func TestClearFullRowsDoesNotMutateInput(t *testing.T) {
	p := engine.DefaultParams()
	settled := []engine.Group{row(19, 0, 10), {{X: 1, Y: 18}}}
	before := []engine.Group{row(19, 0, 10), {{X: 1, Y: 18}}}

	engine.ClearFullRows(settled, 0, p)
	assert.Equal(t, before, settled)
}
