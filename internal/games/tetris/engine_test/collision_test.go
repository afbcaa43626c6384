package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

func TestWouldExitBoundary(t *testing.T) {
	const w, h = 10, 20

	tests := []struct {
		name  string
		block engine.Block
		dir   engine.Direction
		want  bool
	}{
		{"free down", engine.ShapeO.At(4), engine.Down, false},
		{"free left", engine.ShapeO.At(4), engine.Left, false},
		{"free right", engine.ShapeO.At(4), engine.Right, false},
		{"left wall", engine.ShapeO.At(0), engine.Left, true},
		{"right wall", engine.ShapeO.At(8), engine.Right, true},
		{"floor", verticalI(3, 16), engine.Down, true},
		{"just above floor", verticalI(3, 15), engine.Down, false},
		{"stay inside", engine.ShapeT.At(0), engine.Stay, false},
		{"above top", engine.ShapeT.At(0).Translate(engine.Direction{DY: -1}), engine.Stay, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.WouldExitBoundary(tt.block.Cells(), tt.dir, w, h)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWouldCollide(t *testing.T) {
	settled := []engine.Group{
		{{X: 4, Y: 10}},
		{{X: 0, Y: 5}, {X: 9, Y: 5}},
	}

	tests := []struct {
		name    string
		block   engine.Block
		dir     engine.Direction
		settled []engine.Group
		want    bool
	}{
		{"lands on cell", verticalI(4, 6), engine.Down, settled, true},
		{"passes beside cell", verticalI(5, 6), engine.Down, settled, false},
		{"blocked left", verticalI(1, 3), engine.Left, settled, true},
		{"blocked right", verticalI(8, 3), engine.Right, settled, true},
		{"left clear", verticalI(1, 0), engine.Left, settled, false},
		{"overlap in place", verticalI(9, 2), engine.Stay, settled, true},
		{"empty board", verticalI(4, 6), engine.Down, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.WouldCollide(tt.block.Cells(), tt.dir, tt.settled))
		})
	}
}

func TestCanMoveSymmetric(t *testing.T) {
	// A block walled in on both sides by settled cells can go neither way,
	// and the same walls at the grid edge behave identically.
	b := verticalI(5, 4)
	walls := []engine.Group{
		{{X: 4, Y: 7}},
		{{X: 6, Y: 4}},
	}
	assert.False(t, engine.CanMove(b.Cells(), engine.Left, walls, 10, 20))
	assert.False(t, engine.CanMove(b.Cells(), engine.Right, walls, 10, 20))
	assert.True(t, engine.CanMove(b.Cells(), engine.Down, walls, 10, 20))

	edge := verticalI(0, 4)
	assert.False(t, engine.CanMove(edge.Cells(), engine.Left, nil, 10, 20))
	edge = verticalI(9, 4)
	assert.False(t, engine.CanMove(edge.Cells(), engine.Right, nil, 10, 20))
}
