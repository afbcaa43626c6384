package engine

import (
	"fmt"
	"time"
)

// BlockSize is the number of cells in every tetromino.
const BlockSize = 4

// Cell is a grid position. X grows to the right, Y grows downward.
type Cell struct {
	X, Y int
}

// Add returns the cell offset by a direction.
func (c Cell) Add(d Direction) Cell {
	return Cell{X: c.X + d.DX, Y: c.Y + d.DY}
}

// String returns a string representation of the cell.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Block is one falling tetromino.
type Block [BlockSize]Cell

// Cells returns the block's cells as a slice.
func (b Block) Cells() []Cell {
	return b[:]
}

// Translate returns the block moved by a direction.
func (b Block) Translate(d Direction) Block {
	var out Block
	for i, c := range b {
		out[i] = c.Add(d)
	}
	return out
}

// MinY returns the topmost row the block occupies.
func (b Block) MinY() int {
	minY := b[0].Y
	for _, c := range b[1:] {
		minY = min(minY, c.Y)
	}
	return minY
}

// Group holds the surviving cells of one landed block.
// Row clears shrink it; empty groups are discarded.
type Group []Cell

// State is the whole board at one point in a round.
// Transitions never modify a State in place, so values can be shared freely.
type State struct {
	GameEnd bool

	Current *Block // nil only between landing and spawn
	Next    *Block
	Hold    *Block

	Settled []Group

	Score     int
	HighScore int
	Lines     int // Rows cleared this round
	Blocks    int // Blocks landed this round

	TickInterval time.Duration
}

// SettledCount returns the number of settled cells.
func (s State) SettledCount() int {
	n := 0
	for _, g := range s.Settled {
		n += len(g)
	}
	return n
}

// Occupied reports whether a settled cell sits at c.
func (s State) Occupied(c Cell) bool {
	for _, g := range s.Settled {
		for _, sc := range g {
			if sc == c {
				return true
			}
		}
	}
	return false
}

func blockPtr(b Block) *Block {
	return &b
}
