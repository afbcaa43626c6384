package engine

import (
	"cmp"
	"math/rand"
	"slices"
)

// Shape names one of the seven tetrominoes.
type Shape int

const (
	ShapeNone Shape = iota
	ShapeI
	ShapeJ
	ShapeL
	ShapeO
	ShapeS
	ShapeT
	ShapeZ
)

// Shapes lists the catalogue in pick order.
var Shapes = []Shape{ShapeI, ShapeJ, ShapeL, ShapeO, ShapeS, ShapeT, ShapeZ}

// String returns the conventional letter for the shape.
func (s Shape) String() string {
	switch s {
	case ShapeI:
		return "I"
	case ShapeJ:
		return "J"
	case ShapeL:
		return "L"
	case ShapeO:
		return "O"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	case ShapeZ:
		return "Z"
	default:
		return "?"
	}
}

// shapeOffsets holds the spawn orientation of each shape, top row at 0, left column at 0.
var shapeOffsets = map[Shape]Block{
	ShapeI: {{0, 0}, {1, 0}, {2, 0}, {3, 0}},
	ShapeJ: {{0, 0}, {0, 1}, {1, 1}, {2, 1}},
	ShapeL: {{2, 0}, {0, 1}, {1, 1}, {2, 1}},
	ShapeO: {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
	ShapeS: {{1, 0}, {2, 0}, {0, 1}, {1, 1}},
	ShapeT: {{1, 0}, {0, 1}, {1, 1}, {2, 1}},
	ShapeZ: {{0, 0}, {1, 0}, {1, 1}, {2, 1}},
}

// Offsets returns the spawn orientation of a shape anchored at (0,0).
func (s Shape) Offsets() Block {
	return shapeOffsets[s]
}

// Width returns the number of columns the spawn orientation spans.
func (s Shape) Width() int {
	maxX := 0
	for _, c := range shapeOffsets[s] {
		maxX = max(maxX, c.X)
	}
	return maxX + 1
}

// At returns the shape placed with its left column at col and its top row at 0.
func (s Shape) At(col int) Block {
	return s.Offsets().Translate(Direction{DX: col})
}

// ShapePicker supplies new blocks for spawning.
type ShapePicker interface {
	Pick() Block
}

// RandomPicker picks a uniform shape at a uniform column that fits the grid.
// Repeats are allowed.
type RandomPicker struct {
	rng   *rand.Rand
	width int
}

// NewRandomPicker creates a picker for a grid of the given width.
func NewRandomPicker(rng *rand.Rand, width int) *RandomPicker {
	return &RandomPicker{rng: rng, width: width}
}

// Pick returns a freshly placed block.
func (p *RandomPicker) Pick() Block {
	shape := Shapes[p.rng.Intn(len(Shapes))]
	col := p.rng.Intn(p.width - shape.Width() + 1)
	return shape.At(col)
}

// shapeKeys maps every normalized orientation to its shape.
var shapeKeys = buildShapeKeys()

func buildShapeKeys() map[Block]Shape {
	keys := make(map[Block]Shape)
	for _, s := range Shapes {
		b := s.Offsets()
		for range 4 {
			keys[normalize(b)] = s
			b = Rotate(b, Clockwise)
		}
	}
	return keys
}

// normalize moves a block so its bounding box starts at (0,0) and sorts its cells.
func normalize(b Block) Block {
	minX, minY := b[0].X, b[0].Y
	for _, c := range b[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
	}
	out := b.Translate(Direction{DX: -minX, DY: -minY})
	slices.SortFunc(out[:], func(a, b Cell) int {
		if a.Y != b.Y {
			return cmp.Compare(a.Y, b.Y)
		}
		return cmp.Compare(a.X, b.X)
	})
	return out
}

// Identify recovers the shape of a block in any orientation.
// Returns ShapeNone for cell sets that are not a tetromino.
func Identify(b Block) Shape {
	return shapeKeys[normalize(b)]
}

// SameShape reports whether two blocks are the same shape and orientation,
// ignoring position.
func SameShape(a, b Block) bool {
	return normalize(a) == normalize(b)
}
