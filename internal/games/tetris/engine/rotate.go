package engine

// Rotation is a quarter-turn direction.
type Rotation int

const (
	Clockwise Rotation = iota
	AntiClockwise
)

// String returns a human-readable name for the rotation.
func (r Rotation) String() string {
	if r == AntiClockwise {
		return "anticlockwise"
	}
	return "clockwise"
}

// pivot2 returns the rotation centre in doubled coordinates.
//
// The centre is the middle of the bounding box. When it falls between two whole
// cells it is snapped to the one whose coordinates sum to an even number. A turn
// about that cell moves the box middle to another point beside the same cell, so
// the pivot never changes while a block rotates in place and every turn is undone
// exactly by the opposite one.
func pivot2(b Block) (cx2, cy2 int) {
	minX, maxX := b[0].X, b[0].X
	minY, maxY := b[0].Y, b[0].Y
	for _, c := range b[1:] {
		minX, maxX = min(minX, c.X), max(maxX, c.X)
		minY, maxY = min(minY, c.Y), max(maxY, c.Y)
	}
	cx2, cy2 = minX+maxX, minY+maxY
	if (cx2+cy2)%2 == 0 {
		return cx2, cy2
	}

	x, y := floorDiv(cx2, 2), floorDiv(cy2, 2)
	if (x+y)%2 != 0 {
		if cx2%2 != 0 {
			x++
		} else {
			y++
		}
	}
	return 2 * x, 2 * y
}

// Rotate turns a block a quarter around its pivot.
// It does not validate the result; see Engine for the checked version.
func Rotate(b Block, r Rotation) Block {
	cx2, cy2 := pivot2(b)
	sum := (cx2 + cy2) / 2
	diff := (cy2 - cx2) / 2

	var out Block
	for i, c := range b {
		if r == Clockwise {
			// (x,y) -> (px-(y-py), py+(x-px))
			out[i] = Cell{X: sum - c.Y, Y: c.X + diff}
		} else {
			out[i] = Cell{X: c.Y - diff, Y: sum - c.X}
		}
	}
	return out
}

// TryRotate rotates a block if the result stays on the board and clear of settled
// cells; otherwise the original block comes back with ok=false.
func TryRotate(b Block, r Rotation, settled []Group, w, h int) (Block, bool) {
	rotated := Rotate(b, r)
	if !CanMove(rotated.Cells(), Stay, settled, w, h) {
		return b, false
	}
	return rotated, true
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
