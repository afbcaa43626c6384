package engine

// Direction is a unit translation on the grid.
type Direction struct {
	DX, DY int
}

// Translation directions. Up is never a legal move; rotation is validated with Stay.
var (
	Stay  = Direction{}
	Down  = Direction{DY: 1}
	Left  = Direction{DX: -1}
	Right = Direction{DX: 1}
)

// WouldExitBoundary reports whether any cell moved by dir leaves [0,w)x[0,h).
func WouldExitBoundary(cells []Cell, dir Direction, w, h int) bool {
	for _, c := range cells {
		n := c.Add(dir)
		if n.X < 0 || n.X >= w || n.Y < 0 || n.Y >= h {
			return true
		}
	}
	return false
}

// WouldCollide reports whether any cell moved by dir lands on a settled cell.
func WouldCollide(cells []Cell, dir Direction, settled []Group) bool {
	for _, c := range cells {
		n := c.Add(dir)
		for _, g := range settled {
			for _, sc := range g {
				if sc == n {
					return true
				}
			}
		}
	}
	return false
}

// CanMove reports whether moving cells by dir is legal.
func CanMove(cells []Cell, dir Direction, settled []Group, w, h int) bool {
	return !WouldExitBoundary(cells, dir, w, h) && !WouldCollide(cells, dir, settled)
}
