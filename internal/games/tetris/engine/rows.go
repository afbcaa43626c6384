package engine

import "github.com/kamstrup/intmap"

// FullRows returns the indexes of rows holding exactly width settled cells,
// ordered top to bottom.
func FullRows(settled []Group, width, height int) []int {
	counts := intmap.New[int, int](height)
	for _, g := range settled {
		for _, c := range g {
			n, _ := counts.Get(c.Y)
			counts.Put(c.Y, n+1)
		}
	}

	var full []int
	for y := range height {
		if n, ok := counts.Get(y); ok && n == width {
			full = append(full, y)
		}
	}
	return full
}

// ClearFullRows removes every full row at once and drops the cells above into the gap.
// A cell at row y falls by the number of cleared rows below it (row index > y).
// Groups left empty are discarded. Score grows linearly with the cleared row count.
// When nothing is full the inputs are returned unchanged.
func ClearFullRows(settled []Group, score int, p Params) (newSettled []Group, newScore, cleared int) {
	full := FullRows(settled, p.Width, p.Height)
	if len(full) == 0 {
		return settled, score, 0
	}

	isFull := intmap.New[int, bool](len(full))
	for _, y := range full {
		isFull.Put(y, true)
	}

	newSettled = make([]Group, 0, len(settled))
	for _, g := range settled {
		var kept Group
		for _, c := range g {
			if _, gone := isFull.Get(c.Y); gone {
				continue
			}
			kept = append(kept, Cell{X: c.X, Y: c.Y + rowsBelow(full, c.Y)})
		}
		if len(kept) > 0 {
			newSettled = append(newSettled, kept)
		}
	}

	return newSettled, score + len(full)*p.PointsPerRow, len(full)
}

// rowsBelow counts cleared rows with an index greater than y.
func rowsBelow(full []int, y int) int {
	n := 0
	for _, fy := range full {
		if fy > y {
			n++
		}
	}
	return n
}
