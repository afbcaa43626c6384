package engine

// GenerateBlock promotes the lookahead block to current and picks a fresh lookahead.
// With no lookahead the current block is picked too.
func GenerateBlock(next *Block, picker ShapePicker) (current, newNext *Block) {
	if next != nil {
		current = next
	} else {
		current = blockPtr(picker.Pick())
	}
	return current, blockPtr(picker.Pick())
}

// HasLanded reports whether the current block can no longer fall.
// An absent block counts as landed so the next tick spawns.
func HasLanded(current *Block, settled []Group, p Params) bool {
	if current == nil {
		return true
	}
	cells := current.Cells()
	return WouldExitBoundary(cells, Down, p.Width, p.Height) || WouldCollide(cells, Down, settled)
}

// HoldCurrentBlock sets the current block aside, swapping with any held block.
// When nothing was held the current block becomes absent; the caller refills it.
func HoldCurrentBlock(current, held *Block) (newCurrent, newHeld *Block) {
	if current == nil {
		return current, held
	}
	stored := blockPtr(liftToTop(*current))
	if held == nil {
		return nil, stored
	}
	return held, stored
}

// liftToTop moves a block up so its topmost cell is on row 0, keeping its column and
// orientation. A held block re-enters play from the top of the well.
func liftToTop(b Block) Block {
	return b.Translate(Direction{DY: -b.MinY()})
}

// commit returns settled with the block appended as a new group.
func commit(settled []Group, b Block) []Group {
	out := make([]Group, len(settled), len(settled)+1)
	copy(out, settled)
	g := make(Group, BlockSize)
	copy(g, b[:])
	return append(out, g)
}
