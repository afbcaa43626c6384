package tetris

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellW     = 2  // Screen columns per board cell
	hudHeight = 2  // HUD line plus separator
	panelW    = 12 // Side panel box width
	previewH  = 6  // Preview box height (4 rows inside)
	panelGap  = 2
)

// shapeColors gives each tetromino its conventional color.
var shapeColors = map[engine.Shape]core.Color{
	engine.ShapeI: core.ColorCyan,
	engine.ShapeJ: core.ColorBlue,
	engine.ShapeL: core.ColorOrange,
	engine.ShapeO: core.ColorYellow,
	engine.ShapeS: core.ColorGreen,
	engine.ShapeT: core.ColorMagenta,
	engine.ShapeZ: core.ColorRed,
}

// layout holds the screen areas of one frame.
type layout struct {
	well  core.Rect
	next  core.Rect
	hold  core.Rect
	stats core.Rect
}

// computeLayout centers the well and side panel on the screen.
// ok is false when the screen cannot fit them.
func (g *Game) computeLayout(w, h int) (l layout, ok bool) {
	p := g.eng.Params()
	wellW := p.Width*cellW + 2
	wellH := p.Height + 2
	totalW := wellW + panelGap + panelW
	if w < totalW || h < wellH+hudHeight {
		return l, false
	}

	x0 := (w - totalW) / 2
	l.well = core.NewRect(x0, hudHeight, wellW, wellH)
	l.next = core.NewRect(l.well.Right()+panelGap, hudHeight, panelW, previewH)
	l.hold = core.NewRect(l.next.X, l.next.Bottom(), panelW, previewH)
	l.stats = core.NewRect(l.next.X, l.hold.Bottom(), panelW, max(l.well.Bottom()-l.hold.Bottom(), 0))
	return l, true
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	l, ok := g.computeLayout(dst.Width(), dst.Height())
	if !ok {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderWell(dst, l.well)
	g.renderPreview(dst, l.next, "Next", g.state.Next)
	g.renderPreview(dst, l.hold, "Hold", g.state.Hold)
	g.renderStats(dst, l.stats)

	switch {
	case g.state.GameEnd:
		g.renderOverlay(dst, "Game Over",
			fmt.Sprintf("Restart in %ds (R)", int((g.restartIn()+time.Second-1)/time.Second)))
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Best: %d  Lines: %d",
		g.Title(), g.state.Score, g.state.HighScore, g.state.Lines)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)

	for x := range dst.Width() {
		dst.SetColor(x, 1, '─', core.ColorGray)
	}
}

// renderWell draws the border, settled cells, the landing ghost and the falling block.
func (g *Game) renderWell(dst *core.Screen, well core.Rect) {
	dst.DrawBox(well, core.ColorGray)
	inner := well.Inner()

	for _, grp := range g.state.Settled {
		color := groupColor(grp)
		for _, c := range grp {
			drawCell(dst, inner, c, '█', color)
		}
	}

	if g.state.Current == nil {
		return
	}
	if !g.state.GameEnd {
		for _, c := range g.ghost() {
			drawCell(dst, inner, c, '░', core.ColorGray)
		}
	}
	color := shapeColors[engine.Identify(*g.state.Current)]
	for _, c := range g.state.Current {
		drawCell(dst, inner, c, '█', color)
	}
}

// ghost returns where the current block would land if it kept falling.
func (g *Game) ghost() engine.Block {
	p := g.eng.Params()
	b := *g.state.Current
	for engine.CanMove(b.Cells(), engine.Down, g.state.Settled, p.Width, p.Height) {
		b = b.Translate(engine.Down)
	}
	return b
}

// renderPreview draws a titled box with a block shown at its own origin.
func (g *Game) renderPreview(dst *core.Screen, box core.Rect, title string, b *engine.Block) {
	dst.DrawBox(box, core.ColorGray)
	dst.DrawTextColor(box.X+2, box.Y, " "+title+" ", core.ColorWhite)
	if b == nil {
		return
	}

	minX, minY := b[0].X, b[0].Y
	maxX := b[0].X
	for _, c := range b[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
		maxX = max(maxX, c.X)
	}

	inner := box.Inner()
	span := (maxX - minX + 1) * cellW
	offset := engine.Direction{DX: -minX, DY: -minY}
	area := core.NewRect(inner.X+(inner.W-span)/2, inner.Y, span, inner.H)

	color := shapeColors[engine.Identify(*b)]
	for _, c := range b {
		drawCell(dst, area, c.Add(offset), '█', color)
	}
}

// renderStats draws counters and key hints under the previews.
func (g *Game) renderStats(dst *core.Screen, area core.Rect) {
	speed := "normal"
	switch {
	case !g.cfg.Difficulty.Enabled:
		speed = "fixed"
	case g.state.TickInterval < g.eng.Params().BaseTickInterval:
		speed = "fast"
	}

	lines := []string{
		fmt.Sprintf("Blocks %d", g.state.Blocks),
		fmt.Sprintf("Speed  %s", speed),
		fmt.Sprintf("Time   %s", formatElapsed(g.elapsed)),
		"",
		"←→ move",
		"↑ x  rotate",
		"z    rotate⟲",
		"c    hold",
		"p    pause",
	}
	for i, line := range lines {
		y := area.Y + 1 + i
		if y >= area.Bottom() {
			break
		}
		dst.DrawTextColor(area.X+1, y, line, core.ColorGray)
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := max(len([]rune(line1)), len([]rune(line2))) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightYellow)
	dst.DrawTextCenteredIn(box, box.Y+1, line1, core.ColorBrightYellow)
	dst.DrawTextCenteredIn(box, box.Y+3, line2, core.ColorWhite)
}

// drawCell draws one board cell as cellW screen columns inside area.
func drawCell(dst *core.Screen, area core.Rect, c engine.Cell, r rune, color core.Color) {
	x := area.X + c.X*cellW
	y := area.Y + c.Y
	if !area.Contains(x, y) {
		return
	}
	for i := range cellW {
		dst.SetColor(x+i, y, r, color)
	}
}

// groupColor colors intact groups by shape; groups cut by a clear turn white.
func groupColor(grp engine.Group) core.Color {
	if len(grp) != engine.BlockSize {
		return core.ColorWhite
	}
	var b engine.Block
	copy(b[:], grp)
	if c, ok := shapeColors[engine.Identify(b)]; ok {
		return c
	}
	return core.ColorWhite
}

func formatElapsed(d time.Duration) string {
	d = d.Truncate(time.Second)
	return fmt.Sprintf("%02d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
