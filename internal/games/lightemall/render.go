package lightemall

import (
	"fmt"

	platformcore "github.com/vovakirdan/lightemall/internal/core"
	"github.com/vovakirdan/lightemall/internal/games/lightemall/core"
)

// calculateLayout picks a cell size that fits the board and centers it
// below the HUD. The configured cell size shrinks to 1x1 before the
// screen is declared too small.
func (g *Game) calculateLayout() {
	if g.grid == nil {
		return
	}

	availW := g.screenW - 2 // frame
	availH := g.screenH - g.hudHeight - 2

	g.cellW = max(g.cfg.Board.CellWidth, 1)
	g.cellH = max(g.cfg.Board.CellHeight, 1)
	for g.cellW > 1 && g.grid.Cols()*g.cellW > availW {
		g.cellW--
	}
	for g.cellH > 1 && g.grid.Rows()*g.cellH > availH {
		g.cellH--
	}

	boardW := g.grid.Cols() * g.cellW
	boardH := g.grid.Rows() * g.cellH
	if boardW > availW || boardH > availH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	area := platformcore.NewRect(0, g.hudHeight, g.screenW, g.screenH-g.hudHeight)
	g.board = area.CenterIn(boardW, boardH)
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	switch {
	case g.loadErr != nil:
		g.renderOverlay(dst, "Level failed to load", g.loadErr.Error())
		return
	case len(g.allLevels) == 0:
		g.renderOverlay(dst, "No levels found", "Check levels_dir in the config")
		return
	case g.gameOver:
		g.renderOverlay(dst, "Every level is lit!",
			fmt.Sprintf("%d solved. R: play again  Q: quit", g.score))
		return
	case g.tooSmall:
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	case g.grid == nil:
		return
	}

	g.renderBoard(dst)

	switch {
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case g.solved:
		msg := fmt.Sprintf("Solved in %d moves. N: next level  R: rescramble", g.moves)
		if y := g.board.Bottom() + 1; y < dst.Height() {
			dst.DrawTextCentered(y, msg, platformcore.ColorSuccess)
		} else {
			g.renderOverlay(dst, fmt.Sprintf("Solved in %d moves", g.moves), "N: next level  R: rescramble")
		}
	}
}

// renderHUD draws the top status lines.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	hud := " LightEmAll"
	if g.grid != nil {
		hud = fmt.Sprintf(" LightEmAll | Level %d/%d: %s | Radius: %d | Lit: %d/%d",
			g.levelIndex+1, len(g.allLevels), g.level.Name,
			g.radius, g.grid.PoweredCount(), g.grid.Size())
	}
	dst.DrawTextWithColor(0, 0, hud, platformcore.ColorText)

	status := fmt.Sprintf(" Moves: %d | Solved: %d", g.moves, g.score)
	if g.grid != nil {
		if t := g.grid.At(g.cursor); t != nil {
			status += fmt.Sprintf(" | Tile %s power %d", g.cursor, t.Power())
		}
	}
	dst.DrawTextWithColor(0, 1, status, platformcore.ColorMuted)

	dst.DrawHLine(0, 2, dst.Width(), '─', platformcore.ColorMuted)
}

// renderBoard draws the frame and every tile.
func (g *Game) renderBoard(dst *platformcore.Screen) {
	frame := platformcore.NewRect(g.board.X-1, g.board.Y-1, g.board.W+2, g.board.H+2)
	dst.DrawBox(frame, platformcore.ColorFrame)

	g.grid.Each(func(t *core.Tile) {
		x := g.board.X + t.Col()*g.cellW
		y := g.board.Y + t.Row()*g.cellH
		g.renderTile(dst, x, y, t, t.Coord() == g.cursor)
	})
}

// renderTile draws one tile: its glyph in the middle of the cell with the
// stubs extended to the cell edges, coloured by power.
func (g *Game) renderTile(dst *platformcore.Screen, x, y int, t *core.Tile, selected bool) {
	color := g.tileColor(t)
	cx := x + g.cellW/2
	cy := y + g.cellH/2

	if t.Has(core.DirWest) {
		dst.DrawHLine(x, cy, cx-x, '━', color)
	}
	if t.Has(core.DirEast) {
		dst.DrawHLine(cx+1, cy, x+g.cellW-cx-1, '━', color)
	}
	for row := y; row < y+g.cellH; row++ {
		switch {
		case row < cy && t.Has(core.DirNorth):
			dst.SetWithColor(cx, row, '┃', color)
		case row > cy && t.Has(core.DirSouth):
			dst.SetWithColor(cx, row, '┃', color)
		}
	}

	glyph := t.Links().Glyph()
	if t.IsSource() && t.Links() == core.LinkNone {
		glyph = '★'
	}

	switch {
	case selected && g.cellW >= 3:
		dst.SetWithColor(cx, cy, glyph, color)
		dst.SetWithColor(x, cy, '[', platformcore.ColorCursor)
		dst.SetWithColor(x+g.cellW-1, cy, ']', platformcore.ColorCursor)
	case selected:
		dst.SetWithColor(cx, cy, glyph, platformcore.ColorCursor)
	default:
		dst.SetWithColor(cx, cy, glyph, color)
	}
}

// tileColor maps a tile's power to a colour role. Unpowered tiles use the
// neutral wire colour.
func (g *Game) tileColor(t *core.Tile) platformcore.Color {
	if t.IsSource() {
		return platformcore.ColorSource
	}
	return platformcore.PowerColor(core.Shade(t.Power(), g.radius, platformcore.PowerShades+1))
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *platformcore.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := platformcore.NewRect(0, 0, dst.Width(), dst.Height()).CenterIn(w, 5)

	dst.FillRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, platformcore.ColorFrame)
	dst.DrawTextCentered(box.Y+1, line1, platformcore.ColorSuccess)
	dst.DrawTextCentered(box.Y+3, line2, platformcore.ColorText)
}
