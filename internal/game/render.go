package game

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
)

const (
	cellWidth  = 7 // Width of each cell including its left border
	cellHeight = 2 // Height of each cell including its top border

	boardW    = Size*cellWidth + 1
	boardH    = Size*cellHeight + 1
	hudHeight = 3

	minScreenW = boardW + 2
	minScreenH = hudHeight + boardH + 2
)

// TileColor returns the display color for a tile value.
func TileColor(v Tile) core.Color {
	switch v {
	case Empty:
		return core.ColorGray
	case 2:
		return core.ColorRed
	case 4:
		return core.ColorGreen
	case 8:
		return core.ColorBlue
	case 16:
		return core.ColorMagenta
	case 32:
		return core.ColorCyan
	case 64:
		return core.ColorBrightRed
	case 128:
		return core.ColorBrightGreen
	case 256:
		return core.ColorDefault
	case 512:
		return core.ColorBrightBlue
	case 1024:
		return core.ColorBrightMagenta
	default:
		return core.ColorBrightYellow
	}
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardX := (g.screenW - boardW) / 2
	boardY := hudHeight + 1

	g.renderHUD(dst, boardX)
	g.renderBoard(dst, boardX, boardY)
	g.renderOverlays(dst, boardX, boardY)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the title, score and turn counter.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := g.Title()
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorBrightYellow)

	dst.DrawText(boardX, 1, fmt.Sprintf("Score: %d", g.score))

	turnStr := fmt.Sprintf("Turn %d", g.turns+1)
	dst.DrawText(boardX+boardW-len(turnStr), 1, turnStr)

	info := fmt.Sprintf("Max: %d  Goal: %d", g.MaxTile(), g.cfg.Rules.WinTile)
	dst.DrawTextColored(boardX+(boardW-len(info))/2, 2, info, core.ColorGray)
}

// renderBoard draws the 4x4 grid with tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := range Size + 1 {
		for x := range Size + 1 {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.Set(px, py, gridJoint(x, y))

			if x < Size {
				for i := 1; i < cellWidth; i++ {
					dst.Set(px+i, py, '─')
				}
			}
			if y < Size {
				for i := 1; i < cellHeight; i++ {
					dst.Set(px, py+i, '│')
				}
			}
		}
	}

	cells := g.Cells()
	for row := range Size {
		for col := range Size {
			v := cells[row][col]
			if v == Empty {
				continue
			}

			valStr := strconv.Itoa(int(v))
			padLeft := max((cellWidth-1-len(valStr))/2, 0)

			cellX := boardX + col*cellWidth + 1
			cellY := boardY + row*cellHeight + 1
			dst.DrawTextColored(cellX+padLeft, cellY, valStr, TileColor(v))
		}
	}
}

// gridJoint picks the box-drawing rune for grid intersection (x, y).
func gridJoint(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == Size:
		return '┐'
	case y == Size && x == 0:
		return '└'
	case y == Size && x == Size:
		return '┘'
	case y == 0:
		return '┬'
	case y == Size:
		return '┴'
	case x == 0:
		return '├'
	case x == Size:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws pause and end-of-game overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerX, centerY := core.NewRect(boardX, boardY, boardW, boardH).Center()

	switch {
	case g.outcome.Win:
		g.drawOverlay(dst, centerX, centerY, "YOU WIN!", fmt.Sprintf("Score: %d", g.score), "R: restart")
	case g.outcome.Lose:
		g.drawOverlay(dst, centerX, centerY, "YOU LOSE", fmt.Sprintf("Max tile: %d", g.MaxTile()), "R: restart")
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "P: resume")
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}
