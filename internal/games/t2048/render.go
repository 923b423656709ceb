package t2048

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048/engine"
)

const (
	cellWidth  = 7 // Width of each cell (including left border)
	cellHeight = 4 // Height of each cell (including top border)
	hudHeight  = 3

	boardW = engine.Size*cellWidth + 1  // +1 for right border
	boardH = engine.Size*cellHeight + 1 // +1 for bottom border

	// Minimum size: board + HUD + gap + controls line
	minScreenW = boardW + 2
	minScreenH = hudHeight + 1 + boardH + 2
)

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

	controls := g.Controls()
	controlsX := max((g.screenW-len(controls))/2, 0)
	dst.DrawTextColored(controlsX, boardY+boardH+1, controls, core.ColorGray)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
}

// renderHUD draws the score and level info.
func (g *Game) renderHUD(dst *core.Screen, boardX int) {
	title := g.Title()
	dst.DrawTextColored(boardX+(boardW-len(title))/2, 0, title, core.ColorYellow)

	scoreStr := fmt.Sprintf("Score: %d", g.eng.Score())
	dst.DrawText(boardX, 1, scoreStr)

	var infoStr string
	if g.mode == ModeCampaign {
		infoStr = fmt.Sprintf("Level %d/%d  Target: %d", g.levelIndex+1, len(g.levels), g.currentTarget())
	} else {
		infoStr = fmt.Sprintf("Best tile: %d", g.eng.MaxTile())
	}
	infoX := core.Clamp(boardX+boardW-len(infoStr), boardX, g.screenW-len(infoStr))
	row := 1
	if len(scoreStr)+1+len(infoStr) > boardW {
		row = 2
	}
	dst.DrawText(infoX, row, infoStr)
}

// renderBoard draws the 4x4 grid with colored tiles.
func (g *Game) renderBoard(dst *core.Screen, boardX, boardY int) {
	for y := 0; y < engine.Size+1; y++ {
		for x := 0; x < engine.Size+1; x++ {
			px := boardX + x*cellWidth
			py := boardY + y*cellHeight

			dst.SetCell(px, py, core.Cell{Rune: gridCorner(x, y), Color: core.ColorGray})

			if x < engine.Size {
				for i := 1; i < cellWidth; i++ {
					dst.SetCell(px+i, py, core.Cell{Rune: '─', Color: core.ColorGray})
				}
			}
			if y < engine.Size {
				for i := 1; i < cellHeight; i++ {
					dst.SetCell(px, py+i, core.Cell{Rune: '│', Color: core.ColorGray})
				}
			}
		}
	}

	grid := g.eng.Grid()
	for y := 0; y < engine.Size; y++ {
		for x := 0; x < engine.Size; x++ {
			val := grid[y][x]
			color := core.TileColor(val)

			inner := core.NewRect(boardX+x*cellWidth+1, boardY+y*cellHeight+1, cellWidth-1, cellHeight-1)
			dst.FillRect(inner, core.Cell{Rune: ' ', Color: color})

			if val == 0 {
				continue
			}

			valStr := strconv.Itoa(val)
			_, cy := inner.Center()
			padLeft := max((inner.W-len(valStr))/2, 0)
			dst.DrawTextColored(inner.X+padLeft, cy, valStr, color)
		}
	}
}

// gridCorner returns the box-drawing rune for grid intersection (x, y).
func gridCorner(x, y int) rune {
	switch {
	case y == 0 && x == 0:
		return '┌'
	case y == 0 && x == engine.Size:
		return '┐'
	case y == engine.Size && x == 0:
		return '└'
	case y == engine.Size && x == engine.Size:
		return '┘'
	case y == 0:
		return '┬'
	case y == engine.Size:
		return '┴'
	case x == 0:
		return '├'
	case x == engine.Size:
		return '┤'
	default:
		return '┼'
	}
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, boardX, boardY int) {
	centerX := boardX + boardW/2
	centerY := boardY + boardH/2

	switch {
	case g.paused:
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
	case g.levelCleared:
		targetStr := fmt.Sprintf("Target %d reached!", g.currentTarget())
		if g.levelIndex >= len(g.levels)-1 {
			g.drawOverlay(dst, centerX, centerY, targetStr, "Final level complete!", "Enter: finish")
		} else {
			nextStr := fmt.Sprintf("Next: Level %d", g.levelIndex+2)
			g.drawOverlay(dst, centerX, centerY, targetStr, nextStr, "Enter: continue")
		}
	case g.won:
		finalStr := fmt.Sprintf("Final Score: %d", g.eng.Score())
		g.drawOverlay(dst, centerX, centerY, "CAMPAIGN COMPLETE!", finalStr, "Press R to restart")
	case g.gameOver:
		finalStr := fmt.Sprintf("Final Score: %d", g.eng.Score())
		g.drawOverlay(dst, centerX, centerY, "GAME OVER", finalStr, "Press R to restart")
	}
}

// drawOverlay draws a centered boxed text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(0, 0, maxLen+4, len(lines)+2)
	box.X = centerX - box.W/2
	box.Y = centerY - box.H/2

	dst.FillRect(box, core.Cell{Rune: ' '})
	dst.DrawBox(box)

	for i, line := range lines {
		color := core.ColorBrightWhite
		if i == 0 {
			color = core.ColorRed
			if g.levelCleared || g.won {
				color = core.ColorYellow
			}
		}
		dst.DrawTextColored(centerX-len(line)/2, box.Y+1+i, line, color)
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | R: Restart | P: Pause | Q: Quit"
}
