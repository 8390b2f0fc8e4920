package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/blockfall/engine"
)

const (
	CellSize     = 30
	BoardOffsetX = 300
	BoardOffsetY = 40
	PreviewCell  = 20
	PanelOffsetX = BoardOffsetX + engine.Cols*CellSize + 30

	ScreenWidth  = 1024
	ScreenHeight = BoardOffsetY*2 + engine.Rows*CellSize
)

var (
	backgroundColor = color.RGBA{R: 20, G: 20, B: 28, A: 255}
	wellColor       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	gridColor       = color.RGBA{R: 40, G: 40, B: 52, A: 255}
	ghostColor      = color.RGBA{R: 200, G: 200, B: 200, A: 160}
)

// cellOrigin returns the top-left pixel of a board cell.
func cellOrigin(col, row int) (float32, float32) {
	return float32(BoardOffsetX + col*CellSize), float32(BoardOffsetY + row*CellSize)
}

// hudLines formats the text shown beside the board.
func hudLines(snap engine.Snapshot) []string {
	lines := []string{
		fmt.Sprintf("Score: %d", snap.Score.Points),
		fmt.Sprintf("Level: %d", snap.Score.Level),
		fmt.Sprintf("Lines: %d", snap.Score.Lines),
	}
	switch snap.State {
	case engine.Paused:
		lines = append(lines, "", "PAUSED - press P")
	case engine.GameOver:
		lines = append(lines, "", "GAME OVER - press R")
	}
	return lines
}

func drawGame(screen *ebiten.Image, snap engine.Snapshot) {
	screen.Fill(backgroundColor)

	x0, y0 := cellOrigin(0, 0)
	vector.DrawFilledRect(screen, x0, y0, engine.Cols*CellSize, engine.Rows*CellSize, wellColor, false)
	vector.StrokeRect(screen, x0-1, y0-1, engine.Cols*CellSize+2, engine.Rows*CellSize+2, 2, gridColor, false)

	for y, row := range snap.Board {
		for x, c := range row {
			if !c.Empty() {
				drawCell(screen, x, y, c)
			}
		}
	}

	if snap.State != engine.GameOver {
		drawGhost(screen, snap.Active, snap.GhostY)
		forEachCell(snap.Active, func(x, y int) {
			if y >= 0 {
				drawCell(screen, x, y, snap.Active.Color)
			}
		})
	}

	drawPreview(screen, "NEXT", &snap.Next, PanelOffsetX, BoardOffsetY)
	drawPreview(screen, "HOLD", snap.Hold, 40, BoardOffsetY)
	if snap.Hold != nil && !snap.CanHold {
		ebitenutil.DebugPrintAt(screen, "(used)", 40, BoardOffsetY+5*PreviewCell)
	}

	for i, line := range hudLines(snap) {
		ebitenutil.DebugPrintAt(screen, line, PanelOffsetX, BoardOffsetY+6*PreviewCell+i*16)
	}
}

func forEachCell(p engine.PieceView, fn func(x, y int)) {
	for r, row := range p.Matrix {
		for c, filled := range row {
			if filled {
				fn(p.X+c, p.Y+r)
			}
		}
	}
}

func drawCell(screen *ebiten.Image, col, row int, c engine.Color) {
	x, y := cellOrigin(col, row)
	vector.DrawFilledRect(screen, x+1, y+1, CellSize-2, CellSize-2, c, false)
}

func drawGhost(screen *ebiten.Image, active engine.PieceView, ghostY int) {
	if ghostY == active.Y {
		return
	}
	ghost := active
	ghost.Y = ghostY
	forEachCell(ghost, func(col, row int) {
		if row < 0 {
			return
		}
		x, y := cellOrigin(col, row)
		vector.StrokeRect(screen, x+2, y+2, CellSize-4, CellSize-4, 1, ghostColor, false)
	})
}

func drawPreview(screen *ebiten.Image, label string, p *engine.PieceView, x, y int) {
	ebitenutil.DebugPrintAt(screen, label, x, y)
	if p == nil {
		return
	}
	for r, row := range p.Matrix {
		for c, filled := range row {
			if !filled {
				continue
			}
			px := float32(x + c*PreviewCell)
			py := float32(y + 20 + r*PreviewCell)
			vector.DrawFilledRect(screen, px+1, py+1, PreviewCell-2, PreviewCell-2, p.Color, false)
		}
	}
}
