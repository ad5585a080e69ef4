package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/rocketscienceinc/tictactoe-local/internal/layout"
)

var (
	colorBackground = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	colorGrid       = color.RGBA{A: 0xff}
	colorX          = color.RGBA{R: 0x8b, G: 0x25, A: 0xff} // orangered4
	colorO          = color.RGBA{R: 0xee, G: 0xc9, A: 0xff} // gold2
)

// painter draws a round onto the screen using board geometry.
type painter struct {
	board layout.Layout
}

func (that painter) paint(screen *ebiten.Image, game *entity.Game) {
	that.clearAndDrawGrid(screen)

	for row := range entity.BoardSize {
		for col := range entity.BoardSize {
			that.drawMark(screen, row, col, game.Board.Cell(row, col))
		}
	}

	if game.IsWon() {
		that.drawWinLine(screen, game.Line, markColor(game.Winner))
	}
}

func (that painter) clearAndDrawGrid(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	for _, line := range that.board.GridLines() {
		strokeSegment(screen, line, layout.GridLineWidth, colorGrid)
	}
}

func (that painter) drawMark(screen *ebiten.Image, row, col int, mark entity.Mark) {
	switch mark {
	case entity.X:
		for _, stroke := range that.board.Cross(row, col) {
			strokeSegment(screen, stroke, layout.CrossWidth, colorX)
		}
	case entity.O:
		center, radius := that.board.Circle(row, col)
		vector.StrokeCircle(screen, center.X, center.Y, radius, layout.CircleWidth, colorO, true)
	}
}

func (that painter) drawWinLine(screen *ebiten.Image, line entity.WinLine, clr color.Color) {
	segment, ok := that.board.WinLine(line)
	if !ok {
		return
	}

	strokeSegment(screen, segment, layout.WinLineWidth, clr)
}

func strokeSegment(screen *ebiten.Image, segment layout.Segment, width float32, clr color.Color) {
	vector.StrokeLine(screen, segment.From.X, segment.From.Y, segment.To.X, segment.To.Y, width, clr, true)
}

func markColor(mark entity.Mark) color.Color {
	if mark == entity.O {
		return colorO
	}
	return colorX
}
