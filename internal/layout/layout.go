// Package layout maps between window pixels and board cells and computes
// where grid lines, marks and win lines are drawn.
package layout

import "github.com/rocketscienceinc/tictactoe-local/internal/entity"

const (
	GridLineWidth  = 10
	CrossWidth     = 40
	CircleWidth    = 30
	WinLineWidth   = 5
	winLineInset   = 15
	crossPadDivide = 8
	radiusDivide   = 3
)

type Point struct {
	X, Y float32
}

type Segment struct {
	From, To Point
}

// Layout describes a window split into a 3x3 grid of equal cells.
type Layout struct {
	Width, Height int
	cellWidth     int
	cellHeight    int
}

func New(width, height int) Layout {
	return Layout{
		Width:      width,
		Height:     height,
		cellWidth:  width / entity.BoardSize,
		cellHeight: height / entity.BoardSize,
	}
}

// PixelToCell returns the cell under (x, y). ok is false for points outside the grid,
// including the few pixels left over when the window size is not a multiple of 3.
func (that Layout) PixelToCell(x, y int) (row, col int, ok bool) {
	if x < 0 || y < 0 || that.cellWidth == 0 || that.cellHeight == 0 {
		return 0, 0, false
	}

	row, col = y/that.cellHeight, x/that.cellWidth
	if !entity.InBounds(row, col) {
		return 0, 0, false
	}

	return row, col, true
}

// GridLines returns the two horizontal and two vertical separators.
func (that Layout) GridLines() []Segment {
	w, h := float32(that.Width), float32(that.Height)
	lines := make([]Segment, 0, 2*(entity.BoardSize-1))

	for i := 1; i < entity.BoardSize; i++ {
		y := float32(i * that.cellHeight)
		lines = append(lines, Segment{Point{0, y}, Point{w, y}})
	}

	for i := 1; i < entity.BoardSize; i++ {
		x := float32(i * that.cellWidth)
		lines = append(lines, Segment{Point{x, 0}, Point{x, h}})
	}

	return lines
}

// Cross returns the two strokes of an X drawn in (row, col).
func (that Layout) Cross(row, col int) [2]Segment {
	left := float32(col*that.cellWidth + that.cellWidth/crossPadDivide)
	right := float32(col*that.cellWidth + that.cellWidth - that.cellWidth/crossPadDivide)
	top := float32(row*that.cellHeight + that.cellHeight/crossPadDivide)
	bottom := float32(row*that.cellHeight + that.cellHeight - that.cellHeight/crossPadDivide)

	return [2]Segment{
		{Point{left, bottom}, Point{right, top}},
		{Point{left, top}, Point{right, bottom}},
	}
}

// Circle returns the center and radius of an O drawn in (row, col).
func (that Layout) Circle(row, col int) (Point, float32) {
	center := Point{
		X: float32(col*that.cellWidth + that.cellWidth/2),
		Y: float32(row*that.cellHeight + that.cellHeight/2),
	}

	return center, float32(min(that.cellWidth, that.cellHeight) / radiusDivide)
}

// WinLine returns the stroke drawn through a winning line. ok is false for NoWin.
func (that Layout) WinLine(line entity.WinLine) (Segment, bool) {
	w, h := float32(that.Width), float32(that.Height)
	const inset = float32(winLineInset)

	switch line.Kind {
	case entity.LineRow:
		y := float32(line.Index*that.cellHeight + that.cellHeight/2)
		return Segment{Point{inset, y}, Point{w - inset, y}}, true
	case entity.LineColumn:
		x := float32(line.Index*that.cellWidth + that.cellWidth/2)
		return Segment{Point{x, inset}, Point{x, h - inset}}, true
	case entity.LineDiagonal:
		if line.Index == entity.DiagonalAnti {
			return Segment{Point{w - inset, inset}, Point{inset, h - inset}}, true
		}
		return Segment{Point{inset, inset}, Point{w - inset, h - inset}}, true
	default:
		return Segment{}, false
	}
}
