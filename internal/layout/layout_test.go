package layout

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-local/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestLayout_PixelToCell(t *testing.T) {
	board := New(600, 600)

	tests := []struct {
		name     string
		x, y     int
		row, col int
		ok       bool
	}{
		{name: "Top left corner", x: 0, y: 0, row: 0, col: 0, ok: true},
		{name: "Center", x: 300, y: 300, row: 1, col: 1, ok: true},
		{name: "Last pixel of first cell", x: 199, y: 199, row: 0, col: 0, ok: true},
		{name: "First pixel of second column", x: 200, y: 0, row: 0, col: 1, ok: true},
		{name: "Bottom right pixel", x: 599, y: 599, row: 2, col: 2, ok: true},
		{name: "Right edge", x: 600, y: 10, ok: false},
		{name: "Bottom edge", x: 10, y: 600, ok: false},
		{name: "Negative", x: -1, y: 10, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			row, col, ok := board.PixelToCell(tt.x, tt.y)

			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.row, row)
			assert.Equal(t, tt.col, col)
		})
	}
}

func TestLayout_PixelToCell_LeftoverPixels(t *testing.T) {
	// Given: a window that is not a multiple of three
	board := New(301, 301)

	// When: clicking in the leftover pixel column
	_, _, ok := board.PixelToCell(300, 0)

	// Then: the click is outside the grid
	assert.False(t, ok)
}

func TestLayout_GridLines(t *testing.T) {
	lines := New(600, 600).GridLines()

	assert.Equal(t, []Segment{
		{Point{0, 200}, Point{600, 200}},
		{Point{0, 400}, Point{600, 400}},
		{Point{200, 0}, Point{200, 600}},
		{Point{400, 0}, Point{400, 600}},
	}, lines)
}

func TestLayout_Marks(t *testing.T) {
	board := New(600, 600)

	t.Run("Cross in the center cell", func(t *testing.T) {
		strokes := board.Cross(1, 1)

		assert.Equal(t, Segment{Point{225, 375}, Point{375, 225}}, strokes[0])
		assert.Equal(t, Segment{Point{225, 225}, Point{375, 375}}, strokes[1])
	})

	t.Run("Circle in the bottom right cell", func(t *testing.T) {
		center, radius := board.Circle(2, 2)

		assert.Equal(t, Point{500, 500}, center)
		assert.InDelta(t, 66, radius, 0.001)
	})
}

func TestLayout_WinLine(t *testing.T) {
	board := New(600, 600)

	tests := []struct {
		name     string
		line     entity.WinLine
		expected Segment
	}{
		{name: "Row", line: entity.RowWin(1), expected: Segment{Point{15, 300}, Point{585, 300}}},
		{name: "Column", line: entity.ColumnWin(2), expected: Segment{Point{500, 15}, Point{500, 585}}},
		{name: "Main diagonal", line: entity.DiagonalWin(entity.DiagonalMain), expected: Segment{Point{15, 15}, Point{585, 585}}},
		{name: "Anti diagonal", line: entity.DiagonalWin(entity.DiagonalAnti), expected: Segment{Point{585, 15}, Point{15, 585}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			segment, ok := board.WinLine(tt.line)

			assert.True(t, ok)
			assert.Equal(t, tt.expected, segment)
		})
	}

	t.Run("No win", func(t *testing.T) {
		_, ok := board.WinLine(entity.NoWin)

		assert.False(t, ok)
	})
}
