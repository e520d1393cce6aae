package dashboard

import (
	"github.com/rileyhilliard/blockdash/internal/gradient"
	"github.com/rileyhilliard/blockdash/internal/layout"
	"github.com/rileyhilliard/blockdash/internal/ui"
)

// Bar graphs render through braille characters: each terminal cell is a
// 2-wide, 4-tall dot matrix, so one column of cells carries two bars at
// four dots of vertical resolution per row. A braille rune is the base
// glyph U+2800 plus one bit per raised dot; the bit layout is historical
// (dots 7 and 8 were appended below the original six), so the offsets
// are tabulated rather than computed.

const brailleBase = '⠀'

// brailleDots gives the dot-bit offset for a grid position, indexed
// [row][sub-column], rows top to bottom.
var brailleDots = [4][2]uint8{
	{0, 3},
	{1, 4},
	{2, 5},
	{6, 7},
}

// renderBarGraph draws values as proportional-height bars into area, left
// to right. Each terminal column carries two bars (the two braille
// sub-columns) at four dots of vertical resolution per row, filled bottom
// up. A cell's color comes from mapping the larger of its two bar values
// through the gradient.
//
// Values are expected in [0, 1); out-of-range values clamp. A bar's dot
// count is the value scaled to the column height and rounded to the
// nearest dot, so values near 1 fill the bar. Extra values past 2 x width
// are ignored, and missing values leave trailing columns empty.
func renderBarGraph(canvas *ui.Canvas, values []float64, area layout.Rect, grad gradient.Gradient) {
	if len(values) == 0 || area.Empty() {
		return
	}

	width := area.Width
	height := area.Height
	totalDots := height * 4

	grid := make([][]rune, height)
	for i := range grid {
		grid[i] = make([]rune, width)
		for j := range grid[i] {
			grid[i][j] = brailleBase
		}
	}

	colMax := make([]float64, width)

	for i, val := range values {
		charCol := i / 2
		if charCol >= width {
			break
		}
		if val < 0 {
			val = 0
		}
		if val > 1 {
			val = 1
		}
		if val > colMax[charCol] {
			colMax[charCol] = val
		}

		subCol := i % 2
		dotHeight := int(val*float64(totalDots) + 0.5)
		if dotHeight > totalDots {
			dotHeight = totalDots
		}

		// Fill dots from the bottom up.
		for dot := 0; dot < dotHeight; dot++ {
			row := height - 1 - dot/4
			if row < 0 {
				break
			}
			subRow := 3 - dot%4
			grid[row][charCol] |= rune(1 << brailleDots[subRow][subCol])
		}
	}

	for col := 0; col < width; col++ {
		color := grad.At(colMax[col])
		for row := 0; row < height; row++ {
			canvas.SetCell(area.X+col, area.Y+row, grid[row][col], color, ui.ColorSlate900)
		}
	}
}
