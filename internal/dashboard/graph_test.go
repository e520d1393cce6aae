package dashboard

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/rileyhilliard/blockdash/internal/gradient"
	"github.com/rileyhilliard/blockdash/internal/layout"
	"github.com/rileyhilliard/blockdash/internal/ui"
)

func TestRenderBarGraphFullBars(t *testing.T) {
	canvas := ui.NewCanvas(4, 2)
	area := layout.Rect{Width: 4, Height: 2}
	values := make([]float64, 8) // two bars per column
	for i := range values {
		values[i] = 0.999
	}

	renderBarGraph(canvas, values, area, gradient.Plasma())

	want := gradient.Plasma().At(0.999)
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			cell := canvas.CellAt(x, y)
			assert.Equal(t, '⣿', cell.Rune, "cell %d,%d", x, y)
			assert.Equal(t, want, cell.Fg, "cell %d,%d", x, y)
			assert.Equal(t, ui.ColorSlate900, cell.Bg, "cell %d,%d", x, y)
		}
	}
}

func TestRenderBarGraphZeroValues(t *testing.T) {
	canvas := ui.NewCanvas(3, 2)
	area := layout.Rect{Width: 3, Height: 2}

	renderBarGraph(canvas, make([]float64, 6), area, gradient.Blues())

	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, '⠀', canvas.CellAt(x, y).Rune, "cell %d,%d", x, y)
		}
	}
}

func TestRenderBarGraphHalfHeightBar(t *testing.T) {
	// One bar at 0.5 in a 2-row panel fills the left sub-column of the
	// bottom cell only (4 of 8 dots).
	canvas := ui.NewCanvas(1, 2)
	area := layout.Rect{Width: 1, Height: 2}

	renderBarGraph(canvas, []float64{0.5, 0}, area, gradient.Plasma())

	assert.Equal(t, '⠀', canvas.CellAt(0, 0).Rune, "top cell stays empty")
	assert.Equal(t, '⡇', canvas.CellAt(0, 1).Rune, "bottom-left sub-column filled")
	assert.Equal(t, gradient.Plasma().At(0.5), canvas.CellAt(0, 1).Fg)
}

func TestRenderBarGraphRoundsToNearestDot(t *testing.T) {
	// 0.9 of a 2-row column is 7.2 of 8 dots: rounds to 7, so the bottom
	// cell is full and the top cell misses only its highest dot row.
	canvas := ui.NewCanvas(1, 2)
	area := layout.Rect{Width: 1, Height: 2}

	renderBarGraph(canvas, []float64{0.9, 0.9}, area, gradient.Plasma())

	assert.Equal(t, '⣿', canvas.CellAt(0, 1).Rune)
	assert.Equal(t, '⣶', canvas.CellAt(0, 0).Rune)

	// 0.4 of a 1-row column is 1.6 of 4 dots: rounds to 2.
	canvas = ui.NewCanvas(1, 1)
	renderBarGraph(canvas, []float64{0.4, 0}, layout.Rect{Width: 1, Height: 1}, gradient.Plasma())
	assert.Equal(t, '⡄', canvas.CellAt(0, 0).Rune)
}

func TestRenderBarGraphIgnoresExcessValues(t *testing.T) {
	canvas := ui.NewCanvas(2, 1)
	area := layout.Rect{Width: 2, Height: 1}
	values := make([]float64, 40)
	for i := range values {
		values[i] = 1.5 // also exercises clamping
	}

	assert.NotPanics(t, func() {
		renderBarGraph(canvas, values, area, gradient.Plasma())
	})
	assert.Equal(t, '⣿', canvas.CellAt(0, 0).Rune)
	assert.Equal(t, '⣿', canvas.CellAt(1, 0).Rune)
}

func TestRenderBarGraphEmptyInputs(t *testing.T) {
	canvas := ui.NewCanvas(2, 2)

	renderBarGraph(canvas, nil, layout.Rect{Width: 2, Height: 2}, gradient.Plasma())
	renderBarGraph(canvas, []float64{0.5}, layout.Rect{}, gradient.Plasma())

	assert.Equal(t, ' ', canvas.CellAt(0, 0).Rune, "canvas untouched")
}

func TestRenderPanelBorderAndInterior(t *testing.T) {
	canvas := ui.NewCanvas(20, 5)
	area := layout.Rect{X: 2, Y: 1, Width: 10, Height: 4}

	inner := renderPanel(canvas, "Disk", area)

	assert.Equal(t, layout.Rect{X: 2, Y: 2, Width: 10, Height: 3}, inner)

	// Border row: full blocks except where the centered title overlays.
	assert.Equal(t, '█', canvas.CellAt(2, 1).Rune)
	assert.Equal(t, '█', canvas.CellAt(11, 1).Rune)
	assert.Equal(t, 'D', canvas.CellAt(5, 1).Rune)
	assert.Equal(t, 'k', canvas.CellAt(8, 1).Rune)
	assert.Equal(t, ui.ColorSlate900, canvas.CellAt(5, 1).Fg)
	assert.Equal(t, ui.ColorSlate300, canvas.CellAt(5, 1).Bg)

	// Interior is dark and blank.
	assert.Equal(t, ' ', canvas.CellAt(5, 2).Rune)
	assert.Equal(t, ui.ColorSlate900, canvas.CellAt(5, 2).Bg)

	// Cells outside the panel are untouched.
	assert.Equal(t, lipgloss.Color(""), canvas.CellAt(1, 1).Bg)
	assert.Equal(t, lipgloss.Color(""), canvas.CellAt(12, 1).Bg)
}

func TestRenderPanelLongTitleTruncates(t *testing.T) {
	canvas := ui.NewCanvas(6, 2)
	area := layout.Rect{Width: 4, Height: 2}

	assert.NotPanics(t, func() {
		renderPanel(canvas, "Temperature", area)
	})
	assert.Equal(t, 'T', canvas.CellAt(0, 0).Rune)
	assert.Equal(t, 'p', canvas.CellAt(3, 0).Rune)
}

func TestRenderPanelEmptyArea(t *testing.T) {
	canvas := ui.NewCanvas(4, 4)
	inner := renderPanel(canvas, "CPU", layout.Rect{})
	assert.True(t, inner.Empty())
}
