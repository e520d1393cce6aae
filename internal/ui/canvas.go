// Package ui provides the cell-level drawing surface the dashboard renders
// into. Bubble Tea views are strings, so absolute-positioned regions are
// drawn onto a grid of styled cells first and serialized once per frame.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/blockdash/internal/layout"
)

// Cell is one terminal cell: a rune plus foreground and background colors.
// An empty color string means "unstyled" and is omitted from the output.
type Cell struct {
	Rune rune
	Fg   lipgloss.Color
	Bg   lipgloss.Color
}

// Canvas is a width x height grid of cells for one frame. Drawing
// operations clip silently at the canvas edges; geometry mistakes show up
// as missing output, never as panics.
type Canvas struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCanvas creates a canvas of blank (space, unstyled) cells.
func NewCanvas(width, height int) *Canvas {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	cells := make([][]Cell, height)
	for y := range cells {
		row := make([]Cell, width)
		for x := range row {
			row[x] = Cell{Rune: ' '}
		}
		cells[y] = row
	}
	return &Canvas{width: width, height: height, cells: cells}
}

// Width returns the canvas width in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in cells.
func (c *Canvas) Height() int { return c.height }

// Area returns the full canvas as a layout rect.
func (c *Canvas) Area() layout.Rect {
	return layout.Rect{Width: c.width, Height: c.height}
}

// SetCell writes one cell, clipping if (x, y) is outside the canvas.
func (c *Canvas) SetCell(x, y int, r rune, fg, bg lipgloss.Color) {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return
	}
	c.cells[y][x] = Cell{Rune: r, Fg: fg, Bg: bg}
}

// CellAt returns the cell at (x, y). Out-of-bounds reads return a blank cell.
func (c *Canvas) CellAt(x, y int) Cell {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return Cell{Rune: ' '}
	}
	return c.cells[y][x]
}

// Fill sets every cell in the rect to the given rune and colors.
func (c *Canvas) Fill(r layout.Rect, ch rune, fg, bg lipgloss.Color) {
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			c.SetCell(x, y, ch, fg, bg)
		}
	}
}

// DrawText writes a single line of text starting at (x, y), clipping at the
// canvas edge.
func (c *Canvas) DrawText(x, y int, text string, fg, bg lipgloss.Color) {
	for _, r := range text {
		c.SetCell(x, y, r, fg, bg)
		x++
	}
}

// String serializes the canvas to the frame string handed back from View.
// Runs of identically styled cells share one lipgloss render call.
func (c *Canvas) String() string {
	var sb strings.Builder
	for y := 0; y < c.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		c.renderRow(&sb, c.cells[y])
	}
	return sb.String()
}

func (c *Canvas) renderRow(sb *strings.Builder, row []Cell) {
	var run strings.Builder
	var fg, bg lipgloss.Color
	flush := func() {
		if run.Len() == 0 {
			return
		}
		style := lipgloss.NewStyle()
		if fg != "" {
			style = style.Foreground(fg)
		}
		if bg != "" {
			style = style.Background(bg)
		}
		sb.WriteString(style.Render(run.String()))
		run.Reset()
	}
	for i, cell := range row {
		if i == 0 || cell.Fg != fg || cell.Bg != bg {
			flush()
			fg, bg = cell.Fg, cell.Bg
		}
		run.WriteRune(cell.Rune)
	}
	flush()
}
