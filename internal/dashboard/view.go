package dashboard

import (
	"github.com/rileyhilliard/blockdash/internal/gradient"
	"github.com/rileyhilliard/blockdash/internal/layout"
	"github.com/rileyhilliard/blockdash/internal/ui"
)

// headerText is the single header line above the panels.
const headerText = "Blocks without borders"

// Layout constants for the frame partition.
const (
	frameMargin  = 4 // blank cells on every side of the canvas
	bandSpacing  = 1 // blank rows between vertical bands
	panelSpacing = 2 // blank columns between panels in a band
)

// Regions holds the computed partition for one frame: a one-row header,
// then three bands in 1:2:1 proportion. The top band splits evenly into
// CPU and GPU; the mid band splits 1:2 into Disk and Memory. The bottom
// band is computed but intentionally left unrendered.
type Regions struct {
	Header layout.Rect
	CPU    layout.Rect
	GPU    layout.Rect
	Disk   layout.Rect
	Memory layout.Rect
	Bottom layout.Rect
}

// ComputeRegions partitions the canvas area into the frame's regions.
// Pure function of the area; called fresh every frame.
func ComputeRegions(area layout.Rect) Regions {
	bands := layout.Vertical(
		layout.Length(1),
		layout.Fill(1),
		layout.Fill(2),
		layout.Fill(1),
	).WithMargin(frameMargin).WithSpacing(bandSpacing).Split(area)

	top := layout.Horizontal(layout.Fill(1), layout.Fill(1)).
		WithSpacing(panelSpacing).Split(bands[1])

	mid := layout.Horizontal(layout.Fill(1), layout.Fill(2)).
		WithSpacing(panelSpacing).Split(bands[2])

	return Regions{
		Header: bands[0],
		CPU:    top[0],
		GPU:    top[1],
		Disk:   mid[0],
		Memory: mid[1],
		Bottom: bands[3],
	}
}

// renderDashboard draws one complete frame: background, header line, and
// the four panels.
func (m Model) renderDashboard() string {
	canvas := ui.NewCanvas(m.width, m.height)
	area := canvas.Area()

	canvas.Fill(area, ' ', "", ui.ColorSlate800)

	r := ComputeRegions(area)

	if !r.Header.Empty() {
		canvas.DrawText(r.Header.X, r.Header.Y, headerText, ui.ColorSlate900, ui.ColorSlate100)
	}

	m.renderGraphPanel(canvas, "CPU", r.CPU, gradient.Plasma())
	m.renderGraphPanel(canvas, "GPU", r.GPU, gradient.Plasma())
	renderPanel(canvas, "Disk", r.Disk)
	m.renderGraphPanel(canvas, "Memory", r.Memory, gradient.Blues())

	return canvas.String()
}

// renderGraphPanel draws a titled panel and fills its interior with a bar
// graph of freshly sampled data: two samples per interior column.
func (m Model) renderGraphPanel(canvas *ui.Canvas, title string, area layout.Rect, grad gradient.Gradient) {
	inner := renderPanel(canvas, title, area)
	if inner.Empty() {
		return
	}
	data := m.samples.Series(inner.Width * 2)
	renderBarGraph(canvas, data, inner, grad)
}
