package dashboard

import (
	"github.com/rileyhilliard/blockdash/internal/layout"
	"github.com/rileyhilliard/blockdash/internal/ui"
)

// topBorder is the full-block rune used for the panel's single border edge.
const topBorder = '█'

// renderPanel draws a panel into area: dark body, a full-block border along
// the top edge only, and the title centered over the border styled so it
// reads as dark text on the light border. Returns the interior rect (the
// area strictly below the border row). Zero-size areas draw nothing.
func renderPanel(canvas *ui.Canvas, title string, area layout.Rect) layout.Rect {
	if area.Empty() {
		return layout.Rect{}
	}

	canvas.Fill(area, ' ', "", ui.ColorSlate900)

	border := layout.Rect{X: area.X, Y: area.Y, Width: area.Width, Height: 1}
	canvas.Fill(border, topBorder, ui.ColorSlate300, ui.ColorSlate900)

	drawCenteredTitle(canvas, title, border)

	return area.Inner()
}

// drawCenteredTitle overlays the title on the border row, centered and
// clipped to the panel width.
func drawCenteredTitle(canvas *ui.Canvas, title string, border layout.Rect) {
	runes := []rune(title)
	if len(runes) > border.Width {
		runes = runes[:border.Width]
	}
	x := border.X + (border.Width-len(runes))/2
	canvas.DrawText(x, border.Y, string(runes), ui.ColorSlate900, ui.ColorSlate300)
}
