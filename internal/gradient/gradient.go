// Package gradient provides named continuous color mappings for graph
// rendering. A gradient maps a value in [0, 1] to a terminal color by
// interpolating between fixed anchor stops.
package gradient

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Gradient is an immutable multi-stop color ramp. The zero value is not
// usable; construct one with New or use a preset.
type Gradient struct {
	name  string
	stops []colorful.Color
}

// New builds a gradient from evenly spaced hex color stops. Invalid hex
// literals panic: stops are compile-time constants, not runtime input.
func New(name string, hexStops ...string) Gradient {
	if len(hexStops) < 2 {
		panic("gradient: need at least two stops")
	}
	stops := make([]colorful.Color, len(hexStops))
	for i, h := range hexStops {
		c, err := colorful.Hex(h)
		if err != nil {
			panic("gradient: bad hex stop " + h)
		}
		stops[i] = c
	}
	return Gradient{name: name, stops: stops}
}

// Name returns the preset name the gradient was registered under.
func (g Gradient) Name() string {
	return g.name
}

// At maps t in [0, 1] to a color on the ramp. Out-of-range values clamp to
// the first or last stop. Interpolation happens in Luv space, which keeps
// perceived brightness even across the ramp.
func (g Gradient) At(t float64) lipgloss.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	scaled := t * float64(len(g.stops)-1)
	i := int(scaled)
	if i >= len(g.stops)-1 {
		return lipgloss.Color(g.stops[len(g.stops)-1].Hex())
	}
	frac := scaled - float64(i)
	c := g.stops[i].BlendLuv(g.stops[i+1], frac).Clamped()
	return lipgloss.Color(c.Hex())
}
