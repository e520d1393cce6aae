package gradient

// Preset anchor colors. Plasma uses the matplotlib plasma anchors; Blues
// uses the nine-class ColorBrewer Blues ramp, light to dark.
var (
	plasma = New("plasma",
		"#0d0887", "#46039f", "#7201a8", "#9c179e", "#bd3786",
		"#d8576b", "#ed7953", "#fb9f3a", "#fdca26", "#f0f921",
	)

	blues = New("blues",
		"#f7fbff", "#deebf7", "#c6dbef", "#9ecae1", "#6baed6",
		"#4292c6", "#2171b5", "#08519c", "#08306b",
	)
)

// Plasma returns the plasma preset (deep blue through magenta to yellow).
func Plasma() Gradient {
	return plasma
}

// Blues returns the blues preset (near-white to deep navy).
func Blues() Gradient {
	return blues
}

// Preset looks up a gradient by name. The second return value reports
// whether the name is known.
func Preset(name string) (Gradient, bool) {
	switch name {
	case "plasma":
		return plasma, true
	case "blues":
		return blues, true
	}
	return Gradient{}, false
}
