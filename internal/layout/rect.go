package layout

// Rect is a rectangular region of the terminal in cell coordinates.
// X/Y are the top-left corner (0-indexed), Width/Height are in cells.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Right returns the first column past the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first row past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Empty reports whether the rect covers no cells.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Inset shrinks the rect by m cells on every side. A rect too small to
// shrink collapses to a zero-size rect at its center-ish origin rather
// than going negative.
func (r Rect) Inset(m int) Rect {
	if m <= 0 {
		return r
	}
	w := r.Width - 2*m
	h := r.Height - 2*m
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	return Rect{X: r.X + m, Y: r.Y + m, Width: w, Height: h}
}

// Inner returns the area strictly below the top border row. This is the
// drawable interior of a panel whose only border is on the top edge.
func (r Rect) Inner() Rect {
	if r.Height <= 1 {
		return Rect{X: r.X, Y: r.Y + r.Height, Width: r.Width}
	}
	return Rect{X: r.X, Y: r.Y + 1, Width: r.Width, Height: r.Height - 1}
}

// Contains reports whether other lies entirely within r.
// An empty rect is contained anywhere its origin falls inside r.
func (r Rect) Contains(other Rect) bool {
	if other.Empty() {
		return other.X >= r.X && other.X <= r.Right() &&
			other.Y >= r.Y && other.Y <= r.Bottom()
	}
	return other.X >= r.X && other.Right() <= r.Right() &&
		other.Y >= r.Y && other.Bottom() <= r.Bottom()
}

// Intersects reports whether r and other share at least one cell.
func (r Rect) Intersects(other Rect) bool {
	if r.Empty() || other.Empty() {
		return false
	}
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom()
}
