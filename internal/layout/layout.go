// Package layout partitions rectangular terminal regions using declarative
// fixed/proportional constraints with margins and spacing. Splits are pure
// functions of the input area: the same area and constraints always produce
// the same regions, so callers recompute layouts every frame instead of
// caching them.
package layout

import "sort"

type constraintKind int

const (
	kindLength constraintKind = iota
	kindFill
)

// Constraint describes how much of the split axis one region receives.
type Constraint struct {
	kind  constraintKind
	value int
}

// Length creates a fixed-size constraint of n cells along the split axis.
func Length(n int) Constraint {
	if n < 0 {
		n = 0
	}
	return Constraint{kind: kindLength, value: n}
}

// Fill creates a proportional constraint: regions with Fill constraints
// share the space left over after fixed lengths and spacing, in proportion
// to their weights.
func Fill(weight int) Constraint {
	if weight < 0 {
		weight = 0
	}
	return Constraint{kind: kindFill, value: weight}
}

type direction int

const (
	vertical direction = iota
	horizontal
)

// Layout is a single-axis split specification. Build one with Vertical or
// Horizontal, optionally adjust it with WithMargin/WithSpacing, then call
// Split to partition an area.
type Layout struct {
	direction   direction
	margin      int
	spacing     int
	constraints []Constraint
}

// Vertical creates a layout that stacks regions top to bottom.
func Vertical(constraints ...Constraint) Layout {
	return Layout{direction: vertical, constraints: constraints}
}

// Horizontal creates a layout that places regions left to right.
func Horizontal(constraints ...Constraint) Layout {
	return Layout{direction: horizontal, constraints: constraints}
}

// WithMargin returns a copy of the layout with a uniform margin of m cells
// applied to all four sides of the area before splitting.
func (l Layout) WithMargin(m int) Layout {
	l.margin = m
	return l
}

// WithSpacing returns a copy of the layout with s blank cells between
// adjacent regions.
func (l Layout) WithSpacing(s int) Layout {
	l.spacing = s
	return l
}

// Split partitions area into one rect per constraint. Fixed lengths are
// honored first; the remaining space is distributed across Fill constraints
// by weight. Cells that do not divide evenly go to the higher-weight fills
// first (earlier index on ties), so a 1:2 split of an odd width rounds
// toward the larger share. Regions never extend past the (margin-inset)
// area; when space runs out trailing regions collapse to zero size.
func (l Layout) Split(area Rect) []Rect {
	n := len(l.constraints)
	rects := make([]Rect, n)
	if n == 0 {
		return rects
	}

	inner := area.Inset(l.margin)

	total := inner.Height
	if l.direction == horizontal {
		total = inner.Width
	}

	avail := total - l.spacing*(n-1)
	if avail < 0 {
		avail = 0
	}

	fixedSum := 0
	weightSum := 0
	for _, c := range l.constraints {
		if c.kind == kindLength {
			fixedSum += c.value
		} else {
			weightSum += c.value
		}
	}

	remaining := avail - fixedSum
	if remaining < 0 {
		remaining = 0
	}

	sizes := make([]int, n)
	used := 0
	for i, c := range l.constraints {
		if c.kind == kindLength {
			sizes[i] = c.value
			continue
		}
		if weightSum > 0 {
			sizes[i] = remaining * c.value / weightSum
			used += sizes[i]
		}
	}

	// Integer division leaves a few cells over; hand them out one per fill,
	// heaviest weight first.
	if weightSum > 0 {
		leftover := remaining - used
		order := fillOrder(l.constraints)
		for i := 0; leftover > 0 && len(order) > 0; i++ {
			sizes[order[i%len(order)]]++
			leftover--
		}
	}

	// Lay regions out along the axis, clamping to the inset area.
	pos := inner.Y
	end := inner.Bottom()
	if l.direction == horizontal {
		pos = inner.X
		end = inner.Right()
	}

	for i, size := range sizes {
		if pos > end {
			pos = end
		}
		if pos+size > end {
			size = end - pos
		}
		if size < 0 {
			size = 0
		}
		if l.direction == vertical {
			rects[i] = Rect{X: inner.X, Y: pos, Width: inner.Width, Height: size}
		} else {
			rects[i] = Rect{X: pos, Y: inner.Y, Width: size, Height: inner.Height}
		}
		pos += size + l.spacing
	}

	return rects
}

// fillOrder returns the indices of Fill constraints sorted by descending
// weight, earlier index first on ties.
func fillOrder(constraints []Constraint) []int {
	var order []int
	for i, c := range constraints {
		if c.kind == kindFill && c.value > 0 {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return constraints[order[a]].value > constraints[order[b]].value
	})
	return order
}
