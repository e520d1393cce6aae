package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectInset(t *testing.T) {
	tests := []struct {
		name   string
		rect   Rect
		margin int
		want   Rect
	}{
		{
			name:   "uniform margin",
			rect:   Rect{X: 0, Y: 0, Width: 120, Height: 40},
			margin: 4,
			want:   Rect{X: 4, Y: 4, Width: 112, Height: 32},
		},
		{
			name:   "zero margin is identity",
			rect:   Rect{X: 2, Y: 3, Width: 10, Height: 5},
			margin: 0,
			want:   Rect{X: 2, Y: 3, Width: 10, Height: 5},
		},
		{
			name:   "margin larger than rect collapses to zero size",
			rect:   Rect{X: 0, Y: 0, Width: 6, Height: 6},
			margin: 4,
			want:   Rect{X: 4, Y: 4, Width: 0, Height: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.rect.Inset(tt.margin))
		})
	}
}

func TestRectInner(t *testing.T) {
	t.Run("drops the top border row", func(t *testing.T) {
		r := Rect{X: 4, Y: 6, Width: 55, Height: 7}
		assert.Equal(t, Rect{X: 4, Y: 7, Width: 55, Height: 6}, r.Inner())
	})

	t.Run("single-row rect has empty interior", func(t *testing.T) {
		r := Rect{X: 0, Y: 0, Width: 10, Height: 1}
		assert.True(t, r.Inner().Empty())
	})
}

func TestRectContains(t *testing.T) {
	outer := Rect{X: 0, Y: 0, Width: 120, Height: 40}

	assert.True(t, outer.Contains(Rect{X: 4, Y: 4, Width: 112, Height: 1}))
	assert.True(t, outer.Contains(outer))
	assert.False(t, outer.Contains(Rect{X: 100, Y: 0, Width: 30, Height: 10}))
	assert.False(t, outer.Contains(Rect{X: -1, Y: 0, Width: 5, Height: 5}))
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	assert.True(t, a.Intersects(Rect{X: 9, Y: 9, Width: 5, Height: 5}))
	assert.False(t, a.Intersects(Rect{X: 10, Y: 0, Width: 5, Height: 5}), "edge-adjacent rects do not overlap")
	assert.False(t, a.Intersects(Rect{X: 3, Y: 3, Width: 0, Height: 4}), "empty rects never intersect")
}
