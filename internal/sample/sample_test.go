package sample

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeriesLengthAndRange(t *testing.T) {
	src := New()

	for _, width := range []int{1, 8, 55, 74} {
		n := width * 2
		series := src.Series(n)
		require.Len(t, series, n, "two samples per column of width %d", width)
		for i, v := range series {
			assert.GreaterOrEqual(t, v, 0.0, "value %d", i)
			assert.Less(t, v, 1.0, "value %d", i)
		}
	}
}

func TestSeriesEmptyForNonPositiveCounts(t *testing.T) {
	src := New()
	assert.Empty(t, src.Series(0))
	assert.Empty(t, src.Series(-3))
}

func TestSeededSourceIsReproducible(t *testing.T) {
	a := NewSeeded(42).Series(64)
	b := NewSeeded(42).Series(64)
	assert.Equal(t, a, b)

	c := NewSeeded(43).Series(64)
	assert.NotEqual(t, a, c)
}

func TestFixedSourceCycles(t *testing.T) {
	src := Fixed(0.1, 0.9)
	assert.Equal(t, []float64{0.1, 0.9, 0.1, 0.9, 0.1}, src.Series(5))
}

func TestFixedSourceWithoutValuesIsZero(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0}, Fixed().Series(3))
}
