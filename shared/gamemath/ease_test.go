package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEaseEndpoints(t *testing.T) {
	for _, a := range []float64{1, 1.5, 2, 3} {
		assert.Equal(t, 0.0, Ease(0, a))
		assert.Equal(t, 1.0, Ease(1, a))
	}
}

func TestEaseLinearAtExponentOne(t *testing.T) {
	for _, x := range []float64{0, 0.1, 0.25, 0.5, 0.9, 1} {
		assert.InDelta(t, x, Ease(x, 1), 1e-12)
	}
}

func TestEaseSymmetricAndMonotonic(t *testing.T) {
	const a = 2.0
	prev := -1.0
	for i := 0; i <= 100; i++ {
		x := float64(i) / 100
		y := Ease(x, a)
		assert.Greater(t, y, prev, "ease must be strictly increasing at x=%v", x)
		// Symmetric around the midpoint.
		assert.InDelta(t, 1-y, Ease(1-x, a), 1e-12)
		prev = y
	}
	// Higher exponents start slower.
	assert.Less(t, Ease(0.1, 3), Ease(0.1, 1))
}
