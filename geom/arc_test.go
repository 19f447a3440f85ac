package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArc(t *testing.T) {
	t.Parallel()

	quarter := NewArc(Point{0, 0}, 10, 0, math.Pi/2)

	t.Run("length", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 10*math.Pi/2, quarter.Length(), 1e-12)
	})

	t.Run("sweep sign", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, 1.0, quarter.Sweep())
		cw := NewArc(Point{0, 0}, 10, math.Pi/2, 0)
		assert.Equal(t, -1.0, cw.Sweep())
	})

	t.Run("endpoints", func(t *testing.T) {
		t.Parallel()
		s := quarter.StartPoint()
		assert.InDelta(t, 10.0, s.X, 1e-12)
		assert.InDelta(t, 0.0, s.Y, 1e-12)
		e := quarter.EndPoint()
		assert.InDelta(t, 0.0, e.X, 1e-12)
		assert.InDelta(t, 10.0, e.Y, 1e-12)
	})
}
