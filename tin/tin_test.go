package tin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitegrade/corridor/geom"
)

func flatSquare(z float64) *Tin {
	return FromPoints([]geom.Point3{
		{X: 0, Y: 0, Z: z},
		{X: 10, Y: 0, Z: z},
		{X: 0, Y: 10, Z: z},
		{X: 10, Y: 10, Z: z},
	})
}

func TestFromPoints(t *testing.T) {
	t.Parallel()

	t.Run("square yields two triangles", func(t *testing.T) {
		t.Parallel()
		surf := flatSquare(0)
		assert.Len(t, surf.Vertices, 4)
		assert.Len(t, surf.Triangles, 2)
	})

	t.Run("degenerate input keeps vertices", func(t *testing.T) {
		t.Parallel()
		surf := FromPoints([]geom.Point3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}})
		assert.Len(t, surf.Vertices, 2)
		assert.Empty(t, surf.Triangles)
	})

	t.Run("collinear input yields no triangles", func(t *testing.T) {
		t.Parallel()
		surf := FromPoints([]geom.Point3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 2, Y: 0, Z: 0}})
		assert.Len(t, surf.Vertices, 3)
		assert.Empty(t, surf.Triangles)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()
		surf := FromPoints(nil)
		assert.Empty(t, surf.Vertices)
		assert.Empty(t, surf.Triangles)
	})
}

func TestElevationAt(t *testing.T) {
	t.Parallel()

	// Tilted plane z = x.
	surf := FromPoints([]geom.Point3{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 10},
		{X: 0, Y: 10, Z: 0},
		{X: 10, Y: 10, Z: 10},
	})

	t.Run("interpolates inside", func(t *testing.T) {
		t.Parallel()
		z, ok := surf.ElevationAt(5, 5)
		require.True(t, ok)
		assert.InDelta(t, 5.0, z, 1e-9)

		z, ok = surf.ElevationAt(2.5, 7)
		require.True(t, ok)
		assert.InDelta(t, 2.5, z, 1e-9)
	})

	t.Run("hits vertices exactly", func(t *testing.T) {
		t.Parallel()
		z, ok := surf.ElevationAt(10, 10)
		require.True(t, ok)
		assert.InDelta(t, 10.0, z, 1e-9)
	})

	t.Run("outside the hull", func(t *testing.T) {
		t.Parallel()
		_, ok := surf.ElevationAt(-1, 5)
		assert.False(t, ok)
		_, ok = surf.ElevationAt(11, 11)
		assert.False(t, ok)
	})
}

func TestElevationDifferenceAt(t *testing.T) {
	t.Parallel()

	upper := flatSquare(3)
	lower := flatSquare(1)

	diff, ok := upper.ElevationDifferenceAt(lower, 5, 5)
	require.True(t, ok)
	assert.InDelta(t, 2.0, diff, 1e-9)

	_, ok = upper.ElevationDifferenceAt(lower, 50, 50)
	assert.False(t, ok)
}
