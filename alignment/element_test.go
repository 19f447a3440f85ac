package alignment

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitegrade/corridor/geom"
)

func TestTangent(t *testing.T) {
	t.Parallel()

	tan := Tangent{Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 30, Y: 40}}

	assert.InDelta(t, 50.0, tan.Length(), 1e-12)

	p := tan.PointAt(25)
	assert.InDelta(t, 15.0, p.X, 1e-12)
	assert.InDelta(t, 20.0, p.Y, 1e-12)

	d := tan.DirectionAt(25)
	assert.InDelta(t, 0.6, d.X, 1e-12)
	assert.InDelta(t, 0.8, d.Y, 1e-12)
}

func TestTangentDegenerate(t *testing.T) {
	t.Parallel()

	tan := Tangent{Start: geom.Point{X: 2, Y: 3}, End: geom.Point{X: 2, Y: 3}}
	assert.Zero(t, tan.Length())
	assert.Equal(t, geom.Point{X: 2, Y: 3}, tan.PointAt(0))
	assert.Equal(t, geom.Vec{}, tan.DirectionAt(0))
}

func TestCurve(t *testing.T) {
	t.Parallel()

	// Counter-clockwise quarter circle from (10,0) to (0,10).
	c := Curve{Arc: geom.NewArc(geom.Point{X: 0, Y: 0}, 10, 0, math.Pi/2)}

	t.Run("midpoint", func(t *testing.T) {
		t.Parallel()
		p := c.PointAt(c.Length() / 2)
		assert.InDelta(t, 10*math.Cos(math.Pi/4), p.X, 1e-12)
		assert.InDelta(t, 10*math.Sin(math.Pi/4), p.Y, 1e-12)
	})

	t.Run("tangent is perpendicular to radius", func(t *testing.T) {
		t.Parallel()
		d := c.DirectionAt(0)
		assert.InDelta(t, 0.0, d.X, 1e-12)
		assert.InDelta(t, 1.0, d.Y, 1e-12)
		assert.InDelta(t, 1.0, d.Norm(), 1e-12)
	})

	t.Run("clockwise reverses direction", func(t *testing.T) {
		t.Parallel()
		cw := Curve{Arc: geom.NewArc(geom.Point{X: 0, Y: 0}, 10, math.Pi/2, 0)}
		d := cw.DirectionAt(0)
		assert.InDelta(t, 1.0, d.X, 1e-12)
		assert.InDelta(t, 0.0, d.Y, 1e-12)
	})
}

func TestSpiralEntry(t *testing.T) {
	t.Parallel()

	// Entry spiral: straight to radius 100 over 50 units of length.
	sp := Spiral{
		Start:       geom.Point{X: 0, Y: 0},
		Orientation: 0,
		Len:         50,
		StartRadius: math.Inf(1),
		EndRadius:   100,
	}

	t.Run("start conditions", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, geom.Point{X: 0, Y: 0}, sp.PointAt(0))
		d := sp.DirectionAt(0)
		assert.InDelta(t, 1.0, d.X, 1e-12)
		assert.InDelta(t, 0.0, d.Y, 1e-12)
	})

	t.Run("end deflection", func(t *testing.T) {
		t.Parallel()
		// Total deflection of an entry clothoid is L/(2R) = 0.25 rad.
		d := sp.DirectionAt(50)
		assert.InDelta(t, math.Cos(0.25), d.X, 1e-12)
		assert.InDelta(t, math.Sin(0.25), d.Y, 1e-12)
	})

	t.Run("end point", func(t *testing.T) {
		t.Parallel()
		p := sp.PointAt(50)
		assert.InDelta(t, 49.6884029, p.X, 1e-6)
		assert.InDelta(t, 4.1481024, p.Y, 1e-6)
	})

	t.Run("chord stays below arc length", func(t *testing.T) {
		t.Parallel()
		p := sp.PointAt(50)
		require.Less(t, geom.Distance(geom.Point{X: 0, Y: 0}, p), 50.0)
	})
}

func TestSpiralExitMirrorsEntry(t *testing.T) {
	t.Parallel()

	entry := Spiral{Start: geom.Point{X: 0, Y: 0}, Len: 50, StartRadius: math.Inf(1), EndRadius: 100}
	exit := Spiral{Start: geom.Point{X: 0, Y: 0}, Len: 50, StartRadius: 100, EndRadius: math.Inf(1)}

	// The exit spiral sheds the same total deflection the entry gains.
	de := entry.DirectionAt(50)
	dx := exit.DirectionAt(50)
	assert.InDelta(t, de.X, dx.X, 1e-12)
	assert.InDelta(t, de.Y, dx.Y, 1e-12)
}

func TestSpiralDegenerateCases(t *testing.T) {
	t.Parallel()

	t.Run("zero curvature everywhere is a straight", func(t *testing.T) {
		t.Parallel()
		sp := Spiral{Start: geom.Point{X: 1, Y: 1}, Orientation: math.Pi / 2, Len: 10, StartRadius: math.Inf(1), EndRadius: math.Inf(1)}
		p := sp.PointAt(10)
		assert.InDelta(t, 1.0, p.X, 1e-12)
		assert.InDelta(t, 11.0, p.Y, 1e-12)
	})

	t.Run("constant curvature is a circular arc", func(t *testing.T) {
		t.Parallel()
		sp := Spiral{Start: geom.Point{X: 0, Y: 0}, Orientation: 0, Len: 10 * math.Pi / 2, StartRadius: 10, EndRadius: 10}
		p := sp.PointAt(sp.Len)
		// Quarter circle of radius 10 turning left.
		assert.InDelta(t, 10.0, p.X, 1e-9)
		assert.InDelta(t, 10.0, p.Y, 1e-9)
	})
}

func TestSpiralPositionMatchesDirectionIntegral(t *testing.T) {
	t.Parallel()

	sp := Spiral{Start: geom.Point{X: 5, Y: -3}, Orientation: 0.4, Len: 80, StartRadius: 200, EndRadius: 60}

	// Numerically integrate the unit tangent and compare with the closed
	// form at several stations.
	const step = 0.001
	pos := geom.Point{X: 5, Y: -3}
	next := 20.0
	for s := 0.0; s < sp.Len; s += step {
		d := sp.DirectionAt(s + step/2)
		pos.X += d.X * step
		pos.Y += d.Y * step
		if s+step >= next {
			p := sp.PointAt(s + step)
			require.InDelta(t, pos.X, p.X, 1e-4)
			require.InDelta(t, pos.Y, p.Y, 1e-4)
			next += 20
		}
	}
}
