// Package alignment models roadway centerlines: horizontal tangents, circular
// curves and clothoid transition spirals, plus vertical grades and parabolic
// curves, composed into station-addressable alignments.
package alignment

import (
	"math"

	"github.com/sitegrade/corridor/geom"
)

// curvatureEps bounds what counts as zero curvature or zero curvature rate.
const curvatureEps = 1e-12

// HorizontalElement is one plan-view element of a horizontal alignment. The
// set of implementations is closed: Tangent, Curve and Spiral. All operations
// take a local arc length s in [0, Length()].
type HorizontalElement interface {
	Length() float64
	PointAt(s float64) geom.Point
	DirectionAt(s float64) geom.Vec
	StartPoint() geom.Point
	EndPoint() geom.Point

	element()
}

// Tangent is a straight element between two points.
type Tangent struct {
	Start geom.Point
	End   geom.Point
}

func (t Tangent) element() {}

// Length returns the tangent's length.
func (t Tangent) Length() float64 {
	return geom.Distance(t.Start, t.End)
}

// PointAt returns the position at local distance s.
func (t Tangent) PointAt(s float64) geom.Point {
	length := t.Length()
	if length == 0 {
		return t.Start
	}
	f := s / length
	return geom.Point{
		X: t.Start.X + f*(t.End.X-t.Start.X),
		Y: t.Start.Y + f*(t.End.Y-t.Start.Y),
	}
}

// DirectionAt returns the constant unit direction, or the zero vector for a
// degenerate tangent.
func (t Tangent) DirectionAt(float64) geom.Vec {
	return geom.Vec{X: t.End.X - t.Start.X, Y: t.End.Y - t.Start.Y}.Unit()
}

// StartPoint returns the tangent's start.
func (t Tangent) StartPoint() geom.Point { return t.Start }

// EndPoint returns the tangent's end.
func (t Tangent) EndPoint() geom.Point { return t.End }

// Curve is a circular arc element.
type Curve struct {
	Arc geom.Arc
}

func (c Curve) element() {}

// Length returns the arc length.
func (c Curve) Length() float64 {
	return c.Arc.Length()
}

func (c Curve) angleAt(s float64) float64 {
	return c.Arc.StartAngle + c.Arc.Sweep()*s/c.Arc.Radius
}

// PointAt returns the position at local arc length s.
func (c Curve) PointAt(s float64) geom.Point {
	ang := c.angleAt(s)
	return geom.Point{
		X: c.Arc.Center.X + c.Arc.Radius*math.Cos(ang),
		Y: c.Arc.Center.Y + c.Arc.Radius*math.Sin(ang),
	}
}

// DirectionAt returns the unit tangent at local arc length s: the radial
// direction rotated a quarter turn in the sweep direction.
func (c Curve) DirectionAt(s float64) geom.Vec {
	ang := c.angleAt(s)
	sweep := c.Arc.Sweep()
	return geom.Vec{X: -sweep * math.Sin(ang), Y: sweep * math.Cos(ang)}
}

// StartPoint returns the arc's start point.
func (c Curve) StartPoint() geom.Point { return c.Arc.StartPoint() }

// EndPoint returns the arc's end point.
func (c Curve) EndPoint() geom.Point { return c.Arc.EndPoint() }

// Spiral is an Euler (clothoid) transition element: curvature varies linearly
// with arc length from 1/StartRadius to 1/EndRadius. An infinite radius
// encodes zero curvature, i.e. a straight entry or exit.
type Spiral struct {
	Start       geom.Point
	Orientation float64 // tangent angle at the start, radians
	Len         float64 // total arc length
	StartRadius float64
	EndRadius   float64
}

func (sp Spiral) element() {}

// Length returns the spiral's arc length.
func (sp Spiral) Length() float64 { return sp.Len }

func (sp Spiral) startCurvature() float64 {
	if math.IsInf(sp.StartRadius, 0) || sp.StartRadius == 0 {
		return 0
	}
	return 1 / sp.StartRadius
}

func (sp Spiral) endCurvature() float64 {
	if math.IsInf(sp.EndRadius, 0) || sp.EndRadius == 0 {
		return 0
	}
	return 1 / sp.EndRadius
}

func (sp Spiral) curvatureRate() float64 {
	if sp.Len == 0 {
		return 0
	}
	return (sp.endCurvature() - sp.startCurvature()) / sp.Len
}

// DirectionAt returns the unit tangent at local arc length s. The tangent
// angle is orientation + k0*s + kp*s^2/2.
func (sp Spiral) DirectionAt(s float64) geom.Vec {
	theta := sp.Orientation + sp.startCurvature()*s + 0.5*sp.curvatureRate()*s*s
	return geom.Vec{X: math.Cos(theta), Y: math.Sin(theta)}
}

// PointAt returns the position at local arc length s using the closed-form
// clothoid evaluation. Degenerate curvature configurations fall back to the
// straight or circular special case.
func (sp Spiral) PointAt(s float64) geom.Point {
	k0 := sp.startCurvature()
	kp := sp.curvatureRate()

	if math.Abs(kp) < curvatureEps {
		if math.Abs(k0) < curvatureEps {
			// Straight run along the start orientation.
			return geom.Point{
				X: sp.Start.X + s*math.Cos(sp.Orientation),
				Y: sp.Start.Y + s*math.Sin(sp.Orientation),
			}
		}
		// Constant curvature: a circular arc of radius 1/k0.
		return geom.Point{
			X: sp.Start.X + (math.Sin(sp.Orientation+k0*s)-math.Sin(sp.Orientation))/k0,
			Y: sp.Start.Y + (math.Cos(sp.Orientation)-math.Cos(sp.Orientation+k0*s))/k0,
		}
	}

	// General clothoid: complete the square in the tangent-angle integral so
	// that it reduces to Fresnel integrals.
	alpha := 0.5 * kp
	beta := k0
	delta := sp.Orientation - beta*beta/(4*alpha)
	sign := 1.0
	if alpha < 0 {
		sign = -1
	}
	u0 := beta / (2 * alpha)
	root := math.Sqrt(2 * math.Abs(alpha) / math.Pi)
	s0, c0 := fresnel(sign * root * u0)
	s1, c1 := fresnel(sign * root * (s + u0))
	scale := math.Sqrt(math.Pi / (2 * math.Abs(alpha)))

	intCos := sign * scale * (c1 - c0)
	intSin := scale * (s1 - s0)
	return geom.Point{
		X: sp.Start.X + math.Cos(delta)*intCos - math.Sin(delta)*intSin,
		Y: sp.Start.Y + math.Sin(delta)*intCos + math.Cos(delta)*intSin,
	}
}

// StartPoint returns the spiral's start point.
func (sp Spiral) StartPoint() geom.Point { return sp.Start }

// EndPoint returns the spiral's end point.
func (sp Spiral) EndPoint() geom.Point { return sp.PointAt(sp.Len) }

var (
	_ HorizontalElement = Tangent{}
	_ HorizontalElement = Curve{}
	_ HorizontalElement = Spiral{}
)
