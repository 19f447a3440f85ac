// Package geom provides the 2D/2.5D value types shared by the alignment,
// surface and corridor packages. All coordinates are in the caller's project
// length unit; no unit conversion happens here.
package geom

import "math"

// Point is a 2D point.
type Point struct {
	X float64
	Y float64
}

// NewPoint creates a point from coordinates.
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Offset returns the point translated by d along v.
func (p Point) Offset(v Vec, d float64) Point {
	return Point{X: p.X + d*v.X, Y: p.Y + d*v.Y}
}

// Point3 is a 3D point. Z carries elevation.
type Point3 struct {
	X float64
	Y float64
	Z float64
}

// NewPoint3 creates a 3D point from coordinates.
func NewPoint3(x, y, z float64) Point3 {
	return Point3{X: x, Y: y, Z: z}
}

// XY projects the point onto the horizontal plane.
func (p Point3) XY() Point {
	return Point{X: p.X, Y: p.Y}
}

// Vec is a 2D direction or displacement.
type Vec struct {
	X float64
	Y float64
}

// Norm returns the Euclidean length of the vector.
func (v Vec) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Unit returns the normalized vector, or the zero vector if v is degenerate.
func (v Vec) Unit() Vec {
	n := v.Norm()
	if n == 0 {
		return Vec{}
	}
	return Vec{X: v.X / n, Y: v.Y / n}
}

// Perp returns v rotated 90 degrees counter-clockwise. Applied to a unit
// tangent this yields the lateral normal used for cross-section offsets.
func (v Vec) Perp() Vec {
	return Vec{X: -v.Y, Y: v.X}
}

// Scale returns v scaled by k.
func (v Vec) Scale(k float64) Vec {
	return Vec{X: k * v.X, Y: k * v.Y}
}

// Neg returns the opposite vector.
func (v Vec) Neg() Vec {
	return Vec{X: -v.X, Y: -v.Y}
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Distance3 returns the Euclidean distance between two 3D points.
func Distance3(a, b Point3) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	dz := b.Z - a.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// PolygonArea returns the absolute area of a simple polygon computed with the
// shoelace formula. Fewer than three vertices yield zero.
func PolygonArea(vertices []Point) float64 {
	if len(vertices) < 3 {
		return 0
	}
	sum := 0.0
	for i := range vertices {
		j := (i + 1) % len(vertices)
		sum += vertices[i].X*vertices[j].Y - vertices[j].X*vertices[i].Y
	}
	return math.Abs(sum) * 0.5
}

// Bearing returns the direction from a to b in radians measured from the
// positive X axis.
func Bearing(a, b Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Forward returns the point reached from start by travelling distance along
// the given bearing (radians from the positive X axis).
func Forward(start Point, bearing, distance float64) Point {
	return Point{
		X: start.X + distance*math.Cos(bearing),
		Y: start.Y + distance*math.Sin(bearing),
	}
}

// LineIntersection returns the intersection of the infinite lines through
// (p1,p2) and (p3,p4). The second return is false when the lines are
// parallel.
func LineIntersection(p1, p2, p3, p4 Point) (Point, bool) {
	denom := (p1.X-p2.X)*(p3.Y-p4.Y) - (p1.Y-p2.Y)*(p3.X-p4.X)
	if math.Abs(denom) < machineEps {
		return Point{}, false
	}
	a := p1.X*p2.Y - p1.Y*p2.X
	b := p3.X*p4.Y - p3.Y*p4.X
	return Point{
		X: (a*(p3.X-p4.X) - (p1.X-p2.X)*b) / denom,
		Y: (a*(p3.Y-p4.Y) - (p1.Y-p2.Y)*b) / denom,
	}, true
}

// machineEps is the double-precision machine epsilon.
const machineEps = 2.220446049250313e-16
