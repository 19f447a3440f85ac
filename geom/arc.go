package geom

import "math"

// Arc is a circular arc. Angles are radians; the sweep direction is the sign
// of EndAngle - StartAngle.
type Arc struct {
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// NewArc creates an arc from its center, radius and bracketing angles.
func NewArc(center Point, radius, startAngle, endAngle float64) Arc {
	return Arc{Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle}
}

// Length returns the arc length.
func (a Arc) Length() float64 {
	return a.Radius * math.Abs(a.EndAngle-a.StartAngle)
}

// Sweep returns +1 for counter-clockwise arcs and -1 for clockwise ones.
func (a Arc) Sweep() float64 {
	if a.EndAngle < a.StartAngle {
		return -1
	}
	return 1
}

// StartPoint returns the point at the arc's start angle.
func (a Arc) StartPoint() Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(a.StartAngle),
		Y: a.Center.Y + a.Radius*math.Sin(a.StartAngle),
	}
}

// EndPoint returns the point at the arc's end angle.
func (a Arc) EndPoint() Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(a.EndAngle),
		Y: a.Center.Y + a.Radius*math.Sin(a.EndAngle),
	}
}
