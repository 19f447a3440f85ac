package alignment

import "github.com/sitegrade/corridor/geom"

// Alignment pairs a horizontal and a vertical alignment. Both parts are
// sampled independently by the same station value; their station domains
// should coincide but are not required to.
type Alignment struct {
	Horizontal *HorizontalAlignment
	Vertical   *VerticalAlignment
}

// New creates an alignment from its horizontal and vertical parts.
func New(horizontal *HorizontalAlignment, vertical *VerticalAlignment) *Alignment {
	return &Alignment{Horizontal: horizontal, Vertical: vertical}
}

// Length returns the horizontal alignment's length, the station domain for
// corridor sampling.
func (a *Alignment) Length() float64 {
	return a.Horizontal.Length()
}

// Point3At returns the horizontal position at the station lifted with the
// vertical elevation. The second return is false when either part lacks a
// value there.
func (a *Alignment) Point3At(station float64) (geom.Point3, bool) {
	p, ok := a.Horizontal.PointAt(station)
	if !ok {
		return geom.Point3{}, false
	}
	z, ok := a.Vertical.ElevationAt(station)
	if !ok {
		return geom.Point3{}, false
	}
	return geom.Point3{X: p.X, Y: p.Y, Z: z}, true
}
