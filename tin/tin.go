// Package tin implements a 2.5D triangulated irregular network built from
// scattered 3D points by planar Delaunay triangulation, with elevation
// queries, contouring and earthwork volume calculations.
package tin

import (
	"github.com/fogleman/delaunay"

	"github.com/sitegrade/corridor/geom"
)

// machineEps is the double-precision machine epsilon used for degeneracy
// checks.
const machineEps = 2.220446049250313e-16

// Tin is a triangulated surface. Triangles reference Vertices by index; the
// structure is immutable after construction except via a full rebuild from a
// new point set.
type Tin struct {
	Vertices  []geom.Point3
	Triangles [][3]int
}

// FromPoints builds a TIN from the given points using Delaunay triangulation
// of their XY projections. Z values are preserved on the vertices but play no
// part in the triangulation. Degenerate input (fewer than three points, all
// collinear) yields a surface with vertices and no triangles.
func FromPoints(points []geom.Point3) *Tin {
	t := &Tin{Vertices: points}
	if len(points) < 3 {
		return t
	}
	coords := make([]delaunay.Point, len(points))
	for i, p := range points {
		coords[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	triangulation, err := delaunay.Triangulate(coords)
	if err != nil {
		return t
	}
	indices := triangulation.Triangles
	t.Triangles = make([][3]int, 0, len(indices)/3)
	for i := 0; i+2 < len(indices); i += 3 {
		t.Triangles = append(t.Triangles, [3]int{indices[i], indices[i+1], indices[i+2]})
	}
	return t
}

// barycentric returns the barycentric coordinates of p against the XY
// projection of triangle (a, b, c). The second return is false for
// zero-area triangles.
func barycentric(p geom.Point, a, b, c geom.Point3) (float64, float64, float64, bool) {
	det := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if det > -machineEps && det < machineEps {
		return 0, 0, 0, false
	}
	u := ((b.Y-c.Y)*(p.X-c.X) + (c.X-b.X)*(p.Y-c.Y)) / det
	v := ((c.Y-a.Y)*(p.X-c.X) + (a.X-c.X)*(p.Y-c.Y)) / det
	return u, v, 1 - u - v, true
}

// ElevationAt returns the interpolated elevation at (x, y). Triangles are
// scanned in insertion order and the first one containing the point wins;
// the second return is false when no triangle contains it.
func (t *Tin) ElevationAt(x, y float64) (float64, bool) {
	p := geom.Point{X: x, Y: y}
	for _, tri := range t.Triangles {
		a := t.Vertices[tri[0]]
		b := t.Vertices[tri[1]]
		c := t.Vertices[tri[2]]
		u, v, w, ok := barycentric(p, a, b, c)
		if ok && u >= 0 && v >= 0 && w >= 0 {
			return u*a.Z + v*b.Z + w*c.Z, true
		}
	}
	return 0, false
}

// ElevationDifferenceAt returns the elevation of this surface minus that of
// other at (x, y). The second return is false unless both surfaces contain
// the point.
func (t *Tin) ElevationDifferenceAt(other *Tin, x, y float64) (float64, bool) {
	a, ok := t.ElevationAt(x, y)
	if !ok {
		return 0, false
	}
	b, ok := other.ElevationAt(x, y)
	if !ok {
		return 0, false
	}
	return a - b, true
}
