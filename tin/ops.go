package tin

import (
	"math"

	"github.com/sitegrade/corridor/geom"
)

// Smooth returns a copy of the surface with vertex elevations relaxed by the
// given number of Laplacian iterations. Only Z values change; the
// triangulation is kept. Boundary vertices are not pinned.
func (t *Tin) Smooth(iterations int) *Tin {
	verts := make([]geom.Point3, len(t.Vertices))
	copy(verts, t.Vertices)
	tris := make([][3]int, len(t.Triangles))
	copy(tris, t.Triangles)
	out := &Tin{Vertices: verts, Triangles: tris}
	if iterations == 0 {
		return out
	}

	adj := make([][]int, len(verts))
	for _, tri := range tris {
		for _, a := range tri {
			for _, b := range tri {
				if a == b {
					continue
				}
				seen := false
				for _, n := range adj[a] {
					if n == b {
						seen = true
						break
					}
				}
				if !seen {
					adj[a] = append(adj[a], b)
				}
			}
		}
	}

	for it := 0; it < iterations; it++ {
		newZ := make([]float64, len(verts))
		for i := range verts {
			newZ[i] = verts[i].Z
		}
		for i := range verts {
			if len(adj[i]) == 0 {
				continue
			}
			sum := 0.0
			for _, j := range adj[i] {
				sum += verts[j].Z
			}
			newZ[i] = sum / float64(len(adj[i]))
		}
		for i := range verts {
			verts[i].Z = newZ[i]
		}
	}
	return out
}

// MergeWith combines this surface's points with other's, discarding points
// from other that lie within tolerance of an existing point, and rebuilds
// the triangulation from the union.
func (t *Tin) MergeWith(other *Tin, tolerance float64) *Tin {
	points := make([]geom.Point3, len(t.Vertices))
	copy(points, t.Vertices)
	for _, v := range other.Vertices {
		duplicate := false
		for _, p := range points {
			if math.Hypot(p.X-v.X, p.Y-v.Y) <= tolerance && math.Abs(p.Z-v.Z) <= tolerance {
				duplicate = true
				break
			}
		}
		if !duplicate {
			points = append(points, v)
		}
	}
	return FromPoints(points)
}

// DynamicTin owns a point set and a surface that is eagerly rebuilt whenever
// the points change.
type DynamicTin struct {
	Points []geom.Point3
	tin    *Tin
}

// NewDynamicTin builds the initial surface from points.
func NewDynamicTin(points []geom.Point3) *DynamicTin {
	d := &DynamicTin{Points: points}
	d.Rebuild()
	return d
}

// Rebuild retriangulates the surface from the current points.
func (d *DynamicTin) Rebuild() {
	pts := make([]geom.Point3, len(d.Points))
	copy(pts, d.Points)
	d.tin = FromPoints(pts)
}

// UpdatePoint replaces the point at index and rebuilds the surface. Indexes
// out of range are ignored.
func (d *DynamicTin) UpdatePoint(index int, p geom.Point3) {
	if index < 0 || index >= len(d.Points) {
		return
	}
	d.Points[index] = p
	d.Rebuild()
}

// AddPoint appends a point and rebuilds the surface.
func (d *DynamicTin) AddPoint(p geom.Point3) {
	d.Points = append(d.Points, p)
	d.Rebuild()
}

// Tin returns the current surface.
func (d *DynamicTin) Tin() *Tin {
	return d.tin
}
