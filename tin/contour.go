package tin

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sitegrade/corridor/geom"
)

// ContourSegment is one contour line piece crossing a single triangle.
type ContourSegment struct {
	A geom.Point3
	B geom.Point3
}

// pointInPolygon reports whether p lies inside poly using ray casting.
func pointInPolygon(p geom.Point, poly []geom.Point) bool {
	inside := false
	if len(poly) == 0 {
		return inside
	}
	j := len(poly) - 1
	for i := range poly {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// intersectEdge returns the point where the level plane crosses edge (a, b),
// or false when the edge does not straddle the level or is coincident with
// it in z.
func intersectEdge(a, b geom.Point3, level float64) (geom.Point3, bool) {
	da := a.Z - level
	db := b.Z - level
	if da*db > 0 || math.Abs(da-db) < machineEps {
		return geom.Point3{}, false
	}
	f := da / (da - db)
	return geom.Point3{
		X: a.X + f*(b.X-a.X),
		Y: a.Y + f*(b.Y-a.Y),
		Z: level,
	}, true
}

func (t *Tin) zRange() (min, max float64, ok bool) {
	if len(t.Vertices) == 0 {
		return 0, 0, false
	}
	zs := make([]float64, len(t.Vertices))
	for i, v := range t.Vertices {
		zs[i] = v.Z
	}
	return floats.Min(zs), floats.Max(zs), true
}

// ContourSegments generates contour line segments at every multiple of
// interval between the surface's lowest and highest elevations.
func (t *Tin) ContourSegments(interval float64) []ContourSegment {
	return t.ContourSegmentsBounded(interval, nil, nil)
}

// ContourSegmentsBounded generates contour segments restricted by an optional
// include polygon and optional exclude polygons, both tested against triangle
// centroids.
func (t *Tin) ContourSegmentsBounded(interval float64, include []geom.Point, exclude [][]geom.Point) []ContourSegment {
	if interval <= 0 {
		return nil
	}
	minZ, maxZ, ok := t.zRange()
	if !ok {
		return nil
	}
	var segments []ContourSegment
	for level := math.Ceil(minZ/interval) * interval; level <= maxZ; level += interval {
		for _, tri := range t.Triangles {
			a := t.Vertices[tri[0]]
			b := t.Vertices[tri[1]]
			c := t.Vertices[tri[2]]
			centroid := geom.Point{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3}
			if include != nil && !pointInPolygon(centroid, include) {
				continue
			}
			excluded := false
			for _, ex := range exclude {
				if pointInPolygon(centroid, ex) {
					excluded = true
					break
				}
			}
			if excluded {
				continue
			}
			tmin := math.Min(a.Z, math.Min(b.Z, c.Z))
			tmax := math.Max(a.Z, math.Max(b.Z, c.Z))
			if level < tmin || level > tmax {
				continue
			}
			var pts []geom.Point3
			if p, ok := intersectEdge(a, b, level); ok {
				pts = append(pts, p)
			}
			if p, ok := intersectEdge(b, c, level); ok {
				pts = append(pts, p)
			}
			if p, ok := intersectEdge(c, a, level); ok {
				pts = append(pts, p)
			}
			if len(pts) == 2 {
				segments = append(segments, ContourSegment{A: pts[0], B: pts[1]})
			}
		}
	}
	return segments
}

// ContourPolylines chains contour segments into polylines and applies the
// given number of Chaikin smoothing iterations to the 2D result. It returns
// the smoothed 2D polylines together with the raw 3D chains.
func (t *Tin) ContourPolylines(interval float64, smooth int) ([]geom.Polyline, [][]geom.Point3) {
	segments := t.ContourSegments(interval)
	chains := segmentsToChains(segments, 1e-8)
	lines := make([]geom.Polyline, 0, len(chains))
	for _, chain := range chains {
		pts := make([]geom.Point, len(chain))
		for i, p := range chain {
			pts[i] = p.XY()
		}
		lines = append(lines, geom.NewPolyline(pts).Smooth(smooth))
	}
	return lines, chains
}

func pointsClose(a, b geom.Point3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol && math.Abs(a.Z-b.Z) <= tol
}

// segmentsToChains greedily links segments that share endpoints within tol.
func segmentsToChains(segments []ContourSegment, tol float64) [][]geom.Point3 {
	remaining := make([]ContourSegment, len(segments))
	copy(remaining, segments)
	var out [][]geom.Point3
	for len(remaining) > 0 {
		seg := remaining[len(remaining)-1]
		remaining = remaining[:len(remaining)-1]
		chain := []geom.Point3{seg.A, seg.B}
		extended := true
		for extended {
			extended = false
			last := chain[len(chain)-1]
			for i := range remaining {
				s := remaining[i]
				if pointsClose(s.A, last, tol) {
					chain = append(chain, s.B)
				} else if pointsClose(s.B, last, tol) {
					chain = append(chain, s.A)
				} else {
					continue
				}
				remaining[i] = remaining[len(remaining)-1]
				remaining = remaining[:len(remaining)-1]
				extended = true
				break
			}
		}
		out = append(out, chain)
	}
	return out
}
