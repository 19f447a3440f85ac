package tin

import (
	"math"

	"github.com/sitegrade/corridor/geom"
)

func (t *Tin) triangleCorners(tri [3]int) (a, b, c geom.Point3) {
	return t.Vertices[tri[0]], t.Vertices[tri[1]], t.Vertices[tri[2]]
}

func planarArea(a, b, c geom.Point3) float64 {
	return geom.PolygonArea([]geom.Point{a.XY(), b.XY(), c.XY()})
}

// VolumeToElevation returns the signed volume between the surface and a
// horizontal plane at baseElev. Triangles whose average elevation lies below
// the plane contribute negative volume.
func (t *Tin) VolumeToElevation(baseElev float64) float64 {
	return t.VolumeToElevationBounded(baseElev, nil, nil)
}

// VolumeToElevationBounded is VolumeToElevation restricted by optional
// include/exclude polygons tested against triangle centroids.
func (t *Tin) VolumeToElevationBounded(baseElev float64, include []geom.Point, exclude [][]geom.Point) float64 {
	volume := 0.0
	for _, tri := range t.Triangles {
		a, b, c := t.triangleCorners(tri)
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
		avgZ := (a.Z + b.Z + c.Z) / 3
		volume += planarArea(a, b, c) * (avgZ - baseElev)
	}
	return volume
}

// VolumeBetween returns the net volume difference between the two surfaces
// using the lower of their minimum elevations as a common base plane.
// Positive values mean this surface lies above other on average.
func (t *Tin) VolumeBetween(other *Tin) float64 {
	minSelf, _, okSelf := t.zRange()
	minOther, _, okOther := other.zRange()
	if !okSelf || !okOther {
		return 0
	}
	base := math.Min(minSelf, minOther)
	return t.VolumeToElevation(base) - other.VolumeToElevation(base)
}

// prismVolumeFrom accumulates, over a's triangles, the prism between a and b
// where b has elevations at all three corners.
func prismVolumeFrom(a, b *Tin) float64 {
	vol := 0.0
	for _, tri := range a.Triangles {
		a0, a1, a2 := a.triangleCorners(tri)
		b0, ok0 := b.ElevationAt(a0.X, a0.Y)
		b1, ok1 := b.ElevationAt(a1.X, a1.Y)
		b2, ok2 := b.ElevationAt(a2.X, a2.Y)
		if !ok0 || !ok1 || !ok2 {
			continue
		}
		avg := ((a0.Z - b0) + (a1.Z - b1) + (a2.Z - b2)) / 3
		vol += planarArea(a0, a1, a2) * avg
	}
	return vol
}

// PrismoidalVolumeBetween returns the volume between the two surfaces using
// a symmetric prismoidal calculation. Only areas covered by both surfaces
// contribute. Positive values mean this surface lies above other on average.
func (t *Tin) PrismoidalVolumeBetween(other *Tin) float64 {
	return (prismVolumeFrom(t, other) - prismVolumeFrom(other, t)) / 2
}

// CutFillBetween returns (cut, fill) volumes between the two surfaces using
// the symmetric prismoidal method. Cut is where this surface lies below
// other, fill where it lies above; both are positive magnitudes.
func (t *Tin) CutFillBetween(other *Tin) (cut, fill float64) {
	cutFrom := func(a, b *Tin) (c, f float64) {
		for _, tri := range a.Triangles {
			a0, a1, a2 := a.triangleCorners(tri)
			b0, ok0 := b.ElevationAt(a0.X, a0.Y)
			b1, ok1 := b.ElevationAt(a1.X, a1.Y)
			b2, ok2 := b.ElevationAt(a2.X, a2.Y)
			if !ok0 || !ok1 || !ok2 {
				continue
			}
			avg := ((a0.Z - b0) + (a1.Z - b1) + (a2.Z - b2)) / 3
			area := planarArea(a0, a1, a2)
			if avg > 0 {
				f += area * avg
			} else {
				c += area * -avg
			}
		}
		return c, f
	}
	cutAB, fillAB := cutFrom(t, other)
	cutBA, fillBA := cutFrom(other, t)
	return (cutAB + fillBA) / 2, (fillAB + cutBA) / 2
}
