package tin

import (
	"math"

	"github.com/sitegrade/corridor/geom"
)

func edgeSlopeDeg(p, q geom.Point3) float64 {
	horiz := math.Hypot(p.X-q.X, p.Y-q.Y)
	if horiz <= machineEps {
		return 90
	}
	return math.Atan(math.Abs(p.Z-q.Z)/horiz) * 180 / math.Pi
}

func triangleSlopeDeg(a, b, c geom.Point3) float64 {
	return math.Max(edgeSlopeDeg(a, b), math.Max(edgeSlopeDeg(a, c), edgeSlopeDeg(b, c)))
}

// TriangleSlopes returns the steepest-edge slope in degrees for each
// triangle, in triangle order.
func (t *Tin) TriangleSlopes() []float64 {
	slopes := make([]float64, len(t.Triangles))
	for i, tri := range t.Triangles {
		slopes[i] = triangleSlopeDeg(t.Vertices[tri[0]], t.Vertices[tri[1]], t.Vertices[tri[2]])
	}
	return slopes
}

// SlopeAt returns the slope in degrees of the triangle containing (x, y).
// The second return is false when no triangle contains the point.
func (t *Tin) SlopeAt(x, y float64) (float64, bool) {
	p := geom.Point{X: x, Y: y}
	for _, tri := range t.Triangles {
		a := t.Vertices[tri[0]]
		b := t.Vertices[tri[1]]
		c := t.Vertices[tri[2]]
		u, v, w, ok := barycentric(p, a, b, c)
		if ok && u >= 0 && v >= 0 && w >= 0 {
			return triangleSlopeDeg(a, b, c), true
		}
	}
	return 0, false
}

// SlopeProjection projects a constant grade from start along dir until it
// meets the surface, advancing in step increments up to maxDist. Slope is
// vertical change per unit horizontal distance. The second return is false
// when the grade never daylights within maxDist or leaves the surface.
func (t *Tin) SlopeProjection(start geom.Point3, dir geom.Vec, slope, step, maxDist float64) (geom.Point3, bool) {
	if dir.Norm() <= machineEps || step <= 0 {
		return geom.Point3{}, false
	}
	unit := dir.Unit()
	startGround, ok := t.ElevationAt(start.X, start.Y)
	if !ok {
		return geom.Point3{}, false
	}
	prev := start.Z - startGround
	for dist := 0.0; dist <= maxDist; dist += step {
		x := start.X + unit.X*dist
		y := start.Y + unit.Y*dist
		ground, ok := t.ElevationAt(x, y)
		if !ok {
			return geom.Point3{}, false
		}
		design := start.Z + slope*dist
		diff := design - ground
		if math.Abs(diff) < 1e-3 {
			return geom.Point3{X: x, Y: y, Z: ground}, true
		}
		if math.Signbit(diff) != math.Signbit(prev) {
			// Crossed the surface inside this step: interpolate back.
			f := prev / (prev - diff)
			xi := x - unit.X*step*(1-f)
			yi := y - unit.Y*step*(1-f)
			if z, ok := t.ElevationAt(xi, yi); ok {
				return geom.Point3{X: xi, Y: yi, Z: z}, true
			}
			return geom.Point3{}, false
		}
		prev = diff
	}
	return geom.Point3{}, false
}

// DaylightLine traces the projected grade from start along dir as a 3D
// polyline, ending where it meets the surface or maxDist is exceeded.
func (t *Tin) DaylightLine(start geom.Point3, dir geom.Vec, slope, step, maxDist float64) []geom.Point3 {
	if dir.Norm() <= machineEps || step <= 0 {
		return []geom.Point3{start}
	}
	unit := dir.Unit()
	pts := []geom.Point3{start}
	prev := start.Z
	if ground, ok := t.ElevationAt(start.X, start.Y); ok {
		prev = start.Z - ground
	}
	for dist := step; dist <= maxDist; dist += step {
		x := start.X + unit.X*dist
		y := start.Y + unit.Y*dist
		z := start.Z + slope*dist
		pts = append(pts, geom.Point3{X: x, Y: y, Z: z})
		ground, ok := t.ElevationAt(x, y)
		if !ok {
			break
		}
		diff := z - ground
		if math.Signbit(diff) != math.Signbit(prev) {
			if p, ok := t.SlopeProjection(start, unit, slope, step, dist); ok {
				pts = append(pts, p)
			}
			break
		}
		prev = diff
	}
	return pts
}
