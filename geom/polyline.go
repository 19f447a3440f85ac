package geom

// Polyline is an ordered sequence of 2D vertices.
type Polyline struct {
	Vertices []Point
}

// NewPolyline creates a polyline from vertices.
func NewPolyline(vertices []Point) Polyline {
	return Polyline{Vertices: vertices}
}

// Length returns the total length of the polyline.
func (pl Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(pl.Vertices); i++ {
		total += Distance(pl.Vertices[i-1], pl.Vertices[i])
	}
	return total
}

// PointAt returns the point at the given distance from the start of the
// polyline. The second return is false when the distance is negative or
// beyond the polyline's length.
func (pl Polyline) PointAt(distance float64) (Point, bool) {
	if distance < 0 || distance > pl.Length() || len(pl.Vertices) == 0 {
		return Point{}, false
	}
	remaining := distance
	for i := 1; i < len(pl.Vertices); i++ {
		a, b := pl.Vertices[i-1], pl.Vertices[i]
		segLen := Distance(a, b)
		if remaining <= segLen {
			if segLen == 0 {
				return a, true
			}
			t := remaining / segLen
			return Point{X: a.X + t*(b.X-a.X), Y: a.Y + t*(b.Y-a.Y)}, true
		}
		remaining -= segLen
	}
	return pl.Vertices[len(pl.Vertices)-1], true
}

// DirectionAt returns the unit tangent of the segment containing the given
// distance. The second return is false when the distance is out of range or
// the segment is degenerate.
func (pl Polyline) DirectionAt(distance float64) (Vec, bool) {
	if distance < 0 || distance > pl.Length() || len(pl.Vertices) < 2 {
		return Vec{}, false
	}
	remaining := distance
	for i := 1; i < len(pl.Vertices); i++ {
		a, b := pl.Vertices[i-1], pl.Vertices[i]
		segLen := Distance(a, b)
		if remaining <= segLen {
			if segLen == 0 {
				continue
			}
			return Vec{X: (b.X - a.X) / segLen, Y: (b.Y - a.Y) / segLen}, true
		}
		remaining -= segLen
	}
	// Residual beyond the last segment: reuse its direction.
	a := pl.Vertices[len(pl.Vertices)-2]
	b := pl.Vertices[len(pl.Vertices)-1]
	segLen := Distance(a, b)
	if segLen == 0 {
		return Vec{}, false
	}
	return Vec{X: (b.X - a.X) / segLen, Y: (b.Y - a.Y) / segLen}, true
}

// Smooth applies the given number of Chaikin corner-cutting iterations and
// returns the smoothed polyline. Endpoints are preserved.
func (pl Polyline) Smooth(iterations int) Polyline {
	pts := pl.Vertices
	for it := 0; it < iterations; it++ {
		if len(pts) < 3 {
			break
		}
		out := make([]Point, 0, 2*len(pts))
		out = append(out, pts[0])
		for i := 0; i < len(pts)-1; i++ {
			a, b := pts[i], pts[i+1]
			out = append(out,
				Point{X: 0.75*a.X + 0.25*b.X, Y: 0.75*a.Y + 0.25*b.Y},
				Point{X: 0.25*a.X + 0.75*b.X, Y: 0.25*a.Y + 0.75*b.Y},
			)
		}
		out = append(out, pts[len(pts)-1])
		pts = out
	}
	return Polyline{Vertices: pts}
}
