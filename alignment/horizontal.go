package alignment

import "github.com/sitegrade/corridor/geom"

// HorizontalAlignment is an ordered sequence of horizontal elements. Callers
// are responsible for geometric continuity: element i's end point should
// coincide with element i+1's start point. Station 0 is the start of the
// first element.
type HorizontalAlignment struct {
	Elements []HorizontalElement
}

// NewHorizontalAlignment creates an alignment from elements.
func NewHorizontalAlignment(elements ...HorizontalElement) *HorizontalAlignment {
	return &HorizontalAlignment{Elements: elements}
}

// NewTangents creates an alignment of straight elements joining consecutive
// vertices, the polyline-style constructor used for surveyed centerlines.
func NewTangents(vertices []geom.Point) *HorizontalAlignment {
	elements := make([]HorizontalElement, 0, len(vertices))
	for i := 1; i < len(vertices); i++ {
		elements = append(elements, Tangent{Start: vertices[i-1], End: vertices[i]})
	}
	return &HorizontalAlignment{Elements: elements}
}

// Length returns the total alignment length.
func (h *HorizontalAlignment) Length() float64 {
	total := 0.0
	for _, e := range h.Elements {
		total += e.Length()
	}
	return total
}

// Stations returns the cumulative length at each element boundary, starting
// at 0. The last value equals Length().
func (h *HorizontalAlignment) Stations() []float64 {
	stations := make([]float64, 0, len(h.Elements)+1)
	total := 0.0
	stations = append(stations, total)
	for _, e := range h.Elements {
		total += e.Length()
		stations = append(stations, total)
	}
	return stations
}

// PointAt returns the position at the given station. The second return is
// false when the station is negative or beyond the alignment length. A
// floating-point residual past the last element falls back to its end point.
func (h *HorizontalAlignment) PointAt(station float64) (geom.Point, bool) {
	if station < 0 || station > h.Length() || len(h.Elements) == 0 {
		return geom.Point{}, false
	}
	remaining := station
	for _, e := range h.Elements {
		l := e.Length()
		if remaining <= l {
			return e.PointAt(remaining), true
		}
		remaining -= l
	}
	return h.Elements[len(h.Elements)-1].EndPoint(), true
}

// DirectionAt returns the unit tangent at the given station. The second
// return is false when the station is out of range.
func (h *HorizontalAlignment) DirectionAt(station float64) (geom.Vec, bool) {
	if station < 0 || station > h.Length() || len(h.Elements) == 0 {
		return geom.Vec{}, false
	}
	remaining := station
	for _, e := range h.Elements {
		l := e.Length()
		if remaining <= l {
			return e.DirectionAt(remaining), true
		}
		remaining -= l
	}
	last := h.Elements[len(h.Elements)-1]
	return last.DirectionAt(last.Length()), true
}
