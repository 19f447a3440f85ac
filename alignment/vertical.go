package alignment

// VerticalElement is one profile-view element of a vertical alignment. The
// set of implementations is closed: Grade and Parabola.
type VerticalElement interface {
	// Span returns the element's start and end stations.
	Span() (start, end float64)
	// ElevationAt returns the elevation at the given station, clamped to the
	// element's span.
	ElevationAt(station float64) float64

	verticalElement()
}

// Grade is a constant-slope run between two station/elevation pairs.
type Grade struct {
	StartStation float64
	EndStation   float64
	StartElev    float64
	EndElev      float64
}

func (g Grade) verticalElement() {}

// Span returns the grade's station range.
func (g Grade) Span() (float64, float64) {
	return g.StartStation, g.EndStation
}

// ElevationAt linearly interpolates between the grade's endpoints.
func (g Grade) ElevationAt(station float64) float64 {
	length := g.EndStation - g.StartStation
	if length <= 0 {
		return g.StartElev
	}
	x := station - g.StartStation
	if x < 0 {
		x = 0
	}
	if x > length {
		x = length
	}
	return g.StartElev + x/length*(g.EndElev-g.StartElev)
}

// Parabola is a parabolic vertical curve defined by entry and exit grades.
type Parabola struct {
	StartStation float64
	EndStation   float64
	StartElev    float64
	StartGrade   float64
	EndGrade     float64
}

func (p Parabola) verticalElement() {}

// Span returns the parabola's station range.
func (p Parabola) Span() (float64, float64) {
	return p.StartStation, p.EndStation
}

// ElevationAt evaluates elev = e0 + g1*x + (g2-g1)/(2L)*x^2 with x the
// distance from the start station, clamped to the curve length.
func (p Parabola) ElevationAt(station float64) float64 {
	length := p.EndStation - p.StartStation
	if length <= 0 {
		return p.StartElev
	}
	x := station - p.StartStation
	if x < 0 {
		x = 0
	}
	if x > length {
		x = length
	}
	return p.StartElev + p.StartGrade*x + 0.5*(p.EndGrade-p.StartGrade)/length*x*x
}

// StationElevation is a plain station/elevation pair, the exchange form
// supplied by I/O collaborators.
type StationElevation struct {
	Station   float64
	Elevation float64
}

// VerticalAlignment is an ordered sequence of vertical elements with
// non-decreasing stations. Overlapping elements are allowed (stacked
// utilities); ElevationAt uses the first element spanning a station and
// ElevationsAt exposes all of them.
type VerticalAlignment struct {
	Elements []VerticalElement
}

// NewVerticalAlignment creates an alignment from elements.
func NewVerticalAlignment(elements ...VerticalElement) *VerticalAlignment {
	return &VerticalAlignment{Elements: elements}
}

// NewVerticalFromPairs creates an alignment of constant grades joining
// consecutive station/elevation pairs.
func NewVerticalFromPairs(points []StationElevation) *VerticalAlignment {
	elements := make([]VerticalElement, 0, len(points))
	for i := 1; i < len(points); i++ {
		elements = append(elements, Grade{
			StartStation: points[i-1].Station,
			EndStation:   points[i].Station,
			StartElev:    points[i-1].Elevation,
			EndElev:      points[i].Elevation,
		})
	}
	if len(points) == 1 {
		elements = append(elements, Grade{
			StartStation: points[0].Station,
			EndStation:   points[0].Station,
			StartElev:    points[0].Elevation,
			EndElev:      points[0].Elevation,
		})
	}
	return &VerticalAlignment{Elements: elements}
}

// ElevationAt returns the elevation at the given station. Stations before
// the first element clamp to its start elevation; stations past the last
// element clamp to its end elevation; stations inside a gap use the previous
// element's end elevation. The second return is false only for an empty
// alignment.
func (v *VerticalAlignment) ElevationAt(station float64) (float64, bool) {
	if len(v.Elements) == 0 {
		return 0, false
	}
	firstStart, _ := v.Elements[0].Span()
	if station <= firstStart {
		return v.Elements[0].ElevationAt(firstStart), true
	}
	prev := v.Elements[0]
	for _, e := range v.Elements {
		start, end := e.Span()
		if station < start {
			_, prevEnd := prev.Span()
			return prev.ElevationAt(prevEnd), true
		}
		if station <= end {
			return e.ElevationAt(station), true
		}
		prev = e
	}
	last := v.Elements[len(v.Elements)-1]
	_, lastEnd := last.Span()
	return last.ElevationAt(lastEnd), true
}

// ElevationsAt returns the elevations of every element whose span contains
// the station. The result is empty when no element spans it.
func (v *VerticalAlignment) ElevationsAt(station float64) []float64 {
	var elevations []float64
	for _, e := range v.Elements {
		start, end := e.Span()
		if station >= start && station <= end {
			elevations = append(elevations, e.ElevationAt(station))
		}
	}
	return elevations
}

var (
	_ VerticalElement = Grade{}
	_ VerticalElement = Parabola{}
)
