// Package modulation provides station-indexed piecewise-linear tables that
// modulate corridor assembly: variable lateral offsets and superelevation
// (left/right cross-slope). Stations are assumed sorted ascending; this is
// not validated. Empty tables yield neutral values and out-of-range stations
// clamp to the nearest sample.
package modulation

// OffsetPoint is one sample of a variable-offset table.
type OffsetPoint struct {
	Station float64
	Offset  float64
}

// OffsetTable is a station-sorted sequence of lateral offset samples.
type OffsetTable []OffsetPoint

// OffsetAt returns the interpolated offset at the given station. An empty
// table yields 0.
func (t OffsetTable) OffsetAt(station float64) float64 {
	if len(t) == 0 {
		return 0
	}
	if station <= t[0].Station {
		return t[0].Offset
	}
	for i := 1; i < len(t); i++ {
		a, b := t[i-1], t[i]
		if station >= a.Station && station <= b.Station {
			return a.Offset + interpFraction(a.Station, b.Station, station)*(b.Offset-a.Offset)
		}
	}
	return t[len(t)-1].Offset
}

// SuperelevationPoint is one sample of a superelevation table. Slopes are
// vertical change per unit offset; negative values fall away from the
// centerline.
type SuperelevationPoint struct {
	Station    float64
	LeftSlope  float64
	RightSlope float64
}

// SuperelevationTable is a station-sorted sequence of cross-slope samples.
type SuperelevationTable []SuperelevationPoint

// SlopesAt returns the interpolated (left, right) cross-slopes at the given
// station. An empty table yields (0, 0).
func (t SuperelevationTable) SlopesAt(station float64) (left, right float64) {
	if len(t) == 0 {
		return 0, 0
	}
	if station <= t[0].Station {
		return t[0].LeftSlope, t[0].RightSlope
	}
	for i := 1; i < len(t); i++ {
		a, b := t[i-1], t[i]
		if station >= a.Station && station <= b.Station {
			f := interpFraction(a.Station, b.Station, station)
			return a.LeftSlope + f*(b.LeftSlope-a.LeftSlope),
				a.RightSlope + f*(b.RightSlope-a.RightSlope)
		}
	}
	last := t[len(t)-1]
	return last.LeftSlope, last.RightSlope
}

// interpFraction returns the interpolation fraction of station within
// [a, b], treating a zero-length span as 0 so coincident samples resolve to
// the earlier one.
func interpFraction(a, b, station float64) float64 {
	span := b - a
	if span <= 0 {
		return 0
	}
	return (station - a) / span
}
