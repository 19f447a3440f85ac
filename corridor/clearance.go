package corridor

import (
	"github.com/sitegrade/corridor/alignment"
	"github.com/sitegrade/corridor/tin"
)

// CheckClearance verifies that the grade line stays at least minClearance
// above the ground surface at every sampled station. When overlapping
// vertical elements span a station the lowest of their elevations governs;
// otherwise the primary elevation is used. Stations where the centerline
// falls outside the ground surface are skipped. Returns false at the first
// violation.
func CheckClearance(a *alignment.Alignment, ground *tin.Tin, minClearance, interval float64) bool {
	if interval <= 0 {
		return true
	}
	length := a.Horizontal.Length()
	for station := 0.0; station <= length; station += interval {
		center, ok := a.Horizontal.PointAt(station)
		if !ok {
			continue
		}
		grade, ok := gradeElevation(a.Vertical, station)
		if !ok {
			continue
		}
		groundZ, ok := ground.ElevationAt(center.X, center.Y)
		if !ok {
			continue
		}
		if grade-groundZ < minClearance {
			return false
		}
	}
	return true
}

// gradeElevation returns the governing (lowest) design elevation at a
// station.
func gradeElevation(v *alignment.VerticalAlignment, station float64) (float64, bool) {
	elevs := v.ElevationsAt(station)
	if len(elevs) == 0 {
		return v.ElevationAt(station)
	}
	min := elevs[0]
	for _, e := range elevs[1:] {
		if e < min {
			min = e
		}
	}
	return min, true
}
