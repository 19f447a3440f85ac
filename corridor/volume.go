package corridor

import (
	"math"

	"github.com/sitegrade/corridor/alignment"
	"github.com/sitegrade/corridor/tin"
)

// sectionArea returns the signed cross-sectional area between matched design
// and ground sections: the sum of trapezoids (dz_j + dz_j+1)/2 * offsetStep
// over consecutive offset points, with dz = design z - ground z. Sections
// with fewer than two matched points contribute zero.
func sectionArea(design, ground CrossSection, offsetStep float64) float64 {
	n := len(design.Points)
	if len(ground.Points) < n {
		n = len(ground.Points)
	}
	if n < 2 {
		return 0
	}
	area := 0.0
	for j := 0; j < n-1; j++ {
		dz1 := design.Points[j].Z - ground.Points[j].Z
		dz2 := design.Points[j+1].Z - ground.Points[j+1].Z
		area += (dz1 + dz2) * 0.5 * offsetStep
	}
	return area
}

// sectionCutFillAreas splits a matched section pair into cut and fill area
// buckets per trapezoid segment, so a section straddling both cut and fill
// contributes to both. Both results are positive magnitudes.
func sectionCutFillAreas(design, ground CrossSection, offsetStep float64) (cut, fill float64) {
	n := len(design.Points)
	if len(ground.Points) < n {
		n = len(ground.Points)
	}
	if n < 2 {
		return 0, 0
	}
	for j := 0; j < n-1; j++ {
		dz1 := design.Points[j].Z - ground.Points[j].Z
		dz2 := design.Points[j+1].Z - ground.Points[j+1].Z
		segment := (dz1 + dz2) * 0.5 * offsetStep
		if segment >= 0 {
			fill += segment
		} else {
			cut += -segment
		}
	}
	return cut, fill
}

// matchedSections samples both surfaces into cross-sections on the same
// nominal offset grid and pairs them by index; the shorter list bounds the
// comparison.
func matchedSections(design, ground *tin.Tin, a *alignment.Alignment, width, stationInterval, offsetStep float64) (d, g []CrossSection) {
	d = ExtractCrossSections(design, a, width, stationInterval, offsetStep)
	g = ExtractCrossSections(ground, a, width, stationInterval, offsetStep)
	if len(g) < len(d) {
		d = d[:len(g)]
	} else {
		g = g[:len(d)]
	}
	return d, g
}

// Volume returns the signed volume between a design and ground surface along
// an alignment using the average end area method. Fill is positive.
func Volume(design, ground *tin.Tin, a *alignment.Alignment, width, stationInterval, offsetStep float64) float64 {
	d, g := matchedSections(design, ground, a, width, stationInterval, offsetStep)
	if len(d) < 2 {
		return 0
	}
	areas := make([]float64, len(d))
	for i := range d {
		areas[i] = sectionArea(d[i], g[i], offsetStep)
	}
	volume := 0.0
	for i := 0; i < len(areas)-1; i++ {
		volume += (areas[i] + areas[i+1]) * 0.5 * stationInterval
	}
	return volume
}

// CutFill returns the cut and fill volumes between a design and ground
// surface along an alignment. The signed area is split into cut and fill per
// trapezoid segment before the average-end-area integration, so a single
// section straddling grade feeds both buckets.
func CutFill(design, ground *tin.Tin, a *alignment.Alignment, width, stationInterval, offsetStep float64) (cut, fill float64) {
	d, g := matchedSections(design, ground, a, width, stationInterval, offsetStep)
	if len(d) < 2 {
		return 0, 0
	}
	cuts := make([]float64, len(d))
	fills := make([]float64, len(d))
	for i := range d {
		cuts[i], fills[i] = sectionCutFillAreas(d[i], g[i], offsetStep)
	}
	for i := 0; i < len(d)-1; i++ {
		cut += (cuts[i] + cuts[i+1]) * 0.5 * stationInterval
		fill += (fills[i] + fills[i+1]) * 0.5 * stationInterval
	}
	return cut, fill
}

// MassHaulPoint is one station of a mass-haul profile.
type MassHaulPoint struct {
	Station          float64
	CumulativeVolume float64
}

// MassHaul returns station/cumulative-volume pairs along the alignment using
// the same average-end-area accumulation as Volume, without the cut/fill
// split. Fill is positive. Fewer than two matched sections yield nil.
func MassHaul(design, ground *tin.Tin, a *alignment.Alignment, width, stationInterval, offsetStep float64) []MassHaulPoint {
	d, g := matchedSections(design, ground, a, width, stationInterval, offsetStep)
	if len(d) < 2 {
		return nil
	}
	areas := make([]float64, len(d))
	for i := range d {
		areas[i] = sectionArea(d[i], g[i], offsetStep)
	}
	haul := make([]MassHaulPoint, 0, len(d))
	haul = append(haul, MassHaulPoint{Station: d[0].Station})
	cumulative := 0.0
	for i := 1; i < len(d); i++ {
		cumulative += (areas[i-1] + areas[i]) * 0.5 * stationInterval
		haul = append(haul, MassHaulPoint{Station: d[i].Station, CumulativeVolume: cumulative})
	}
	return haul
}

// StationVolume is the earthworks ledger entry for the segment ending at a
// station.
type StationVolume struct {
	Station    float64
	Cut        float64 // incremental cut for the segment, positive
	Fill       float64 // incremental fill for the segment, positive
	Volume     float64 // signed incremental volume, fill positive
	Cumulative float64 // signed running total
	Haul       float64 // moved volume times segment length
}

// StationVolumes returns the per-station earthworks ledger. The first entry
// carries the first station with zero quantities.
func StationVolumes(design, ground *tin.Tin, a *alignment.Alignment, width, stationInterval, offsetStep float64) []StationVolume {
	d, g := matchedSections(design, ground, a, width, stationInterval, offsetStep)
	if len(d) < 2 {
		return nil
	}
	cuts := make([]float64, len(d))
	fills := make([]float64, len(d))
	for i := range d {
		cuts[i], fills[i] = sectionCutFillAreas(d[i], g[i], offsetStep)
	}
	out := make([]StationVolume, 0, len(d))
	out = append(out, StationVolume{Station: d[0].Station})
	cumulative := 0.0
	for i := 1; i < len(d); i++ {
		cut := (cuts[i-1] + cuts[i]) * 0.5 * stationInterval
		fill := (fills[i-1] + fills[i]) * 0.5 * stationInterval
		volume := fill - cut
		cumulative += volume
		out = append(out, StationVolume{
			Station:    d[i].Station,
			Cut:        cut,
			Fill:       fill,
			Volume:     volume,
			Cumulative: cumulative,
			Haul:       math.Abs(volume) * stationInterval,
		})
	}
	return out
}
