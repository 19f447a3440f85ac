package corridor

import (
	"github.com/sitegrade/corridor/alignment"
	"github.com/sitegrade/corridor/geom"
	"github.com/sitegrade/corridor/modulation"
	"github.com/sitegrade/corridor/tin"
)

// ExtractCrossSections slices a ground surface perpendicular to an alignment.
// Stations run from 0 to the alignment length by interval; at each station
// offsets from -width to +width by offsetStep are sampled against the
// surface. Offset points outside the surface are omitted, so sections may
// have varying point counts. Non-positive intervals or steps yield nil.
func ExtractCrossSections(ground *tin.Tin, a *alignment.Alignment, width, interval, offsetStep float64) []CrossSection {
	if interval <= 0 || offsetStep <= 0 {
		return nil
	}
	var sections []CrossSection
	length := a.Horizontal.Length()
	for station := 0.0; station <= length; station += interval {
		center, okC := a.Horizontal.PointAt(station)
		dir, okD := a.Horizontal.DirectionAt(station)
		if !okC || !okD {
			continue
		}
		normal := dir.Perp()
		var pts []geom.Point3
		for offset := -width; offset <= width; offset += offsetStep {
			p := center.Offset(normal, offset)
			if z, ok := ground.ElevationAt(p.X, p.Y); ok {
				pts = append(pts, geom.Point3{X: p.X, Y: p.Y, Z: z})
			}
		}
		sections = append(sections, NewCrossSection(station, pts))
	}
	return sections
}

// ExtractPolylineCrossSections slices a ground surface perpendicular to a
// plain 2D polyline, with the same sampling contract as
// ExtractCrossSections.
func ExtractPolylineCrossSections(ground *tin.Tin, line geom.Polyline, width, interval, offsetStep float64) []CrossSection {
	if interval <= 0 || offsetStep <= 0 {
		return nil
	}
	var sections []CrossSection
	length := line.Length()
	for station := 0.0; station <= length; station += interval {
		center, okC := line.PointAt(station)
		dir, okD := line.DirectionAt(station)
		if !okC || !okD {
			continue
		}
		normal := dir.Perp()
		var pts []geom.Point3
		for offset := -width; offset <= width; offset += offsetStep {
			p := center.Offset(normal, offset)
			if z, ok := ground.ElevationAt(p.X, p.Y); ok {
				pts = append(pts, geom.Point3{X: p.X, Y: p.Y, Z: z})
			}
		}
		sections = append(sections, NewCrossSection(station, pts))
	}
	return sections
}

// ExtractDesignCrossSections realizes the design shape at each station:
// every subassembly contributes its profile (station-varying when it has a
// profile table), shifted by its variable offset, with elevations adjusted
// by grade, profile elevation and cross-slope. A subassembly's own
// superelevation table overrides the corridor-global one. The cross-slope is
// the right slope for non-negative shifted offsets and the left slope
// otherwise.
func ExtractDesignCrossSections(a *alignment.Alignment, subs []Subassembly, super modulation.SuperelevationTable, interval float64) []CrossSection {
	if interval <= 0 {
		return nil
	}
	var sections []CrossSection
	length := a.Horizontal.Length()
	for station := 0.0; station <= length; station += interval {
		center, okC := a.Horizontal.PointAt(station)
		dir, okD := a.Horizontal.DirectionAt(station)
		grade, okG := a.Vertical.ElevationAt(station)
		if !okC || !okD || !okG {
			continue
		}
		normal := dir.Perp()
		var pts []geom.Point3
		for _, sub := range subs {
			shift := sub.Offsets.OffsetAt(station)
			table := super
			if sub.Superelevation != nil {
				table = sub.Superelevation
			}
			left, right := table.SlopesAt(station)
			for _, pp := range sub.profileAt(station) {
				offset := pp.Offset + shift
				slope := left
				if offset >= 0 {
					slope = right
				}
				p := center.Offset(normal, offset)
				pts = append(pts, geom.Point3{
					X: p.X,
					Y: p.Y,
					Z: grade + pp.Elevation + offset*slope,
				})
			}
		}
		sections = append(sections, NewCrossSection(station, pts))
	}
	return sections
}
