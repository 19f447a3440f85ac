package corridor

import (
	"github.com/sitegrade/corridor/alignment"
	"github.com/sitegrade/corridor/geom"
	"github.com/sitegrade/corridor/modulation"
	"github.com/sitegrade/corridor/tin"
)

// BuildDesignSurface synthesizes a design surface by sweeping the static
// subassembly profiles along the alignment at the given station interval and
// triangulating the accumulated points into a fresh TIN.
func BuildDesignSurface(a *alignment.Alignment, subs []Subassembly, interval float64) *tin.Tin {
	if interval <= 0 {
		return tin.FromPoints(nil)
	}
	var pts []geom.Point3
	length := a.Horizontal.Length()
	for station := 0.0; station <= length; station += interval {
		center, okC := a.Horizontal.PointAt(station)
		dir, okD := a.Horizontal.DirectionAt(station)
		grade, okG := a.Vertical.ElevationAt(station)
		if !okC || !okD || !okG {
			continue
		}
		normal := dir.Perp()
		for _, sub := range subs {
			for _, pp := range sub.Profile {
				p := center.Offset(normal, pp.Offset)
				pts = append(pts, geom.Point3{X: p.X, Y: p.Y, Z: grade + pp.Elevation})
			}
		}
	}
	return tin.FromPoints(pts)
}

// BuildDesignSurfaceDynamic synthesizes a design surface with the full
// modulation applied: profile tables, variable offsets and superelevation.
// The result is always a fresh triangulation, never an edited mesh.
func BuildDesignSurfaceDynamic(a *alignment.Alignment, subs []Subassembly, super modulation.SuperelevationTable, interval float64) *tin.Tin {
	sections := ExtractDesignCrossSections(a, subs, super, interval)
	var pts []geom.Point3
	for _, sec := range sections {
		pts = append(pts, sec.Points...)
	}
	return tin.FromPoints(pts)
}
