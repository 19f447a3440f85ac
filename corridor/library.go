package corridor

import (
	"math"

	"github.com/sitegrade/corridor/alignment"
	"github.com/sitegrade/corridor/geom"
	"github.com/sitegrade/corridor/tin"
)

// Builders for common roadway subassemblies. Offsets grow away from the
// centerline; pair each right-side shape with Mirror for the left side, or
// use SymmetricSection.

// Lane is a travel lane of the given width and cross slope. Negative slopes
// fall away from the centerline.
func Lane(width, slope float64) Subassembly {
	return NewSubassembly(Profile{{0, 0}, {width, width * slope}})
}

// Shoulder is a paved shoulder of the given width and cross slope.
func Shoulder(width, slope float64) Subassembly {
	return NewSubassembly(Profile{{0, 0}, {width, width * slope}})
}

// Curb is a vertical face of the given height topped by a flat run of width.
func Curb(height, width float64) Subassembly {
	return NewSubassembly(Profile{{0, 0}, {0, height}, {width, height}})
}

// Sidewalk is a walking surface of the given width and cross slope.
func Sidewalk(width, slope float64) Subassembly {
	return NewSubassembly(Profile{{0, 0}, {width, width * slope}})
}

// CurbAndGutter combines a vertical curb face with a sloped gutter pan
// extending gutterWidth beyond the curb top.
func CurbAndGutter(height, curbWidth, gutterWidth, gutterSlope float64) Subassembly {
	return NewSubassembly(Profile{
		{0, 0},
		{0, height},
		{curbWidth, height},
		{curbWidth + gutterWidth, height + gutterWidth*gutterSlope},
	})
}

// Median is a raised island with vertical faces, returning to grade on the
// far side.
func Median(width, height float64) Subassembly {
	return NewSubassembly(Profile{{0, 0}, {0, height}, {width, height}, {width, 0}})
}

// Ditch drops to depth on the given side slope (horizontal run per unit
// vertical), runs flat for bottomWidth, and climbs back to grade.
func Ditch(depth, bottomWidth, sideSlope float64) Subassembly {
	run := depth * math.Abs(sideSlope)
	profile := Profile{{0, 0}, {run, -depth}}
	if bottomWidth > 0 {
		profile = append(profile, ProfilePoint{run + bottomWidth, -depth})
	}
	profile = append(profile, ProfilePoint{run + bottomWidth + run, 0})
	return NewSubassembly(profile)
}

// Daylight projects from the origin for the given width at a constant slope.
func Daylight(width, slope float64) Subassembly {
	return NewSubassembly(Profile{{0, 0}, {width, width * slope}})
}

// RetainingWall is a vertical drop of height with a footing of width.
func RetainingWall(height, width float64) Subassembly {
	return NewSubassembly(Profile{{0, 0}, {0, -height}, {width, -height}})
}

// Transition interpolates linearly from the start shape to the end shape over
// the given length, via a two-row profile table. The shapes should have equal
// vertex counts for the interpolation to engage.
func Transition(start, end Subassembly, length float64) Subassembly {
	sub := NewSubassembly(start.Profile)
	sub.ProfileTable = []StationProfile{
		{Station: 0, Profile: start.Profile},
		{Station: length, Profile: end.Profile},
	}
	return sub
}

// Mirror flips a subassembly about the centerline for use on the opposite
// side. Vertex order is reversed so the profile still runs outward, and the
// first vertex is pinned to offset zero.
func Mirror(sub Subassembly) Subassembly {
	profile := make(Profile, 0, len(sub.Profile))
	for i := len(sub.Profile) - 1; i >= 0; i-- {
		pp := sub.Profile[i]
		profile = append(profile, ProfilePoint{Offset: -pp.Offset, Elevation: pp.Elevation})
	}
	if len(profile) > 0 {
		profile[0].Offset = 0
	}
	return NewSubassembly(profile)
}

// Compose chains subassemblies end to end into one profile. Each part is
// expected to start at (0, 0); its vertices are appended relative to the
// previous part's last vertex, with the connecting vertex deduplicated.
func Compose(parts ...Subassembly) Subassembly {
	var profile Profile
	var off, elev float64
	for _, part := range parts {
		if len(part.Profile) == 0 {
			continue
		}
		for i, pp := range part.Profile {
			if i == 0 && len(profile) > 0 {
				continue
			}
			profile = append(profile, ProfilePoint{
				Offset:    off + pp.Offset,
				Elevation: elev + pp.Elevation,
			})
		}
		last := part.Profile[len(part.Profile)-1]
		off += last.Offset
		elev += last.Elevation
	}
	return NewSubassembly(profile)
}

// SymmetricSection composes the given right-side parts and mirrors the result
// for the left, returning the pair ready for section extraction.
func SymmetricSection(partsRight ...Subassembly) []Subassembly {
	right := Compose(partsRight...)
	left := Mirror(right)
	return []Subassembly{left, right}
}

// DaylightToSurface builds a subassembly whose profile table tracks the
// intercept of a constant slope with an existing surface at each station.
// Falling slopes (slope <= 0) project along the left normal, rising slopes
// along the right. Stations where no intercept is found within maxDist are
// omitted from the table.
func DaylightToSurface(surface *tin.Tin, a *alignment.Alignment, slope, interval, step, maxDist float64) Subassembly {
	var table []StationProfile
	length := a.Horizontal.Length()
	for station := 0.0; station <= length; station += interval {
		center, okC := a.Horizontal.PointAt(station)
		dir, okD := a.Horizontal.DirectionAt(station)
		grade, okG := a.Vertical.ElevationAt(station)
		if !okC || !okD || !okG {
			continue
		}
		side := dir.Perp()
		if slope > 0 {
			side = side.Neg()
		}
		hit, ok := surface.SlopeProjection(geom.Point3{X: center.X, Y: center.Y, Z: grade}, side, slope, step, maxDist)
		if !ok {
			continue
		}
		dist := (hit.X-center.X)*side.X + (hit.Y-center.Y)*side.Y
		offset := dist
		if slope > 0 {
			offset = -dist
		}
		table = append(table, StationProfile{
			Station: station,
			Profile: Profile{{0, 0}, {offset, slope * dist}},
		})
	}
	profile := Profile{{0, 0}}
	if len(table) > 0 {
		profile = table[0].Profile
	}
	sub := NewSubassembly(profile)
	sub.ProfileTable = table
	return sub
}
