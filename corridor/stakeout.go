package corridor

import (
	"math"
	"sort"

	"github.com/sitegrade/corridor/alignment"
	"github.com/sitegrade/corridor/geom"
)

// StakeoutPosition returns the field position at a station and signed lateral
// offset along a horizontal alignment. Positive offsets follow the left
// normal of the travel direction. The second return is false when the station
// lies outside the alignment.
func StakeoutPosition(h *alignment.HorizontalAlignment, station, offset float64) (geom.Point, bool) {
	base, okP := h.PointAt(station)
	dir, okD := h.DirectionAt(station)
	if !okP || !okD {
		return geom.Point{}, false
	}
	normal := dir.Perp()
	if normal.Norm() < 1e-12 {
		return base, true
	}
	return base.Offset(normal.Unit(), offset), true
}

// OptimalStationing merges the alignment's element boundary stations with
// evenly spaced stations at the given interval, sorted ascending with
// near-duplicates removed.
func OptimalStationing(h *alignment.HorizontalAlignment, interval float64) []float64 {
	stations := h.Stations()
	if interval > 0 {
		length := h.Length()
		for s := 0.0; s <= length; s += interval {
			stations = append(stations, s)
		}
	}
	sort.Float64s(stations)
	out := stations[:0]
	for _, s := range stations {
		if len(out) > 0 && math.Abs(s-out[len(out)-1]) < 1e-6 {
			continue
		}
		out = append(out, s)
	}
	return out
}

// GridStakeoutPoints returns stakeout positions on a rectangular grid between
// min and max at the given spacing, ordered row by row from the minimum
// corner. Degenerate extents or non-positive spacing yield nil.
func GridStakeoutPoints(min, max geom.Point, spacing float64) []geom.Point {
	if spacing <= 0 || max.X <= min.X || max.Y <= min.Y {
		return nil
	}
	nx := int(math.Floor((max.X - min.X) / spacing))
	ny := int(math.Floor((max.Y - min.Y) / spacing))
	pts := make([]geom.Point, 0, (nx+1)*(ny+1))
	for j := 0; j <= ny; j++ {
		for i := 0; i <= nx; i++ {
			pts = append(pts, geom.Point{
				X: min.X + float64(i)*spacing,
				Y: min.Y + float64(j)*spacing,
			})
		}
	}
	return pts
}
