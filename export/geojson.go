// Package export renders corridor geometry as GeoJSON for GIS consumers.
// Coordinates pass through in the project's planar system; no reprojection is
// performed.
package export

import (
	"encoding/json"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"github.com/sitegrade/corridor/alignment"
	"github.com/sitegrade/corridor/corridor"
	"github.com/sitegrade/corridor/geom"
	"github.com/sitegrade/corridor/tin"
)

// ContourFeatures exports raw contour segments as two-point LineString
// features carrying an "elevation" property.
func ContourFeatures(t *tin.Tin, interval float64) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, seg := range t.ContourSegments(interval) {
		f := geojson.NewFeature(orb.LineString{
			{seg.A.X, seg.A.Y},
			{seg.B.X, seg.B.Y},
		})
		f.Properties["elevation"] = seg.A.Z
		fc.Append(f)
	}
	return fc
}

// ContourPolylineFeatures exports chained and smoothed contour polylines as
// LineString features. The "elevation" property is taken from the chain's
// first vertex; contour chains are level by construction.
func ContourPolylineFeatures(t *tin.Tin, interval float64, smooth int) *geojson.FeatureCollection {
	lines, chains := t.ContourPolylines(interval, smooth)
	fc := geojson.NewFeatureCollection()
	for i, line := range lines {
		ls := make(orb.LineString, len(line.Vertices))
		for j, v := range line.Vertices {
			ls[j] = orb.Point{v.X, v.Y}
		}
		f := geojson.NewFeature(ls)
		if len(chains[i]) > 0 {
			f.Properties["elevation"] = chains[i][0].Z
		}
		fc.Append(f)
	}
	return fc
}

// CenterlineFeature exports the alignment centerline sampled by interval as a
// single LineString feature with a "length" property. The end of the
// alignment is always included.
func CenterlineFeature(a *alignment.Alignment, interval float64) *geojson.Feature {
	length := a.Horizontal.Length()
	var ls orb.LineString
	if interval > 0 {
		for station := 0.0; station < length; station += interval {
			if p, ok := a.Horizontal.PointAt(station); ok {
				ls = append(ls, orb.Point{p.X, p.Y})
			}
		}
	}
	if p, ok := a.Horizontal.PointAt(length); ok {
		ls = append(ls, orb.Point{p.X, p.Y})
	}
	f := geojson.NewFeature(ls)
	f.Properties["length"] = length
	return f
}

// CrossSectionFeatures exports sampled cross-sections as LineString features
// carrying a "station" property. Sections with fewer than two points are
// skipped.
func CrossSectionFeatures(sections []corridor.CrossSection) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, sec := range sections {
		if len(sec.Points) < 2 {
			continue
		}
		ls := make(orb.LineString, len(sec.Points))
		for i, p := range sec.Points {
			ls[i] = orb.Point{p.X, p.Y}
		}
		f := geojson.NewFeature(ls)
		f.Properties["station"] = sec.Station
		fc.Append(f)
	}
	return fc
}

// TinFeatures exports every triangle of a surface as a closed Polygon feature
// with "z1", "z2", "z3" vertex elevation properties.
func TinFeatures(t *tin.Tin) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, tri := range t.Triangles {
		a, b, c := t.Vertices[tri[0]], t.Vertices[tri[1]], t.Vertices[tri[2]]
		ring := orb.Ring{
			{a.X, a.Y},
			{b.X, b.Y},
			{c.X, c.Y},
			{a.X, a.Y},
		}
		f := geojson.NewFeature(orb.Polygon{ring})
		f.Properties["z1"] = a.Z
		f.Properties["z2"] = b.Z
		f.Properties["z3"] = c.Z
		fc.Append(f)
	}
	return fc
}

// PolylineFeature exports a plain 2D polyline as a LineString feature.
func PolylineFeature(line geom.Polyline) *geojson.Feature {
	ls := make(orb.LineString, len(line.Vertices))
	for i, v := range line.Vertices {
		ls[i] = orb.Point{v.X, v.Y}
	}
	return geojson.NewFeature(ls)
}

// Marshal serializes a feature collection to GeoJSON bytes.
func Marshal(fc *geojson.FeatureCollection) ([]byte, error) {
	data, err := json.Marshal(fc)
	if err != nil {
		return nil, errors.Wrap(err, "marshal feature collection")
	}
	return data, nil
}
