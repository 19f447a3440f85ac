// Package corridor assembles an alignment, cross-section templates
// (subassemblies) and modulation tables into sampled cross-sections, a
// triangulated design surface, and earthworks volumes against a ground
// surface.
package corridor

import (
	"github.com/sitegrade/corridor/geom"
	"github.com/sitegrade/corridor/modulation"
)

// ProfilePoint is one vertex of a cross-section shape: a lateral offset from
// the centerline and an elevation relative to the grade line.
type ProfilePoint struct {
	Offset    float64
	Elevation float64
}

// Profile is a cross-section shape as an ordered run of offset/elevation
// vertices.
type Profile []ProfilePoint

// StationProfile binds a profile to a station, for station-varying shapes.
type StationProfile struct {
	Station float64
	Profile Profile
}

// ProfileAt returns the profile effective at the given station. Stations
// before the first entry or after the last clamp to it. Between entries the
// two bracketing profiles are interpolated vertex by vertex when they have
// the same length; otherwise the earlier profile is used unchanged.
func ProfileAt(table []StationProfile, station float64) Profile {
	if len(table) == 0 {
		return nil
	}
	if station <= table[0].Station {
		return table[0].Profile
	}
	for i := 1; i < len(table); i++ {
		a, b := table[i-1], table[i]
		if station < a.Station || station > b.Station {
			continue
		}
		span := b.Station - a.Station
		if span <= 0 || len(a.Profile) != len(b.Profile) {
			return a.Profile
		}
		f := (station - a.Station) / span
		out := make(Profile, len(a.Profile))
		for j := range a.Profile {
			out[j] = ProfilePoint{
				Offset:    a.Profile[j].Offset + f*(b.Profile[j].Offset-a.Profile[j].Offset),
				Elevation: a.Profile[j].Elevation + f*(b.Profile[j].Elevation-a.Profile[j].Elevation),
			}
		}
		return out
	}
	return table[len(table)-1].Profile
}

// Subassembly is a reusable cross-section template. Profile is the default
// shape; ProfileTable, when set, overrides it with a station-varying shape.
// Offsets shifts the whole shape laterally per station. Superelevation, when
// set, overrides the corridor-global cross-slope for this subassembly only.
type Subassembly struct {
	Profile        Profile
	Offsets        modulation.OffsetTable
	Superelevation modulation.SuperelevationTable
	ProfileTable   []StationProfile
}

// NewSubassembly creates a subassembly with a static profile.
func NewSubassembly(profile Profile) Subassembly {
	return Subassembly{Profile: profile}
}

// profileAt resolves the subassembly's shape at a station.
func (s Subassembly) profileAt(station float64) Profile {
	if len(s.ProfileTable) > 0 {
		return ProfileAt(s.ProfileTable, station)
	}
	return s.Profile
}

// CrossSection is a realized slice: the 3D points sampled at one station.
type CrossSection struct {
	Station float64
	Points  []geom.Point3
}

// NewCrossSection creates a cross-section.
func NewCrossSection(station float64, points []geom.Point3) CrossSection {
	return CrossSection{Station: station, Points: points}
}
