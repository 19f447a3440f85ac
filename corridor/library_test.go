package corridor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitegrade/corridor/alignment"
	"github.com/sitegrade/corridor/geom"
	"github.com/sitegrade/corridor/tin"
)

func TestLane(t *testing.T) {
	t.Parallel()

	lane := Lane(3.0, -0.02)
	require.Len(t, lane.Profile, 2)
	assert.Equal(t, ProfilePoint{0, 0}, lane.Profile[0])
	assert.InDelta(t, 3.0, lane.Profile[1].Offset, 1e-12)
	assert.InDelta(t, -0.06, lane.Profile[1].Elevation, 1e-12)
}

func TestCurbAndGutter(t *testing.T) {
	t.Parallel()

	cg := CurbAndGutter(0.15, 0.3, 0.5, -0.05)
	require.Len(t, cg.Profile, 4)
	assert.Equal(t, ProfilePoint{0, 0.15}, cg.Profile[1])
	last := cg.Profile[3]
	assert.InDelta(t, 0.8, last.Offset, 1e-12)
	assert.InDelta(t, 0.15+0.5*-0.05, last.Elevation, 1e-12)
}

func TestMedian(t *testing.T) {
	t.Parallel()

	m := Median(2.0, 0.5)
	require.Len(t, m.Profile, 4)
	assert.Equal(t, ProfilePoint{0, 0.5}, m.Profile[1])
	assert.Equal(t, ProfilePoint{2, 0}, m.Profile[3])
}

func TestDitch(t *testing.T) {
	t.Parallel()

	d := Ditch(1.0, 2.0, 3.0)
	require.Len(t, d.Profile, 4)
	assert.Equal(t, ProfilePoint{0, 0}, d.Profile[0])
	assert.Equal(t, ProfilePoint{3, -1}, d.Profile[1])
	assert.Equal(t, ProfilePoint{8, 0}, d.Profile[3])

	t.Run("zero bottom width drops the flat run", func(t *testing.T) {
		t.Parallel()
		v := Ditch(1.0, 0, 2.0)
		assert.Len(t, v.Profile, 3)
	})
}

func TestRetainingWall(t *testing.T) {
	t.Parallel()

	w := RetainingWall(2.0, 0.5)
	assert.Equal(t, Profile{{0, 0}, {0, -2}, {0.5, -2}}, w.Profile)
}

func TestCompose(t *testing.T) {
	t.Parallel()

	section := Compose(Lane(3.0, -0.02), Curb(0.15, 0.3))
	require.Len(t, section.Profile, 4)

	last := section.Profile[3]
	assert.InDelta(t, 3.3, last.Offset, 1e-6)
	assert.InDelta(t, -0.06+0.15, last.Elevation, 1e-6)
}

func TestMirror(t *testing.T) {
	t.Parallel()

	right := Lane(3.0, -0.02)
	left := Mirror(right)
	require.Len(t, left.Profile, 2)
	assert.Zero(t, left.Profile[0].Offset)
	assert.InDelta(t, -0.06, left.Profile[0].Elevation, 1e-12)
	assert.InDelta(t, 0.0, left.Profile[1].Offset, 1e-12)
}

func TestSymmetricSection(t *testing.T) {
	t.Parallel()

	sections := SymmetricSection(Lane(3.0, -0.02))
	require.Len(t, sections, 2)
	assert.Zero(t, sections[0].Profile[0].Offset)
	assert.Zero(t, sections[1].Profile[0].Offset)
	assert.Len(t, sections[0].Profile, len(sections[1].Profile))
}

func TestTransition(t *testing.T) {
	t.Parallel()

	a := Lane(3.0, -0.02)
	b := Shoulder(3.5, -0.02)
	tr := Transition(a, b, 10.0)

	require.Len(t, tr.ProfileTable, 2)
	assert.Equal(t, a.Profile, tr.ProfileTable[0].Profile)
	assert.Equal(t, b.Profile, tr.ProfileTable[1].Profile)

	mid := ProfileAt(tr.ProfileTable, 5)
	require.Len(t, mid, 2)
	assert.InDelta(t, 3.25, mid[1].Offset, 1e-12)
}

func TestProfileAt(t *testing.T) {
	t.Parallel()

	table := []StationProfile{
		{Station: 0, Profile: Profile{{0, 0}, {2, 0}}},
		{Station: 10, Profile: Profile{{0, 0}, {4, 2}}},
	}

	t.Run("clamps outside the table", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, table[0].Profile, ProfileAt(table, -5))
		assert.Equal(t, table[1].Profile, ProfileAt(table, 50))
	})

	t.Run("interpolates matched vertex counts", func(t *testing.T) {
		t.Parallel()
		mid := ProfileAt(table, 5)
		require.Len(t, mid, 2)
		assert.InDelta(t, 3.0, mid[1].Offset, 1e-12)
		assert.InDelta(t, 1.0, mid[1].Elevation, 1e-12)
	})

	t.Run("mismatched vertex counts use the earlier profile", func(t *testing.T) {
		t.Parallel()
		ragged := []StationProfile{
			{Station: 0, Profile: Profile{{0, 0}, {2, 0}}},
			{Station: 10, Profile: Profile{{0, 0}, {1, 0}, {2, 0}}},
		}
		assert.Equal(t, ragged[0].Profile, ProfileAt(ragged, 5))
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()
		assert.Nil(t, ProfileAt(nil, 0))
	})
}

func TestDaylightToSurface(t *testing.T) {
	t.Parallel()

	// Ground falls away to the right of the centerline; a falling daylight
	// slope intercepts it.
	ground := tin.FromPoints([]geom.Point3{
		{X: 0, Y: -10, Z: -5},
		{X: 10, Y: -10, Z: -5},
		{X: 0, Y: 10, Z: -5},
		{X: 10, Y: 10, Z: -5},
	})
	a := alignment.New(
		alignment.NewTangents([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}),
		alignment.NewVerticalFromPairs([]alignment.StationElevation{
			{Station: 0, Elevation: 1},
			{Station: 10, Elevation: 1},
		}),
	)

	sub := DaylightToSurface(ground, a, -1.0, 5, 1, 20)
	require.NotEmpty(t, sub.ProfileTable)
	for _, row := range sub.ProfileTable {
		require.Len(t, row.Profile, 2)
		// The intercept sits below grade on the falling slope.
		assert.Negative(t, row.Profile[1].Elevation)
		assert.Positive(t, row.Profile[1].Offset)
	}
}
