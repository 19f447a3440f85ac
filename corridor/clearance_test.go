package corridor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sitegrade/corridor/alignment"
	"github.com/sitegrade/corridor/geom"
)

func clearanceAlignment(grade float64) *alignment.Alignment {
	return alignment.New(
		alignment.NewTangents([]geom.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}),
		alignment.NewVerticalFromPairs([]alignment.StationElevation{
			{Station: 0, Elevation: grade},
			{Station: 10, Elevation: grade},
		}),
	)
}

func TestCheckClearance(t *testing.T) {
	t.Parallel()

	ground := flatGround(0)

	t.Run("passes with margin", func(t *testing.T) {
		t.Parallel()
		assert.True(t, CheckClearance(clearanceAlignment(5), ground, 4, 2))
	})

	t.Run("fails when too low", func(t *testing.T) {
		t.Parallel()
		assert.False(t, CheckClearance(clearanceAlignment(5), ground, 6, 2))
	})

	t.Run("lowest overlapping element governs", func(t *testing.T) {
		t.Parallel()
		a := clearanceAlignment(5)
		// A second, lower element over part of the span, e.g. a utility
		// crossing under the grade line.
		a.Vertical.Elements = append(a.Vertical.Elements, alignment.Grade{
			StartStation: 4, EndStation: 6, StartElev: 2, EndElev: 2,
		})
		assert.True(t, CheckClearance(a, ground, 1, 2))
		assert.False(t, CheckClearance(a, ground, 3, 2))
	})

	t.Run("stations off the ground surface are skipped", func(t *testing.T) {
		t.Parallel()
		small := flatGround(0)
		long := alignment.New(
			alignment.NewTangents([]geom.Point{{X: 0, Y: 0}, {X: 100, Y: 0}}),
			alignment.NewVerticalFromPairs([]alignment.StationElevation{
				{Station: 0, Elevation: 5},
				{Station: 100, Elevation: 5},
			}),
		)
		// Stations past x=15 have no ground elevation and do not fail the
		// check.
		assert.True(t, CheckClearance(long, small, 4, 10))
	})

	t.Run("non-positive interval passes trivially", func(t *testing.T) {
		t.Parallel()
		assert.True(t, CheckClearance(clearanceAlignment(0), ground, 100, 0))
	})
}
