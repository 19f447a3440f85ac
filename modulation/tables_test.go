package modulation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOffsetTableOffsetAt(t *testing.T) {
	t.Parallel()

	table := OffsetTable{
		{Station: 0, Offset: 0},
		{Station: 50, Offset: 2},
		{Station: 100, Offset: 2},
	}

	t.Run("interpolates between samples", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 1.0, table.OffsetAt(25), 1e-12)
		assert.InDelta(t, 2.0, table.OffsetAt(75), 1e-12)
	})

	t.Run("exact at samples", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 0.0, table.OffsetAt(0), 1e-12)
		assert.InDelta(t, 2.0, table.OffsetAt(50), 1e-12)
	})

	t.Run("clamps out of range", func(t *testing.T) {
		t.Parallel()
		assert.InDelta(t, 0.0, table.OffsetAt(-10), 1e-12)
		assert.InDelta(t, 2.0, table.OffsetAt(500), 1e-12)
	})

	t.Run("empty table is neutral", func(t *testing.T) {
		t.Parallel()
		assert.Zero(t, OffsetTable(nil).OffsetAt(42))
	})
}

func TestSuperelevationTableSlopesAt(t *testing.T) {
	t.Parallel()

	// Normal crown transitioning into full superelevation.
	table := SuperelevationTable{
		{Station: 0, LeftSlope: -0.02, RightSlope: -0.02},
		{Station: 100, LeftSlope: 0.06, RightSlope: -0.06},
	}

	t.Run("interpolates both slopes", func(t *testing.T) {
		t.Parallel()
		left, right := table.SlopesAt(50)
		assert.InDelta(t, 0.02, left, 1e-12)
		assert.InDelta(t, -0.04, right, 1e-12)
	})

	t.Run("clamps out of range", func(t *testing.T) {
		t.Parallel()
		left, right := table.SlopesAt(-10)
		assert.InDelta(t, -0.02, left, 1e-12)
		assert.InDelta(t, -0.02, right, 1e-12)

		left, right = table.SlopesAt(1000)
		assert.InDelta(t, 0.06, left, 1e-12)
		assert.InDelta(t, -0.06, right, 1e-12)
	})

	t.Run("empty table is neutral", func(t *testing.T) {
		t.Parallel()
		left, right := SuperelevationTable(nil).SlopesAt(0)
		assert.Zero(t, left)
		assert.Zero(t, right)
	})

	t.Run("coincident stations resolve to the earlier sample", func(t *testing.T) {
		t.Parallel()
		stepped := SuperelevationTable{
			{Station: 10, LeftSlope: -0.02, RightSlope: -0.02},
			{Station: 10, LeftSlope: 0.04, RightSlope: 0.04},
		}
		left, _ := stepped.SlopesAt(10)
		assert.InDelta(t, -0.02, left, 1e-12)
	})
}
