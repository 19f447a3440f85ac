package corridor

import (
	"log"

	"github.com/sitegrade/corridor/alignment"
	"github.com/sitegrade/corridor/modulation"
	"github.com/sitegrade/corridor/tin"
)

// Corridor keeps a design surface synchronized with its inputs. Every
// mutator rebuilds the surface eagerly, so DesignSurface is always current.
type Corridor struct {
	Alignment      *alignment.Alignment
	Subassemblies  []Subassembly
	Superelevation modulation.SuperelevationTable
	Interval       float64

	DesignSurface *tin.Tin
}

// NewCorridor assembles a corridor and builds its initial design surface.
func NewCorridor(a *alignment.Alignment, subs []Subassembly, super modulation.SuperelevationTable, interval float64) *Corridor {
	c := &Corridor{
		Alignment:      a,
		Subassemblies:  subs,
		Superelevation: super,
		Interval:       interval,
	}
	c.UpdateDesignSurface()
	return c
}

// UpdateDesignSurface re-extracts the design cross-sections and triangulates
// them into a fresh surface.
func (c *Corridor) UpdateDesignSurface() {
	c.DesignSurface = BuildDesignSurfaceDynamic(c.Alignment, c.Subassemblies, c.Superelevation, c.Interval)
	log.Printf("[Corridor] design surface rebuilt: %d vertices, %d triangles",
		len(c.DesignSurface.Vertices), len(c.DesignSurface.Triangles))
}

// SetAlignment replaces the alignment and rebuilds the design surface.
func (c *Corridor) SetAlignment(a *alignment.Alignment) {
	c.Alignment = a
	c.UpdateDesignSurface()
}

// SetSubassemblies replaces the subassembly set and rebuilds the design
// surface.
func (c *Corridor) SetSubassemblies(subs []Subassembly) {
	c.Subassemblies = subs
	c.UpdateDesignSurface()
}

// SetSuperelevation replaces the corridor-global superelevation table and
// rebuilds the design surface.
func (c *Corridor) SetSuperelevation(super modulation.SuperelevationTable) {
	c.Superelevation = super
	c.UpdateDesignSurface()
}

// SetInterval changes the sampling interval and rebuilds the design surface.
func (c *Corridor) SetInterval(interval float64) {
	c.Interval = interval
	c.UpdateDesignSurface()
}
