package corridor

import (
	"github.com/sitegrade/corridor/alignment"
	"github.com/sitegrade/corridor/tin"
)

// DynamicCrossSections keeps ground cross-sections synchronized with an
// alignment and sampling parameters. Mutators re-extract eagerly, mirroring
// Corridor's update model.
type DynamicCrossSections struct {
	Alignment  *alignment.Alignment
	Ground     *tin.Tin
	Width      float64
	Interval   float64
	OffsetStep float64

	Sections []CrossSection
}

// NewDynamicCrossSections extracts the initial sections.
func NewDynamicCrossSections(a *alignment.Alignment, ground *tin.Tin, width, interval, offsetStep float64) *DynamicCrossSections {
	d := &DynamicCrossSections{
		Alignment:  a,
		Ground:     ground,
		Width:      width,
		Interval:   interval,
		OffsetStep: offsetStep,
	}
	d.Update()
	return d
}

// Update re-extracts the cross-sections from the current inputs.
func (d *DynamicCrossSections) Update() {
	d.Sections = ExtractCrossSections(d.Ground, d.Alignment, d.Width, d.Interval, d.OffsetStep)
}

// SetAlignment replaces the alignment and re-extracts.
func (d *DynamicCrossSections) SetAlignment(a *alignment.Alignment) {
	d.Alignment = a
	d.Update()
}

// SetGround replaces the ground surface and re-extracts.
func (d *DynamicCrossSections) SetGround(ground *tin.Tin) {
	d.Ground = ground
	d.Update()
}

// SetParameters changes the sampling window and re-extracts.
func (d *DynamicCrossSections) SetParameters(width, interval, offsetStep float64) {
	d.Width = width
	d.Interval = interval
	d.OffsetStep = offsetStep
	d.Update()
}
