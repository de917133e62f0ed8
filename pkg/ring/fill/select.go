// Package fill chooses and synthesizes the boundary cells of a ring: the
// fillers that keep supply rails continuous between same-domain neighbors
// and the isolation cells that separate unrelated voltage domains.
package fill

import (
	"github.com/chenzc24/padring/pkg/ring"
)

// Choice is the boundary cell selected for one gap.
type Choice struct {
	Device    string
	Class     ring.Class
	Family    ring.Family // filler family, FamilyUnknown for isolation
	Isolation bool
}

// Select chooses the cell between two adjacent pads of one side. Pads in
// the same voltage domain get a rail-continuity filler of their family;
// differing or unresolvable domains get the process isolation cell.
func Select(cfg ring.Config, prev, next *ring.Component) Choice {
	if !ring.SameDomain(prev, next, cfg.Process) {
		return isolationChoice(cfg)
	}
	fam := ring.ResolveDomain(prev, cfg.Process).Family
	return fillerChoice(cfg, fam)
}

// SelectAtCorner chooses the cell for a corner boundary. The two pads
// flanking the corner across its sides decide first: if both exist and
// disagree, the corner region isolates. Otherwise the corner's own domain is
// compared against the nearest flanking pad, with the generic analog corner
// exception applying. A corner with no flanking pads gets a filler of its
// own family.
func SelectAtCorner(cfg ring.Config, corner, before, after *ring.Component) Choice {
	if before != nil && after != nil && !ring.SameDomain(before, after, cfg.Process) {
		return isolationChoice(cfg)
	}

	neighbor := before
	if neighbor == nil {
		neighbor = after
	}
	if neighbor == nil {
		return fillerChoice(cfg, ring.ResolveDomain(corner, cfg.Process).Family)
	}
	if !ring.Compatible(corner, neighbor, cfg.Process) {
		return isolationChoice(cfg)
	}
	fam := ring.ResolveDomain(neighbor, cfg.Process).Family
	if fam == ring.FamilyUnknown {
		fam = ring.ResolveDomain(corner, cfg.Process).Family
	}
	return fillerChoice(cfg, fam)
}

// fillerChoice picks the continuity filler for a family. Uniform processes
// use the base filler; variable-pitch processes use the narrowest unit so
// inserted cells consume as little of the side span as possible, leaving
// the tail fill to take up the slack.
func fillerChoice(cfg ring.Config, fam ring.Family) Choice {
	if fam == ring.FamilyUnknown {
		fam = ring.FamilyDigital
	}
	device := ring.FillerDevice(cfg.Process, fam)
	if !cfg.Process.Uniform() {
		if series := ring.FillerSeries(cfg.Process, fam); len(series) > 0 {
			device = series[len(series)-1].Device
		}
	}
	return Choice{Device: device, Class: ring.ClassFiller, Family: fam}
}

// isolationChoice picks the process isolation cell.
func isolationChoice(cfg ring.Config) Choice {
	return Choice{
		Device:    ring.IsolationDevice(cfg.Process),
		Class:     ring.ClassBlank,
		Isolation: true,
	}
}
