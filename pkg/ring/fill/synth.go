package fill

import (
	"fmt"
	"strings"

	padringerrors "github.com/chenzc24/padring/pkg/errors"
	"github.com/chenzc24/padring/pkg/ring"
)

// tailTolerance is the residual gap a variable-pitch side may keep after
// tail fill, in um.
const tailTolerance = 0.01

// Result reports what one synthesis run inserted.
type Result struct {
	StartCells int // cells between a side's low activity and its leading corner
	MidCells   int // cells between adjacent pads
	EndCells   int // cells between a side's last pad and its trailing corner
	TailUnits  int // variable-pitch tail fillers
	Isolations int // inserted cells that isolate rather than connect

	BySide map[ring.Side]int // total insertions per side
}

// Inserted returns the total number of synthesized cells.
func (r Result) Inserted() int {
	return r.StartCells + r.MidCells + r.EndCells + r.TailUnits
}

// Synthesize inserts boundary cells into every side of the layout: a start
// cell at each side's low corner, a mid cell between each adjacent pad pair,
// an end cell at the high corner, and on variable-pitch processes enough
// tail fillers to close the remaining side span. Afterward each side is
// renumbered 0..M-1 in the layout's traversal order, mutating pad positions
// in place.
//
// A layout that already contains boundary cells is left untouched: supplied
// fillers are authoritative and the operation stays idempotent. Synthesis
// requires all four corners so corner boundaries can be decided.
func Synthesize(l *ring.Layout) (Result, error) {
	cfg := l.Config
	res := Result{BySide: make(map[ring.Side]int, 4)}

	if !cfg.AutoFill || l.HasBoundary() {
		return res, nil
	}

	cornerChoices := make(map[ring.Corner]Choice, 4)
	for _, q := range ring.Corners() {
		corner, ok := l.CornerAt(q)
		if !ok {
			return res, padringerrors.New(padringerrors.ErrCodeCornerCount,
				"auto-fill needs a corner at %s", q)
		}
		before, after := flankingPads(l, q)
		cornerChoices[q] = SelectAtCorner(cfg, corner, before, after)
	}

	for _, s := range ring.WalkSides(cfg.Order) {
		if err := synthesizeSide(l, s, cornerChoices, &res); err != nil {
			return res, err
		}
	}
	return res, nil
}

// synthesizeSide builds the side's full physical sequence with boundary
// cells woven in, appends tail fill on variable-pitch processes, then
// renumbers and registers everything.
func synthesizeSide(l *ring.Layout, s ring.Side, cornerChoices map[ring.Corner]Choice, res *Result) error {
	cfg := l.Config
	pads := l.SidePads(s)
	seq := make([]*ring.Component, 0, 2*len(pads)+2)
	nextCell := 0

	start := cornerChoices[ring.LowCorner(s)]
	seq = append(seq, newCell(start, s, &nextCell))
	res.StartCells++
	countIsolation(res, start)

	for k, pad := range pads {
		if k > 0 {
			mid := Select(cfg, pads[k-1], pad)
			seq = append(seq, newCell(mid, s, &nextCell))
			res.MidCells++
			countIsolation(res, mid)
		}
		seq = append(seq, pad)
	}

	end := cornerChoices[ring.HighCorner(s)]
	seq = append(seq, newCell(end, s, &nextCell))
	res.EndCells++
	countIsolation(res, end)

	if !cfg.Process.Uniform() {
		tail, err := tailFill(l, s, seq, &nextCell)
		if err != nil {
			return err
		}
		seq = append(seq, tail...)
		res.TailUnits += len(tail)
	}

	// Renumber the full sequence and register the new cells.
	m := len(seq)
	for phys, c := range seq {
		c.Pos = ring.SidePosition(s, ring.LogicalIndex(phys, m, cfg.Order))
		if c.Synthesized {
			res.BySide[s]++
			if _, exists := l.Component(c.Name); exists {
				return padringerrors.New(padringerrors.ErrCodeInternal,
					"synthesized name %q collides with an existing component", c.Name)
			}
			if err := l.Add(c); err != nil {
				return padringerrors.Wrap(padringerrors.ErrCodeInternal, err,
					"registering synthesized cell %q", c.Name)
			}
		}
	}
	return nil
}

// tailFill closes the gap between the side's accumulated width and its span
// with filler units, widest first, within tolerance. The tail lands at the
// side's high end, against the trailing corner.
func tailFill(l *ring.Layout, s ring.Side, seq []*ring.Component, nextCell *int) ([]*ring.Component, error) {
	cfg := l.Config

	used := 0.0
	for _, c := range seq {
		used += c.EffectiveWidth(cfg)
	}
	deficit := cfg.SideSpan(s) - used
	if deficit < -tailTolerance {
		return nil, padringerrors.New(padringerrors.ErrCodeSideOverflow,
			"side %s components span %.2f but only %.2f fits", s, used, cfg.SideSpan(s))
	}

	fam := tailFamily(l, s)
	var tail []*ring.Component
	for _, unit := range ring.FillerSeries(cfg.Process, fam) {
		for deficit >= unit.Width-tailTolerance {
			choice := Choice{Device: unit.Device, Class: ring.ClassFiller, Family: fam}
			tail = append(tail, newCell(choice, s, nextCell))
			deficit -= unit.Width
		}
	}
	if deficit > tailTolerance {
		return nil, padringerrors.New(padringerrors.ErrCodeSideOverflow,
			"side %s keeps an unfillable %.3f um residual", s, deficit)
	}
	return tail, nil
}

// tailFamily picks the rail family for tail fillers: the trailing corner's
// family since the tail abuts it, the side's last pad as fallback, digital
// as the final default.
func tailFamily(l *ring.Layout, s ring.Side) ring.Family {
	if corner, ok := l.CornerAt(ring.HighCorner(s)); ok {
		if fam := ring.ResolveDomain(corner, l.Config.Process).Family; fam != ring.FamilyUnknown {
			return fam
		}
	}
	if pads := l.SidePads(s); len(pads) > 0 {
		if fam := ring.ResolveDomain(pads[len(pads)-1], l.Config.Process).Family; fam != ring.FamilyUnknown {
			return fam
		}
	}
	return ring.FamilyDigital
}

// newCell creates a synthesized boundary component. Names follow the
// <device>_<side>_<seq> scheme in lowercase.
func newCell(choice Choice, s ring.Side, nextCell *int) *ring.Component {
	name := fmt.Sprintf("%s_%s_%d", strings.ToLower(choice.Device), s, *nextCell)
	*nextCell++
	return &ring.Component{
		Name:        name,
		Device:      choice.Device,
		Class:       choice.Class,
		Synthesized: true,
	}
}

// countIsolation tallies isolation insertions.
func countIsolation(res *Result, c Choice) {
	if c.Isolation {
		res.Isolations++
	}
}

// flankingPads returns the pads nearest a corner on its two sides, in walk
// order around the corner. Either may be nil when the side has no pads.
func flankingPads(l *ring.Layout, q ring.Corner) (*ring.Component, *ring.Component) {
	h, v := ring.CornerSides(q)
	return padAtEnd(l, h, q), padAtEnd(l, v, q)
}

// padAtEnd returns the side's pad adjacent to the given corner.
func padAtEnd(l *ring.Layout, s ring.Side, q ring.Corner) *ring.Component {
	pads := l.SidePads(s)
	if len(pads) == 0 {
		return nil
	}
	if ring.AtLowEnd(q, s) {
		return pads[0]
	}
	return pads[len(pads)-1]
}
