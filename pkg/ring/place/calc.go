// Package place turns symbolic ring positions into die coordinates.
//
// Corners go to the four fixed die corners. Side components resolve along
// their side's axis: uniform-pitch processes center each pad in its slot and
// put boundary cells on the slot edges, variable-pitch processes accumulate
// component widths from the side's low corner. Inner pads resolve last, to
// the midpoint of their two referenced outer pads.
//
// Resolution is idempotent: re-running it after auto-fill reassigns the same
// slot coordinates on uniform rings and shifts variable-pitch pads to make
// room for inserted cells, with the second pass authoritative.
package place

import (
	padringerrors "github.com/chenzc24/padring/pkg/errors"
	"github.com/chenzc24/padring/pkg/ring"
)

// Resolve assigns coordinates and orientations to every corner and side
// component of the layout. Inner pads are left to [ResolveInner] since they
// derive from resolved outer pads.
func Resolve(l *ring.Layout) error {
	cfg := l.Config

	for _, c := range l.Components() {
		switch c.Pos.Kind {
		case ring.PositionCorner:
			placeCorner(cfg, c)
		case ring.PositionSide, ring.PositionInner:
			// Side components resolve per side below, inner pads later.
		default:
			return padringerrors.New(padringerrors.ErrCodeInvalidPosition,
				"component %q has no position", c.Name)
		}
	}

	for _, s := range ring.Sides() {
		if err := resolveSide(l, s); err != nil {
			return err
		}
	}
	return nil
}

// placeCorner pins a corner component to its die corner with the quadrant
// rotation.
func placeCorner(cfg ring.Config, c *ring.Component) {
	q := c.Pos.Corner
	var x, y float64
	switch q {
	case ring.CornerBottomLeft:
		x, y = 0, 0
	case ring.CornerBottomRight:
		x, y = cfg.DieWidth, 0
	case ring.CornerTopRight:
		x, y = cfg.DieWidth, cfg.DieHeight
	case ring.CornerTopLeft:
		x, y = 0, cfg.DieHeight
	}
	c.Place(x, y, ring.CornerOrientation(q))
}

// resolveSide positions the side's components in physical order.
func resolveSide(l *ring.Layout, s ring.Side) error {
	cfg := l.Config
	comps := l.SideComponents(s)
	orient := ring.SideOrientation(s)

	if cfg.Process.Uniform() {
		resolveUniform(cfg, s, comps, orient)
		return nil
	}
	return resolveVariable(cfg, s, comps, orient)
}

// resolveUniform places pads on the pitch grid and boundary cells on the
// slot edges between them. Each pad centers in its slot with half the gap on
// either flank; the cell before pad k sits flush at the previous pad's far
// edge, and the cell before the first pad sits flush at the corner.
func resolveUniform(cfg ring.Config, s ring.Side, comps []*ring.Component, orient ring.Orientation) {
	g := cfg.Gap()
	slot := 0
	for _, c := range comps {
		var along float64
		if c.IsPad() {
			along = cfg.CornerSize + float64(slot)*cfg.PadSpacing + g/2
			slot++
		} else if slot == 0 {
			along = cfg.CornerSize
		} else {
			along = cfg.CornerSize + float64(slot-1)*cfg.PadSpacing + g/2 + cfg.PadWidth
		}
		placeAlong(cfg, c, s, along, orient)
	}
}

// resolveVariable places components back to back, accumulating widths from
// the side's low corner. Whether the total fits the side span is the late
// validator's concern.
func resolveVariable(cfg ring.Config, s ring.Side, comps []*ring.Component, orient ring.Orientation) error {
	along := cfg.CornerSize
	for _, c := range comps {
		placeAlong(cfg, c, s, along, orient)
		along += c.EffectiveWidth(cfg)
	}
	return nil
}

// placeAlong converts a distance along the side's axis into die coordinates.
// Horizontal sides measure from the left die edge, vertical sides from the
// bottom; the perpendicular coordinate pins to the die boundary.
func placeAlong(cfg ring.Config, c *ring.Component, s ring.Side, along float64, orient ring.Orientation) {
	switch s {
	case ring.SideBottom:
		c.Place(along, 0, orient)
	case ring.SideTop:
		c.Place(along, cfg.DieHeight, orient)
	case ring.SideLeft:
		c.Place(0, along, orient)
	case ring.SideRight:
		c.Place(cfg.DieWidth, along, orient)
	}
}
