package place

import (
	padringerrors "github.com/chenzc24/padring/pkg/errors"
	"github.com/chenzc24/padring/pkg/ring"
)

// ResolveInner positions the layout's inner pads. An inner pad references
// two outer pads of its side by pad-only logical indices; it resolves to the
// midpoint of the two referenced pads, keeping the side's orientation. Outer
// pads must already be placed.
//
// References bind to the pad-only numbering of a side, so boundary cell
// insertion never invalidates them.
func ResolveInner(l *ring.Layout) error {
	cfg := l.Config
	seq, offsets := padSequence(l)

	for _, c := range l.InnerPads() {
		s := c.Pos.Side
		n := len(l.SidePads(s))
		i1, i2 := c.Pos.Index, c.Pos.Index2

		if i1 == i2 {
			return padringerrors.New(padringerrors.ErrCodeInvalidReference,
				"inner pad %q references pad %s_%d twice", c.Name, s, i1)
		}
		if n == 0 {
			return padringerrors.New(padringerrors.ErrCodeInvalidReference,
				"inner pad %q references side %s, which has no pads", c.Name, s)
		}
		if i1 >= n || i2 >= n {
			return padringerrors.New(padringerrors.ErrCodeInvalidReference,
				"inner pad %q references pad %d on side %s with only %d pads", c.Name, max(i1, i2), s, n)
		}

		p1 := seq[offsets[s]+padWalkRank(cfg.Order, s, i1, n)]
		p2 := seq[offsets[s]+padWalkRank(cfg.Order, s, i2, n)]
		if !p1.Placed || !p2.Placed {
			return padringerrors.New(padringerrors.ErrCodeInternal,
				"inner pad %q resolved before its outer pads", c.Name)
		}

		c.Place((p1.X+p2.X)/2, (p1.Y+p2.Y)/2, ring.SideOrientation(s))
	}
	return nil
}

// padSequence builds the global pad sequence in ring traversal order and
// records each side's starting ordinal. Inner pad references resolve against
// this sequence, accounting for pads on preceding sides.
func padSequence(l *ring.Layout) ([]*ring.Component, map[ring.Side]int) {
	var seq []*ring.Component
	offsets := make(map[ring.Side]int, 4)

	for _, s := range ring.WalkSides(l.Config.Order) {
		pads := l.SidePads(s)
		if !ring.WalkAscending(s, l.Config.Order) {
			for i, j := 0, len(pads)-1; i < j; i, j = i+1, j-1 {
				pads[i], pads[j] = pads[j], pads[i]
			}
		}
		offsets[s] = len(seq)
		seq = append(seq, pads...)
	}
	return seq, offsets
}

// padWalkRank converts a logical pad index into the pad's rank within its
// side's stretch of the traversal sequence.
func padWalkRank(o ring.Order, s ring.Side, logical, n int) int {
	real := ring.RealIndex(logical, n, o)
	if ring.WalkAscending(s, o) {
		return real
	}
	return n - 1 - real
}
