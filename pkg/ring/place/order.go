package place

import (
	"sort"

	"github.com/chenzc24/padring/pkg/ring"
)

// stride separates ring walk segments in sort keys. Each corner and each
// side owns one segment; indices within a side stay far below it.
const stride = 1 << 20

// segmentRanks orders the eight walk segments (four corners, four sides)
// for each traversal direction, starting at the bottom-left corner.
var segmentRanks = map[ring.Order]struct {
	corner map[ring.Corner]int
	side   map[ring.Side]int
}{
	ring.CounterClockwise: {
		corner: map[ring.Corner]int{
			ring.CornerBottomLeft:  0,
			ring.CornerBottomRight: 2,
			ring.CornerTopRight:    4,
			ring.CornerTopLeft:     6,
		},
		side: map[ring.Side]int{
			ring.SideBottom: 1,
			ring.SideRight:  3,
			ring.SideTop:    5,
			ring.SideLeft:   7,
		},
	},
	ring.Clockwise: {
		corner: map[ring.Corner]int{
			ring.CornerBottomLeft:  0,
			ring.CornerTopLeft:     2,
			ring.CornerTopRight:    4,
			ring.CornerBottomRight: 6,
		},
		side: map[ring.Side]int{
			ring.SideLeft:   1,
			ring.SideTop:    3,
			ring.SideRight:  5,
			ring.SideBottom: 7,
		},
	},
}

// SortKey assigns a component its rank in the ring traversal total order:
// corners interleaved between sides, side components in walk order within
// their segment, inner pads just after the first outer pad they reference.
//
// Logical indices already follow the walk on the top and left sides; on the
// bottom and right sides the walk runs against the numbering, so the
// within-segment rank mirrors. This holds for both traversal directions.
func SortKey(o ring.Order, c *ring.Component) int {
	ranks, ok := segmentRanks[o]
	if !ok {
		ranks = segmentRanks[ring.CounterClockwise]
	}

	switch c.Pos.Kind {
	case ring.PositionCorner:
		return ranks.corner[c.Pos.Corner] * stride
	case ring.PositionSide:
		return ranks.side[c.Pos.Side]*stride + 2*walkRank(c.Pos.Side, c.Pos.Index)
	case ring.PositionInner:
		first := c.Pos.Index
		if c.Pos.Index2 < first {
			first = c.Pos.Index2
		}
		return ranks.side[c.Pos.Side]*stride + 2*walkRank(c.Pos.Side, first) + 1
	}
	// Unpositioned components sort to the very end.
	return 8 * stride
}

// walkRank maps a logical index to its within-side walk rank without
// needing the side's population count.
func walkRank(s ring.Side, index int) int {
	if s == ring.SideTop || s == ring.SideLeft {
		return index
	}
	return stride/2 - 1 - index
}

// Sort orders components in place by their ring traversal rank. The sort is
// stable so equal keys keep spec order.
func Sort(o ring.Order, comps []*ring.Component) {
	sort.SliceStable(comps, func(i, j int) bool {
		return SortKey(o, comps[i]) < SortKey(o, comps[j])
	})
}
