package ring

// Side identifies one of the four die edges.
type Side string

// The four die sides. Horizontal sides are measured from the left die edge,
// vertical sides from the bottom die edge.
const (
	SideBottom Side = "bottom"
	SideRight  Side = "right"
	SideTop    Side = "top"
	SideLeft   Side = "left"
)

// Sides lists the four die sides in the canonical counterclockwise order
// starting at the bottom edge.
func Sides() []Side {
	return []Side{SideBottom, SideRight, SideTop, SideLeft}
}

// ParseSide converts a string to a Side.
func ParseSide(s string) (Side, error) {
	switch Side(s) {
	case SideBottom, SideRight, SideTop, SideLeft:
		return Side(s), nil
	}
	return "", ErrUnknownSide
}

// Horizontal reports whether the side runs along the x axis.
func (s Side) Horizontal() bool {
	return s == SideBottom || s == SideTop
}

// Opposite returns the side across the die.
func (s Side) Opposite() Side {
	switch s {
	case SideBottom:
		return SideTop
	case SideTop:
		return SideBottom
	case SideLeft:
		return SideRight
	default:
		return SideLeft
	}
}

// Orientation is a placement rotation in 90 degree steps, using the standard
// CAD naming (R0 = unrotated, R90 = 90 degrees counterclockwise, ...).
type Orientation string

// The four placement rotations.
const (
	R0   Orientation = "R0"
	R90  Orientation = "R90"
	R180 Orientation = "R180"
	R270 Orientation = "R270"
)

// ParseOrientation converts a string to an Orientation.
func ParseOrientation(s string) (Orientation, error) {
	switch Orientation(s) {
	case R0, R90, R180, R270:
		return Orientation(s), nil
	}
	return "", ErrUnknownOrientation
}

// sideOrientations maps each side to the rotation that points a pad's bond
// side at the die interior. Pads are drawn facing up, so the bottom edge
// needs no rotation and the remaining edges rotate counterclockwise with
// the traversal.
var sideOrientations = map[Side]Orientation{
	SideBottom: R0,
	SideRight:  R270,
	SideTop:    R180,
	SideLeft:   R90,
}

// SideOrientation returns the rotation applied to every outer component
// placed on the given side.
func SideOrientation(s Side) Orientation {
	return sideOrientations[s]
}

// Corner identifies one of the four die corner positions.
type Corner string

// The four die corners.
const (
	CornerBottomLeft  Corner = "bottom_left"
	CornerBottomRight Corner = "bottom_right"
	CornerTopRight    Corner = "top_right"
	CornerTopLeft     Corner = "top_left"
)

// Corners lists the four corner positions in counterclockwise order starting
// at the origin.
func Corners() []Corner {
	return []Corner{CornerBottomLeft, CornerBottomRight, CornerTopRight, CornerTopLeft}
}

// ParseCorner converts a string to a Corner.
func ParseCorner(s string) (Corner, error) {
	switch Corner(s) {
	case CornerBottomLeft, CornerBottomRight, CornerTopRight, CornerTopLeft:
		return Corner(s), nil
	}
	return "", ErrUnknownCorner
}

// cornerOrientations maps each corner to its rotation. The corner cell's
// L-shape opens toward the die interior, rotating counterclockwise around
// the ring starting from the origin corner.
var cornerOrientations = map[Corner]Orientation{
	CornerBottomLeft:  R0,
	CornerBottomRight: R90,
	CornerTopRight:    R180,
	CornerTopLeft:     R270,
}

// CornerOrientation returns the rotation applied to a corner cell.
func CornerOrientation(c Corner) Orientation {
	return cornerOrientations[c]
}

// Order is the direction the ring is traversed when mapping logical side
// indices to physical positions.
type Order string

// Traversal directions. Both start at the bottom-left corner.
const (
	Clockwise        Order = "clockwise"
	CounterClockwise Order = "counterclockwise"
)

// ParseOrder converts a string to an Order. The short forms "cw" and "ccw"
// are accepted alongside the full names.
func ParseOrder(s string) (Order, error) {
	switch s {
	case string(Clockwise), "cw":
		return Clockwise, nil
	case string(CounterClockwise), "ccw":
		return CounterClockwise, nil
	}
	return "", ErrUnknownOrder
}

// RealIndex maps a logical side index to the physical slot it occupies among
// n entries. Counterclockwise rings number slots in physical order; clockwise
// rings number them from the far end, so the mapping mirrors.
func RealIndex(logical, n int, o Order) int {
	if o == Clockwise {
		return logical
	}
	return n - 1 - logical
}

// LogicalIndex is the inverse of RealIndex. The mirror mapping is an
// involution, so the two functions coincide.
func LogicalIndex(real, n int, o Order) int {
	return RealIndex(real, n, o)
}

// WalkSides returns the sides in ring traversal order starting from the
// bottom-left corner.
func WalkSides(o Order) []Side {
	if o == Clockwise {
		return []Side{SideLeft, SideTop, SideRight, SideBottom}
	}
	return []Side{SideBottom, SideRight, SideTop, SideLeft}
}

// WalkAscending reports whether the ring traversal crosses the given side in
// ascending physical order (increasing x for horizontal sides, increasing y
// for vertical sides).
func WalkAscending(s Side, o Order) bool {
	if o == Clockwise {
		return s == SideLeft || s == SideTop
	}
	return s == SideBottom || s == SideRight
}

// LowCorner returns the corner at the side's low-coordinate end: minimum x
// for horizontal sides, minimum y for vertical sides.
func LowCorner(s Side) Corner {
	switch s {
	case SideBottom:
		return CornerBottomLeft
	case SideTop:
		return CornerTopLeft
	case SideLeft:
		return CornerBottomLeft
	default:
		return CornerBottomRight
	}
}

// HighCorner returns the corner at the side's high-coordinate end.
func HighCorner(s Side) Corner {
	switch s {
	case SideBottom:
		return CornerBottomRight
	case SideTop:
		return CornerTopRight
	case SideLeft:
		return CornerTopLeft
	default:
		return CornerTopRight
	}
}

// CornerSides returns the two sides meeting at a corner, horizontal first.
func CornerSides(c Corner) (Side, Side) {
	switch c {
	case CornerBottomLeft:
		return SideBottom, SideLeft
	case CornerBottomRight:
		return SideBottom, SideRight
	case CornerTopRight:
		return SideTop, SideRight
	default:
		return SideTop, SideLeft
	}
}

// AtLowEnd reports whether the corner sits at the low-coordinate end of the
// given side. The corner must be one of the side's two end corners.
func AtLowEnd(c Corner, s Side) bool {
	return LowCorner(s) == c
}
