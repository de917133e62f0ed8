package ring

import (
	"fmt"
	"strconv"
	"strings"
)

// PositionKind distinguishes the three symbolic position forms a component
// can carry in a ring spec.
type PositionKind int

const (
	// PositionUnset marks a component with no parsed position.
	PositionUnset PositionKind = iota
	// PositionCorner places a component at one of the four corner slots.
	PositionCorner
	// PositionSide places a component at a logical index along a side.
	PositionSide
	// PositionInner places a component between two outer pads of a side,
	// row-recessed toward the die interior.
	PositionInner
)

// Position is the symbolic location of a component before coordinates are
// assigned. It is one of three forms:
//
//   - corner form, e.g. "bottom_left"
//   - side form, e.g. "top_3" (side and logical index)
//   - inner form, e.g. "left_1_2" (side and two outer pad indices)
//
// The zero value is PositionUnset.
type Position struct {
	Kind   PositionKind
	Corner Corner // set when Kind == PositionCorner
	Side   Side   // set for side and inner forms
	Index  int    // logical index (side form) or first reference (inner form)
	Index2 int    // second reference (inner form only)
}

// CornerPosition returns the position for a corner slot.
func CornerPosition(c Corner) Position {
	return Position{Kind: PositionCorner, Corner: c}
}

// SidePosition returns the position for a logical slot on a side.
func SidePosition(s Side, index int) Position {
	return Position{Kind: PositionSide, Side: s, Index: index}
}

// InnerPosition returns the position for an inner pad referencing two outer
// pads of a side.
func InnerPosition(s Side, i1, i2 int) Position {
	return Position{Kind: PositionInner, Side: s, Index: i1, Index2: i2}
}

// ParsePosition parses the symbolic position syntax used in ring specs.
// Corner names are matched first, then "<side>_<index>" and
// "<side>_<index>_<index>" forms. Indices must be non-negative integers.
func ParsePosition(str string) (Position, error) {
	if c, err := ParseCorner(str); err == nil {
		return CornerPosition(c), nil
	}

	parts := strings.Split(str, "_")
	if len(parts) < 2 || len(parts) > 3 {
		return Position{}, fmt.Errorf("%w: %q", ErrInvalidPosition, str)
	}

	side, err := ParseSide(parts[0])
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q has no known side", ErrInvalidPosition, str)
	}

	indices := make([]int, 0, 2)
	for _, p := range parts[1:] {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return Position{}, fmt.Errorf("%w: %q has a bad index", ErrInvalidPosition, str)
		}
		indices = append(indices, n)
	}

	if len(indices) == 1 {
		return SidePosition(side, indices[0]), nil
	}
	return InnerPosition(side, indices[0], indices[1]), nil
}

// String renders the position back to its symbolic spec form.
func (p Position) String() string {
	switch p.Kind {
	case PositionCorner:
		return string(p.Corner)
	case PositionSide:
		return fmt.Sprintf("%s_%d", p.Side, p.Index)
	case PositionInner:
		return fmt.Sprintf("%s_%d_%d", p.Side, p.Index, p.Index2)
	}
	return ""
}

// OnSide reports whether the position names the given side. Corner positions
// belong to no side.
func (p Position) OnSide(s Side) bool {
	return (p.Kind == PositionSide || p.Kind == PositionInner) && p.Side == s
}
