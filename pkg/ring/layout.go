package ring

import (
	"errors"
	"sort"
)

var (
	// ErrUnknownSide is returned by [ParseSide] and placement code when a
	// side name is not one of bottom, right, top, left.
	ErrUnknownSide = errors.New("unknown side")

	// ErrUnknownCorner is returned by [ParseCorner] when a corner name is
	// not one of the four corner positions.
	ErrUnknownCorner = errors.New("unknown corner")

	// ErrUnknownOrientation is returned by [ParseOrientation] for rotations
	// outside the R0/R90/R180/R270 set.
	ErrUnknownOrientation = errors.New("unknown orientation")

	// ErrUnknownOrder is returned by [ParseOrder] for traversal directions
	// other than clockwise and counterclockwise.
	ErrUnknownOrder = errors.New("unknown placement order")

	// ErrUnknownClass is returned by [ParseClass] for component classes
	// outside the known set.
	ErrUnknownClass = errors.New("unknown component class")

	// ErrUnknownProcess is returned by [ParseProcess] and [DefaultConfig]
	// for process variants without a catalog.
	ErrUnknownProcess = errors.New("unknown process")

	// ErrInvalidPosition is returned by [ParsePosition] when a symbolic
	// position matches none of the corner, side or inner forms.
	ErrInvalidPosition = errors.New("invalid position")

	// ErrInvalidConfig is returned by [Config.Finalize] when geometric
	// parameters are missing or inconsistent.
	ErrInvalidConfig = errors.New("invalid ring config")

	// ErrInvalidComponentName is returned by [Layout.Add] when a component
	// has an empty name. All components must have stable identifiers.
	ErrInvalidComponentName = errors.New("component name must not be empty")

	// ErrDuplicateComponentName is returned by [Layout.Add] when a
	// component with the same name already exists in the layout.
	ErrDuplicateComponentName = errors.New("duplicate component name")
)

// Layout is the working collection of ring components around one die. It
// holds the finalized config and the components in spec order, indexed by
// name. Placement and synthesis mutate the components in place.
//
// The zero value is not usable - use NewLayout. Layout is not safe for
// concurrent use without external synchronization.
type Layout struct {
	Config Config

	comps  []*Component
	byName map[string]*Component
}

// NewLayout creates an empty layout for a finalized config.
func NewLayout(cfg Config) *Layout {
	return &Layout{
		Config: cfg,
		byName: make(map[string]*Component),
	}
}

// Add appends a component to the layout. Names must be unique and non-empty.
func (l *Layout) Add(c *Component) error {
	if c.Name == "" {
		return ErrInvalidComponentName
	}
	if _, exists := l.byName[c.Name]; exists {
		return ErrDuplicateComponentName
	}
	l.comps = append(l.comps, c)
	l.byName[c.Name] = c
	return nil
}

// Component looks up a component by name.
func (l *Layout) Component(name string) (*Component, bool) {
	c, ok := l.byName[name]
	return c, ok
}

// Len returns the number of components in the layout.
func (l *Layout) Len() int { return len(l.comps) }

// Components returns all components in insertion order. The slice is a
// copy; the components are shared.
func (l *Layout) Components() []*Component {
	out := make([]*Component, len(l.comps))
	copy(out, l.comps)
	return out
}

// Corners returns the corner components in quadrant order starting at the
// origin. Missing or surplus corners surface here unfiltered; the validator
// owns the count check.
func (l *Layout) Corners() []*Component {
	var out []*Component
	for _, q := range Corners() {
		for _, c := range l.comps {
			if c.Pos.Kind == PositionCorner && c.Pos.Corner == q {
				out = append(out, c)
			}
		}
	}
	return out
}

// CornerAt returns the component occupying a corner quadrant, if any.
func (l *Layout) CornerAt(q Corner) (*Component, bool) {
	for _, c := range l.comps {
		if c.Pos.Kind == PositionCorner && c.Pos.Corner == q {
			return c, true
		}
	}
	return nil, false
}

// SideComponents returns the components occupying logical slots on a side,
// sorted in physical order (ascending along the side's axis). The logical
// to physical mapping mirrors for counterclockwise rings.
func (l *Layout) SideComponents(s Side) []*Component {
	var out []*Component
	for _, c := range l.comps {
		if c.OnSideSlot() && c.Pos.OnSide(s) {
			out = append(out, c)
		}
	}
	ascending := l.Config.Order == Clockwise
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return out[i].Pos.Index < out[j].Pos.Index
		}
		return out[i].Pos.Index > out[j].Pos.Index
	})
	return out
}

// SidePads returns only the pads of a side in physical order. Inner pad
// references and synthesis both number against this sequence.
func (l *Layout) SidePads(s Side) []*Component {
	var out []*Component
	for _, c := range l.SideComponents(s) {
		if c.IsPad() {
			out = append(out, c)
		}
	}
	return out
}

// InnerPads returns the inner pad components in insertion order.
func (l *Layout) InnerPads() []*Component {
	var out []*Component
	for _, c := range l.comps {
		if c.Pos.Kind == PositionInner {
			out = append(out, c)
		}
	}
	return out
}

// HasBoundary reports whether the layout already contains any filler or
// blank cells. Auto-fill treats hand-placed boundary cells as authoritative
// and stays out of the way.
func (l *Layout) HasBoundary() bool {
	for _, c := range l.comps {
		if c.IsBoundary() {
			return true
		}
	}
	return false
}
