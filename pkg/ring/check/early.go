// Package check validates ring structure at two stages: an early symbolic
// pass before any placement, catching broken specs while positions are still
// logical, and a late resolved pass after placement and synthesis, proving
// the finished ring is geometrically sound.
//
// Both passes collect every violation they find and report them as one
// structured error carrying the first violation's code, so a spec author
// sees the full damage at once.
package check

import (
	"fmt"
	"strings"

	padringerrors "github.com/chenzc24/padring/pkg/errors"
	"github.com/chenzc24/padring/pkg/ring"
)

// violation is one validation finding.
type violation struct {
	code padringerrors.Code
	msg  string
}

// fail folds violations into a single structured error, annotated with the
// layout summary for context.
func fail(stage string, l *ring.Layout, violations []violation) error {
	if len(violations) == 0 {
		return nil
	}
	lines := make([]string, 0, len(violations))
	for _, v := range violations {
		lines = append(lines, "  - "+v.msg)
	}
	return padringerrors.New(violations[0].code,
		"%s validation found %d violation(s):\n%s\n%s",
		stage, len(violations), strings.Join(lines, "\n"), Summary(l))
}

// Early validates the symbolic ring before placement: class and position
// forms must agree, the four corner quadrants must be covered exactly, side
// indices must be collision-free and contiguous, uniform-pitch sides must
// carry exactly their declared pad counts, and inner pad references must
// point at distinct existing pads.
func Early(l *ring.Layout) error {
	var violations []violation
	add := func(code padringerrors.Code, format string, args ...any) {
		violations = append(violations, violation{code, fmt.Sprintf(format, args...)})
	}

	for _, c := range l.Components() {
		checkClassPosition(c, add)
	}
	checkCorners(l, add)

	for _, s := range ring.Sides() {
		checkSideIndices(l, s, add)
		if l.Config.Process.Uniform() {
			if got, want := len(l.SidePads(s)), l.Config.SideCount(s); got != want {
				add(padringerrors.ErrCodeSideCountMismatch,
					"side %s carries %d pads but the config declares %d", s, got, want)
			}
		}
	}

	for _, c := range l.InnerPads() {
		checkInnerReference(l, c, add)
	}

	return fail("early", l, violations)
}

// checkClassPosition verifies that a component's class matches its position
// form.
func checkClassPosition(c *ring.Component, add func(padringerrors.Code, string, ...any)) {
	switch c.Pos.Kind {
	case ring.PositionUnset:
		add(padringerrors.ErrCodeInvalidPosition, "component %q has no position", c.Name)
	case ring.PositionCorner:
		if c.Class != ring.ClassCorner {
			add(padringerrors.ErrCodeInvalidPosition,
				"component %q is a %s but sits on corner slot %s", c.Name, c.Class, c.Pos.Corner)
		}
	case ring.PositionSide:
		if !c.OnSideSlot() {
			add(padringerrors.ErrCodeInvalidPosition,
				"component %q is a %s but claims side slot %s", c.Name, c.Class, c.Pos)
		}
	case ring.PositionInner:
		if c.Class != ring.ClassInnerPad {
			add(padringerrors.ErrCodeInvalidPosition,
				"component %q is a %s but uses the inner pad form %s", c.Name, c.Class, c.Pos)
		}
	}
}

// checkCorners verifies exactly one corner per quadrant.
func checkCorners(l *ring.Layout, add func(padringerrors.Code, string, ...any)) {
	byQuadrant := make(map[ring.Corner][]*ring.Component, 4)
	for _, c := range l.Components() {
		if c.Pos.Kind == ring.PositionCorner {
			byQuadrant[c.Pos.Corner] = append(byQuadrant[c.Pos.Corner], c)
		}
	}

	total := 0
	for _, q := range ring.Corners() {
		at := byQuadrant[q]
		total += len(at)
		switch {
		case len(at) == 0:
			add(padringerrors.ErrCodeCornerCount, "no corner at %s", q)
		case len(at) > 1:
			names := make([]string, len(at))
			for i, c := range at {
				names[i] = c.Name
			}
			add(padringerrors.ErrCodePositionConflict,
				"corner %s claimed by %s", q, strings.Join(names, ", "))
		}
	}
	if total != 4 {
		add(padringerrors.ErrCodeCornerCount, "ring has %d corners, needs exactly 4", total)
	}
}

// checkSideIndices verifies that side slot indices collide nowhere and form
// a contiguous 0..M-1 range.
func checkSideIndices(l *ring.Layout, s ring.Side, add func(padringerrors.Code, string, ...any)) {
	comps := l.SideComponents(s)
	seen := make(map[int]string, len(comps))
	for _, c := range comps {
		i := c.Pos.Index
		if prev, taken := seen[i]; taken {
			add(padringerrors.ErrCodePositionConflict,
				"slot %s_%d claimed by both %q and %q", s, i, prev, c.Name)
			continue
		}
		seen[i] = c.Name
		if i >= len(comps) {
			add(padringerrors.ErrCodePositionConflict,
				"slot %s_%d is out of range for %d components", s, i, len(comps))
		}
	}
}

// checkInnerReference verifies an inner pad references two distinct pads
// that exist on its side.
func checkInnerReference(l *ring.Layout, c *ring.Component, add func(padringerrors.Code, string, ...any)) {
	s := c.Pos.Side
	n := len(l.SidePads(s))
	i1, i2 := c.Pos.Index, c.Pos.Index2

	if i1 == i2 {
		add(padringerrors.ErrCodeInvalidReference,
			"inner pad %q references pad %s_%d twice", c.Name, s, i1)
		return
	}
	if n == 0 {
		add(padringerrors.ErrCodeInvalidReference,
			"inner pad %q references side %s, which has no pads", c.Name, s)
		return
	}
	if i1 >= n || i2 >= n {
		add(padringerrors.ErrCodeInvalidReference,
			"inner pad %q references pad %d on side %s with only %d pads", c.Name, max(i1, i2), s, n)
	}
}
