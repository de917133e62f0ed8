package check

import (
	"fmt"
	"sort"
	"strings"

	padringerrors "github.com/chenzc24/padring/pkg/errors"
	"github.com/chenzc24/padring/pkg/ring"
)

// coordTolerance absorbs float accumulation when comparing spans and die
// bounds, in micrometers.
const coordTolerance = 0.01

// Late validates the resolved ring after placement and synthesis: every
// component must be placed with a legal orientation, the corner quadrants
// must still be covered, side indices must remain contiguous, uniform-pitch
// rings must keep opposing pad counts equal, sides must fit their spans, and
// all coordinates must land inside the die.
func Late(l *ring.Layout) error {
	var violations []violation
	add := func(code padringerrors.Code, format string, args ...any) {
		violations = append(violations, violation{code, fmt.Sprintf(format, args...)})
	}

	for _, c := range l.Components() {
		if !c.Placed {
			add(padringerrors.ErrCodeMissingOrientation, "component %q was never placed", c.Name)
			continue
		}
		switch c.Orient {
		case ring.R0, ring.R90, ring.R180, ring.R270:
		default:
			add(padringerrors.ErrCodeMissingOrientation,
				"component %q carries orientation %q", c.Name, c.Orient)
		}
		checkBounds(l.Config, c, add)
	}

	checkCorners(l, add)
	for _, s := range ring.Sides() {
		checkSideIndices(l, s, add)
		if !l.Config.Process.Uniform() {
			checkSideSpan(l, s, add)
		}
	}
	if l.Config.Process.Uniform() {
		checkOpposingCounts(l, add)
	}

	return fail("late", l, violations)
}

// checkBounds verifies a placed component's anchor lies inside the die.
func checkBounds(cfg ring.Config, c *ring.Component, add func(padringerrors.Code, string, ...any)) {
	if c.X < -coordTolerance || c.X > cfg.DieWidth+coordTolerance ||
		c.Y < -coordTolerance || c.Y > cfg.DieHeight+coordTolerance {
		add(padringerrors.ErrCodeInvalidPosition,
			"component %q placed at (%.2f, %.2f) outside the %g x %g die",
			c.Name, c.X, c.Y, cfg.DieWidth, cfg.DieHeight)
	}
}

// checkSideSpan verifies variable-pitch side contents fit between the
// corners.
func checkSideSpan(l *ring.Layout, s ring.Side, add func(padringerrors.Code, string, ...any)) {
	span := l.Config.SideSpan(s)
	var used float64
	for _, c := range l.SideComponents(s) {
		used += c.EffectiveWidth(l.Config)
	}
	if used > span+coordTolerance {
		add(padringerrors.ErrCodeSideOverflow,
			"side %s holds %.2f um of components in a %.2f um span", s, used, span)
	}
}

// checkOpposingCounts verifies uniform-pitch opposing sides carry equal pad
// counts, which the shared pitch arithmetic depends on.
func checkOpposingCounts(l *ring.Layout, add func(padringerrors.Code, string, ...any)) {
	for _, pair := range [][2]ring.Side{
		{ring.SideBottom, ring.SideTop},
		{ring.SideLeft, ring.SideRight},
	} {
		a, b := len(l.SidePads(pair[0])), len(l.SidePads(pair[1]))
		if a != b {
			add(padringerrors.ErrCodeSideCountMismatch,
				"opposing sides %s and %s carry %d and %d pads", pair[0], pair[1], a, b)
		}
	}
}

// Summary renders per-side component counts and a device histogram, appended
// to validation errors so failures carry the ring's shape.
func Summary(l *ring.Layout) string {
	var b strings.Builder
	b.WriteString("ring summary:")

	b.WriteString(" sides{")
	for i, s := range ring.Sides() {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s:%d", s, len(l.SideComponents(s)))
	}
	b.WriteString("}")

	hist := make(map[string]int)
	for _, c := range l.Components() {
		hist[c.Device]++
	}
	devices := make([]string, 0, len(hist))
	for d := range hist {
		devices = append(devices, d)
	}
	sort.Strings(devices)

	b.WriteString(" devices{")
	for i, d := range devices {
		if i > 0 {
			b.WriteString(" ")
		}
		fmt.Fprintf(&b, "%s:%d", d, hist[d])
	}
	b.WriteString("}")
	return b.String()
}
