package check

import (
	"strings"
	"testing"

	padringerrors "github.com/chenzc24/padring/pkg/errors"
	"github.com/chenzc24/padring/pkg/ring"
	"github.com/chenzc24/padring/pkg/ring/fill"
	"github.com/chenzc24/padring/pkg/ring/place"
)

// resolvedRing runs the full placement sequence over a fresh uniform ring.
func resolvedRing(t *testing.T) *ring.Layout {
	t.Helper()
	cfg := uniformConfig(t, 2)
	l := testRing(t, cfg, "PCORNER", "PDIO", cfg.Counts)
	mustAdd(t, l, &ring.Component{
		Name: "in0", Device: "PDIN", Class: ring.ClassInnerPad,
		Pos: ring.InnerPosition(ring.SideBottom, 0, 1),
	})

	if err := place.Resolve(l); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if _, err := fill.Synthesize(l); err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if err := place.Resolve(l); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if err := place.ResolveInner(l); err != nil {
		t.Fatalf("ResolveInner() error = %v", err)
	}
	return l
}

func TestLateValid(t *testing.T) {
	l := resolvedRing(t)
	if err := Late(l); err != nil {
		t.Errorf("Late() error = %v, want nil", err)
	}
}

func TestLateUnplaced(t *testing.T) {
	cfg := uniformConfig(t, 2)
	l := testRing(t, cfg, "PCORNER", "PDIO", cfg.Counts)

	err := Late(l)
	if err == nil {
		t.Fatal("Late() accepted an unplaced ring")
	}
	if code := padringerrors.GetCode(err); code != padringerrors.ErrCodeMissingOrientation {
		t.Errorf("Late() error code = %v, want %v", code, padringerrors.ErrCodeMissingOrientation)
	}
	if !strings.Contains(err.Error(), "never placed") {
		t.Errorf("Late() error %q does not report unplaced components", err)
	}
}

func TestLateBadOrientation(t *testing.T) {
	l := resolvedRing(t)
	c, _ := l.Component("b0")
	c.Orient = ring.Orientation("R45")

	err := Late(l)
	if err == nil {
		t.Fatal("Late() accepted orientation R45")
	}
	if code := padringerrors.GetCode(err); code != padringerrors.ErrCodeMissingOrientation {
		t.Errorf("Late() error code = %v, want %v", code, padringerrors.ErrCodeMissingOrientation)
	}
}

func TestLateOutOfBounds(t *testing.T) {
	l := resolvedRing(t)
	c, _ := l.Component("b0")
	c.X = -50

	err := Late(l)
	if err == nil {
		t.Fatal("Late() accepted a pad outside the die")
	}
	if code := padringerrors.GetCode(err); code != padringerrors.ErrCodeInvalidPosition {
		t.Errorf("Late() error code = %v, want %v", code, padringerrors.ErrCodeInvalidPosition)
	}
	if !strings.Contains(err.Error(), "outside") {
		t.Errorf("Late() error %q does not report the die bounds", err)
	}
}

func TestLateOpposingCounts(t *testing.T) {
	cfg := uniformConfig(t, 2)
	counts := cfg.Counts
	counts.Top = 1
	l := testRing(t, cfg, "PCORNER", "PDIO", counts)
	if err := place.Resolve(l); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	err := Late(l)
	if err == nil {
		t.Fatal("Late() accepted 2 bottom pads against 1 top pad")
	}
	if code := padringerrors.GetCode(err); code != padringerrors.ErrCodeSideCountMismatch {
		t.Errorf("Late() error code = %v, want %v", code, padringerrors.ErrCodeSideCountMismatch)
	}
	if !strings.Contains(err.Error(), "opposing sides") {
		t.Errorf("Late() error %q does not report the opposing sides", err)
	}
}

func TestLateVariableOverflow(t *testing.T) {
	cfg := variableConfig(t, 200, ring.SideCounts{Bottom: 2, Right: 1, Top: 1, Left: 1})
	l := ring.NewLayout(cfg)
	for q, name := range map[ring.Corner]string{
		ring.CornerBottomLeft:  "c_bl",
		ring.CornerBottomRight: "c_br",
		ring.CornerTopRight:    "c_tr",
		ring.CornerTopLeft:     "c_tl",
	} {
		mustAdd(t, l, &ring.Component{
			Name: name, Device: "IOCNR", Class: ring.ClassCorner,
			Pos: ring.CornerPosition(q),
		})
	}
	mustAdd(t, l, &ring.Component{
		Name: "b0", Device: "IOVDD", Class: ring.ClassPad,
		Pos: ring.SidePosition(ring.SideBottom, 0),
	})
	mustAdd(t, l, &ring.Component{
		Name: "b1", Device: "IOVSS", Class: ring.ClassPad,
		Pos: ring.SidePosition(ring.SideBottom, 1),
	})
	mustAdd(t, l, &ring.Component{
		Name: "r0", Device: "IOVDD", Class: ring.ClassPad,
		Pos: ring.SidePosition(ring.SideRight, 0),
	})
	mustAdd(t, l, &ring.Component{
		Name: "t0", Device: "IOVDD", Class: ring.ClassPad,
		Pos: ring.SidePosition(ring.SideTop, 0),
	})
	mustAdd(t, l, &ring.Component{
		Name: "l0", Device: "IOVDD", Class: ring.ClassPad,
		Pos: ring.SidePosition(ring.SideLeft, 0),
	})
	if err := place.Resolve(l); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	err := Late(l)
	if err == nil {
		t.Fatal("Late() accepted 60 um of pads in a 40 um span")
	}
	if code := padringerrors.GetCode(err); code != padringerrors.ErrCodeSideOverflow {
		t.Errorf("Late() error code = %v, want %v", code, padringerrors.ErrCodeSideOverflow)
	}
}

func TestSummary(t *testing.T) {
	l := resolvedRing(t)
	s := Summary(l)
	for _, want := range []string{"sides{", "bottom:5", "devices{", "PDIO:8", "PCORNER:4"} {
		if !strings.Contains(s, want) {
			t.Errorf("Summary() = %q, missing %q", s, want)
		}
	}
}
