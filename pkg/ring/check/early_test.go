package check

import (
	"strings"
	"testing"

	padringerrors "github.com/chenzc24/padring/pkg/errors"
	"github.com/chenzc24/padring/pkg/ring"
)

func uniformConfig(t *testing.T, perSide int) ring.Config {
	t.Helper()
	cfg, err := ring.DefaultConfig(ring.ProcessC180)
	if err != nil {
		t.Fatalf("DefaultConfig() error = %v", err)
	}
	cfg.Counts = ring.SideCounts{Bottom: perSide, Right: perSide, Top: perSide, Left: perSide}
	cfg, err = cfg.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return cfg
}

func variableConfig(t *testing.T, die float64, counts ring.SideCounts) ring.Config {
	t.Helper()
	cfg, err := ring.DefaultConfig(ring.ProcessC55)
	if err != nil {
		t.Fatalf("DefaultConfig() error = %v", err)
	}
	cfg.DieWidth = die
	cfg.DieHeight = die
	cfg.Counts = counts
	cfg, err = cfg.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return cfg
}

// testRing assembles four corners and pad counts per side, pads named
// <side[0]><logical>.
func testRing(t *testing.T, cfg ring.Config, cornerDevice, padDevice string, counts ring.SideCounts) *ring.Layout {
	t.Helper()
	l := ring.NewLayout(cfg)
	corners := map[ring.Corner]string{
		ring.CornerBottomLeft:  "c_bl",
		ring.CornerBottomRight: "c_br",
		ring.CornerTopRight:    "c_tr",
		ring.CornerTopLeft:     "c_tl",
	}
	for q, name := range corners {
		mustAdd(t, l, &ring.Component{
			Name: name, Device: cornerDevice, Class: ring.ClassCorner,
			Pos: ring.CornerPosition(q),
		})
	}
	for _, s := range ring.Sides() {
		for i := 0; i < counts.Count(s); i++ {
			mustAdd(t, l, &ring.Component{
				Name: string(s[0]) + string(rune('0'+i)), Device: padDevice, Class: ring.ClassPad,
				Pos: ring.SidePosition(s, i),
			})
		}
	}
	return l
}

func mustAdd(t *testing.T, l *ring.Layout, c *ring.Component) {
	t.Helper()
	if err := l.Add(c); err != nil {
		t.Fatalf("Add(%s) error = %v", c.Name, err)
	}
}

func TestEarlyValid(t *testing.T) {
	cfg := uniformConfig(t, 2)
	l := testRing(t, cfg, "PCORNER", "PDIO", cfg.Counts)

	if err := Early(l); err != nil {
		t.Errorf("Early() error = %v, want nil", err)
	}
}

func TestEarlyClassPositionMismatch(t *testing.T) {
	cfg := uniformConfig(t, 2)
	l := testRing(t, cfg, "PCORNER", "PDIO", cfg.Counts)
	mustAdd(t, l, &ring.Component{
		Name: "p_bad", Device: "PDIO", Class: ring.ClassPad,
		Pos: ring.CornerPosition(ring.CornerBottomLeft),
	})

	err := Early(l)
	if err == nil {
		t.Fatal("Early() accepted a pad on a corner slot")
	}
	if code := padringerrors.GetCode(err); code != padringerrors.ErrCodeInvalidPosition {
		t.Errorf("Early() error code = %v, want %v", code, padringerrors.ErrCodeInvalidPosition)
	}
	for _, want := range []string{"p_bad", "claimed by"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Early() error %q does not mention %q", err, want)
		}
	}
}

func TestEarlyUnsetPosition(t *testing.T) {
	cfg := uniformConfig(t, 2)
	l := testRing(t, cfg, "PCORNER", "PDIO", cfg.Counts)
	mustAdd(t, l, &ring.Component{Name: "floating", Device: "PDIO", Class: ring.ClassPad})

	err := Early(l)
	if err == nil {
		t.Fatal("Early() accepted a component with no position")
	}
	if !strings.Contains(err.Error(), "floating") {
		t.Errorf("Early() error %q does not name the floating component", err)
	}
}

func TestEarlyMissingCorner(t *testing.T) {
	cfg := uniformConfig(t, 2)
	l := ring.NewLayout(cfg)
	for q, name := range map[ring.Corner]string{
		ring.CornerBottomLeft:  "c_bl",
		ring.CornerBottomRight: "c_br",
		ring.CornerTopRight:    "c_tr",
	} {
		mustAdd(t, l, &ring.Component{
			Name: name, Device: "PCORNER", Class: ring.ClassCorner,
			Pos: ring.CornerPosition(q),
		})
	}
	for _, s := range ring.Sides() {
		for i := 0; i < 2; i++ {
			mustAdd(t, l, &ring.Component{
				Name: string(s[0]) + string(rune('0'+i)), Device: "PDIO", Class: ring.ClassPad,
				Pos: ring.SidePosition(s, i),
			})
		}
	}

	err := Early(l)
	if err == nil {
		t.Fatal("Early() accepted a three-corner ring")
	}
	if code := padringerrors.GetCode(err); code != padringerrors.ErrCodeCornerCount {
		t.Errorf("Early() error code = %v, want %v", code, padringerrors.ErrCodeCornerCount)
	}
	if !strings.Contains(err.Error(), "no corner at top_left") {
		t.Errorf("Early() error %q does not name the missing quadrant", err)
	}
}

func TestEarlySlotConflict(t *testing.T) {
	cfg := uniformConfig(t, 2)
	l := testRing(t, cfg, "PCORNER", "PDIO", cfg.Counts)
	mustAdd(t, l, &ring.Component{
		Name: "b_dup", Device: "PDIO", Class: ring.ClassPad,
		Pos: ring.SidePosition(ring.SideBottom, 1),
	})

	err := Early(l)
	if err == nil {
		t.Fatal("Early() accepted two pads in slot bottom_1")
	}
	if code := padringerrors.GetCode(err); code != padringerrors.ErrCodePositionConflict {
		t.Errorf("Early() error code = %v, want %v", code, padringerrors.ErrCodePositionConflict)
	}
	if !strings.Contains(err.Error(), "slot bottom_1 claimed by both") {
		t.Errorf("Early() error %q does not report the slot conflict", err)
	}
}

func TestEarlySlotGap(t *testing.T) {
	cfg := variableConfig(t, 300, ring.SideCounts{Bottom: 2, Right: 1, Top: 1, Left: 1})
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
	// Slots 0 and 5 leave a gap on a two-component side.
	mustAdd(t, l, &ring.Component{
		Name: "b0", Device: "IOVDD", Class: ring.ClassPad,
		Pos: ring.SidePosition(ring.SideBottom, 0),
	})
	mustAdd(t, l, &ring.Component{
		Name: "b5", Device: "IOVDD", Class: ring.ClassPad,
		Pos: ring.SidePosition(ring.SideBottom, 5),
	})

	err := Early(l)
	if err == nil {
		t.Fatal("Early() accepted a side with a slot gap")
	}
	if code := padringerrors.GetCode(err); code != padringerrors.ErrCodePositionConflict {
		t.Errorf("Early() error code = %v, want %v", code, padringerrors.ErrCodePositionConflict)
	}
}

func TestEarlyUniformCountMismatch(t *testing.T) {
	cfg := uniformConfig(t, 2)
	counts := cfg.Counts
	counts.Bottom = 1 // declared 2, placed 1
	l := testRing(t, cfg, "PCORNER", "PDIO", counts)

	err := Early(l)
	if err == nil {
		t.Fatal("Early() accepted 1 pad on a side declaring 2")
	}
	if code := padringerrors.GetCode(err); code != padringerrors.ErrCodeSideCountMismatch {
		t.Errorf("Early() error code = %v, want %v", code, padringerrors.ErrCodeSideCountMismatch)
	}
	if !strings.Contains(err.Error(), "side bottom carries 1 pads but the config declares 2") {
		t.Errorf("Early() error %q does not report the count mismatch", err)
	}
}

func TestEarlyInnerReferences(t *testing.T) {
	tests := []struct {
		name    string
		pos     ring.Position
		wantMsg string
	}{
		{
			name:    "self reference",
			pos:     ring.InnerPosition(ring.SideBottom, 1, 1),
			wantMsg: "references pad bottom_1 twice",
		},
		{
			name:    "out of range",
			pos:     ring.InnerPosition(ring.SideBottom, 0, 5),
			wantMsg: "references pad 5 on side bottom with only 2 pads",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := uniformConfig(t, 2)
			l := testRing(t, cfg, "PCORNER", "PDIO", cfg.Counts)
			mustAdd(t, l, &ring.Component{
				Name: "in0", Device: "PDIN", Class: ring.ClassInnerPad, Pos: tt.pos,
			})

			err := Early(l)
			if err == nil {
				t.Fatal("Early() accepted a broken inner reference")
			}
			if code := padringerrors.GetCode(err); code != padringerrors.ErrCodeInvalidReference {
				t.Errorf("Early() error code = %v, want %v", code, padringerrors.ErrCodeInvalidReference)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("Early() error %q does not contain %q", err, tt.wantMsg)
			}
		})
	}
}

func TestEarlyInnerReferenceEmptySide(t *testing.T) {
	cfg := variableConfig(t, 300, ring.SideCounts{Bottom: 1, Right: 0, Top: 1, Left: 1})
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
		Name: "in0", Device: "IOPAD2", Class: ring.ClassInnerPad,
		Pos: ring.InnerPosition(ring.SideRight, 0, 1),
	})

	err := Early(l)
	if err == nil {
		t.Fatal("Early() accepted an inner pad on a padless side")
	}
	if !strings.Contains(err.Error(), "has no pads") {
		t.Errorf("Early() error %q does not report the empty side", err)
	}
}
