package ring

import (
	"errors"
	"math"
	"testing"
)

func TestFinalizeUniformDerivesDieSize(t *testing.T) {
	cfg, err := DefaultConfig(ProcessC180)
	if err != nil {
		t.Fatalf("DefaultConfig() error = %v", err)
	}
	cfg.Counts = SideCounts{Bottom: 3, Right: 2, Top: 3, Left: 2}

	got, err := cfg.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	wantW := 2*cfg.CornerSize + 3*cfg.PadSpacing
	wantH := 2*cfg.CornerSize + 2*cfg.PadSpacing
	if got.DieWidth != wantW {
		t.Errorf("DieWidth = %v, want %v", got.DieWidth, wantW)
	}
	if got.DieHeight != wantH {
		t.Errorf("DieHeight = %v, want %v", got.DieHeight, wantH)
	}
	if got.Order != CounterClockwise {
		t.Errorf("Order = %v, want default %v", got.Order, CounterClockwise)
	}
}

func TestFinalizeUniformParity(t *testing.T) {
	cfg, _ := DefaultConfig(ProcessC180)
	cfg.Counts = SideCounts{Bottom: 3, Right: 2, Top: 4, Left: 2}

	if _, err := cfg.Finalize(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Finalize() error = %v, want ErrInvalidConfig", err)
	}
}

func TestFinalizeUniformPadWiderThanPitch(t *testing.T) {
	cfg, _ := DefaultConfig(ProcessC180)
	cfg.Counts = SideCounts{Bottom: 2, Right: 2, Top: 2, Left: 2}
	cfg.PadWidth = cfg.PadSpacing + 1

	if _, err := cfg.Finalize(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Finalize() error = %v, want ErrInvalidConfig", err)
	}
}

func TestFinalizeVariableRequiresDieSize(t *testing.T) {
	cfg, _ := DefaultConfig(ProcessC55)
	cfg.Counts = SideCounts{Bottom: 2, Right: 1, Top: 3, Left: 1}

	if _, err := cfg.Finalize(); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Finalize() without die size error = %v, want ErrInvalidConfig", err)
	}

	cfg.DieWidth = 500
	cfg.DieHeight = 400
	got, err := cfg.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if got.Order != Clockwise {
		t.Errorf("Order = %v, want default %v", got.Order, Clockwise)
	}
	if got.DieWidth != 500 || got.DieHeight != 400 {
		t.Errorf("die size = %vx%v, want declared 500x400", got.DieWidth, got.DieHeight)
	}
}

func TestFinalizeVariableAllowsAsymmetry(t *testing.T) {
	cfg, _ := DefaultConfig(ProcessC55)
	cfg.Counts = SideCounts{Bottom: 5, Right: 1, Top: 2, Left: 0}
	cfg.DieWidth = 600
	cfg.DieHeight = 300

	if _, err := cfg.Finalize(); err != nil {
		t.Errorf("Finalize() error = %v, want nil for asymmetric variable ring", err)
	}
}

func TestFinalizeUnknownProcess(t *testing.T) {
	cfg := Config{Process: "c7"}
	if _, err := cfg.Finalize(); !errors.Is(err, ErrUnknownProcess) {
		t.Errorf("Finalize() error = %v, want ErrUnknownProcess", err)
	}
}

func TestSideSpan(t *testing.T) {
	cfg, _ := DefaultConfig(ProcessC180)
	cfg.Counts = SideCounts{Bottom: 3, Right: 2, Top: 3, Left: 2}
	cfg, err := cfg.Finalize()
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	// The span between corners is exactly the pads at pitch.
	if got, want := cfg.SideSpan(SideBottom), 3*cfg.PadSpacing; math.Abs(got-want) > 1e-9 {
		t.Errorf("SideSpan(bottom) = %v, want %v", got, want)
	}
	if got, want := cfg.SideSpan(SideLeft), 2*cfg.PadSpacing; math.Abs(got-want) > 1e-9 {
		t.Errorf("SideSpan(left) = %v, want %v", got, want)
	}
}

func TestGap(t *testing.T) {
	cfg, _ := DefaultConfig(ProcessC180)
	if got, want := cfg.Gap(), cfg.PadSpacing-cfg.PadWidth; got != want {
		t.Errorf("Gap() = %v, want %v", got, want)
	}
}
