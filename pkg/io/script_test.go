package io

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

func TestWriteScript(t *testing.T) {
	a := BuildArtifact(resolvedLayout(t))

	var buf bytes.Buffer
	if err := WriteScript(a, &buf); err != nil {
		t.Fatalf("WriteScript() error = %v", err)
	}
	script := buf.String()

	lines := strings.Split(strings.TrimRight(script, "\n"), "\n")
	if want := len(a.Instances) + 4; len(lines) != want {
		t.Fatalf("script has %d lines, want %d", len(lines), want)
	}
	if want := fmt.Sprintf(";; c180 pad ring placement, %d instances", len(a.Instances)); lines[0] != want {
		t.Errorf("header = %q, want %q", lines[0], want)
	}
	if lines[2] != "cv = geGetEditCellView()" {
		t.Errorf("cellview line = %q", lines[2])
	}
	if lines[len(lines)-1] != "dbSave(cv)" {
		t.Errorf("script does not save: %q", lines[len(lines)-1])
	}

	// The walk starts at the origin corner, unrotated.
	want := `dbCreateInstByMasterName(cv "bcd180_io" "PCORNER" "layout" "corner_bl" 0:0 "R0")`
	if lines[3] != want {
		t.Errorf("first placement = %q, want %q", lines[3], want)
	}

	// Every instance appears exactly once with its library and view.
	for _, inst := range a.Instances {
		needle := `"` + inst.Name + `"`
		if strings.Count(script, needle) != 1 {
			t.Errorf("instance %s placed %d times", inst.Name, strings.Count(script, needle))
		}
	}
}

func TestWriteScriptCoordinates(t *testing.T) {
	a := Artifact{
		Process: "c55", Library: "lp55_io", View: "layout",
		Order: "clockwise", DieWidth: 400, DieHeight: 400,
		Instances: []Instance{
			{Name: "sda", Device: "IOPAD", Class: "pad",
				Position: [2]float64{132.5, 0}, Orientation: "R0", Width: 30, Height: 80},
		},
	}

	var buf bytes.Buffer
	if err := WriteScript(a, &buf); err != nil {
		t.Fatalf("WriteScript() error = %v", err)
	}
	want := `dbCreateInstByMasterName(cv "lp55_io" "IOPAD" "layout" "sda" 132.5:0 "R0")`
	if !strings.Contains(buf.String(), want) {
		t.Errorf("script missing %q in:\n%s", want, buf.String())
	}
}
