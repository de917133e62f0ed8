package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	padringerrors "github.com/chenzc24/padring/pkg/errors"
	padringio "github.com/chenzc24/padring/pkg/io"
)

// testSpec is a minimal c180 ring with one pad per side. Synthesis inserts
// a start and end cell on every side, giving 16 components in total.
const testSpec = `
[ring]
process = "c180"

[ring.counts]
bottom = 1
right = 1
top = 1
left = 1

[instance.corner_bl]
device = "PCORNER"
position = "bottom_left"

[instance.corner_br]
device = "PCORNER"
position = "bottom_right"

[instance.corner_tr]
device = "PCORNER"
position = "top_right"

[instance.corner_tl]
device = "PCORNER"
position = "top_left"

[instance.vdd]
device = "PDVDD"
position = "bottom_0"

[instance.io0]
device = "PDIO"
position = "right_0"

[instance.io1]
device = "PDIO"
position = "top_0"

[instance.gnd]
device = "PDVSS"
position = "left_0"
`

// writeSpec writes content into a temp dir and returns the file path.
func writeSpec(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ring.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write spec: %v", err)
	}
	return path
}

// runCommand executes the root command with args against a quiet CLI.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, log.InfoLevel)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.Execute()
}

func TestPlaceCommand(t *testing.T) {
	spec := writeSpec(t, testSpec)
	out := filepath.Join(t.TempDir(), "ring.layout.json")

	if err := runCommand(t, "place", spec, "-o", out, "--no-cache"); err != nil {
		t.Fatalf("place: %v", err)
	}

	a, err := padringio.ImportArtifact(out)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if a.Process != "c180" {
		t.Errorf("artifact process = %q, want c180", a.Process)
	}
	if len(a.Instances) != 16 {
		t.Errorf("artifact instances = %d, want 16", len(a.Instances))
	}
}

func TestPlaceCommandDefaultOutput(t *testing.T) {
	spec := writeSpec(t, testSpec)

	if err := runCommand(t, "place", spec, "--no-cache"); err != nil {
		t.Fatalf("place: %v", err)
	}

	want := strings.TrimSuffix(spec, ".toml") + artifactExt
	if _, err := os.Stat(want); err != nil {
		t.Errorf("default output %s missing: %v", want, err)
	}
}

func TestPlaceCommandOrderOverride(t *testing.T) {
	spec := writeSpec(t, testSpec)
	out := filepath.Join(t.TempDir(), "cw.layout.json")

	if err := runCommand(t, "place", spec, "-o", out, "--no-cache", "--order", "cw"); err != nil {
		t.Fatalf("place: %v", err)
	}

	a, err := padringio.ImportArtifact(out)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if a.Order != "clockwise" {
		t.Errorf("artifact order = %q, want clockwise", a.Order)
	}
}

func TestPlaceCommandNoFill(t *testing.T) {
	spec := writeSpec(t, testSpec)
	out := filepath.Join(t.TempDir(), "nofill.layout.json")

	if err := runCommand(t, "place", spec, "-o", out, "--no-cache", "--no-fill"); err != nil {
		t.Fatalf("place: %v", err)
	}

	a, err := padringio.ImportArtifact(out)
	if err != nil {
		t.Fatalf("read artifact: %v", err)
	}
	if len(a.Instances) != 8 {
		t.Errorf("artifact instances = %d, want 8 without synthesis", len(a.Instances))
	}
	for _, inst := range a.Instances {
		if inst.Synthesized {
			t.Errorf("instance %s marked synthesized despite --no-fill", inst.Name)
		}
	}
}

func TestPlaceCommandStructuralError(t *testing.T) {
	broken := strings.Replace(testSpec, `[instance.corner_tl]
device = "PCORNER"
position = "top_left"
`, "", 1)
	spec := writeSpec(t, broken)

	err := runCommand(t, "place", spec, "--no-cache")
	if err == nil {
		t.Fatal("place should fail on a ring with a missing corner")
	}
	if code := padringerrors.GetCode(err); code != padringerrors.ErrCodeCornerCount {
		t.Errorf("error code = %q, want %q", code, padringerrors.ErrCodeCornerCount)
	}
}

func TestPlaceCommandMissingFile(t *testing.T) {
	err := runCommand(t, "place", filepath.Join(t.TempDir(), "nope.toml"), "--no-cache")
	if err == nil {
		t.Fatal("place should fail on a missing spec file")
	}
}
