package render

import (
	"strings"
	"testing"

	padringio "github.com/chenzc24/padring/pkg/io"
)

// testArtifact is a small resolved c180 ring with one cell of each kind.
func testArtifact() padringio.Artifact {
	digital := &padringio.DomainInfo{Key: "DIGITAL", Family: "DIGITAL", Tier: "device"}
	analog := &padringio.DomainInfo{Key: "ANALOG", Family: "ANALOG", Tier: "device"}

	return padringio.Artifact{
		Process:   "c180",
		Library:   "bcd180_io",
		View:      "layout",
		Order:     "counterclockwise",
		DieWidth:  370,
		DieHeight: 370,
		Instances: []padringio.Instance{
			{Name: "corner_bl", Device: "PCORNER", Class: "corner",
				Position: [2]float64{0, 0}, Orientation: "R0", Width: 140, Height: 140},
			{Name: "io0", Device: "PDIO", Class: "pad", Slot: "bottom_0",
				Position: [2]float64{155, 0}, Orientation: "R0", Width: 60, Height: 120, Domain: digital},
			{Name: "fill0", Device: "PFILL", Class: "filler",
				Position: [2]float64{140, 0}, Orientation: "R0", Width: 15, Height: 120, Synthesized: true},
			{Name: "sense", Device: "PAIO", Class: "pad", Slot: "left_0",
				Position: [2]float64{0, 155}, Orientation: "R90", Width: 60, Height: 120, Domain: analog},
			{Name: "probe", Device: "PDIN", Class: "inner_pad", Slot: "bottom_0_1",
				Position: [2]float64{185, 0}, Orientation: "R0", Width: 60, Height: 120, Domain: digital},
		},
	}
}

func TestInstanceRect(t *testing.T) {
	tests := []struct {
		name       string
		inst       padringio.Instance
		x, y, w, h float64
	}{
		{
			name: "bottom pad extends up",
			inst: padringio.Instance{Class: "pad", Position: [2]float64{155, 0},
				Orientation: "R0", Width: 60, Height: 120},
			x: 155, y: 0, w: 60, h: 120,
		},
		{
			name: "top pad hangs below the edge",
			inst: padringio.Instance{Class: "pad", Position: [2]float64{155, 370},
				Orientation: "R180", Width: 60, Height: 120},
			x: 155, y: 250, w: 60, h: 120,
		},
		{
			name: "left pad turns sideways",
			inst: padringio.Instance{Class: "pad", Position: [2]float64{0, 155},
				Orientation: "R90", Width: 60, Height: 120},
			x: 0, y: 155, w: 120, h: 60,
		},
		{
			name: "right pad extends left",
			inst: padringio.Instance{Class: "pad", Position: [2]float64{370, 155},
				Orientation: "R270", Width: 60, Height: 120},
			x: 250, y: 155, w: 120, h: 60,
		},
		{
			name: "origin corner",
			inst: padringio.Instance{Class: "corner", Position: [2]float64{0, 0},
				Orientation: "R0", Width: 140, Height: 140},
			x: 0, y: 0, w: 140, h: 140,
		},
		{
			name: "bottom right corner pulls inward",
			inst: padringio.Instance{Class: "corner", Position: [2]float64{370, 0},
				Orientation: "R90", Width: 140, Height: 140},
			x: 230, y: 0, w: 140, h: 140,
		},
		{
			name: "top right corner pulls inward on both axes",
			inst: padringio.Instance{Class: "corner", Position: [2]float64{370, 370},
				Orientation: "R180", Width: 140, Height: 140},
			x: 230, y: 230, w: 140, h: 140,
		},
		{
			name: "top left corner",
			inst: padringio.Instance{Class: "corner", Position: [2]float64{0, 370},
				Orientation: "R270", Width: 140, Height: 140},
			x: 0, y: 230, w: 140, h: 140,
		},
		{
			name: "inner pad follows its side",
			inst: padringio.Instance{Class: "inner_pad", Position: [2]float64{185, 0},
				Orientation: "R0", Width: 60, Height: 120},
			x: 185, y: 0, w: 60, h: 120,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := instanceRect(tt.inst)
			if x != tt.x || y != tt.y || w != tt.w || h != tt.h {
				t.Errorf("instanceRect() = (%g, %g, %g, %g), want (%g, %g, %g, %g)",
					x, y, w, h, tt.x, tt.y, tt.w, tt.h)
			}
		})
	}
}

func TestRenderSVG(t *testing.T) {
	svg := string(RenderSVG(testArtifact()))

	if !strings.HasPrefix(svg, `<svg xmlns="http://www.w3.org/2000/svg"`) {
		t.Fatalf("output does not start with an svg element:\n%.120s", svg)
	}
	if !strings.HasSuffix(svg, "</svg>\n") {
		t.Error("output is not closed")
	}
	if !strings.Contains(svg, `viewBox="0 0 440.0 466.0"`) {
		t.Errorf("unexpected canvas size in %.200s", svg)
	}
	if !strings.Contains(svg, "c180 ring · 370 x 370 um") {
		t.Error("title line missing")
	}
	if !strings.Contains(svg, "bcd180_io/layout · counterclockwise · 5 instances") {
		t.Error("subtitle line missing")
	}

	for _, id := range []string{"inst-corner_bl", "inst-io0", "inst-fill0", "inst-sense", "inst-probe"} {
		if !strings.Contains(svg, `id="`+id+`"`) {
			t.Errorf("instance %s not drawn", id)
		}
	}
	if !strings.Contains(svg, `fill="`+colorDigital+`"`) {
		t.Error("digital pad color missing")
	}
	if !strings.Contains(svg, `fill="`+colorAnalog+`"`) {
		t.Error("analog pad color missing")
	}
	if !strings.Contains(svg, `stroke-dasharray="3 2"`) {
		t.Error("synthesized filler is not dashed")
	}
	if !strings.Contains(svg, "<title>io0 · PDIO · bottom_0 · DIGITAL</title>") {
		t.Error("instance tooltip missing")
	}
	if !strings.Contains(svg, "<title>fill0 · PFILL · synthesized</title>") {
		t.Error("synthesized tooltip missing")
	}
}

func TestRenderSVGScale(t *testing.T) {
	svg := string(RenderSVG(testArtifact(), WithScale(2)))
	if !strings.Contains(svg, `viewBox="0 0 796.0`) {
		t.Errorf("scale 2 canvas width wrong:\n%.200s", svg)
	}
}

func TestRenderSVGLegend(t *testing.T) {
	svg := string(RenderSVG(testArtifact(), WithLegend()))

	for _, label := range []string{"Digital pad", "Analog pad", "Corner", "Filler", "Inner pad", "Synthesized"} {
		if !strings.Contains(svg, ">"+label+"<") {
			t.Errorf("legend entry %q missing", label)
		}
	}
	// No blank cells in the artifact, so no blank swatch.
	if strings.Contains(svg, ">Blank<") {
		t.Error("legend lists a class the artifact does not use")
	}
}

func TestRenderSVGWithoutLabels(t *testing.T) {
	svg := string(RenderSVG(testArtifact(), WithoutLabels()))
	if strings.Contains(svg, ">io0</text>") {
		t.Error("labels rendered despite WithoutLabels")
	}
	// Title and subtitle stay.
	if !strings.Contains(svg, "c180 ring") {
		t.Error("title suppressed")
	}
}

func TestFillColor(t *testing.T) {
	tests := []struct {
		name string
		inst padringio.Instance
		want string
	}{
		{"corner", padringio.Instance{Class: "corner"}, colorCorner},
		{"filler", padringio.Instance{Class: "filler"}, colorFiller},
		{"blank", padringio.Instance{Class: "blank"}, colorBlank},
		{"inner", padringio.Instance{Class: "inner_pad"}, colorInner},
		{"digital pad", padringio.Instance{Class: "pad",
			Domain: &padringio.DomainInfo{Family: "DIGITAL"}}, colorDigital},
		{"analog pad", padringio.Instance{Class: "pad",
			Domain: &padringio.DomainInfo{Family: "ANALOG"}}, colorAnalog},
		{"undomained pad", padringio.Instance{Class: "pad"}, colorPad},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fillColor(tt.inst); got != tt.want {
				t.Errorf("fillColor() = %s, want %s", got, tt.want)
			}
		})
	}
}
