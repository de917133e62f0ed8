// Package render draws resolved ring artifacts as SVG diagrams.
//
// The renderer consumes the serialized artifact alone: coordinates,
// footprints, classes and domains all come from the instance records, so
// the drawing can never disagree with what the CAD script places. Cells are
// colored by class and voltage domain family, synthesized boundary cells
// are dashed, and every rectangle carries a hover tooltip with the
// instance details.
package render

import (
	"bytes"
	"fmt"

	padringio "github.com/chenzc24/padring/pkg/io"
	"github.com/chenzc24/padring/pkg/ring"
)

const (
	canvasMargin    = 28.0
	titleStrip      = 40.0
	minCanvasWidth  = 440.0
	legendRowHeight = 20.0
	legendPadTop    = 14.0
	legendColumns   = 4
)

// Diagram palette. Pads split by domain family, support cells by class.
const (
	colorCanvas  = "#ffffff"
	colorDie     = "#fdfdfb"
	colorDieEdge = "#2f3541"
	colorDigital = "#4c78a8"
	colorAnalog  = "#e49444"
	colorPad     = "#72b7b2"
	colorCorner  = "#aab2bf"
	colorFiller  = "#dde1e7"
	colorBlank   = "#e7cb94"
	colorInner   = "#9467bd"
	colorStroke  = "#39404e"
	colorText    = "#1f242e"
	colorSubtext = "#7a7f8a"
)

// Option configures the SVG renderer.
type Option func(*svgRenderer)

type svgRenderer struct {
	scale  float64
	legend bool
	labels bool
}

// WithScale sets the pixel size of one micron. The default is 1.
func WithScale(pxPerMicron float64) Option {
	return func(r *svgRenderer) {
		if pxPerMicron > 0 {
			r.scale = pxPerMicron
		}
	}
}

// WithLegend appends a class color legend below the die.
func WithLegend() Option { return func(r *svgRenderer) { r.legend = true } }

// WithoutLabels suppresses the instance name labels.
func WithoutLabels() Option { return func(r *svgRenderer) { r.labels = false } }

// RenderSVG draws the artifact as a standalone SVG document.
func RenderSVG(a padringio.Artifact, opts ...Option) []byte {
	r := newSVGRenderer(opts...)
	c := newCanvas(a, r)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		c.width, c.height, c.width, c.height)
	fmt.Fprintf(&buf, `  <rect width="%.1f" height="%.1f" fill="%s"/>`+"\n", c.width, c.height, colorCanvas)

	renderTitle(&buf, a)
	renderDie(&buf, c)

	// Inner pads overlap the outer row, so they draw after it.
	for _, inst := range a.Instances {
		if inst.Class != "inner_pad" {
			renderInstance(&buf, c, inst)
		}
	}
	for _, inst := range a.Instances {
		if inst.Class == "inner_pad" {
			renderInstance(&buf, c, inst)
		}
	}

	if r.labels {
		for _, inst := range a.Instances {
			renderLabel(&buf, c, inst)
		}
	}
	if r.legend {
		renderLegend(&buf, a, c)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...Option) svgRenderer {
	r := svgRenderer{scale: 1, labels: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// canvas maps die coordinates (microns, y up) onto the SVG pixel grid
// (y down), leaving room for the title strip and the optional legend.
type canvas struct {
	width, height float64
	ox, oy        float64
	scale         float64
	dieW, dieH    float64
	legendTop     float64
}

func newCanvas(a padringio.Artifact, r svgRenderer) canvas {
	dw, dh := a.DieWidth*r.scale, a.DieHeight*r.scale

	width := max(dw+2*canvasMargin, minCanvasWidth)
	height := titleStrip + dh + 2*canvasMargin

	legendTop := 0.0
	if r.legend {
		rows := (len(legendEntries(a)) + legendColumns - 1) / legendColumns
		legendTop = height
		height += legendPadTop + float64(rows)*legendRowHeight
	}

	return canvas{
		width:     width,
		height:    height,
		ox:        (width - dw) / 2,
		oy:        titleStrip + canvasMargin,
		scale:     r.scale,
		dieW:      a.DieWidth,
		dieH:      a.DieHeight,
		legendTop: legendTop,
	}
}

// rect converts a die-coordinate rectangle (lower-left anchored) into SVG
// pixel coordinates (upper-left anchored).
func (c canvas) rect(x, y, w, h float64) (px, py, pw, ph float64) {
	return c.ox + x*c.scale, c.oy + (c.dieH-(y+h))*c.scale, w * c.scale, h * c.scale
}

// instanceRect returns the die-coordinate rectangle an instance occupies.
// The anchor of a side cell sits on the die boundary at the low end of its
// span and the cell extends inward, with the footprint turned on its side
// for quarter rotations. Corner anchors are the die corners themselves,
// with the square extending inward on both axes.
func instanceRect(inst padringio.Instance) (x, y, w, h float64) {
	w, h = inst.Width, inst.Height
	switch ring.Orientation(inst.Orientation) {
	case ring.R90, ring.R270:
		w, h = h, w
	}
	x, y = inst.Position[0], inst.Position[1]

	if inst.Class == "corner" {
		if x > 0 {
			x -= w
		}
		if y > 0 {
			y -= h
		}
		return x, y, w, h
	}

	switch ring.Orientation(inst.Orientation) {
	case ring.R180:
		y -= h
	case ring.R270:
		x -= w
	}
	return x, y, w, h
}

func renderTitle(buf *bytes.Buffer, a padringio.Artifact) {
	fmt.Fprintf(buf, `  <text x="%.1f" y="22" font-family="sans-serif" font-size="15" font-weight="bold" fill="%s">%s</text>`+"\n",
		canvasMargin, colorText, escapeXML(fmt.Sprintf("%s ring · %g x %g um", a.Process, a.DieWidth, a.DieHeight)))
	fmt.Fprintf(buf, `  <text x="%.1f" y="36" font-family="sans-serif" font-size="11" fill="%s">%s</text>`+"\n",
		canvasMargin, colorSubtext, escapeXML(fmt.Sprintf("%s/%s · %s · %d instances", a.Library, a.View, a.Order, len(a.Instances))))
}

func renderDie(buf *bytes.Buffer, c canvas) {
	px, py, pw, ph := c.rect(0, 0, c.dieW, c.dieH)
	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		px, py, pw, ph, colorDie, colorDieEdge)
}

func renderInstance(buf *bytes.Buffer, c canvas, inst padringio.Instance) {
	x, y, w, h := instanceRect(inst)
	px, py, pw, ph := c.rect(x, y, w, h)

	extra := ""
	switch {
	case inst.Synthesized:
		extra = ` stroke-dasharray="3 2" fill-opacity="0.55"`
	case inst.Class == "inner_pad":
		extra = ` fill-opacity="0.8"`
	}

	fmt.Fprintf(buf, `  <rect id="inst-%s" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="1"%s>`,
		escapeXML(inst.Name), px, py, pw, ph, fillColor(inst), colorStroke, extra)
	fmt.Fprintf(buf, `<title>%s</title>`, escapeXML(instanceTip(inst)))
	buf.WriteString("</rect>\n")
}

// fillColor picks the cell color: support classes by class, pads by their
// resolved domain family.
func fillColor(inst padringio.Instance) string {
	switch inst.Class {
	case "corner":
		return colorCorner
	case "filler":
		return colorFiller
	case "blank":
		return colorBlank
	case "inner_pad":
		return colorInner
	}
	if inst.Domain != nil {
		switch inst.Domain.Family {
		case "DIGITAL":
			return colorDigital
		case "ANALOG":
			return colorAnalog
		}
	}
	return colorPad
}

func instanceTip(inst padringio.Instance) string {
	tip := fmt.Sprintf("%s · %s", inst.Name, inst.Device)
	if inst.Slot != "" {
		tip += " · " + inst.Slot
	}
	if inst.Domain != nil {
		tip += " · " + inst.Domain.Key
	}
	if inst.Synthesized {
		tip += " · synthesized"
	}
	return tip
}

// renderLabel writes the instance name centered in its rectangle, turned
// sideways when the cell is taller than wide. Boundary cells are too narrow
// to label.
func renderLabel(buf *bytes.Buffer, c canvas, inst padringio.Instance) {
	if inst.Class == "filler" || inst.Class == "blank" {
		return
	}

	x, y, w, h := instanceRect(inst)
	px, py, pw, ph := c.rect(x, y, w, h)
	if min(pw, ph) < 9 {
		return
	}
	cx, cy := px+pw/2, py+ph/2

	rotated := shouldRotate(pw, ph, len(inst.Name))
	size := fontSizeFor(pw, ph, len(inst.Name))
	avail := pw
	if rotated {
		size = fontSizeFor(ph, pw, len(inst.Name))
		avail = ph
	}
	label := truncateLabel(inst.Name, avail, size)

	transform := ""
	if rotated {
		transform = fmt.Sprintf(` transform="rotate(-90 %.1f %.1f)"`, cx, cy)
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f"%s font-family="sans-serif" font-size="%.1f" fill="%s" text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
		cx, cy, transform, size, colorText, escapeXML(label))
}

type legendEntry struct {
	label  string
	color  string
	dashed bool
}

// legendEntries lists the swatches the artifact actually needs.
func legendEntries(a padringio.Artifact) []legendEntry {
	present := make(map[string]bool)
	for _, inst := range a.Instances {
		present[fillColor(inst)] = true
		if inst.Synthesized {
			present["synthesized"] = true
		}
	}

	all := []legendEntry{
		{"Digital pad", colorDigital, false},
		{"Analog pad", colorAnalog, false},
		{"Pad", colorPad, false},
		{"Corner", colorCorner, false},
		{"Filler", colorFiller, false},
		{"Blank", colorBlank, false},
		{"Inner pad", colorInner, false},
	}
	entries := make([]legendEntry, 0, len(all)+1)
	for _, e := range all {
		if present[e.color] {
			entries = append(entries, e)
		}
	}
	if present["synthesized"] {
		entries = append(entries, legendEntry{"Synthesized", colorFiller, true})
	}
	return entries
}

func renderLegend(buf *bytes.Buffer, a padringio.Artifact, c canvas) {
	entries := legendEntries(a)
	colWidth := (c.width - 2*canvasMargin) / legendColumns

	for i, e := range entries {
		x := canvasMargin + float64(i%legendColumns)*colWidth
		y := c.legendTop + legendPadTop + float64(i/legendColumns)*legendRowHeight

		dash := ""
		if e.dashed {
			dash = ` stroke-dasharray="3 2"`
		}
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="12" height="12" fill="%s" stroke="%s" stroke-width="1"%s/>`+"\n",
			x, y, e.color, colorStroke, dash)
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="11" fill="%s">%s</text>`+"\n",
			x+18, y+10, colorText, escapeXML(e.label))
	}
}
