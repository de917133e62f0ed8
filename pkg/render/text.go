package render

import (
	"bytes"
	"encoding/xml"
)

const (
	fontHeightRatio = 0.6
	fontWidthRatio  = 0.85
	fontCharWidth   = 0.55
	fontSizeMin     = 6.0
	fontSizeMax     = 13.0
)

// fontSizeFor picks the largest font size that keeps textLen characters
// inside the given box, clamped to the readable range.
func fontSizeFor(availWidth, availHeight float64, textLen int) float64 {
	n := max(1, textLen)
	byHeight := availHeight * fontHeightRatio
	byWidth := (availWidth * fontWidthRatio) / (float64(n) * fontCharWidth)
	return max(fontSizeMin, min(fontSizeMax, min(byHeight, byWidth)))
}

// shouldRotate reports whether turning the label sideways yields a larger
// font in a w by h box.
func shouldRotate(w, h float64, textLen int) bool {
	return fontSizeFor(h, w, textLen) > fontSizeFor(w, h, textLen)
}

// truncateLabel shortens a label to what fits in avail pixels at the given
// font size, marking the cut with "..".
func truncateLabel(label string, avail, fontSize float64) string {
	maxChars := int(avail * fontWidthRatio / (fontSize * fontCharWidth))
	if maxChars < 3 {
		maxChars = 3
	}
	if len(label) <= maxChars {
		return label
	}
	return label[:maxChars-2] + ".."
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
