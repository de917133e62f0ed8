package render

import "testing"

func TestFontSizeFor(t *testing.T) {
	if got := fontSizeFor(1000, 1000, 4); got != fontSizeMax {
		t.Errorf("huge box font = %g, want clamp to %g", got, fontSizeMax)
	}
	if got := fontSizeFor(4, 4, 30); got != fontSizeMin {
		t.Errorf("tiny box font = %g, want clamp to %g", got, fontSizeMin)
	}
	wide := fontSizeFor(200, 30, 10)
	narrow := fontSizeFor(40, 30, 10)
	if narrow >= wide {
		t.Errorf("narrower box should shrink the font: %g >= %g", narrow, wide)
	}
}

func TestShouldRotate(t *testing.T) {
	// A tall pad fits a long name better sideways.
	if !shouldRotate(60, 120, 12) {
		t.Error("tall box should rotate a long label")
	}
	if shouldRotate(120, 60, 12) {
		t.Error("wide box should keep the label horizontal")
	}
}

func TestTruncateLabel(t *testing.T) {
	if got := truncateLabel("io0", 200, 12); got != "io0" {
		t.Errorf("short label changed: %q", got)
	}
	got := truncateLabel("a_very_long_instance_name", 40, 12)
	if len(got) >= len("a_very_long_instance_name") {
		t.Errorf("long label not truncated: %q", got)
	}
	if got[len(got)-2:] != ".." {
		t.Errorf("truncation marker missing: %q", got)
	}
}

func TestEscapeXML(t *testing.T) {
	if got := escapeXML(`a<b>&"c"`); got != "a&lt;b&gt;&amp;&#34;c&#34;" {
		t.Errorf("escapeXML() = %q", got)
	}
}
