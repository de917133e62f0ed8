package ring

import "testing"

func TestClassifyCatalog(t *testing.T) {
	tests := []struct {
		device  string
		process Process
		want    Class
	}{
		{"PDIO", ProcessC180, ClassPad},
		{"PAVDD", ProcessC180, ClassPad},
		{"PCORNER", ProcessC180, ClassCorner},
		{"PCORNERA", ProcessC180, ClassCorner},
		{"PFILL", ProcessC180, ClassFiller},
		{"PCUT", ProcessC180, ClassBlank},
		{"PBLANK", ProcessC180, ClassBlank},
		{"PDIN", ProcessC180, ClassInnerPad},

		{"IOPAD", ProcessC55, ClassPad},
		{"ANAVSS", ProcessC55, ClassPad},
		{"IOCNR", ProcessC55, ClassCorner},
		{"ANACNR", ProcessC55, ClassCorner},
		{"IOFILL5", ProcessC55, ClassFiller},
		{"ANAFILL20", ProcessC55, ClassFiller},
		{"IOBLANK", ProcessC55, ClassBlank},
		{"IOPAD2", ProcessC55, ClassInnerPad},
	}

	for _, tt := range tests {
		t.Run(tt.device, func(t *testing.T) {
			if got := Classify(tt.device, tt.process); got != tt.want {
				t.Errorf("Classify(%q, %s) = %v, want %v", tt.device, tt.process, got, tt.want)
			}
		})
	}
}

func TestClassifyFallback(t *testing.T) {
	tests := []struct {
		device string
		want   Class
	}{
		{"XFILL42", ClassFiller},
		{"XBLANK", ClassBlank},
		{"PWRCUT", ClassBlank},
		{"SEPCELL", ClassBlank},
		{"MYCNR", ClassCorner},
		{"BIGCORNER", ClassCorner},
		{"CUSTOM_LVDS", ClassPad},
	}

	for _, tt := range tests {
		t.Run(tt.device, func(t *testing.T) {
			if got := Classify(tt.device, ProcessC180); got != tt.want {
				t.Errorf("Classify(%q) = %v, want %v", tt.device, got, tt.want)
			}
		})
	}
}

func TestDomainFamily(t *testing.T) {
	tests := []struct {
		device  string
		process Process
		want    Family
	}{
		{"PDIO", ProcessC180, FamilyDigital},
		{"PAIO", ProcessC180, FamilyAnalog},
		{"PCORNERA", ProcessC180, FamilyAnalog},
		{"PCUT", ProcessC180, FamilyUnknown},
		{"IOVDD", ProcessC55, FamilyDigital},
		{"ANAFILL5", ProcessC55, FamilyAnalog},
		{"NOPE", ProcessC55, FamilyUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.device, func(t *testing.T) {
			if got := DomainFamily(tt.device, tt.process); got != tt.want {
				t.Errorf("DomainFamily(%q, %s) = %v, want %v", tt.device, tt.process, got, tt.want)
			}
		})
	}
}

func TestFillerSeriesDescending(t *testing.T) {
	series := FillerSeries(ProcessC55, FamilyDigital)
	if len(series) != 5 {
		t.Fatalf("len(series) = %d, want 5", len(series))
	}
	wantWidths := []float64{20, 10, 5, 2, 1}
	for i, unit := range series {
		if unit.Width != wantWidths[i] {
			t.Errorf("series[%d].Width = %v, want %v", i, unit.Width, wantWidths[i])
		}
	}
	if series[0].Device != "IOFILL20" {
		t.Errorf("series[0].Device = %q, want IOFILL20", series[0].Device)
	}
}

func TestFillerDevice(t *testing.T) {
	tests := []struct {
		process Process
		family  Family
		want    string
	}{
		{ProcessC180, FamilyDigital, "PFILL"},
		{ProcessC180, FamilyAnalog, "PFILLA"},
		{ProcessC180, FamilyUnknown, "PFILL"},
		{ProcessC55, FamilyDigital, "IOFILL20"},
		{ProcessC55, FamilyAnalog, "ANAFILL20"},
	}

	for _, tt := range tests {
		if got := FillerDevice(tt.process, tt.family); got != tt.want {
			t.Errorf("FillerDevice(%s, %v) = %q, want %q", tt.process, tt.family, got, tt.want)
		}
	}
}

func TestIsolationDevice(t *testing.T) {
	if got := IsolationDevice(ProcessC180); got != "PCUT" {
		t.Errorf("IsolationDevice(c180) = %q, want PCUT", got)
	}
	if got := IsolationDevice(ProcessC55); got != "IOBLANK" {
		t.Errorf("IsolationDevice(c55) = %q, want IOBLANK", got)
	}
}

func TestCatalogSorted(t *testing.T) {
	entries := Catalog(ProcessC55)
	if len(entries) != len(c55Devices) {
		t.Fatalf("len(entries) = %d, want %d", len(entries), len(c55Devices))
	}
	for i := 1; i < len(entries); i++ {
		prev, cur := entries[i-1], entries[i]
		if prev.Class > cur.Class {
			t.Fatalf("catalog not sorted by class at %d: %v after %v", i, cur.Class, prev.Class)
		}
		if prev.Class == cur.Class && prev.Device >= cur.Device {
			t.Fatalf("catalog not sorted by device at %d: %q after %q", i, cur.Device, prev.Device)
		}
	}
}
