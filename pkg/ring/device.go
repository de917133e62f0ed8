package ring

import (
	"sort"
	"strings"
)

// Family is the voltage domain family a device belongs to.
type Family int

const (
	// FamilyUnknown marks devices with no domain affiliation.
	FamilyUnknown Family = iota
	// FamilyDigital covers IO, core supply and ground devices on the
	// digital rails.
	FamilyDigital
	// FamilyAnalog covers devices on the analog rails.
	FamilyAnalog
)

// String returns the family name as used in voltage domain keys.
func (f Family) String() string {
	switch f {
	case FamilyDigital:
		return "DIGITAL"
	case FamilyAnalog:
		return "ANALOG"
	}
	return "UNKNOWN"
}

// deviceInfo describes one catalog entry: its placement class, its domain
// family and its default footprint width (0 defers to the config).
type deviceInfo struct {
	class  Class
	family Family
	width  float64
}

// c180Devices is the 180nm library catalog.
var c180Devices = map[string]deviceInfo{
	// Digital pads
	"PDIO":  {ClassPad, FamilyDigital, 60},
	"PDVDD": {ClassPad, FamilyDigital, 60},
	"PDVSS": {ClassPad, FamilyDigital, 60},
	// Analog pads
	"PAIO":  {ClassPad, FamilyAnalog, 60},
	"PAVDD": {ClassPad, FamilyAnalog, 60},
	"PAVSS": {ClassPad, FamilyAnalog, 60},
	// Corners
	"PCORNER":  {ClassCorner, FamilyDigital, 140},
	"PCORNERA": {ClassCorner, FamilyAnalog, 140},
	// Boundary cells
	"PFILL":  {ClassFiller, FamilyDigital, 30},
	"PFILLA": {ClassFiller, FamilyAnalog, 30},
	"PCUT":   {ClassBlank, FamilyUnknown, 30},
	"PBLANK": {ClassBlank, FamilyUnknown, 30},
	// Inner pads
	"PDIN": {ClassInnerPad, FamilyDigital, 60},
	"PAIN": {ClassInnerPad, FamilyAnalog, 60},
}

// c55Devices is the 55nm library catalog. Filler widths are encoded in the
// device name suffix and drive the tail fill of variable-pitch sides.
var c55Devices = map[string]deviceInfo{
	// Digital pads
	"IOPAD": {ClassPad, FamilyDigital, 30},
	"IOVDD": {ClassPad, FamilyDigital, 30},
	"IOVSS": {ClassPad, FamilyDigital, 30},
	// Analog pads
	"ANAPAD": {ClassPad, FamilyAnalog, 30},
	"ANAVDD": {ClassPad, FamilyAnalog, 30},
	"ANAVSS": {ClassPad, FamilyAnalog, 30},
	// Corners
	"IOCNR":  {ClassCorner, FamilyDigital, 80},
	"ANACNR": {ClassCorner, FamilyAnalog, 80},
	// Filler series
	"IOFILL20":  {ClassFiller, FamilyDigital, 20},
	"IOFILL10":  {ClassFiller, FamilyDigital, 10},
	"IOFILL5":   {ClassFiller, FamilyDigital, 5},
	"IOFILL2":   {ClassFiller, FamilyDigital, 2},
	"IOFILL1":   {ClassFiller, FamilyDigital, 1},
	"ANAFILL20": {ClassFiller, FamilyAnalog, 20},
	"ANAFILL10": {ClassFiller, FamilyAnalog, 10},
	"ANAFILL5":  {ClassFiller, FamilyAnalog, 5},
	"ANAFILL2":  {ClassFiller, FamilyAnalog, 2},
	"ANAFILL1":  {ClassFiller, FamilyAnalog, 1},
	// Isolation blank (no dedicated cut cell in this library)
	"IOBLANK": {ClassBlank, FamilyUnknown, 10},
	// Inner pads
	"IOPAD2":  {ClassInnerPad, FamilyDigital, 30},
	"ANAPAD2": {ClassInnerPad, FamilyAnalog, 30},
}

// deviceTable returns the catalog for a process.
func deviceTable(p Process) map[string]deviceInfo {
	if p == ProcessC55 {
		return c55Devices
	}
	return c180Devices
}

// KnownDevice reports whether the device exists in the process catalog.
func KnownDevice(device string, p Process) bool {
	_, ok := deviceTable(p)[device]
	return ok
}

// Classify derives the placement class of a device. Catalog entries answer
// directly; unknown devices fall back to name patterns so third-party cells
// still land in a sensible class, defaulting to pad.
func Classify(device string, p Process) Class {
	if info, ok := deviceTable(p)[device]; ok {
		return info.class
	}
	upper := strings.ToUpper(device)
	switch {
	case strings.Contains(upper, "BLANK"), strings.Contains(upper, "CUT"), strings.Contains(upper, "SEP"):
		return ClassBlank
	case strings.Contains(upper, "FILL"):
		return ClassFiller
	case strings.Contains(upper, "CNR"), strings.Contains(upper, "CORNER"):
		return ClassCorner
	}
	return ClassPad
}

// DomainFamily returns the domain family recorded for a device in the
// process catalog, FamilyUnknown for devices outside it.
func DomainFamily(device string, p Process) Family {
	if info, ok := deviceTable(p)[device]; ok {
		return info.family
	}
	return FamilyUnknown
}

// DeviceWidth returns the catalog footprint width of a device, 0 when the
// catalog has no opinion.
func DeviceWidth(device string, p Process) float64 {
	if info, ok := deviceTable(p)[device]; ok {
		return info.width
	}
	return 0
}

// FillerUnit is one entry of a process filler series.
type FillerUnit struct {
	Device string
	Width  float64
}

// FillerSeries returns the filler devices for a family in descending width
// order. Tail fill consumes the series greedily.
func FillerSeries(p Process, f Family) []FillerUnit {
	var units []FillerUnit
	for device, info := range deviceTable(p) {
		if info.class == ClassFiller && info.family == f {
			units = append(units, FillerUnit{Device: device, Width: info.width})
		}
	}
	sort.Slice(units, func(i, j int) bool {
		if units[i].Width != units[j].Width {
			return units[i].Width > units[j].Width
		}
		return units[i].Device < units[j].Device
	})
	return units
}

// FillerDevice returns the widest filler of a family, the default unit for
// synthesized boundary cells. Unknown families fall back to digital.
func FillerDevice(p Process, f Family) string {
	if f == FamilyUnknown {
		f = FamilyDigital
	}
	series := FillerSeries(p, f)
	if len(series) == 0 {
		return ""
	}
	return series[0].Device
}

// IsolationDevice returns the cell inserted between unrelated voltage
// domains: the dedicated power cut where the library has one, the blank
// spacer otherwise.
func IsolationDevice(p Process) string {
	if p == ProcessC55 {
		return "IOBLANK"
	}
	return "PCUT"
}

// CatalogEntry is one row of a process catalog listing.
type CatalogEntry struct {
	Device string
	Class  Class
	Family Family
	Width  float64
}

// Catalog returns the full device catalog of a process sorted by class then
// device name, for display purposes.
func Catalog(p Process) []CatalogEntry {
	table := deviceTable(p)
	entries := make([]CatalogEntry, 0, len(table))
	for device, info := range table {
		entries = append(entries, CatalogEntry{
			Device: device,
			Class:  info.class,
			Family: info.family,
			Width:  info.width,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Class != entries[j].Class {
			return entries[i].Class < entries[j].Class
		}
		return entries[i].Device < entries[j].Device
	})
	return entries
}
