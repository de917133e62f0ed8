package ring

import "fmt"

// Process selects the target technology variant. The variant decides the
// placement model (uniform pitch vs. cumulative widths), the device catalog
// and the default traversal order.
type Process string

// Supported process variants.
const (
	// ProcessC180 is the 180nm flavor: uniform pad pitch, die size derived
	// from per-side pad counts, counterclockwise by default.
	ProcessC180 Process = "c180"
	// ProcessC55 is the 55nm low-power flavor: variable pitch via cumulative
	// component widths, declared die size, clockwise by default.
	ProcessC55 Process = "c55"
)

// Processes lists the supported process variants.
func Processes() []Process {
	return []Process{ProcessC180, ProcessC55}
}

// ParseProcess converts a string to a Process.
func ParseProcess(s string) (Process, error) {
	switch Process(s) {
	case ProcessC180, ProcessC55:
		return Process(s), nil
	}
	return "", ErrUnknownProcess
}

// Uniform reports whether the process places pads on a fixed pitch grid.
func (p Process) Uniform() bool {
	return p == ProcessC180
}

// SideCounts declares the number of outer pads expected on each side.
type SideCounts struct {
	Bottom int `toml:"bottom" json:"bottom"`
	Right  int `toml:"right" json:"right"`
	Top    int `toml:"top" json:"top"`
	Left   int `toml:"left" json:"left"`
}

// Count returns the declared pad count for a side.
func (sc SideCounts) Count(s Side) int {
	switch s {
	case SideBottom:
		return sc.Bottom
	case SideRight:
		return sc.Right
	case SideTop:
		return sc.Top
	case SideLeft:
		return sc.Left
	}
	return 0
}

// Config carries the geometric and process parameters of a ring. A Config is
// treated as an immutable value once Finalize has filled defaults and derived
// the die size; all placement code receives it by value.
type Config struct {
	Process Process // Technology variant (required)
	Order   Order   // Ring traversal direction (defaulted per process)

	PadWidth   float64 // Default outer pad width in um
	PadHeight  float64 // Outer pad height (row depth) in um
	PadSpacing float64 // Center-to-center pitch for uniform processes
	CornerSize float64 // Corner cell edge length in um

	Counts SideCounts // Declared pad counts per side

	// Die dimensions in um. Derived for uniform processes, declared for
	// variable-pitch processes.
	DieWidth  float64
	DieHeight float64

	Library string // IO library name echoed into the layout artifact
	View    string // Cell view name echoed into the layout artifact

	// AutoFill enables boundary cell synthesis. Specs that carry their own
	// fillers disable synthesis regardless of this flag.
	AutoFill bool
}

// DefaultConfig returns the preset Config for a process variant. The preset
// carries the library defaults; spec files override individual fields before
// Finalize derives the rest.
func DefaultConfig(p Process) (Config, error) {
	switch p {
	case ProcessC180:
		return Config{
			Process:    ProcessC180,
			Order:      CounterClockwise,
			PadWidth:   60,
			PadHeight:  120,
			PadSpacing: 90,
			CornerSize: 140,
			Library:    "bcd180_io",
			View:       "layout",
			AutoFill:   true,
		}, nil
	case ProcessC55:
		return Config{
			Process:    ProcessC55,
			Order:      Clockwise,
			PadWidth:   30,
			PadHeight:  80,
			CornerSize: 80,
			Library:    "lp55_io",
			View:       "layout",
			AutoFill:   true,
		}, nil
	}
	return Config{}, ErrUnknownProcess
}

// SideCount returns the declared pad count for a side.
func (c Config) SideCount(s Side) int {
	return c.Counts.Count(s)
}

// SideSpan returns the placeable length of a side between its two corner
// cells.
func (c Config) SideSpan(s Side) float64 {
	if s.Horizontal() {
		return c.DieWidth - 2*c.CornerSize
	}
	return c.DieHeight - 2*c.CornerSize
}

// Gap returns the uniform-pitch slack between adjacent pads, the pitch minus
// the pad width. Each pad centers in its slot, leaving half the gap on
// either flank.
func (c Config) Gap() float64 {
	return c.PadSpacing - c.PadWidth
}

// Finalize validates the config and fills derived fields: the traversal
// order default and, for uniform processes, the die size implied by pad
// counts and pitch. It returns the completed copy, leaving the receiver
// untouched.
func (c Config) Finalize() (Config, error) {
	if _, err := ParseProcess(string(c.Process)); err != nil {
		return c, fmt.Errorf("%w: %q", ErrUnknownProcess, c.Process)
	}

	if c.Order == "" {
		def, _ := DefaultConfig(c.Process)
		c.Order = def.Order
	} else if _, err := ParseOrder(string(c.Order)); err != nil {
		return c, fmt.Errorf("%w: order %q", ErrInvalidConfig, c.Order)
	}

	if c.CornerSize <= 0 {
		return c, fmt.Errorf("%w: corner size must be positive", ErrInvalidConfig)
	}
	if c.PadWidth <= 0 {
		return c, fmt.Errorf("%w: pad width must be positive", ErrInvalidConfig)
	}
	if c.PadHeight <= 0 {
		return c, fmt.Errorf("%w: pad height must be positive", ErrInvalidConfig)
	}

	if c.Process.Uniform() {
		if c.PadSpacing <= 0 {
			return c, fmt.Errorf("%w: pad spacing must be positive", ErrInvalidConfig)
		}
		if c.Gap() < 0 {
			return c, fmt.Errorf("%w: pad width %.2f exceeds spacing %.2f",
				ErrInvalidConfig, c.PadWidth, c.PadSpacing)
		}
		for _, s := range Sides() {
			if c.SideCount(s) < 1 {
				return c, fmt.Errorf("%w: side %s declares no pads", ErrInvalidConfig, s)
			}
		}
		if c.Counts.Bottom != c.Counts.Top || c.Counts.Left != c.Counts.Right {
			return c, fmt.Errorf(
				"%w: opposing sides must declare equal pad counts (bottom=%d top=%d left=%d right=%d)",
				ErrInvalidConfig, c.Counts.Bottom, c.Counts.Top, c.Counts.Left, c.Counts.Right)
		}
		c.DieWidth = 2*c.CornerSize + float64(c.Counts.Bottom)*c.PadSpacing
		c.DieHeight = 2*c.CornerSize + float64(c.Counts.Left)*c.PadSpacing
	} else {
		if c.DieWidth <= 0 || c.DieHeight <= 0 {
			return c, fmt.Errorf("%w: die size must be declared for %s", ErrInvalidConfig, c.Process)
		}
		if c.DieWidth < 2*c.CornerSize || c.DieHeight < 2*c.CornerSize {
			return c, fmt.Errorf("%w: die smaller than its corner cells", ErrInvalidConfig)
		}
		for _, s := range Sides() {
			if c.SideCount(s) < 0 {
				return c, fmt.Errorf("%w: side %s declares a negative pad count", ErrInvalidConfig, s)
			}
		}
	}

	return c, nil
}
