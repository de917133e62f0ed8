package ring

// Class groups devices by the role they play in the ring. The placement
// rules differ per class: corners occupy fixed slots, pads and boundary
// cells occupy side slots, and inner pads float between outer pads.
type Class int

const (
	// ClassUnknown marks a component whose class has not been derived yet.
	ClassUnknown Class = iota
	// ClassPad is a functional IO, power or ground pad on the ring.
	ClassPad
	// ClassCorner is one of the four corner cells closing the ring.
	ClassCorner
	// ClassFiller is a rail-continuity spacer between two pads of the same
	// voltage domain.
	ClassFiller
	// ClassBlank is an isolation spacer separating unrelated voltage
	// domains (a power cut in processes that have a dedicated cut cell).
	ClassBlank
	// ClassInnerPad is a second-row pad placed between two outer pads.
	ClassInnerPad
)

// classNames maps classes to their spec file spelling.
var classNames = map[Class]string{
	ClassPad:      "pad",
	ClassCorner:   "corner",
	ClassFiller:   "filler",
	ClassBlank:    "blank",
	ClassInnerPad: "inner_pad",
}

// String returns the spec file spelling of the class.
func (c Class) String() string {
	if s, ok := classNames[c]; ok {
		return s
	}
	return "unknown"
}

// ParseClass converts a spec file class string to a Class.
func ParseClass(s string) (Class, error) {
	for c, name := range classNames {
		if name == s {
			return c, nil
		}
	}
	return ClassUnknown, ErrUnknownClass
}

// Component is a single placeable instance of the ring: a pad, corner,
// filler, blank or inner pad. Components are created from spec input or
// synthesized by auto-fill, then mutated in place as positions resolve.
type Component struct {
	Name   string   // Unique instance name
	Device string   // Library cell name (e.g. PDIO, IOFILL20)
	Class  Class    // Placement role, derived from Device when absent
	Pos    Position // Symbolic position within the ring

	// Width and Height override the device footprint when non-zero.
	// Variable-pitch processes read these during cumulative placement.
	Width  float64
	Height float64

	// Domain is an optional shorthand domain tag from the spec, resolved at
	// the descriptor tier when no pin connections decide first.
	Domain string
	// VoltageDomain is the explicit power/ground descriptor, if given.
	VoltageDomain *Descriptor
	// Pins maps pin names to connected nets and drives tier-1 domain
	// resolution.
	Pins map[string]string

	IODirection string // input, output or inout (informational)
	IOType      string // signal class hint (cmos, schmitt, ...), informational

	// Synthesized marks components inserted by auto-fill rather than read
	// from the spec.
	Synthesized bool

	// Resolved placement. Placed distinguishes an assigned origin from the
	// zero value, since (0,0) is a legal die coordinate.
	X, Y   float64
	Orient Orientation
	Placed bool
}

// IsPad reports whether the component is a functional outer pad.
func (c *Component) IsPad() bool { return c.Class == ClassPad }

// IsCorner reports whether the component occupies a corner slot.
func (c *Component) IsCorner() bool { return c.Class == ClassCorner }

// IsInner reports whether the component is a second-row inner pad.
func (c *Component) IsInner() bool { return c.Class == ClassInnerPad }

// IsBoundary reports whether the component is a filler or blank spacer.
// Boundary cells are what auto-fill inserts; a spec that already contains
// any disables synthesis.
func (c *Component) IsBoundary() bool {
	return c.Class == ClassFiller || c.Class == ClassBlank
}

// OnSideSlot reports whether the component occupies a logical side slot
// (pads and boundary cells, not corners or inner pads).
func (c *Component) OnSideSlot() bool {
	return c.Class == ClassPad || c.Class == ClassFiller || c.Class == ClassBlank
}

// Place records the resolved coordinates and rotation.
func (c *Component) Place(x, y float64, o Orientation) {
	c.X = x
	c.Y = y
	c.Orient = o
	c.Placed = true
}

// EffectiveWidth returns the footprint width used during placement: the
// instance override if set, else the catalog width, else the config default.
// Corners use the corner size regardless.
func (c *Component) EffectiveWidth(cfg Config) float64 {
	if c.Class == ClassCorner {
		return cfg.CornerSize
	}
	if c.Width > 0 {
		return c.Width
	}
	if w := DeviceWidth(c.Device, cfg.Process); w > 0 {
		return w
	}
	return cfg.PadWidth
}

// EffectiveHeight returns the footprint height, by the same precedence.
func (c *Component) EffectiveHeight(cfg Config) float64 {
	if c.Class == ClassCorner {
		return cfg.CornerSize
	}
	if c.Height > 0 {
		return c.Height
	}
	return cfg.PadHeight
}
