package ring

import (
	"sort"
	"strings"
)

// Descriptor is an explicit voltage domain given in the spec: the power and
// ground net pair a component belongs to, with an optional free-form tag.
type Descriptor struct {
	Power  string `toml:"power" json:"power"`
	Ground string `toml:"ground" json:"ground"`
	Tag    string `toml:"tag" json:"tag,omitempty"`
}

// Equal compares two descriptors field by field. This is the legacy
// comparison path used when both components carry explicit descriptors.
func (d Descriptor) Equal(o Descriptor) bool {
	return d.Power == o.Power && d.Ground == o.Ground && d.Tag == o.Tag
}

// Tier records which source resolved a component's voltage domain.
type Tier int

const (
	// TierNone means no source could resolve a domain.
	TierNone Tier = iota
	// TierPins resolved the domain from the component's pin connections.
	TierPins
	// TierDescriptor resolved the domain from an explicit descriptor or
	// domain tag in the spec.
	TierDescriptor
	// TierDevice resolved the domain from the process device catalog.
	TierDevice
)

// String names the tier as reported in the layout artifact.
func (t Tier) String() string {
	switch t {
	case TierPins:
		return "pin_config"
	case TierDescriptor:
		return "descriptor"
	case TierDevice:
		return "device"
	}
	return "none"
}

// Resolution is the outcome of voltage domain resolution: a comparable key,
// the domain family and the tier that produced the answer. An empty key
// means the domain is unknown; unknown domains never compare equal.
type Resolution struct {
	Key    string
	Family Family
	Tier   Tier
}

// Known reports whether resolution produced a usable domain key.
func (r Resolution) Known() bool { return r.Key != "" }

// pinRole classifies rail pins during tier-1 resolution.
type pinRole int

const (
	roleNone pinRole = iota
	roleAnalogPower
	roleAnalogGround
	roleDigitalPower
	roleDigitalGround
)

// pinRules maps rail pin name prefixes to roles. Analog patterns are listed
// first so VDDA does not match the digital VDD prefix.
var pinRules = []struct {
	prefix string
	role   pinRole
}{
	{"AVDD", roleAnalogPower},
	{"VDDA", roleAnalogPower},
	{"AVSS", roleAnalogGround},
	{"VSSA", roleAnalogGround},
	{"AGND", roleAnalogGround},
	{"DVDD", roleDigitalPower},
	{"VDD", roleDigitalPower},
	{"VCC", roleDigitalPower},
	{"DVSS", roleDigitalGround},
	{"VSS", roleDigitalGround},
	{"GND", roleDigitalGround},
}

// classifyPin returns the rail role of a pin name, roleNone for signal pins.
func classifyPin(name string) pinRole {
	upper := strings.ToUpper(name)
	for _, rule := range pinRules {
		if strings.HasPrefix(upper, rule.prefix) {
			return rule.role
		}
	}
	return roleNone
}

// buildKey assembles a domain key from a family and the power/ground nets,
// skipping absent parts. A family with no nets yields the bare family key
// used by generic devices.
func buildKey(f Family, power, ground string) string {
	parts := []string{f.String()}
	if power != "" {
		parts = append(parts, strings.ToUpper(power))
	}
	if ground != "" {
		parts = append(parts, strings.ToUpper(ground))
	}
	return strings.Join(parts, "_")
}

// resolveFromPins derives a domain from the component's pin connections.
// Rail pins vote for a family (any analog rail makes the component analog),
// and the connected nets name the key. Pins are scanned in sorted order so
// resolution is deterministic.
func resolveFromPins(c *Component) (Resolution, bool) {
	if len(c.Pins) == 0 {
		return Resolution{}, false
	}

	names := make([]string, 0, len(c.Pins))
	for name := range c.Pins {
		names = append(names, name)
	}
	sort.Strings(names)

	family := FamilyUnknown
	var power, ground string
	for _, name := range names {
		role := classifyPin(name)
		if role == roleNone {
			continue
		}

		net := c.Pins[name]
		if net == "" {
			net = name
		}

		switch role {
		case roleAnalogPower, roleAnalogGround:
			family = FamilyAnalog
		default:
			if family == FamilyUnknown {
				family = FamilyDigital
			}
		}
		switch role {
		case roleAnalogPower, roleDigitalPower:
			if power == "" {
				power = net
			}
		case roleAnalogGround, roleDigitalGround:
			if ground == "" {
				ground = net
			}
		}
	}

	if family == FamilyUnknown {
		return Resolution{}, false
	}
	return Resolution{Key: buildKey(family, power, ground), Family: family, Tier: TierPins}, true
}

// resolveFromDescriptor derives a domain from an explicit descriptor or the
// shorthand domain tag. The family comes from the tag when it names one,
// otherwise from the power net's rail pattern, defaulting to digital.
func resolveFromDescriptor(c *Component) (Resolution, bool) {
	if c.VoltageDomain != nil {
		d := *c.VoltageDomain
		family := familyFromTag(d.Tag)
		if family == FamilyUnknown {
			switch classifyPin(d.Power) {
			case roleAnalogPower, roleAnalogGround:
				family = FamilyAnalog
			default:
				family = FamilyDigital
			}
		}
		return Resolution{Key: buildKey(family, d.Power, d.Ground), Family: family, Tier: TierDescriptor}, true
	}

	if c.Domain != "" {
		if family := familyFromTag(c.Domain); family != FamilyUnknown {
			return Resolution{Key: family.String(), Family: family, Tier: TierDescriptor}, true
		}
		// A full key written verbatim into the domain field.
		upper := strings.ToUpper(c.Domain)
		family := FamilyUnknown
		switch {
		case strings.HasPrefix(upper, "ANALOG"):
			family = FamilyAnalog
		case strings.HasPrefix(upper, "DIGITAL"):
			family = FamilyDigital
		}
		if family != FamilyUnknown {
			return Resolution{Key: upper, Family: family, Tier: TierDescriptor}, true
		}
	}

	return Resolution{}, false
}

// familyFromTag maps shorthand tags like "analog" or "dig" to a family.
func familyFromTag(tag string) Family {
	lower := strings.ToLower(tag)
	switch {
	case lower == "":
		return FamilyUnknown
	case strings.HasPrefix(lower, "ana"):
		return FamilyAnalog
	case strings.HasPrefix(lower, "dig"):
		return FamilyDigital
	}
	return FamilyUnknown
}

// ResolveDomain resolves a component's voltage domain through the three-tier
// chain: pin connections first, explicit descriptors second, the process
// device catalog last. Devices resolved from the catalog get the bare family
// key, which is what makes generic corners compatible with any domain of
// their family.
func ResolveDomain(c *Component, p Process) Resolution {
	if r, ok := resolveFromPins(c); ok {
		return r
	}
	if r, ok := resolveFromDescriptor(c); ok {
		return r
	}
	if family := DomainFamily(c.Device, p); family != FamilyUnknown {
		return Resolution{Key: family.String(), Family: family, Tier: TierDevice}
	}
	return Resolution{}
}

// SameDomain reports whether two components belong to the same voltage
// domain. When both carry explicit descriptors the legacy field-by-field
// comparison decides; otherwise both domains must resolve to equal non-empty
// keys. Unknown domains never match anything, including each other.
func SameDomain(a, b *Component, p Process) bool {
	if a.VoltageDomain != nil && b.VoltageDomain != nil {
		return a.VoltageDomain.Equal(*b.VoltageDomain)
	}

	ra := ResolveDomain(a, p)
	rb := ResolveDomain(b, p)
	if !ra.Known() || !rb.Known() {
		return false
	}
	return ra.Key == rb.Key
}

// Compatible extends SameDomain with the generic analog corner exception: a
// corner cell resolved to the bare ANALOG key accepts any neighbor in an
// ANALOG domain, since the corner joins the analog rails without belonging
// to one supply pair. The relation stays symmetric.
func Compatible(a, b *Component, p Process) bool {
	if SameDomain(a, b, p) {
		return true
	}
	return genericAnalogCornerMatch(a, b, p) || genericAnalogCornerMatch(b, a, p)
}

// genericAnalogCornerMatch reports whether corner is a generic analog corner
// and other resolves into any analog domain.
func genericAnalogCornerMatch(corner, other *Component, p Process) bool {
	if !corner.IsCorner() {
		return false
	}
	rc := ResolveDomain(corner, p)
	if rc.Key != FamilyAnalog.String() {
		return false
	}
	ro := ResolveDomain(other, p)
	return ro.Known() && strings.HasPrefix(ro.Key, FamilyAnalog.String())
}
