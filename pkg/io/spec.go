package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	padringerrors "github.com/chenzc24/padring/pkg/errors"
	"github.com/chenzc24/padring/pkg/ring"
)

// Format identifies a ring spec encoding.
type Format string

// Supported spec encodings.
const (
	FormatTOML Format = "toml"
	FormatJSON Format = "json"
)

// DetectFormat derives the spec encoding from a file extension.
func DetectFormat(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".json":
		return FormatJSON, nil
	}
	return "", padringerrors.New(padringerrors.ErrCodeInvalidFormat,
		"unsupported spec extension %q, want .toml or .json", filepath.Ext(path))
}

// specFile mirrors the on-disk spec structure shared by both encodings.
type specFile struct {
	Ring     ringSpec                `toml:"ring" json:"ring"`
	Instance map[string]instanceSpec `toml:"instance" json:"instance"`
}

// ringSpec carries the ring table. Zero-valued fields keep the process
// preset's defaults.
type ringSpec struct {
	Process    string          `toml:"process" json:"process"`
	Order      string          `toml:"order" json:"order,omitempty"`
	PadWidth   float64         `toml:"pad_width" json:"pad_width,omitempty"`
	PadHeight  float64         `toml:"pad_height" json:"pad_height,omitempty"`
	PadSpacing float64         `toml:"pad_spacing" json:"pad_spacing,omitempty"`
	CornerSize float64         `toml:"corner_size" json:"corner_size,omitempty"`
	DieWidth   float64         `toml:"die_width" json:"die_width,omitempty"`
	DieHeight  float64         `toml:"die_height" json:"die_height,omitempty"`
	Library    string          `toml:"library" json:"library,omitempty"`
	View       string          `toml:"view" json:"view,omitempty"`
	AutoFill   *bool           `toml:"auto_fill" json:"auto_fill,omitempty"`
	Counts     ring.SideCounts `toml:"counts" json:"counts,omitempty"`
}

// instanceSpec carries one [instance.<name>] table.
type instanceSpec struct {
	Device   string  `toml:"device" json:"device"`
	Position string  `toml:"position" json:"position"`
	Type     string  `toml:"type" json:"type,omitempty"`
	Domain   string  `toml:"domain" json:"domain,omitempty"`
	Width    float64 `toml:"width" json:"width,omitempty"`
	Height   float64 `toml:"height" json:"height,omitempty"`

	IODirection string `toml:"io_direction" json:"io_direction,omitempty"`
	IOType      string `toml:"io_type" json:"io_type,omitempty"`

	// PinConfig and PinConnection are synonyms; legacy specs use the latter.
	// When both appear, pin_config wins per pin.
	PinConfig     map[string]string `toml:"pin_config" json:"pin_config,omitempty"`
	PinConnection map[string]string `toml:"pin_connection" json:"pin_connection,omitempty"`

	VoltageDomain *descriptorSpec `toml:"voltage_domain" json:"voltage_domain,omitempty"`
}

// descriptorSpec carries an explicit power/ground descriptor.
type descriptorSpec struct {
	Power  string `toml:"power" json:"power,omitempty"`
	Ground string `toml:"ground" json:"ground,omitempty"`
	Tag    string `toml:"tag" json:"tag,omitempty"`
}

// ReadSpec decodes a ring spec from r and builds the unplaced layout.
//
// The spec has a [ring] table naming the process (and any preset overrides)
// and one [instance.<name>] table per component. Instances without a type
// are classified from their device name. ReadSpec validates names, devices,
// nets and positions, but not ring structure; run the check package's passes
// for that.
//
// Instances are added in lexical name order, so decoding is deterministic
// regardless of encoding. ReadSpec does not close r.
func ReadSpec(r io.Reader, f Format) (*ring.Layout, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, padringerrors.Wrap(padringerrors.ErrCodeInvalidSpec, err, "reading spec")
	}

	var spec specFile
	switch f {
	case FormatTOML:
		err = toml.Unmarshal(data, &spec)
	case FormatJSON:
		err = json.Unmarshal(data, &spec)
	default:
		return nil, padringerrors.New(padringerrors.ErrCodeInvalidFormat,
			"unknown spec format %q", f)
	}
	if err != nil {
		return nil, padringerrors.Wrap(padringerrors.ErrCodeInvalidSpec, err,
			"decoding %s spec", f)
	}

	cfg, err := buildConfig(spec.Ring)
	if err != nil {
		return nil, err
	}

	l := ring.NewLayout(cfg)
	names := make([]string, 0, len(spec.Instance))
	for name := range spec.Instance {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		c, err := buildComponent(name, spec.Instance[name], cfg)
		if err != nil {
			return nil, err
		}
		if err := l.Add(c); err != nil {
			return nil, padringerrors.Wrap(padringerrors.ErrCodeInvalidSpec, err,
				"instance %q", name)
		}
	}
	return l, nil
}

// ImportSpec reads a ring spec file at path, detecting the encoding from
// the extension. The layout it returns is symbolic; positions resolve later.
func ImportSpec(path string) (*ring.Layout, error) {
	f, err := DetectFormat(path)
	if err != nil {
		return nil, err
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, padringerrors.Wrap(padringerrors.ErrCodeInvalidPath, err,
			"opening spec %s", path)
	}
	defer file.Close()
	return ReadSpec(file, f)
}

// buildConfig merges the ring table over the process preset and finalizes.
func buildConfig(rs ringSpec) (ring.Config, error) {
	if rs.Process == "" {
		return ring.Config{}, padringerrors.New(padringerrors.ErrCodeInvalidSpec,
			"ring.process is required")
	}
	process, err := ring.ParseProcess(rs.Process)
	if err != nil {
		return ring.Config{}, padringerrors.Wrap(padringerrors.ErrCodeUnknownProcess, err,
			"ring.process %q", rs.Process)
	}

	cfg, err := ring.DefaultConfig(process)
	if err != nil {
		return ring.Config{}, padringerrors.Wrap(padringerrors.ErrCodeUnknownProcess, err,
			"preset for %q", rs.Process)
	}

	if rs.Order != "" {
		order, err := ring.ParseOrder(rs.Order)
		if err != nil {
			return ring.Config{}, padringerrors.Wrap(padringerrors.ErrCodeInvalidConfig, err,
				"ring.order %q", rs.Order)
		}
		cfg.Order = order
	}
	if rs.PadWidth > 0 {
		cfg.PadWidth = rs.PadWidth
	}
	if rs.PadHeight > 0 {
		cfg.PadHeight = rs.PadHeight
	}
	if rs.PadSpacing > 0 {
		cfg.PadSpacing = rs.PadSpacing
	}
	if rs.CornerSize > 0 {
		cfg.CornerSize = rs.CornerSize
	}
	if rs.DieWidth > 0 {
		cfg.DieWidth = rs.DieWidth
	}
	if rs.DieHeight > 0 {
		cfg.DieHeight = rs.DieHeight
	}
	if rs.Library != "" {
		cfg.Library = rs.Library
	}
	if rs.View != "" {
		cfg.View = rs.View
	}
	if rs.AutoFill != nil {
		cfg.AutoFill = *rs.AutoFill
	}
	cfg.Counts = rs.Counts

	cfg, err = cfg.Finalize()
	if err != nil {
		return ring.Config{}, padringerrors.Wrap(padringerrors.ErrCodeInvalidConfig, err,
			"ring configuration")
	}
	return cfg, nil
}

// buildComponent turns one instance table into a layout component.
func buildComponent(name string, is instanceSpec, cfg ring.Config) (*ring.Component, error) {
	if err := padringerrors.ValidateInstanceName(name); err != nil {
		return nil, err
	}
	if is.Device == "" {
		return nil, padringerrors.New(padringerrors.ErrCodeInvalidSpec,
			"instance %q needs a device", name)
	}
	if err := padringerrors.ValidateDeviceName(is.Device); err != nil {
		return nil, padringerrors.Wrap(padringerrors.GetCode(err), err, "instance %q", name)
	}

	if is.Position == "" {
		return nil, padringerrors.New(padringerrors.ErrCodeInvalidPosition,
			"instance %q needs a position", name)
	}
	pos, err := ring.ParsePosition(is.Position)
	if err != nil {
		return nil, padringerrors.Wrap(padringerrors.ErrCodeInvalidPosition, err,
			"instance %q position %q", name, is.Position)
	}

	class := ring.Classify(is.Device, cfg.Process)
	if is.Type != "" {
		class, err = ring.ParseClass(is.Type)
		if err != nil {
			return nil, padringerrors.Wrap(padringerrors.ErrCodeInvalidSpec, err,
				"instance %q type %q", name, is.Type)
		}
	}

	pins, err := mergePins(name, is.PinConfig, is.PinConnection)
	if err != nil {
		return nil, err
	}

	c := &ring.Component{
		Name:        name,
		Device:      is.Device,
		Class:       class,
		Pos:         pos,
		Width:       is.Width,
		Height:      is.Height,
		Domain:      is.Domain,
		Pins:        pins,
		IODirection: is.IODirection,
		IOType:      is.IOType,
	}
	if is.VoltageDomain != nil {
		c.VoltageDomain = &ring.Descriptor{
			Power:  is.VoltageDomain.Power,
			Ground: is.VoltageDomain.Ground,
			Tag:    is.VoltageDomain.Tag,
		}
	}
	return c, nil
}

// mergePins folds pin_connection under pin_config and validates net names.
// Empty nets stay legal: domain resolution falls back to the pin name.
func mergePins(name string, config, connection map[string]string) (map[string]string, error) {
	if len(config) == 0 && len(connection) == 0 {
		return nil, nil
	}
	pins := make(map[string]string, len(config)+len(connection))
	for pin, net := range connection {
		pins[pin] = net
	}
	for pin, net := range config {
		pins[pin] = net
	}
	for pin, net := range pins {
		if net == "" {
			continue
		}
		if err := padringerrors.ValidateNetName(net); err != nil {
			return nil, padringerrors.Wrap(padringerrors.GetCode(err), err,
				"instance %q pin %q", name, pin)
		}
	}
	return pins, nil
}
