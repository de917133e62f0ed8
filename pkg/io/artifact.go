package io

import (
	"encoding/json"
	"io"
	"os"

	padringerrors "github.com/chenzc24/padring/pkg/errors"
	"github.com/chenzc24/padring/pkg/ring"
	"github.com/chenzc24/padring/pkg/ring/place"
)

// =============================================================================
// Artifact - Resolved Ring Format
// =============================================================================

// Artifact is the serialized form of a fully resolved ring: the die header
// plus every instance with its coordinates, rotation and resolved voltage
// domain. Instances appear in ring traversal order starting from the
// bottom-left corner, so downstream tooling can stream them as a walk.
type Artifact struct {
	Process   string  `json:"process"`
	Library   string  `json:"library"`
	View      string  `json:"view"`
	Order     string  `json:"order"`
	DieWidth  float64 `json:"die_width"`
	DieHeight float64 `json:"die_height"`

	Instances []Instance `json:"instances"`
}

// Instance is one placed component of the artifact.
type Instance struct {
	Name        string     `json:"name"`
	Device      string     `json:"device"`
	Class       string     `json:"class"`
	Position    [2]float64 `json:"position"`
	Orientation string     `json:"orientation"`

	// Slot is the symbolic position the instance resolved from, preserved
	// for traceability.
	Slot string `json:"position_str,omitempty"`

	Domain *DomainInfo `json:"domain,omitempty"`

	// Width and Height are the resolved footprint, with instance overrides
	// and device catalog sizes already applied. Consumers size cells from
	// these fields alone.
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Synthesized bool    `json:"synthesized,omitempty"`
}

// DomainInfo is the resolved voltage domain of an instance.
type DomainInfo struct {
	Key    string `json:"key"`
	Family string `json:"family"`
	Tier   string `json:"tier"`
}

// BuildArtifact captures a resolved layout as an artifact. Components keep
// their placement data; unknown domains are omitted rather than serialized
// empty.
func BuildArtifact(l *ring.Layout) Artifact {
	cfg := l.Config
	comps := l.Components()
	place.Sort(cfg.Order, comps)

	a := Artifact{
		Process:   string(cfg.Process),
		Library:   cfg.Library,
		View:      cfg.View,
		Order:     string(cfg.Order),
		DieWidth:  cfg.DieWidth,
		DieHeight: cfg.DieHeight,
		Instances: make([]Instance, len(comps)),
	}
	for i, c := range comps {
		inst := Instance{
			Name:        c.Name,
			Device:      c.Device,
			Class:       c.Class.String(),
			Position:    [2]float64{c.X, c.Y},
			Orientation: string(c.Orient),
			Slot:        c.Pos.String(),
			Width:       c.EffectiveWidth(cfg),
			Height:      c.EffectiveHeight(cfg),
			Synthesized: c.Synthesized,
		}
		if res := ring.ResolveDomain(c, cfg.Process); res.Known() {
			inst.Domain = &DomainInfo{
				Key:    res.Key,
				Family: res.Family.String(),
				Tier:   res.Tier.String(),
			}
		}
		a.Instances[i] = inst
	}
	return a
}

// =============================================================================
// Artifact Serialization API
// =============================================================================

// MarshalArtifact serializes an Artifact to pretty-printed JSON bytes.
func MarshalArtifact(a Artifact) ([]byte, error) {
	data, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return nil, padringerrors.Wrap(padringerrors.ErrCodeInternal, err, "marshal artifact")
	}
	return data, nil
}

// UnmarshalArtifact deserializes JSON bytes into an Artifact and validates
// the required header fields.
func UnmarshalArtifact(data []byte) (Artifact, error) {
	var a Artifact
	if err := json.Unmarshal(data, &a); err != nil {
		return Artifact{}, padringerrors.Wrap(padringerrors.ErrCodeInvalidFormat, err,
			"unmarshal artifact")
	}
	if a.Process == "" {
		return Artifact{}, padringerrors.New(padringerrors.ErrCodeInvalidFormat,
			"artifact has no process")
	}
	if a.DieWidth <= 0 || a.DieHeight <= 0 {
		return Artifact{}, padringerrors.New(padringerrors.ErrCodeInvalidFormat,
			"artifact die %g x %g is not positive", a.DieWidth, a.DieHeight)
	}
	return a, nil
}

// WriteArtifact encodes an artifact as indented JSON on w. The output
// round-trips through [ReadArtifact].
func WriteArtifact(a Artifact, w io.Writer) error {
	data, err := MarshalArtifact(a)
	if err != nil {
		return err
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return padringerrors.Wrap(padringerrors.ErrCodeInvalidPath, err, "write artifact")
	}
	return nil
}

// ExportArtifact writes an artifact to a JSON file at path.
func ExportArtifact(a Artifact, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return padringerrors.Wrap(padringerrors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()
	return WriteArtifact(a, f)
}

// ReadArtifact decodes an artifact from r.
func ReadArtifact(r io.Reader) (Artifact, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Artifact{}, padringerrors.Wrap(padringerrors.ErrCodeInvalidPath, err,
			"read artifact")
	}
	return UnmarshalArtifact(data)
}

// ImportArtifact reads an artifact from a JSON file at path.
func ImportArtifact(path string) (Artifact, error) {
	f, err := os.Open(path)
	if err != nil {
		return Artifact{}, padringerrors.Wrap(padringerrors.ErrCodeInvalidPath, err,
			"open %s", path)
	}
	defer f.Close()
	return ReadArtifact(f)
}
