// Package pipeline provides the core resolution pipeline for padring.
//
// This package implements the complete decode → place → synthesize →
// validate pipeline that is shared by the CLI and API components. By
// centralizing this logic, we ensure consistent behavior across all entry
// points and avoid code duplication.
//
// # Architecture
//
// A run decodes one ring spec and then walks six stages over the resulting
// layout:
//
//  1. check_spec: structural validation of the symbolic spec
//  2. place: coordinate resolution for the declared components
//  3. synthesize: boundary cell synthesis (fillers, isolation, tails)
//  4. place_cells: re-resolution including the synthesized cells
//  5. inner_pads: second-row pad placement
//  6. check_layout: final validation of the resolved coordinates
//
// The stages can be run together through Execute or individually through
// Decode and Resolve.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{SpecPath: "ring.toml"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	data, err := io.MarshalArtifact(result.Artifact)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/chenzc24/padring/pkg/cache"
	padringerrors "github.com/chenzc24/padring/pkg/errors"
	padringio "github.com/chenzc24/padring/pkg/io"
	"github.com/chenzc24/padring/pkg/ring"
)

// Format constants for spec encodings.
const (
	FormatTOML = string(padringio.FormatTOML)
	FormatJSON = string(padringio.FormatJSON)
)

// ValidFormats is the set of supported spec encodings.
var ValidFormats = map[string]bool{
	FormatTOML: true,
	FormatJSON: true,
}

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one resolution run.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Decode options
	SpecPath string `json:"spec_path,omitempty"` // Spec file on disk; read when Spec is empty
	Spec     []byte `json:"spec,omitempty"`      // Raw spec content (API request bodies)
	Format   string `json:"format,omitempty"`    // "toml" or "json"; detected from SpecPath when empty

	// Resolution overrides
	Order   string `json:"order,omitempty"`   // Traversal override ("cw"/"ccw"); empty keeps the spec's
	NoFill  bool   `json:"no_fill,omitempty"` // Disable boundary cell synthesis for this run
	Refresh bool   `json:"refresh,omitempty"` // Bypass cache reads (results are still written)

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID uniquely identifies this run in logs and hooks.
	RunID string

	// Layout is the decoded ring. After a full run it is resolved in
	// place; when the artifact came from cache it stays symbolic and
	// Artifact is authoritative.
	Layout *ring.Layout

	// Artifact is the resolved layout in its export form.
	Artifact padringio.Artifact

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks whether the run hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	InstanceCount    int // components in the final layout, synthesized cells included
	SynthesizedCount int
	DecodeTime       time.Duration
	ResolveTime      time.Duration
}

// CacheInfo tracks cache hits for a pipeline run.
type CacheInfo struct {
	ArtifactHit bool // Whether the artifact came from cache
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a spec encoding is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return padringerrors.New(padringerrors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: toml, json)", format)
	}
	return nil
}

// ValidateOrder checks that a traversal override is valid.
func ValidateOrder(order string) error {
	if _, err := ring.ParseOrder(order); err != nil {
		return padringerrors.New(padringerrors.ErrCodeInvalidConfig,
			"invalid order: %q (must be one of: cw, ccw)", order)
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the
// full pipeline. This method is idempotent - calling it multiple times has
// the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForDecode(); err != nil {
		return err
	}
	if o.Order != "" {
		if err := ValidateOrder(o.Order); err != nil {
			return err
		}
	}
	o.validated = true
	return nil
}

// ValidateForDecode checks required fields for spec decoding and resolves
// the spec format.
func (o *Options) ValidateForDecode() error {
	if len(o.Spec) == 0 && o.SpecPath == "" {
		return padringerrors.New(padringerrors.ErrCodeInvalidConfig,
			"spec path or inline spec content is required")
	}
	if o.Format == "" {
		if o.SpecPath == "" {
			return padringerrors.New(padringerrors.ErrCodeInvalidConfig,
				"format is required with inline spec content")
		}
		f, err := padringio.DetectFormat(o.SpecPath)
		if err != nil {
			return err
		}
		o.Format = string(f)
	}
	if err := ValidateFormat(o.Format); err != nil {
		return err
	}

	// Logger default
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	return nil
}

// Source names the spec origin for logs and hooks.
func (o *Options) Source() string {
	if o.SpecPath != "" {
		return o.SpecPath
	}
	return "inline"
}

// ArtifactKeyOpts returns cache key options for this run. The spec hash
// covers the spec content itself, so only out-of-spec overrides appear here.
func (o *Options) ArtifactKeyOpts() cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Order:    o.Order,
		AutoFill: !o.NoFill,
	}
}
