// Package cache provides pluggable result caching for ring resolution.
//
// The pipeline hashes spec content and caches the resolved artifact, so
// re-running an unchanged spec skips placement entirely. Backends: a file
// cache for CLI usage, Redis for shared API deployments, and a null cache
// when caching is disabled.
package cache

import (
	"context"
	"time"
)

// TTLArtifact bounds how long resolved artifacts live in the cache.
// Artifacts are content-addressed, so stale entries are harmless and the
// TTL exists only to bound disk and Redis growth.
const TTLArtifact = 7 * 24 * time.Hour

// Cache stores serialized pipeline results keyed by content hash.
//
// Get returns the data and whether the key was present; an absent key is
// not an error. Implementations are safe for concurrent use.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Keyer builds cache keys from spec hashes. Implementations must be
// deterministic: the same inputs always produce the same key.
type Keyer interface {
	// ArtifactKey is the key for a resolved artifact. Options that change
	// the outcome without appearing in the spec (traversal or fill
	// overrides) are folded into the key.
	ArtifactKey(specHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the resolution options that affect the artifact
// beyond the spec content itself.
type ArtifactKeyOpts struct {
	// Order is the traversal override, empty when the spec decides.
	Order string
	// AutoFill mirrors the effective synthesis setting.
	AutoFill bool
}

// DefaultKeyer is the standard key scheme.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the standard keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// ArtifactKey generates a key for a resolved artifact.
func (k *DefaultKeyer) ArtifactKey(specHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", specHash, opts.Order, opts.AutoFill)
}
