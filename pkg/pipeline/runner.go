package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/chenzc24/padring/pkg/cache"
	padringio "github.com/chenzc24/padring/pkg/io"
	"github.com/chenzc24/padring/pkg/observability"
	"github.com/chenzc24/padring/pkg/ring"
	"github.com/chenzc24/padring/pkg/ring/check"
	"github.com/chenzc24/padring/pkg/ring/fill"
	"github.com/chenzc24/padring/pkg/ring/place"
)

// Runner encapsulates pipeline execution with caching.
// Both CLI and API can use this to avoid duplicating caching logic.
//
// The Runner is stateless except for the cache and logger - it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs the complete decode → resolve pipeline with caching.
//
// Run-level logging goes to opts.Logger when set (the API passes a
// request-scoped logger there), falling back to the runner's.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := opts.Logger

	runStart := time.Now()
	result := &Result{RunID: uuid.New().String()}
	hooks := observability.Pipeline()

	// Stage 1: Decode
	decodeStart := time.Now()
	hooks.OnDecodeStart(ctx, opts.Source())
	spec, l, err := Decode(opts)
	if err != nil {
		hooks.OnDecodeComplete(ctx, opts.Source(), 0, time.Since(decodeStart), err)
		return nil, err
	}
	result.Layout = l
	result.Stats.DecodeTime = time.Since(decodeStart)
	hooks.OnDecodeComplete(ctx, opts.Source(), l.Len(), result.Stats.DecodeTime, nil)

	logger.Info("decoded spec",
		"source", opts.Source(),
		"process", l.Config.Process,
		"instances", l.Len(),
		"duration", result.Stats.DecodeTime)

	// Try the artifact cache before resolving (unless refresh requested)
	specHash := cache.Hash(spec)
	artifactKey := r.Keyer.ArtifactKey(specHash, opts.ArtifactKeyOpts())
	if !opts.Refresh {
		if a, ok := r.lookupArtifact(ctx, artifactKey); ok {
			result.Artifact = a
			result.Stats.InstanceCount = len(a.Instances)
			result.Stats.SynthesizedCount = countSynthesized(a)
			result.CacheInfo.ArtifactHit = true

			hooks.OnRunComplete(ctx, result.RunID,
				result.Stats.SynthesizedCount, time.Since(runStart), nil)
			logger.Info("resolved ring from cache",
				"instances", result.Stats.InstanceCount)
			return result, nil
		}
	}

	// Stages 2-7: Resolve
	resolveStart := time.Now()
	fillRes, err := r.Resolve(ctx, l)
	result.Stats.ResolveTime = time.Since(resolveStart)
	if err != nil {
		hooks.OnRunComplete(ctx, result.RunID, 0, time.Since(runStart), err)
		return nil, err
	}
	result.Stats.InstanceCount = l.Len()
	result.Stats.SynthesizedCount = fillRes.Inserted()

	result.Artifact = padringio.BuildArtifact(l)
	r.storeArtifact(ctx, artifactKey, result.Artifact)

	hooks.OnRunComplete(ctx, result.RunID,
		fillRes.Inserted(), time.Since(runStart), nil)
	logger.Info("resolved ring",
		"instances", l.Len(),
		"synthesized", fillRes.Inserted(),
		"duration", result.Stats.ResolveTime)

	return result, nil
}

// Resolve runs the staged resolution over a decoded layout in place. The
// fill result reports what synthesis inserted; it is zero when the spec
// carries its own boundary cells.
func (r *Runner) Resolve(ctx context.Context, l *ring.Layout) (fill.Result, error) {
	var fillRes fill.Result
	stages := []struct {
		name string
		run  func(*ring.Layout) error
	}{
		{"check_spec", check.Early},
		{"place", place.Resolve},
		{"synthesize", func(l *ring.Layout) error {
			res, err := fill.Synthesize(l)
			fillRes = res
			return err
		}},
		{"place_cells", place.Resolve},
		{"inner_pads", place.ResolveInner},
		{"check_layout", check.Late},
	}

	hooks := observability.Pipeline()
	for _, stage := range stages {
		start := time.Now()
		hooks.OnStageStart(ctx, stage.name)
		err := stage.run(l)
		hooks.OnStageComplete(ctx, stage.name, time.Since(start), err)
		if err != nil {
			return fillRes, err
		}
		r.Logger.Debug("stage complete",
			"stage", stage.name,
			"duration", time.Since(start))
	}
	return fillRes, nil
}

// lookupArtifact fetches and decodes a cached artifact. Decode failures are
// treated as misses so a corrupt entry never fails a run.
func (r *Runner) lookupArtifact(ctx context.Context, key string) (padringio.Artifact, bool) {
	data, hit, err := r.Cache.Get(ctx, key)
	if err != nil || !hit {
		observability.Cache().OnCacheMiss(ctx, "artifact")
		return padringio.Artifact{}, false
	}
	a, err := padringio.UnmarshalArtifact(data)
	if err != nil {
		observability.Cache().OnCacheMiss(ctx, "artifact")
		return padringio.Artifact{}, false
	}
	observability.Cache().OnCacheHit(ctx, "artifact")
	return a, true
}

// storeArtifact caches a resolved artifact. Failures are ignored - caching
// is an optimization, never a requirement.
func (r *Runner) storeArtifact(ctx context.Context, key string, a padringio.Artifact) {
	data, err := padringio.MarshalArtifact(a)
	if err != nil {
		return
	}
	if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err == nil {
		observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	}
}

// countSynthesized counts the synthesized instances in an artifact.
func countSynthesized(a padringio.Artifact) int {
	n := 0
	for _, inst := range a.Instances {
		if inst.Synthesized {
			n++
		}
	}
	return n
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
