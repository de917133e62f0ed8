// Package pkg provides the core libraries for padring IO ring placement.
//
// # Overview
//
// Padring resolves IO pad ring specifications into fully placed die
// layouts: every pad, corner and boundary cell gets a coordinate, a
// rotation and a resolved voltage domain. The pkg directory is organized
// into five main areas:
//
//  1. [ring] - Domain model (processes, device catalogs, positions, placement, fill, checks)
//  2. [io] - Spec decoding plus artifact and placement script serialization
//  3. [pipeline] - Orchestration (decode → check → place → fill → artifact)
//  4. [render] - SVG ring diagrams
//  5. [cache] - Resolved artifact caching (file, redis, null)
//
// # Architecture
//
// The typical data flow through padring:
//
//	Ring Spec (TOML/JSON)
//	         ↓
//	    [io] package (decode + component classification)
//	         ↓
//	    [ring/check] package (structural validation)
//	         ↓
//	    [ring/place] + [ring/fill] packages (coordinates + boundary synthesis)
//	         ↓
//	    layout artifact → SKILL script / SVG diagram
//
// # Quick Start
//
// Resolve a spec and render the ring:
//
//	import (
//	    "context"
//	    "github.com/chenzc24/padring/pkg/cache"
//	    "github.com/chenzc24/padring/pkg/pipeline"
//	    "github.com/chenzc24/padring/pkg/render"
//	)
//
//	runner := pipeline.NewRunner(cache.NewNullCache(), nil, nil)
//	defer runner.Close()
//
//	res, _ := runner.Execute(context.Background(), pipeline.Options{
//	    SpecPath: "ring.toml",
//	})
//	svg := render.RenderSVG(res.Artifact, render.WithLegend())
//
// # Main Packages
//
// ## Domain Model
//
// [ring] - The ring itself: process presets (uniform c180, variable c55),
// device catalogs with class and domain families, the symbolic position
// grammar, sides and traversal orders, voltage domain resolution.
//
// [ring/place] - Coordinate resolution. Corners pin to the die corners,
// side components resolve along their edge (pitch grid or cumulative
// widths), inner pads land on the midpoint of their referenced pads.
//
// [ring/fill] - Boundary synthesis: filler selection by domain adjacency
// and the auto-fill pass that closes the gaps between placed pads.
//
// [ring/check] - Structural validation before and after placement, with
// per-violation error codes and a ring summary for reports.
//
// ## Input and Output
//
// [io] - Ring spec decoding (TOML via BurntSushi/toml, JSON) into a
// [ring.Layout], the layout artifact (the serialized resolved ring) and
// the SKILL placement script generator.
//
// [render] - Draws an artifact as an SVG die diagram with domain-colored,
// footprint-sized cells. Consumes the artifact alone, never the layout.
//
// ## Infrastructure
//
// [pipeline] - The decode → check → place → fill → artifact pipeline used
// by CLI and API, with artifact caching keyed on spec content hashes.
//
// [cache] - Cache backends: file-based for the CLI, redis for the serve
// deployment, null for tests and --no-cache runs.
//
// [errors] - Structured error codes carried through every stage; the API
// maps them onto HTTP statuses.
//
// [httputil] - JSON request/response plumbing and request ID propagation
// for the layout service.
//
// [observability] - No-op-by-default hook interfaces around pipeline
// stages and cache operations.
//
// [buildinfo] - Version and build metadata for --version and /healthz.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/ring/...     # Specific package
//	go test -run Example       # Examples only
//
// [ring]: https://pkg.go.dev/github.com/chenzc24/padring/pkg/ring
// [ring/place]: https://pkg.go.dev/github.com/chenzc24/padring/pkg/ring/place
// [ring/fill]: https://pkg.go.dev/github.com/chenzc24/padring/pkg/ring/fill
// [ring/check]: https://pkg.go.dev/github.com/chenzc24/padring/pkg/ring/check
// [io]: https://pkg.go.dev/github.com/chenzc24/padring/pkg/io
// [render]: https://pkg.go.dev/github.com/chenzc24/padring/pkg/render
// [pipeline]: https://pkg.go.dev/github.com/chenzc24/padring/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/chenzc24/padring/pkg/cache
// [errors]: https://pkg.go.dev/github.com/chenzc24/padring/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/chenzc24/padring/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/chenzc24/padring/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/chenzc24/padring/pkg/buildinfo
// [ring.Layout]: https://pkg.go.dev/github.com/chenzc24/padring/pkg/ring#Layout
package pkg
