// Package api implements the HTTP layout service behind `padring serve`.
//
// The service exposes the same pipeline the CLI runs locally. One shared
// Runner handles all requests; per-request state is limited to the request
// ID and its scoped logger.
//
// Routes:
//
//	POST /v1/layouts            resolve a ring spec into a layout artifact
//	POST /v1/layouts/svg        resolve a ring spec into an SVG diagram
//	GET  /v1/presets            list the process presets
//	GET  /v1/presets/{process}  one preset with its device catalog
//	GET  /healthz               liveness probe
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/chenzc24/padring/pkg/pipeline"
)

// Server wires the pipeline runner into the HTTP route tree.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
}

// NewServer creates a server around a shared pipeline runner.
func NewServer(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Router builds the HTTP route tree with all middleware applied.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RealIP)
	r.Use(s.requestID)
	r.Use(s.logRequests)
	r.Use(chimw.Recoverer)

	r.Get("/healthz", s.handleHealth)

	r.Route("/v1", func(v1 chi.Router) {
		v1.Post("/layouts", s.handleCreateLayout)
		v1.Post("/layouts/svg", s.handleRenderLayout)
		v1.Get("/presets", s.handleListPresets)
		v1.Get("/presets/{process}", s.handleGetPreset)
	})

	return r
}
