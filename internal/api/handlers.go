package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/chenzc24/padring/pkg/buildinfo"
	padringerrors "github.com/chenzc24/padring/pkg/errors"
	"github.com/chenzc24/padring/pkg/httputil"
	padringio "github.com/chenzc24/padring/pkg/io"
	"github.com/chenzc24/padring/pkg/pipeline"
	"github.com/chenzc24/padring/pkg/render"
	"github.com/chenzc24/padring/pkg/ring"
)

var serverStart = time.Now()

// layoutRequest is the POST /v1/layouts body. The spec travels as a plain
// string in either supported encoding.
type layoutRequest struct {
	Spec    string `json:"spec"`
	Format  string `json:"format"`
	Order   string `json:"order,omitempty"`
	NoFill  bool   `json:"no_fill,omitempty"`
	Refresh bool   `json:"refresh,omitempty"`
}

// layoutResponse wraps the resolved artifact with run metadata.
type layoutResponse struct {
	RunID       string             `json:"run_id"`
	CacheHit    bool               `json:"cache_hit"`
	Synthesized int                `json:"synthesized"`
	Artifact    padringio.Artifact `json:"artifact"`
}

// resolveLayout decodes the request and runs the pipeline. On failure the
// error response is already written and ok is false.
func (s *Server) resolveLayout(w http.ResponseWriter, r *http.Request) (*pipeline.Result, bool) {
	var req layoutRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	if req.Spec == "" {
		s.writeError(w, r, padringerrors.New(padringerrors.ErrCodeInvalidSpec,
			"spec content is required"))
		return nil, false
	}

	opts := pipeline.Options{
		Spec:    []byte(req.Spec),
		Format:  req.Format,
		Order:   req.Order,
		NoFill:  req.NoFill,
		Refresh: req.Refresh,
		Logger:  s.logger.With("request_id", httputil.RequestIDFrom(r.Context())),
	}

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return nil, false
	}
	return res, true
}

// handleCreateLayout resolves a posted spec into a layout artifact.
func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	res, ok := s.resolveLayout(w, r)
	if !ok {
		return
	}

	httputil.WriteJSON(w, http.StatusOK, layoutResponse{
		RunID:       res.RunID,
		CacheHit:    res.CacheInfo.ArtifactHit,
		Synthesized: res.Stats.SynthesizedCount,
		Artifact:    res.Artifact,
	})
}

// handleRenderLayout resolves a posted spec and answers with the ring
// diagram instead of the artifact JSON.
func (s *Server) handleRenderLayout(w http.ResponseWriter, r *http.Request) {
	res, ok := s.resolveLayout(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(render.RenderSVG(res.Artifact, render.WithLegend()))
}

// presetResponse describes one process preset: its default ring parameters
// and the device catalog.
type presetResponse struct {
	Process    string        `json:"process"`
	Uniform    bool          `json:"uniform"`
	Order      string        `json:"order"`
	PadWidth   float64       `json:"pad_width"`
	PadHeight  float64       `json:"pad_height"`
	PadSpacing float64       `json:"pad_spacing,omitempty"`
	CornerSize float64       `json:"corner_size"`
	Library    string        `json:"library"`
	View       string        `json:"view"`
	AutoFill   bool          `json:"auto_fill"`
	Devices    []deviceEntry `json:"devices"`
}

// deviceEntry is one catalog row in a preset response.
type deviceEntry struct {
	Device string  `json:"device"`
	Class  string  `json:"class"`
	Family string  `json:"family,omitempty"`
	Width  float64 `json:"width,omitempty"`
}

// buildPreset assembles the preset response for one process.
func buildPreset(p ring.Process) (presetResponse, error) {
	cfg, err := ring.DefaultConfig(p)
	if err != nil {
		return presetResponse{}, err
	}

	catalog := ring.Catalog(p)
	devices := make([]deviceEntry, 0, len(catalog))
	for _, e := range catalog {
		d := deviceEntry{
			Device: e.Device,
			Class:  e.Class.String(),
			Width:  e.Width,
		}
		if e.Family != ring.FamilyUnknown {
			d.Family = e.Family.String()
		}
		devices = append(devices, d)
	}

	return presetResponse{
		Process:    string(cfg.Process),
		Uniform:    p.Uniform(),
		Order:      string(cfg.Order),
		PadWidth:   cfg.PadWidth,
		PadHeight:  cfg.PadHeight,
		PadSpacing: cfg.PadSpacing,
		CornerSize: cfg.CornerSize,
		Library:    cfg.Library,
		View:       cfg.View,
		AutoFill:   cfg.AutoFill,
		Devices:    devices,
	}, nil
}

// handleListPresets returns every process preset.
func (s *Server) handleListPresets(w http.ResponseWriter, r *http.Request) {
	processes := ring.Processes()
	presets := make([]presetResponse, 0, len(processes))
	for _, p := range processes {
		preset, err := buildPreset(p)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		presets = append(presets, preset)
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"presets": presets})
}

// handleGetPreset returns one process preset by name.
func (s *Server) handleGetPreset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "process")
	p, err := ring.ParseProcess(name)
	if err != nil {
		s.writeError(w, r, padringerrors.New(padringerrors.ErrCodeNotFound,
			"unknown process %q", name))
		return
	}
	preset, err := buildPreset(p)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, preset)
}

// handleHealth is the liveness probe.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
		"uptime":  time.Since(serverStart).Truncate(time.Second).String(),
	})
}
