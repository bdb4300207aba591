// Package server implements the kit generation HTTP API.
//
// # Overview
//
// The server accepts TOML kit definitions over POST and returns rendered
// plan artifacts. Generation is deterministic, so responses are cached
// on a hash of the definition and the generation parameters; the cache
// backend (none, file, redis) is chosen by the caller.
//
// # Endpoints
//
//   - GET  /healthz         liveness probe
//   - GET  /scales          supported model scales as JSON
//   - GET  /papers          supported paper formats as JSON
//   - POST /generate        kit definition in, plan artifact out
//
// POST /generate reads the definition from the request body and the
// output format from the ?format query parameter. Single-file formats
// (pdf, json) are returned as raw bytes; page-per-file formats (svg,
// png) are returned as a JSON artifact envelope with base64 file data.
package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/kitplan/kitplan/pkg/cache"
	"github.com/kitplan/kitplan/pkg/errors"
	"github.com/kitplan/kitplan/pkg/kit"
	"github.com/kitplan/kitplan/pkg/measure"
	"github.com/kitplan/kitplan/pkg/observability"
	"github.com/kitplan/kitplan/pkg/render"
)

// maxDefinitionSize bounds the request body of POST /generate.
const maxDefinitionSize = 1 << 20 // 1 MiB

// DefaultCacheTTL is how long cached artifacts stay valid.
const DefaultCacheTTL = 24 * time.Hour

// Server handles kit generation requests.
type Server struct {
	logger *log.Logger
	cache  cache.Cache
	ttl    time.Duration
}

// New creates a Server. A nil artifactCache disables caching.
func New(logger *log.Logger, artifactCache cache.Cache) *Server {
	if artifactCache == nil {
		artifactCache = cache.NewNullCache()
	}
	return &Server{
		logger: logger,
		cache:  artifactCache,
		ttl:    DefaultCacheTTL,
	}
}

// Router builds the HTTP handler.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Get("/scales", s.handleScales)
	r.Get("/papers", s.handlePapers)
	r.Post("/generate", s.handleGenerate)

	return r
}

// logRequests logs one line per request with method, path, status and
// duration.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start).Round(time.Millisecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

func (s *Server) handleScales(w http.ResponseWriter, r *http.Request) {
	type scaleInfo struct {
		Name        string  `json:"name"`
		Ratio       float64 `json:"ratio"`
		Description string  `json:"description"`
	}
	scales := measure.Scales()
	out := make([]scaleInfo, 0, len(scales))
	for _, sc := range scales {
		out = append(out, scaleInfo{Name: sc.Name, Ratio: sc.Ratio, Description: sc.Description})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handlePapers(w http.ResponseWriter, r *http.Request) {
	type paperInfo struct {
		Name   string  `json:"name"`
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
	}
	names := render.PaperNames()
	out := make([]paperInfo, 0, len(names))
	for _, name := range names {
		paper, err := render.PaperSize(name)
		if err != nil {
			s.writeError(w, http.StatusInternalServerError, err)
			return
		}
		out = append(out, paperInfo{Name: paper.Name, Width: paper.Width, Height: paper.Height})
	}
	s.writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxDefinitionSize+1))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("reading body: %w", err))
		return
	}
	if len(body) > maxDefinitionSize {
		s.writeError(w, http.StatusRequestEntityTooLarge,
			fmt.Errorf("definition exceeds %d bytes", maxDefinitionSize))
		return
	}

	def, err := kit.ParseDefinition(body)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}
	format := r.URL.Query().Get("format")
	if format == "" {
		format = kit.FormatPDF
	}
	def.Formats = []string{format}
	if def.Name == "" {
		def.Name = "kit"
	}
	if err := def.ValidateAndSetDefaults(); err != nil {
		s.writeError(w, http.StatusBadRequest, err)
		return
	}

	key := cache.ArtifactKey(cache.Hash(body), format, def.Paper, def.Scale, def.Margin)
	if data, hit, err := s.cache.Get(r.Context(), key); err != nil {
		s.logger.Warn("cache get failed", "err", err)
	} else if hit {
		observability.Cache().OnCacheHit(key)
		s.logger.Debug("artifact cache hit", "key", key)
		s.writeArtifactBytes(w, format, def.Name, data)
		return
	}
	observability.Cache().OnCacheMiss(key)

	artifact, err := s.generate(def)
	if err != nil {
		status := http.StatusInternalServerError
		switch errors.GetCode(err) {
		case errors.ErrCodePieceTooLarge, errors.ErrCodeInvalidInput,
			errors.ErrCodeParse, errors.ErrCodeUnknownUnit, errors.ErrCodeInvalidScale:
			status = http.StatusUnprocessableEntity
		}
		s.writeError(w, status, err)
		return
	}

	data, err := encodeArtifact(artifact)
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err)
		return
	}
	if err := s.cache.Set(r.Context(), key, data, s.ttl); err != nil {
		s.logger.Warn("cache set failed", "err", err)
	} else {
		observability.Cache().OnCacheSet(key, len(data))
	}
	s.writeArtifactBytes(w, format, def.Name, data)
}

// generate runs the pipeline for one request.
func (s *Server) generate(def *kit.Definition) (render.Artifact, error) {
	parts, err := def.Components()
	if err != nil {
		return render.Artifact{}, err
	}
	opts := def.Options
	opts.Logger = s.logger
	k, err := kit.New(opts)
	if err != nil {
		return render.Artifact{}, err
	}
	for _, c := range parts {
		if err := k.Add(c); err != nil {
			return render.Artifact{}, err
		}
	}
	result, err := k.Generate()
	if err != nil {
		return render.Artifact{}, err
	}
	return result.Artifacts[0], nil
}

// encodeArtifact flattens an artifact into the response (and cache)
// representation: raw bytes for single-file artifacts, a JSON envelope
// for multi-file ones.
func encodeArtifact(artifact render.Artifact) ([]byte, error) {
	if len(artifact.Files) == 1 {
		return artifact.Files[0].Data, nil
	}
	return json.Marshal(artifact)
}

func (s *Server) writeArtifactBytes(w http.ResponseWriter, format, name string, data []byte) {
	contentType := "application/json"
	switch format {
	case kit.FormatPDF:
		contentType = "application/pdf"
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".pdf"))
	case kit.FormatSVG:
		// A single-page SVG kit has exactly one file; multi-page kits
		// arrive as a JSON envelope, which shares the default type.
		if len(data) > 0 && data[0] == '<' {
			contentType = "image/svg+xml"
		}
	case kit.FormatPNG:
		if len(data) > 0 && data[0] != '{' {
			contentType = "image/png"
		}
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", "err", err)
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, err error) {
	s.logger.Warn("request failed", "status", status, "err", err)
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
