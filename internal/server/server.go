// Package server exposes drawkit rendering over HTTP.
//
// Routes:
//
//	GET  /healthz              liveness and build version
//	POST /render?format=svg    render the JSON document in the body
//	POST /paths                outline of every element as JSON
//
// /render accepts the query parameters format, padding, outlines, detailed
// and refresh. Errors are returned as {"code": ..., "error": ...} (plus
// "element" when one element is at fault) with the
// status from [errors.HTTPStatus].
package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/drawkit/pkg/buildinfo"
	"github.com/matzehuels/drawkit/pkg/diagram"
	"github.com/matzehuels/drawkit/pkg/errors"
	"github.com/matzehuels/drawkit/pkg/observability"
	"github.com/matzehuels/drawkit/pkg/pipeline"
	"github.com/matzehuels/drawkit/pkg/render/styles"
)

// MaxBodyBytes caps the size of a request document.
const MaxBodyBytes = 10 << 20

// Server holds the shared runner and defaults for all requests.
type Server struct {
	Runner *pipeline.Runner
	Theme  styles.Theme
	Logger *log.Logger
}

// New creates a server. A nil logger falls back to the runner's logger.
func New(runner *pipeline.Runner, theme styles.Theme, logger *log.Logger) *Server {
	if logger == nil {
		logger = runner.Logger
	}
	return &Server{Runner: runner, Theme: theme, Logger: logger}
}

// Handler returns the chi router serving all routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/healthz", s.handleHealth)
	r.Post("/render", s.handleRender)
	r.Post("/paths", s.handlePaths)

	return r
}

// observe logs each request and reports it to the HTTP hooks.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		ww.Header().Set("Server", buildinfo.UserAgent())
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		observability.HTTP().OnResponse(r.Context(), r.Method, r.URL.Path, status, elapsed)
		s.Logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", elapsed,
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	opts, err := s.renderOptions(r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	doc, err := readDocument(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	result, err := s.Runner.Execute(r.Context(), doc, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	format := opts.Formats[0]
	cacheStatus := "miss"
	if result.CacheHit {
		cacheStatus = "hit"
	}
	w.Header().Set("Content-Type", pipeline.ContentType(format))
	w.Header().Set("X-Drawkit-Cache", cacheStatus)
	w.Header().Set("X-Drawkit-Document", result.DocHash)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[format])
}

func (s *Server) handlePaths(w http.ResponseWriter, r *http.Request) {
	doc, err := readDocument(w, r)
	if err != nil {
		s.writeError(w, err)
		return
	}
	paths, err := s.Runner.Paths(doc)
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, paths)
}

// renderOptions builds pipeline options from the query string.
func (s *Server) renderOptions(r *http.Request) (pipeline.Options, error) {
	q := r.URL.Query()
	opts := pipeline.Options{
		Formats: []string{pipeline.FormatSVG},
		Theme:   s.Theme,
		Padding: pipeline.DefaultPadding,
		Logger:  s.Logger,
	}
	if f := q.Get("format"); f != "" {
		if err := pipeline.ValidateFormat(f); err != nil {
			return opts, err
		}
		opts.Formats = []string{f}
	}
	if p := q.Get("padding"); p != "" {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "padding %q", p)
		}
		opts.Padding = v
	}
	for name, dst := range map[string]*bool{
		"outlines": &opts.Outlines,
		"detailed": &opts.Detailed,
		"refresh":  &opts.Refresh,
	} {
		v := q.Get(name)
		if v == "" {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidInput, err, "%s %q", name, v)
		}
		*dst = b
	}
	return opts, nil
}

func readDocument(w http.ResponseWriter, r *http.Request) (*diagram.Document, error) {
	return diagram.Read(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
}

type errorBody struct {
	Code    errors.Code `json:"code"`
	Error   string      `json:"error"`
	Element string      `json:"element,omitempty"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	if status >= http.StatusInternalServerError {
		s.Logger.Error("request failed", "error", err)
	} else {
		s.Logger.Debug("rejected request", "code", code, "error", err)
	}
	writeJSON(w, status, errorBody{Code: code, Error: errors.UserMessage(err), Element: errors.ElementID(err)})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
