// Package httpapi serves plan PDFs over HTTP.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lvillar/planpdf"
	"github.com/lvillar/planpdf/archive"
	"github.com/lvillar/planpdf/internal/config"
)

// Archive is the subset of archive.Store used by the server.
type Archive interface {
	SaveArtifact(ctx context.Context, a *planpdf.Artifact, filename string) (archive.Record, error)
	Get(ctx context.Context, id string) (archive.Record, []byte, error)
	List(ctx context.Context, limit int) ([]archive.Record, error)
}

// Server turns backend plan payloads into PDF downloads.
type Server struct {
	cfg    *config.Config
	store  Archive
	logger *slog.Logger
}

// New creates a server. store may be nil, in which case rendered plans are
// not kept and the /plans listing routes answer 404.
func New(cfg *config.Config, store Archive, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{cfg: cfg, store: store, logger: logger}
}

// Routes returns the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/plans", func(r chi.Router) {
		r.Post("/pdf", s.handleRender)
		r.Get("/", s.handleList)
		r.Get("/{id}", s.handleDownload)
	})
	return r
}

// HTTPServer wraps Routes in an http.Server using the configured timeouts.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.cfg.HTTP.Addr,
		Handler:           s.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       s.cfg.HTTP.ReadTimeout,
		WriteTimeout:      s.cfg.HTTP.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}
}

// handleRender renders the payload in the request body.
// POST /plans/pdf
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.HTTP.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}

	payload, err := planpdf.ParsePayload(bytes.NewReader(body))
	if err != nil {
		writeError(w, statusFor(err), err)
		return
	}
	var extra struct {
		Goal string `json:"goal"`
	}
	_ = json.Unmarshal(body, &extra)
	payload.Goal = extra.Goal

	doc, err := payload.Document()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	opts, err := s.cfg.RenderOptions(s.logger)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	art, err := planpdf.Render(doc, payload.Summary(), s.cfg.ProductName, opts...)
	if err != nil {
		s.logger.Error("render failed", "error", err, "request_id", middleware.GetReqID(r.Context()))
		writeError(w, statusFor(err), err)
		return
	}

	filename := s.cfg.OutputName
	if s.store != nil {
		rec, err := s.store.SaveArtifact(r.Context(), art, filename)
		if err != nil {
			s.logger.Error("archive failed", "error", err, "id", art.ID())
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		w.Header().Set("Location", "/plans/"+rec.ID)
	}
	w.Header().Set("X-Plan-Id", art.ID())
	w.Header().Set("X-Plan-Pages", strconv.Itoa(art.PageCount()))
	writePDF(w, filename, art.Bytes())
}

// handleList lists archived plans, newest first.
// GET /plans?limit=N
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.NotFound(w, r)
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	recs, err := s.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if recs == nil {
		recs = []archive.Record{}
	}
	writeJSON(w, http.StatusOK, recs)
}

// handleDownload returns an archived plan.
// GET /plans/{id}
func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		http.NotFound(w, r)
		return
	}
	rec, data, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, archive.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.Header().Set("X-Plan-Pages", strconv.Itoa(rec.Pages))
	writePDF(w, rec.Filename, data)
}

func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"bytes", ww.BytesWritten(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, planpdf.ErrInvalidParam):
		return http.StatusBadRequest
	case errors.Is(err, planpdf.ErrBackend):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writePDF(w http.ResponseWriter, filename string, data []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
