// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package server exposes the analyze service over HTTP with a chi router.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pdiddy/curriculum-graph/internal/analyze"
	"github.com/pdiddy/curriculum-graph/internal/httputil"
	"github.com/pdiddy/curriculum-graph/internal/store"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// uploadField is the multipart form field carrying the document.
const uploadField = "file"

// multipartMemory is the part of an upload kept in memory before spilling
// to temporary files.
const multipartMemory = 8 << 20

// Server serves the curriculum API.
type Server struct {
	svc    *analyze.Service
	cfg    types.ServerConfig
	logger *slog.Logger
	router chi.Router
}

// New builds a Server and its routes.
func New(svc *analyze.Service, cfg types.ServerConfig, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = types.DefaultConfig().Server.MaxUploadBytes
	}
	s := &Server{svc: svc, cfg: cfg, logger: logger}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(httputil.RequestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Route("/api", func(r chi.Router) {
		r.Post("/analyze", s.handleAnalyze)
		r.Get("/files", s.handleList)
		r.Get("/files/{id}", s.handleGet)
		r.Delete("/files/{id}", s.handleDelete)
		r.Post("/multi-graph", s.handleMultiGraph)
	})
	s.router = r
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on cfg.Addr until ctx is cancelled, then shuts
// down gracefully within cfg.ShutdownTimeout.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadTimeout:       s.cfg.ReadTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httputil.WriteError(w, http.StatusRequestEntityTooLarge, "file too large")
			return
		}
		httputil.WriteError(w, http.StatusBadRequest, "expected multipart form with a file field")
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	if _, ok := types.KindFromFilename(header.Filename); !ok {
		httputil.WriteError(w, http.StatusBadRequest, "Only PDF/DOCX")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "reading upload: "+err.Error())
		return
	}

	a, err := s.svc.Analyze(r.Context(), header.Filename, data)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	files, err := s.svc.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, files)
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	a, err := s.svc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, a)
}

func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (s *Server) handleMultiGraph(w http.ResponseWriter, r *http.Request) {
	var ids []string
	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, "expected a JSON array of file ids")
		return
	}
	m, err := s.svc.Combine(r.Context(), ids)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, m)
}

// writeServiceError maps service errors onto status codes.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, analyze.ErrUnsupportedKind):
		httputil.WriteError(w, http.StatusBadRequest, "Only PDF/DOCX")
	case errors.Is(err, store.ErrNotFound):
		httputil.WriteError(w, http.StatusNotFound, "File not found")
	case errors.Is(err, analyze.ErrNoRecords):
		httputil.WriteError(w, http.StatusNotFound, "No files found")
	default:
		s.logger.Error("request failed",
			"path", r.URL.Path,
			"request_id", middleware.GetReqID(r.Context()),
			"error", err)
		httputil.WriteError(w, http.StatusInternalServerError, err.Error())
	}
}
