// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package analyze is the service used by the CLI and the HTTP server. It
// rejects unsupported uploads, decodes and extracts documents, persists the
// result and projects records onto graphs.
package analyze

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/curriculum-graph/internal/decode"
	"github.com/pdiddy/curriculum-graph/internal/extract"
	"github.com/pdiddy/curriculum-graph/internal/graph"
	"github.com/pdiddy/curriculum-graph/internal/lexicon"
	"github.com/pdiddy/curriculum-graph/internal/store"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// ErrUnsupportedKind is returned for uploads whose extension is neither
// .docx nor .pdf. No parsing is attempted.
var ErrUnsupportedKind = errors.New("unsupported file type: only .docx and .pdf are accepted")

// ErrNoRecords is returned by Combine when none of the requested ids exist.
var ErrNoRecords = errors.New("no stored records found")

// loadConcurrency bounds parallel loads in Combine.
const loadConcurrency = 4

// Repository is the persistence the service needs. *store.Store satisfies it.
type Repository interface {
	Save(ctx context.Context, info types.FileInfo, rec *types.DisciplineRecord) (types.FileInfo, error)
	Load(ctx context.Context, fileID string) (*types.DisciplineRecord, error)
	List(ctx context.Context) ([]types.FileInfo, error)
	Delete(ctx context.Context, fileID string) error
}

// Service ties decoding, extraction, persistence and graph projection
// together. It is safe for concurrent use.
type Service struct {
	repo     Repository
	pipeline *extract.Pipeline
	graphs   *graph.Builder
	logger   *slog.Logger
	decode   func(ctx context.Context, kind types.DocumentKind, data []byte) (*types.Document, error)
}

// NewService builds a Service. repo may be nil when records are never
// persisted; Analyze, Get, List, Delete and Combine then fail.
func NewService(lex *lexicon.Lexicon, repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		repo:     repo,
		pipeline: extract.NewPipeline(lex, logger),
		graphs:   graph.NewBuilder(lex),
		logger:   logger,
		decode:   decode.Decode,
	}
}

// Parse decodes and extracts one document without storing it. A document
// that cannot be decoded yields a record holding only defaults.
func (s *Service) Parse(ctx context.Context, filename string, data []byte) (*types.DisciplineRecord, error) {
	kind, ok := types.KindFromFilename(filename)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedKind, filename)
	}

	doc, err := s.decode(ctx, kind, data)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn("decode failed, returning empty record",
			"file", filename, "kind", kind, "error", err)
		doc = nil
	}

	rec := s.pipeline.Extract(doc)
	s.logger.Info("parsed document",
		"file", filename,
		"name", rec.Name,
		"category", rec.Category,
		"sections", len(rec.Sections),
		"software", len(rec.Software),
		"literature", rec.Literature.Len())
	return rec, nil
}

// Analyze parses a document, stores the record under a new id and returns
// it with its graph.
func (s *Service) Analyze(ctx context.Context, filename string, data []byte) (*types.Analysis, error) {
	rec, err := s.Parse(ctx, filename, data)
	if err != nil {
		return nil, err
	}
	if s.repo == nil {
		return nil, errors.New("analyze: no repository configured")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generating file id: %w", err)
	}
	info := types.FileInfo{ID: id.String(), Filename: filename, FileSize: int64(len(data))}
	if _, err := s.repo.Save(ctx, info, rec); err != nil {
		return nil, fmt.Errorf("saving %s: %w", filename, err)
	}
	s.logger.Info("stored record", "file_id", info.ID, "file", filename)

	return s.project(info.ID, rec), nil
}

// Graph projects a record without touching the repository.
func (s *Service) Graph(rec *types.DisciplineRecord) types.Graph {
	return s.graphs.Build(rec)
}

// Get loads a stored record and its graph. The error wraps
// store.ErrNotFound for unknown ids.
func (s *Service) Get(ctx context.Context, fileID string) (*types.Analysis, error) {
	if s.repo == nil {
		return nil, errors.New("get: no repository configured")
	}
	rec, err := s.repo.Load(ctx, fileID)
	if err != nil {
		return nil, err
	}
	return s.project(fileID, rec), nil
}

// List returns every stored file, newest first.
func (s *Service) List(ctx context.Context) ([]types.FileInfo, error) {
	if s.repo == nil {
		return nil, errors.New("list: no repository configured")
	}
	return s.repo.List(ctx)
}

// Delete removes a stored file and its record.
func (s *Service) Delete(ctx context.Context, fileID string) error {
	if s.repo == nil {
		return errors.New("delete: no repository configured")
	}
	if err := s.repo.Delete(ctx, fileID); err != nil {
		return err
	}
	s.logger.Info("deleted record", "file_id", fileID)
	return nil
}

// Combine loads the given records and builds one graph over them. Unknown
// ids are skipped; ErrNoRecords is returned when none remain. Records keep
// the order of ids.
func (s *Service) Combine(ctx context.Context, fileIDs []string) (*types.MultiAnalysis, error) {
	if s.repo == nil {
		return nil, errors.New("combine: no repository configured")
	}

	loaded := make([]*types.DisciplineRecord, len(fileIDs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(loadConcurrency)
	for i, id := range fileIDs {
		g.Go(func() error {
			rec, err := s.repo.Load(gctx, id)
			if errors.Is(err, store.ErrNotFound) {
				s.logger.Debug("combine: skipping unknown id", "file_id", id)
				return nil
			}
			if err != nil {
				return fmt.Errorf("loading %s: %w", id, err)
			}
			loaded[i] = rec
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recs := make([]*types.DisciplineRecord, 0, len(loaded))
	for _, rec := range loaded {
		if rec != nil {
			recs = append(recs, rec)
		}
	}
	if len(recs) == 0 {
		return nil, ErrNoRecords
	}

	return &types.MultiAnalysis{
		Disciplines: recs,
		Graph:       s.graphs.BuildMulti(recs),
	}, nil
}

func (s *Service) project(fileID string, rec *types.DisciplineRecord) *types.Analysis {
	return &types.Analysis{
		FileID:   fileID,
		Metadata: rec,
		Graph:    s.graphs.Build(rec),
	}
}
