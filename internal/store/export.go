// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// Export formats.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// ExportEntry is one stored file with its full record.
type ExportEntry struct {
	File   types.FileInfo          `json:"file" yaml:"file"`
	Record *types.DisciplineRecord `json:"record" yaml:"record"`
}

// Export writes the stored records to w in the given format. With no ids
// every stored file is exported, newest first; otherwise only the listed
// ids, in the order given. Unknown ids are skipped.
func (s *Store) Export(ctx context.Context, w io.Writer, format string, ids ...string) error {
	entries, err := s.exportEntries(ctx, ids)
	if err != nil {
		return err
	}

	switch format {
	case FormatYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("marshaling YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		return nil
	}
	return fmt.Errorf("unknown export format %q", format)
}

func (s *Store) exportEntries(ctx context.Context, ids []string) ([]ExportEntry, error) {
	files, err := s.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying for export: %w", err)
	}

	byID := make(map[string]types.FileInfo, len(files))
	for _, f := range files {
		byID[f.ID] = f
	}
	if len(ids) == 0 {
		for _, f := range files {
			ids = append(ids, f.ID)
		}
	}

	entries := []ExportEntry{}
	for _, id := range ids {
		fi, ok := byID[id]
		if !ok {
			continue
		}
		rec, err := s.Load(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("loading %s for export: %w", id, err)
		}
		entries = append(entries, ExportEntry{File: fi, Record: rec})
	}
	return entries, nil
}
