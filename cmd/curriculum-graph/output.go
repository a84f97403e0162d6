// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/curriculum-graph/internal/text"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// writeFormatted encodes v to w as "json" (indented) or "yaml".
func writeFormatted(w io.Writer, format string, v any) error {
	switch format {
	case "json", "":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding YAML: %w", err)
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format %q: use json or yaml", format)
}

// writeFileTable prints stored files as an aligned table.
func writeFileTable(w io.Writer, files []types.FileInfo) {
	if len(files) == 0 {
		fmt.Fprintln(w, "No stored files.")
		return
	}

	fmt.Fprintf(w, "%-36s  %-26s  %-30s  %-15s  %s\n",
		"ID", "Uploaded", "Discipline", "Category", "File")
	fmt.Fprintln(w, strings.Repeat("-", 130))
	for _, f := range files {
		fmt.Fprintf(w, "%-36s  %-26s  %-30s  %-15s  %s\n",
			f.ID, f.UploadDate, text.Truncate(f.DisciplineName, 30), f.Category, f.Filename)
	}
	fmt.Fprintf(w, "\n%d files\n", len(files))
}
