// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/pdiddy/curriculum-graph/internal/analyze"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze FILE...",
	Short: "Parse curriculum documents and print the recovered records",
	Long: `Analyze decodes each .docx or .pdf file, extracts the discipline record
and prints it as JSON or YAML. With --save the records are also written to
the database; with --graph the graph projection is printed with each record.

Files are processed concurrently; output keeps the argument order. A file
that fails is reported on stderr and the remaining files still run.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

// analyzeResult is the printed form of one analyzed file.
type analyzeResult struct {
	File     string                  `json:"file" yaml:"file"`
	FileID   string                  `json:"file_id,omitempty" yaml:"file_id,omitempty"`
	Metadata *types.DisciplineRecord `json:"metadata" yaml:"metadata"`
	Graph    *types.Graph            `json:"graph,omitempty" yaml:"graph,omitempty"`
	Error    string                  `json:"error,omitempty" yaml:"error,omitempty"`
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	save, _ := cmd.Flags().GetBool("save")
	withGraph, _ := cmd.Flags().GetBool("graph")
	format, _ := cmd.Flags().GetString("format")
	jobs, _ := cmd.Flags().GetInt("jobs")

	rt, err := newRuntime(save)
	if err != nil {
		return err
	}
	defer rt.close()

	results := analyzeFiles(cmd.Context(), rt.svc, args, save, withGraph, jobs)

	failed := 0
	for _, r := range results {
		if r.Error != "" {
			fmt.Fprintf(os.Stderr, "failed  %s: %s\n", r.File, r.Error)
			failed++
		}
	}

	var out any = results
	if len(results) == 1 {
		out = results[0]
	}
	if err := writeFormatted(cmd.OutOrStdout(), format, out); err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("%d file(s) failed", failed)
	}
	return nil
}

// analyzeFiles runs the service over paths with at most jobs files in
// flight. Per-file failures are recorded in the result, never returned.
func analyzeFiles(ctx context.Context, svc *analyze.Service, paths []string, save, withGraph bool, jobs int) []analyzeResult {
	if ctx == nil {
		ctx = context.Background()
	}
	if jobs <= 0 {
		jobs = 1
	}
	results := make([]analyzeResult, len(paths))

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			results[i] = analyzeFile(ctx, svc, path, save, withGraph)
			return nil
		})
	}
	g.Wait()
	return results
}

func analyzeFile(ctx context.Context, svc *analyze.Service, path string, save, withGraph bool) analyzeResult {
	res := analyzeResult{File: path}
	data, err := os.ReadFile(path)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	name := filepath.Base(path)

	if save {
		a, err := svc.Analyze(ctx, name, data)
		if err != nil {
			res.Error = err.Error()
			return res
		}
		res.FileID = a.FileID
		res.Metadata = a.Metadata
		if withGraph {
			res.Graph = &a.Graph
		}
		return res
	}

	rec, err := svc.Parse(ctx, name, data)
	if err != nil {
		res.Error = err.Error()
		return res
	}
	res.Metadata = rec
	if withGraph {
		g := svc.Graph(rec)
		res.Graph = &g
	}
	return res
}

func init() {
	analyzeCmd.Flags().Bool("save", false, "store the records in the database")
	analyzeCmd.Flags().Bool("graph", false, "include the graph projection")
	analyzeCmd.Flags().String("format", "json", "output format: json or yaml")
	analyzeCmd.Flags().IntP("jobs", "j", 4, "files analyzed in parallel")

	rootCmd.AddCommand(analyzeCmd)
}
