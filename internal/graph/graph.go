// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph projects discipline records onto a node/edge graph for
// visualization. Graphs are derived on every read and never stored.
package graph

import (
	"fmt"
	"regexp"
	"slices"

	"github.com/pdiddy/curriculum-graph/internal/lexicon"
	"github.com/pdiddy/curriculum-graph/internal/text"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// Edge labels.
const (
	LabelUses          = "использует"
	LabelMain          = "осн."
	LabelAdditional    = "доп."
	LabelSharedSection = "общий раздел"
)

// Label truncation lengths, in characters.
const (
	disciplineLabelLen = 60
	sectionLabelLen    = 50
	softwareLabelLen   = 30
	literatureLabelLen = 45
	directionLabelLen  = 40
)

// Literature nodes are capped per list.
const (
	maxMainLiterature       = 6
	maxAdditionalLiterature = 5
)

// Builder turns records into graphs. It is safe for concurrent use.
type Builder struct {
	sectionPrefix *regexp.Regexp
}

// NewBuilder builds a Builder; the lexicon's section prefix is used to
// normalize section names when cross-linking disciplines.
func NewBuilder(lex *lexicon.Lexicon) *Builder {
	return &Builder{sectionPrefix: lex.Re(lex.SectionPrefix)}
}

// Build projects a single record. A nil record yields an empty graph.
func (b *Builder) Build(rec *types.DisciplineRecord) types.Graph {
	g := emptyGraph()
	if rec == nil {
		return g
	}
	b.appendRecord(&g, rec, "")
	return g
}

func emptyGraph() types.Graph {
	return types.Graph{Nodes: []types.GraphNode{}, Edges: []types.GraphEdge{}}
}

// RootID returns the ID of a record's discipline node under prefix.
func RootID(prefix string) string {
	return prefix + "root"
}

func (b *Builder) appendRecord(g *types.Graph, rec *types.DisciplineRecord, prefix string) {
	root := RootID(prefix)
	g.Nodes = append(g.Nodes, types.GraphNode{
		ID:    root,
		Label: text.Truncate(rec.Name, disciplineLabelLen),
		Type:  types.NodeDiscipline,
		Data: map[string]any{
			"name":           rec.Name,
			"direction":      rec.Direction,
			"edu_program":    rec.Program,
			"edu_level":      rec.Level,
			"volume":         rec.Volume,
			"volume_details": rec.VolumeDetails,
			"period":         rec.Period,
			"goals":          rec.Goals,
			"description":    rec.Description,
			"category":       rec.Category,
		},
	})

	for i, sec := range rec.Sections {
		sid := fmt.Sprintf("%ssec-%d", prefix, i)
		linked := sec.LinkedSoftware
		if linked == nil {
			linked = []string{}
		}
		g.Nodes = append(g.Nodes, types.GraphNode{
			ID:    sid,
			Label: text.Truncate(sec.Name, sectionLabelLen),
			Type:  types.NodeSection,
			Data: map[string]any{
				"name":            sec.Name,
				"content":         sec.Content,
				"hours":           hoursData(sec.Hours),
				"index":           i,
				"linked_software": linked,
				"category":        rec.Category,
			},
		})
		g.Edges = append(g.Edges, edge(root, sid, nil))
	}

	added := make(map[int]bool)
	addSoftware := func(idx int) string {
		id := fmt.Sprintf("%ssw-%d", prefix, idx)
		if !added[idx] {
			added[idx] = true
			sw := rec.Software[idx]
			g.Nodes = append(g.Nodes, types.GraphNode{
				ID:    id,
				Label: text.Truncate(sw, softwareLabelLen),
				Type:  types.NodeSoftware,
				Data:  map[string]any{"name": sw, "category": rec.Category},
			})
		}
		return id
	}
	uses := LabelUses
	for i, sec := range rec.Sections {
		sid := fmt.Sprintf("%ssec-%d", prefix, i)
		for _, sw := range sec.LinkedSoftware {
			idx := slices.Index(rec.Software, sw)
			if idx < 0 {
				continue
			}
			g.Edges = append(g.Edges, edge(sid, addSoftware(idx), &uses))
		}
	}
	for idx := range rec.Software {
		if added[idx] {
			continue
		}
		g.Edges = append(g.Edges, edge(root, addSoftware(idx), nil))
	}

	appendLiterature(g, root, prefix+"lm-", types.NodeLitMain, LabelMain, rec.Literature.Main, maxMainLiterature)
	appendLiterature(g, root, prefix+"la-", types.NodeLitAdd, LabelAdditional, rec.Literature.Additional, maxAdditionalLiterature)
}

func appendLiterature(g *types.Graph, root, idPrefix string, typ types.NodeType, firstLabel string, entries []types.LiteratureEntry, limit int) {
	for i, lit := range entries {
		if i == limit {
			break
		}
		id := fmt.Sprintf("%s%d", idPrefix, i)
		label := lit.Title
		if label == "" {
			label = lit.Raw
		}
		g.Nodes = append(g.Nodes, types.GraphNode{
			ID:    id,
			Label: text.Truncate(label, literatureLabelLen),
			Type:  typ,
			Data:  literatureData(lit),
		})
		var l *string
		if i == 0 {
			l = &firstLabel
		}
		g.Edges = append(g.Edges, edge(root, id, l))
	}
}

func edge(source, target string, label *string) types.GraphEdge {
	return types.GraphEdge{Source: source, Target: target, Label: label}
}

func hoursData(h types.Hours) map[string]any {
	return map[string]any{
		"lectures":   h.Lectures,
		"practice":   h.Practice,
		"labs":       h.Labs,
		"self_study": h.SelfStudy,
	}
}

func literatureData(e types.LiteratureEntry) map[string]any {
	var number any
	if e.Number != nil {
		number = *e.Number
	}
	authors := e.Authors
	if authors == nil {
		authors = []string{}
	}
	return map[string]any{
		"raw":        e.Raw,
		"number":     number,
		"authors":    authors,
		"title":      e.Title,
		"year":       e.Year,
		"publisher":  e.Publisher,
		"pages":      e.Pages,
		"url":        e.URL,
		"doi":        e.DOI,
		"isbn":       e.ISBN,
		"entry_type": e.EntryType,
	}
}
