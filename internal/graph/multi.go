// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/pdiddy/curriculum-graph/internal/text"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

const (
	// SuperRootID is the single top node of a multi-document graph.
	SuperRootID    = "super-root"
	superRootLabel = "Дисциплины"

	// NoDirection groups records with neither direction nor program.
	NoDirection = "Без направления"

	minSharedNameLen = 5
)

type directionGroup struct {
	name    string
	members []*types.DisciplineRecord
}

// groupByDirection groups records by direction, falling back to program,
// in order of first appearance.
func groupByDirection(recs []*types.DisciplineRecord) []directionGroup {
	var groups []directionGroup
	index := make(map[string]int)
	for _, rec := range recs {
		if rec == nil {
			continue
		}
		key := rec.Direction
		if key == "" {
			key = rec.Program
		}
		if key == "" {
			key = NoDirection
		}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, directionGroup{name: key})
		}
		groups[i].members = append(groups[i].members, rec)
	}
	return groups
}

// BuildMulti projects several records onto one graph: a super-root, one
// node per direction, each record's subgraph under namespaced IDs, and
// "shared section" edges between sections of different records whose
// normalized names coincide.
func (b *Builder) BuildMulti(recs []*types.DisciplineRecord) types.Graph {
	g := emptyGraph()
	groups := groupByDirection(recs)
	if len(groups) == 0 {
		return g
	}

	total := 0
	for _, grp := range groups {
		total += len(grp.members)
	}
	g.Nodes = append(g.Nodes, types.GraphNode{
		ID:    SuperRootID,
		Label: superRootLabel,
		Type:  types.NodeSuperRoot,
		Data:  map[string]any{"count": total},
	})

	shared := newSectionIndex(b)
	for di, grp := range groups {
		dirID := fmt.Sprintf("dir-%d", di)
		g.Nodes = append(g.Nodes, types.GraphNode{
			ID:    dirID,
			Label: text.Truncate(grp.name, directionLabelLen),
			Type:  types.NodeDirection,
			Data:  map[string]any{"name": grp.name, "count": len(grp.members)},
		})
		g.Edges = append(g.Edges, edge(SuperRootID, dirID, nil))

		for ri, rec := range grp.members {
			prefix := fmt.Sprintf("d%d-%d-", di, ri)
			b.appendRecord(&g, rec, prefix)
			g.Edges = append(g.Edges, edge(dirID, RootID(prefix), nil))
			for si, sec := range rec.Sections {
				shared.add(sec.Name, prefix, fmt.Sprintf("%ssec-%d", prefix, si))
			}
		}
	}

	label := LabelSharedSection
	for _, grp := range shared.groups {
		for i := 0; i < len(grp); i++ {
			for j := i + 1; j < len(grp); j++ {
				if grp[i].owner == grp[j].owner {
					continue
				}
				g.Edges = append(g.Edges, edge(grp[i].id, grp[j].id, &label))
			}
		}
	}
	return g
}

type sectionRef struct {
	owner string
	id    string
}

// sectionIndex groups section node IDs by normalized name, keeping
// first-seen order for both groups and members.
type sectionIndex struct {
	b      *Builder
	fold   cases.Caser
	index  map[string]int
	groups [][]sectionRef
}

func newSectionIndex(b *Builder) *sectionIndex {
	return &sectionIndex{b: b, fold: cases.Fold(), index: make(map[string]int)}
}

func (s *sectionIndex) add(name, owner, id string) {
	key := s.b.NormalizeSectionName(name, s.fold)
	if text.Len(key) <= minSharedNameLen {
		return
	}
	i, ok := s.index[key]
	if !ok {
		i = len(s.groups)
		s.index[key] = i
		s.groups = append(s.groups, nil)
	}
	s.groups[i] = append(s.groups[i], sectionRef{owner: owner, id: id})
}

// NormalizeSectionName case-folds name and strips a "Раздел N." style
// numbering prefix. fold must not be shared between goroutines.
func (b *Builder) NormalizeSectionName(name string, fold cases.Caser) string {
	n := strings.TrimSpace(fold.String(text.Normalize(name)))
	if b.sectionPrefix != nil {
		if m := b.sectionPrefix.FindString(n); m != "" {
			n = n[len(m):]
		}
	}
	return strings.TrimSpace(n)
}
