// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/cases"

	"github.com/pdiddy/curriculum-graph/internal/lexicon"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

func testRecord(name, direction string, sections ...string) *types.DisciplineRecord {
	rec := types.NewDisciplineRecord()
	rec.Name = name
	rec.Direction = direction
	for _, s := range sections {
		rec.Sections = append(rec.Sections, types.Section{Name: s, Hours: types.ZeroHours()})
	}
	return rec
}

func nodeByID(g types.Graph, id string) (types.GraphNode, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return types.GraphNode{}, false
}

func edgesLabelled(g types.Graph, label string) []types.GraphEdge {
	var out []types.GraphEdge
	for _, e := range g.Edges {
		if e.Label != nil && *e.Label == label {
			out = append(out, e)
		}
	}
	return out
}

func TestBuild(t *testing.T) {
	b := NewBuilder(lexicon.Default())
	rec := testRecord(strings.Repeat("Очень длинное название ", 5), "09.03.01 Информатика", "Тема 1. Введение", "Тема 2. Данные")
	rec.Software = []string{"Python", "Git", "AutoCAD"}
	rec.Sections[0].LinkedSoftware = []string{"Python"}
	rec.Sections[1].LinkedSoftware = []string{"Python", "Git", "Unknown"}
	for i := range 8 {
		rec.Literature.Main = append(rec.Literature.Main, types.LiteratureEntry{Raw: "Книга " + string(rune('A'+i)), Title: ""})
	}
	rec.Literature.Additional = []types.LiteratureEntry{{Raw: "raw", Title: "Дополнительная книга"}}

	g := b.Build(rec)

	root, ok := nodeByID(g, "root")
	require.True(t, ok)
	assert.Equal(t, types.NodeDiscipline, root.Type)
	assert.Equal(t, 60, len([]rune(root.Label)))
	assert.Equal(t, "09.03.01 Информатика", root.Data["direction"])

	sec, ok := nodeByID(g, "sec-1")
	require.True(t, ok)
	assert.Equal(t, 1, sec.Data["index"])

	// Python appears once even though two sections use it.
	count := 0
	for _, n := range g.Nodes {
		if n.Type == types.NodeSoftware {
			count++
		}
	}
	assert.Equal(t, 3, count)
	assert.Len(t, edgesLabelled(g, LabelUses), 3)

	// AutoCAD is reachable only from the root.
	var fromRoot bool
	for _, e := range g.Edges {
		if e.Source == "root" && e.Target == "sw-2" {
			fromRoot = true
		}
	}
	assert.True(t, fromRoot)

	_, ok = nodeByID(g, "lm-5")
	assert.True(t, ok)
	_, ok = nodeByID(g, "lm-6")
	assert.False(t, ok, "primary literature is capped at six")
	lm0, _ := nodeByID(g, "lm-0")
	assert.Equal(t, "Книга A", lm0.Label)
	la0, _ := nodeByID(g, "la-0")
	assert.Equal(t, "Дополнительная книга", la0.Label)

	assert.Len(t, edgesLabelled(g, LabelMain), 1)
	assert.Len(t, edgesLabelled(g, LabelAdditional), 1)
}

func TestBuildNil(t *testing.T) {
	g := NewBuilder(lexicon.Default()).Build(nil)
	assert.Empty(t, g.Nodes)
	assert.NotNil(t, g.Edges)
}

func TestBuildMulti(t *testing.T) {
	b := NewBuilder(lexicon.Default())
	a := testRecord("Алгоритмы", "09.03.01 Информатика", "Тема 1. Введение в анализ данных", "Сортировки")
	c := testRecord("Статистика", "09.03.01 Информатика", "Раздел 3: ВВЕДЕНИЕ В АНАЛИЗ ДАННЫХ")
	d := testRecord("История", "", "Введение в анализ данных")
	d.Program = "Историческое образование"
	e := testRecord("Философия", "")

	g := b.BuildMulti([]*types.DisciplineRecord{a, c, d, e})

	top, ok := nodeByID(g, SuperRootID)
	require.True(t, ok)
	assert.Equal(t, 4, top.Data["count"])

	dir0, ok := nodeByID(g, "dir-0")
	require.True(t, ok)
	assert.Equal(t, 2, dir0.Data["count"])
	dir1, _ := nodeByID(g, "dir-1")
	assert.Equal(t, "Историческое образование", dir1.Data["name"])
	dir2, _ := nodeByID(g, "dir-2")
	assert.Equal(t, NoDirection, dir2.Data["name"])

	_, ok = nodeByID(g, "d0-1-root")
	assert.True(t, ok)
	_, ok = nodeByID(g, "d1-0-sec-0")
	assert.True(t, ok)

	shared := edgesLabelled(g, LabelSharedSection)
	require.Len(t, shared, 3)
	assert.Equal(t, "d0-0-sec-0", shared[0].Source)
	assert.Equal(t, "d0-1-sec-0", shared[0].Target)
}

func TestBuildMultiSameRecordNotLinked(t *testing.T) {
	b := NewBuilder(lexicon.Default())
	a := testRecord("Алгоритмы", "", "Тема 1. Повторение материала", "Тема 9. Повторение материала")
	g := b.BuildMulti([]*types.DisciplineRecord{a})
	assert.Empty(t, edgesLabelled(g, LabelSharedSection))
}

func TestBuildMultiEmpty(t *testing.T) {
	g := NewBuilder(lexicon.Default()).BuildMulti(nil)
	assert.Empty(t, g.Nodes)
	assert.Empty(t, g.Edges)
}

func TestNormalizeSectionName(t *testing.T) {
	b := NewBuilder(lexicon.Default())
	fold := cases.Fold()
	assert.Equal(t, "введение", b.NormalizeSectionName("Тема 1. Введение", fold))
	assert.Equal(t, "введение", b.NormalizeSectionName("МОДУЛЬ 2: ВВЕДЕНИЕ", fold))
	assert.Equal(t, "сортировки", b.NormalizeSectionName("  Сортировки ", fold))
}
