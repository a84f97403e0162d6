// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package analyze

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/curriculum-graph/internal/graph"
	"github.com/pdiddy/curriculum-graph/internal/lexicon"
	"github.com/pdiddy/curriculum-graph/internal/store"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

func testService(t *testing.T) *Service {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "curriculum.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	svc := NewService(lexicon.Default(), st, nil)
	svc.decode = func(_ context.Context, kind types.DocumentKind, data []byte) (*types.Document, error) {
		if string(data) == "corrupt" {
			return nil, errors.New("zip: not a valid zip file")
		}
		return types.NewDocument(kind, []string{
			"РАБОЧАЯ ПРОГРАММА ДИСЦИПЛИНЫ «" + string(data) + "»",
			"Направление подготовки: 09.03.01 Информатика и вычислительная техника",
			"Перечень программного обеспечения: Python",
		}, []types.Table{{
			{"Раздел", "Лекции", "Практика"},
			{"Основы языка Python", "2", "2"},
		}}), nil
	}
	return svc
}

func TestAnalyzeRejectsUnsupportedKind(t *testing.T) {
	svc := testService(t)
	called := false
	svc.decode = func(context.Context, types.DocumentKind, []byte) (*types.Document, error) {
		called = true
		return nil, nil
	}

	for _, name := range []string{"plan.doc", "plan.txt", "noext"} {
		_, err := svc.Analyze(context.Background(), name, []byte("x"))
		assert.ErrorIs(t, err, ErrUnsupportedKind, name)
	}
	assert.False(t, called)

	files, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestAnalyzeStoresAndProjects(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	a, err := svc.Analyze(ctx, "Plan.DOCX", []byte("Базы данных"))
	require.NoError(t, err)
	require.NotEmpty(t, a.FileID)
	assert.Equal(t, "Базы данных", a.Metadata.Name)
	assert.Equal(t, []string{"Python"}, a.Metadata.Software)
	require.NotEmpty(t, a.Nodes)
	assert.Equal(t, graph.RootID(""), a.Nodes[0].ID)

	got, err := svc.Get(ctx, a.FileID)
	require.NoError(t, err)
	assert.Equal(t, a, got)

	files, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "Plan.DOCX", files[0].Filename)
	assert.Equal(t, int64(len("Базы данных")), files[0].FileSize)

	require.NoError(t, svc.Delete(ctx, a.FileID))
	_, err = svc.Get(ctx, a.FileID)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestAnalyzeDecodeFailureYieldsDefaults(t *testing.T) {
	svc := testService(t)
	a, err := svc.Analyze(context.Background(), "broken.pdf", []byte("corrupt"))
	require.NoError(t, err)
	assert.Equal(t, types.DefaultName, a.Metadata.Name)
	assert.Empty(t, a.Metadata.Sections)
}

func TestParseWithoutRepository(t *testing.T) {
	svc := NewService(lexicon.Default(), nil, nil)
	svc.decode = testService(t).decode

	rec, err := svc.Parse(context.Background(), "a.docx", []byte("Сети"))
	require.NoError(t, err)
	assert.Equal(t, "Сети", rec.Name)
	assert.NotEmpty(t, svc.Graph(rec).Nodes)

	_, err = svc.Analyze(context.Background(), "a.docx", []byte("Сети"))
	assert.Error(t, err)
}

func TestCombine(t *testing.T) {
	svc := testService(t)
	ctx := context.Background()

	a, err := svc.Analyze(ctx, "a.docx", []byte("Базы данных"))
	require.NoError(t, err)
	b, err := svc.Analyze(ctx, "b.pdf", []byte("Компьютерные сети"))
	require.NoError(t, err)

	m, err := svc.Combine(ctx, []string{b.FileID, "missing", a.FileID})
	require.NoError(t, err)
	require.Len(t, m.Disciplines, 2)
	assert.Equal(t, "Компьютерные сети", m.Disciplines[0].Name)
	assert.Equal(t, "Базы данных", m.Disciplines[1].Name)
	assert.Equal(t, graph.SuperRootID, m.Nodes[0].ID)

	_, err = svc.Combine(ctx, []string{"missing"})
	assert.ErrorIs(t, err, ErrNoRecords)
	_, err = svc.Combine(ctx, nil)
	assert.ErrorIs(t, err, ErrNoRecords)
}
