// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// --- test helpers ---

func testStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "db", "curriculum.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	clock := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func sampleRecord() *types.DisciplineRecord {
	one := "1"
	rec := types.NewDisciplineRecord()
	rec.Name = "Основы программирования"
	rec.Direction = "09.03.01 Информатика и вычислительная техника"
	rec.Level = "Бакалавриат"
	rec.Goals = "формирование навыков программирования"
	rec.Software = []string{"Python", "Git", "Docker"}
	rec.Outcomes = []string{"УК-1", "ОПК-2"}
	rec.Sections = []types.Section{
		{
			Name:           "Введение",
			Content:        "Переменные и типы данных",
			Hours:          types.Hours{Lectures: "4", Practice: "4", Labs: "0", SelfStudy: "8"},
			LinkedSoftware: []string{"Git", "Python"},
		},
		{
			Name:           "Контейнеры",
			Hours:          types.ZeroHours(),
			LinkedSoftware: []string{"Docker", "Unknown"},
		},
	}
	rec.Literature.Main = []types.LiteratureEntry{{
		Raw:       "1. Иванов И.И. Алгоритмы. – М.: Наука, 2019.",
		Number:    &one,
		Authors:   []string{"Иванов И.И."},
		Title:     "Алгоритмы",
		Year:      "2019",
		Publisher: "Наука",
		EntryType: types.EntryBook,
	}}
	rec.Literature.Additional = []types.LiteratureEntry{{
		Raw:       "https://docs.python.org",
		Authors:   []string{},
		URL:       "https://docs.python.org",
		EntryType: types.EntryWeb,
	}}
	return rec
}

func save(t *testing.T, s *Store, id string, rec *types.DisciplineRecord) types.FileInfo {
	t.Helper()
	fi, err := s.Save(context.Background(), types.FileInfo{ID: id, Filename: id + ".docx", FileSize: 1024}, rec)
	require.NoError(t, err)
	return fi
}

// --- tests ---

func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)
	rec := sampleRecord()

	fi := save(t, s, "f1", rec)
	assert.Equal(t, types.FileProcessed, fi.Status)
	assert.Equal(t, "Основы программирования", fi.DisciplineName)
	assert.Equal(t, "2026-03-01T10:00:01.000000Z", fi.UploadDate)

	got, err := s.Load(context.Background(), "f1")
	require.NoError(t, err)

	// unknown links are dropped on save
	rec.Sections[1].LinkedSoftware = []string{"Docker"}
	rec.Sections[1].Content = ""
	assert.Equal(t, rec, got)
}

func TestSaveEmptyRecord(t *testing.T) {
	s := testStore(t)
	save(t, s, "empty", types.NewDisciplineRecord())

	got, err := s.Load(context.Background(), "empty")
	require.NoError(t, err)
	assert.Equal(t, types.NewDisciplineRecord(), got)
}

func TestSaveDuplicateRollsBack(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	save(t, s, "dup", sampleRecord())

	_, err := s.Save(ctx, types.FileInfo{ID: "dup", Filename: "other.docx"}, sampleRecord())
	require.Error(t, err)

	files, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "dup.docx", files[0].Filename)

	var n int
	require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM disciplines`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSaveRequiresID(t *testing.T) {
	s := testStore(t)
	_, err := s.Save(context.Background(), types.FileInfo{Filename: "x.docx"}, nil)
	assert.Error(t, err)
}

func TestLoadNotFound(t *testing.T) {
	s := testStore(t)
	_, err := s.Load(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestLoadCorruptAuthors(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	save(t, s, "f1", sampleRecord())

	_, err := s.db.ExecContext(ctx, `UPDATE literature SET authors = '["Иванов' WHERE url = ''`)
	require.NoError(t, err)

	_, err = s.Load(ctx, "f1")
	assert.ErrorContains(t, err, "decoding authors")
}

func TestListNewestFirst(t *testing.T) {
	s := testStore(t)
	save(t, s, "a", sampleRecord())
	hum := types.NewDisciplineRecord()
	hum.Name = "История"
	hum.Category = types.CategoryHumanitarian
	save(t, s, "b", hum)

	files, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "b", files[0].ID)
	assert.Equal(t, "История", files[0].DisciplineName)
	assert.Equal(t, types.CategoryHumanitarian, files[0].Category)
	assert.Equal(t, int64(1024), files[0].FileSize)
	assert.Equal(t, "a", files[1].ID)
}

func TestDeleteCascades(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	save(t, s, "gone", sampleRecord())
	save(t, s, "kept", sampleRecord())

	require.NoError(t, s.Delete(ctx, "gone"))
	require.NoError(t, s.Delete(ctx, "never-existed"))

	_, err := s.Load(ctx, "gone")
	assert.ErrorIs(t, err, ErrNotFound)

	for table, want := range map[string]int{
		"disciplines":      1,
		"sections":         2,
		"software":         3,
		"section_software": 3,
		"literature":       2,
		"outcomes":         2,
	} {
		var n int
		require.NoError(t, s.db.QueryRow(`SELECT COUNT(*) FROM `+table).Scan(&n))
		assert.Equal(t, want, n, table)
	}
}

func TestExport(t *testing.T) {
	s := testStore(t)
	ctx := context.Background()
	save(t, s, "a", sampleRecord())
	save(t, s, "b", types.NewDisciplineRecord())

	var buf bytes.Buffer
	require.NoError(t, s.Export(ctx, &buf, FormatJSON))
	var all []ExportEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &all))
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].File.ID)
	assert.Equal(t, "Основы программирования", all[1].Record.Name)

	buf.Reset()
	require.NoError(t, s.Export(ctx, &buf, FormatYAML, "a", "missing"))
	var some []ExportEntry
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &some))
	require.Len(t, some, 1)
	assert.Equal(t, []string{"Python", "Git", "Docker"}, some[0].Record.Software)

	assert.Error(t, s.Export(ctx, &buf, "xml"))
}
