// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package text

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/curriculum-graph/internal/lexicon"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"nbsp and tabs", "Раздел 1.\tВведение", "Раздел 1. Введение"},
		{"line breaks", "  строка\r\nвторая\n\nтретья  ", "строка вторая третья"},
		{"decomposed yo", "ёлка", "ёлка"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, Normalize(got), "idempotent")
		})
	}
}

func TestTruncateAndTail(t *testing.T) {
	s := "Привет, мир"
	assert.Equal(t, "Привет", Truncate(s, 6))
	assert.Equal(t, ", мир", Tail(s, 6))
	assert.Equal(t, s, Truncate(s, 100))
	assert.Equal(t, "", Truncate(s, 0))
	assert.Equal(t, "", Tail(s, 100))
	assert.Equal(t, 11, Len(s))
}

func TestClassifierNoise(t *testing.T) {
	c := NewClassifier(lexicon.Default())
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"12", true},
		{"Стр. 5", true},
		{"- 12 -", true},
		{"Лист 3", true},
		{"УТВЕРЖДАЮ Проректор", true},
		{"Зав. кафедрой Иванов", true},
		{"Заведующий кафедрой", true},
		{"Основы программирования на Python", false},
		{"123456", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsNoiseLine(tt.in))
		})
	}
}

func TestClassifierRows(t *testing.T) {
	c := NewClassifier(lexicon.Default())

	tests := []struct {
		name       string
		cells      []string
		wantHeader bool
		wantSkip   bool
	}{
		{"numbered header", []string{"№ п/п", "Наименование тем", "Лекции"}, true, false},
		{"header with abbreviations", []string{"№ п/п", "Наименование раздела", "Лекции", "Практ."}, true, false},
		{"content row", []string{"1", "Введение в программирование", "2", "4"}, false, false},
		{"totals", []string{"Итого", "72", "36", "36"}, false, true},
		{"totals with gap", []string{"Итого", "", "34", "34"}, false, true},
		{"exam", []string{"Экзамен", "36"}, false, true},
		{"blank", []string{" ", ""}, false, true},
		{"topic row", []string{"1", "Переменные и типы данных", "2", "2"}, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantHeader, c.IsHeaderRow(tt.cells))
			assert.Equal(t, tt.wantSkip, c.IsSkipRow(tt.cells))
		})
	}
}

func TestSegmenterSplit(t *testing.T) {
	s := NewSegmenter(lexicon.Default())
	long := strings.Repeat("слово ", 60)

	tests := []struct {
		name      string
		in        string
		wantTitle string
		wantBody  string
	}{
		{"empty", "   ", "", ""},
		{
			name:      "prefix and boundary",
			in:        "Тема 1. Введение в Python. Переменные и типы данных.",
			wantTitle: "Тема 1. Введение в Python.",
			wantBody:  "Переменные и типы данных.",
		},
		{
			name:      "boundary too early",
			in:        "Основы. Алгоритмы и структуры данных",
			wantTitle: "Основы. Алгоритмы и структуры данных",
			wantBody:  "",
		},
		{
			name:      "short without boundary",
			in:        "Циклы и ветвления в языке программирования",
			wantTitle: "Циклы и ветвления в языке программирования",
			wantBody:  "",
		},
		{
			name:      "long without boundary",
			in:        long,
			wantTitle: Truncate(Normalize(long), 120) + "...",
			wantBody:  strings.TrimSpace(Tail(Normalize(long), 120)),
		},
		{
			name:      "double period collapsed",
			in:        "Раздел 2. Объектная модель.. Классы и объекты",
			wantTitle: "Раздел 2. Объектная модель.",
			wantBody:  "Классы и объекты",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			title, body := s.Split(tt.in)
			assert.Equal(t, tt.wantTitle, title)
			assert.Equal(t, tt.wantBody, body)
		})
	}
}

func TestSegmenterIdempotentOnTitles(t *testing.T) {
	s := NewSegmenter(lexicon.Default())
	for _, in := range []string{
		"Тема 1. Введение в Python. Переменные и типы данных.",
		"Модуль 3: Сетевые протоколы. Стек TCP/IP и его уровни.",
		"Работа с файлами",
	} {
		title, _ := s.Split(in)
		again, body := s.Split(title + " ")
		assert.Equal(t, title, again, in)
		assert.Empty(t, body, in)
	}
}
