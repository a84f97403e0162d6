// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/curriculum-graph/internal/lexicon"
	"github.com/pdiddy/curriculum-graph/internal/text"
)

func linesSource(lines ...string) *Source {
	return &Source{Lines: lines, Text: strings.Join(lines, "\n")}
}

func TestDescriptionChain(t *testing.T) {
	lex := lexicon.Default()
	chain := DescriptionChain(lex, text.NewClassifier(lex))

	tests := []struct {
		name     string
		src      *Source
		want     string
		wantTier string
	}{
		{
			name: "paragraph collector",
			src: linesSource(
				"Аннотация дисциплины",
				"Дисциплина изучает основы построения алгоритмов и структур данных.",
				"Итоговые результаты:",
				"Рассматриваются вопросы сложности.",
				"1.2 Место дисциплины в структуре программы",
				"Эта строка не входит в описание.",
			),
			want:     "Дисциплина изучает основы построения алгоритмов и структур данных. Рассматриваются вопросы сложности.",
			wantTier: "paragraphs",
		},
		{
			name: "remainder on the marker line",
			src: linesSource(
				"Краткое описание дисциплины: курс знакомит с языками разметки.",
				"2. Место дисциплины",
			),
			want:     "курс знакомит с языками разметки",
			wantTier: "paragraphs",
		},
		{
			name: "text pattern",
			src: &Source{Text: "Общая характеристика дисциплины: курс знакомит студентов с методами анализа данных.\nЦели освоения дисциплины"},
			want:     "курс знакомит студентов с методами анализа данных.",
			wantTier: "text",
		},
		{
			name: "indicator paragraph",
			src: linesSource(
				"Стр. 5",
				"1. Курс посвящен изучению методов машинного обучения и анализа больших данных.",
				"Курс посвящен изучению методов машинного обучения и анализа больших данных.",
			),
			want:     "Курс посвящен изучению методов машинного обучения и анализа больших данных.",
			wantTier: "indicators",
		},
		{
			name: "nothing",
			src:  linesSource("Приложение 1", "Таблица 2"),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, tier := chain.Run(tt.src)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantTier, tier)
		})
	}
}

func TestGoalsChain(t *testing.T) {
	lex := lexicon.Default()
	chain := GoalsChain(lex, text.NewClassifier(lex))

	tests := []struct {
		name     string
		src      *Source
		contains string
		wantTier string
	}{
		{
			name: "numbered heading with colon",
			src: linesSource(
				"1.3 Цели дисциплины: формирование навыков программирования.",
				"5.2 Перечень программного обеспечения: Python, Git",
			),
			contains: "формирование навыков программирования",
			wantTier: "paragraphs",
		},
		{
			name: "colon line kept when it names a goal",
			src: linesSource(
				"Цели освоения дисциплины",
				"Развитие навыков:",
				"работы с источниками и проведения исследований.",
				"1.4 Место дисциплины",
			),
			contains: "Развитие навыков: работы с источниками",
			wantTier: "paragraphs",
		},
		{
			name:     "text pattern",
			src:      &Source{Text: "Цели освоения дисциплины\nформирование у студентов системного мышления и навыков анализа.\n2. Место дисциплины"},
			contains: "системного мышления",
			wantTier: "text",
		},
		{
			name:     "goal sentence",
			src:      &Source{Text: "Основная информация. Целью изучения курса является освоение методов. Прочее."},
			contains: "Целью изучения курса является освоение методов.",
			wantTier: "sentences",
		},
		{
			name: "bullets",
			src: linesSource(
				"Цели:",
				"- развитие алгоритмического мышления;",
				"- освоение языка Python;",
				"2. Место дисциплины",
				"- не цель",
			),
			contains: "развитие алгоритмического мышления; освоение языка Python;",
			wantTier: "bullets",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, tier := chain.Run(tt.src)
			assert.Contains(t, got, tt.contains)
			assert.Equal(t, tt.wantTier, tier)
		})
	}
}

func TestGoalSpans(t *testing.T) {
	lex := lexicon.Default()

	ps := &paragraphSpan{start: lex.Re(lex.Goals.SpanStart), stop: lex.Re(lex.Goals.SpanStop)}
	got, ok := ps.Attempt(linesSource("1.3", "Подготовка", "", "кадров", "2. Содержание", "лишнее"))
	require.True(t, ok)
	assert.Equal(t, "Подготовка кадров", got)

	_, ok = ps.Attempt(linesSource("Нет заголовка"))
	assert.False(t, ok)

	hs := &headingSpan{re: lex.Re(lex.Goals.SpanText)}
	got, ok = hs.Attempt(&Source{Text: "1.3 Цели и задачи\nподготовка специалистов в области сетей\n2. Содержание"})
	require.True(t, ok)
	assert.Equal(t, "подготовка специалистов в области сетей", got)
}

func TestSectionCollectorTransitions(t *testing.T) {
	lex := lexicon.Default()
	c := DescriptionChain(lex, text.NewClassifier(lex))[0].(*sectionCollector)

	st, kept := c.next(fieldIdle, "Обычный абзац текста")
	assert.Equal(t, fieldIdle, st)
	assert.Empty(t, kept)

	st, kept = c.next(fieldIdle, "Аннотация: дисциплина посвящена теории графов")
	assert.Equal(t, fieldCollecting, st)
	assert.Equal(t, "дисциплина посвящена теории графов", kept)

	st, kept = c.next(fieldCollecting, "Основные понятия:")
	assert.Equal(t, fieldCollecting, st)
	assert.Empty(t, kept)

	st, _ = c.next(fieldCollecting, "2. Место дисциплины")
	assert.Equal(t, fieldDone, st)
	assert.Equal(t, "done", st.String())
}

func TestGoalsCollectorSkipsColonLines(t *testing.T) {
	lex := lexicon.Default()
	c := GoalsChain(lex, text.NewClassifier(lex))[0].(*sectionCollector)

	lead := "В ходе изучения дисциплины студенты знакомятся со следующими разделами, темами и вопросами курса:"
	st, kept := c.next(fieldCollecting, lead)
	assert.Equal(t, fieldCollecting, st)
	assert.Empty(t, kept)

	_, kept = c.next(fieldCollecting, "Формирование навыков анализа:")
	assert.Equal(t, "Формирование навыков анализа:", kept)
}

func TestTextChains(t *testing.T) {
	lex := lexicon.Default()
	src := linesSource(
		"Целью освоения дисциплины является формирование исторического мышления.",
		"Курс знакомит студентов с основными этапами развития государства.",
	)

	goals, tier := TextGoalsChain(lex).Run(src)
	assert.Equal(t, "sentences", tier)
	assert.Contains(t, goals, "формирование")

	desc, tier := TextDescriptionChain(lex, text.NewClassifier(lex)).Run(src)
	assert.Equal(t, "indicators", tier)
	assert.Equal(t, src.Lines[0], desc)
}
