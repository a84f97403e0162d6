// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/curriculum-graph/internal/lexicon"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

func TestMetadataExtract(t *testing.T) {
	src := linesSource(
		"МИНИСТЕРСТВО НАУКИ И ВЫСШЕГО ОБРАЗОВАНИЯ",
		"РАБОЧАЯ ПРОГРАММА ДИСЦИПЛИНЫ «Базы данных»",
		"Направление подготовки: 09.03.01 Информатика и вычислительная техника",
		"Уровень: бакалавриат",
		"Изучается в 3, 4 семестр",
		"Объём дисциплины: 5 зачётных единиц, 180 часов",
		"",
		"Компетенции: УК-1, ОПК-2, УК-1",
	)
	x := NewMetadataExtractor(lexicon.Default())
	md := x.Extract(src)

	assert.Equal(t, Metadata{
		Name:          "Базы данных",
		Level:         "Бакалавриат",
		Program:       "Информатика и вычислительная техника",
		Direction:     "09.03.01 Информатика и вычислительная техника",
		Period:        "3, 4 семестр",
		Volume:        "5 з.е.",
		VolumeDetails: "5 зачётных единиц, 180 часов",
	}, md)

	tables := []types.Table{{{"Код", "ПК-3"}, {"УК-1", "Описание"}}}
	assert.Equal(t, []string{"УК-1", "ОПК-2", "ПК-3"}, x.Outcomes(src.Lines, tables))
}

func TestMetadataDefaults(t *testing.T) {
	md := NewMetadataExtractor(lexicon.Default()).Extract(linesSource("Пустой документ"))
	assert.Equal(t, Metadata{
		Name:   types.DefaultName,
		Period: types.DefaultPeriod,
		Volume: types.DefaultVolume,
	}, md)
}

func TestMetadataNameFromParagraphs(t *testing.T) {
	x := NewMetadataExtractor(lexicon.Default())
	src := linesSource(
		"ФАКУЛЬТЕТ «Информатики»",
		"Учебный курс «Теория графов»",
	)
	assert.Equal(t, "Теория графов", x.Name(src))
}

func TestMetadataProgramRejected(t *testing.T) {
	x := NewMetadataExtractor(lexicon.Default())
	assert.Empty(t, x.Program("Образовательная программа: паспорт дисциплины\n"))
	assert.Equal(t, "Прикладная информатика", x.Program("Образовательная программа: Прикладная информатика\n"))
}

func TestClassify(t *testing.T) {
	c := NewClassifier(lexicon.Default())
	tests := []struct {
		name  string
		title string
		goals string
		want  types.Category
	}{
		{"no evidence", "", "", types.CategoryTechnical},
		{"technical", "Основы программирования", "формирование навыков программирования", types.CategoryTechnical},
		{"humanitarian", "История философии", "", types.CategoryHumanitarian},
		{"natural science", "Органическая химия", "", types.CategoryNaturalScience},
		{"humanitarian wins tie with natural science", "История биологии", "", types.CategoryHumanitarian},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Classify(tt.title, "", tt.goals)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}

func TestClassifyWeights(t *testing.T) {
	lex := lexicon.Defaults()
	lex.Categories.Humanitarian = []lexicon.WeightedStem{{Stem: "истори", Weight: 3}}
	lex.Categories.Technical = []lexicon.WeightedStem{{Stem: "компьютер"}, {Stem: "сеть"}}
	c := NewClassifier(lex)

	tech, hum, _ := c.Scores("История компьютерных сетей", "", "")
	assert.Equal(t, 1, tech)
	assert.Equal(t, 3, hum)
	assert.Equal(t, types.CategoryHumanitarian, c.Classify("История компьютерных сетей", "", ""))
}
