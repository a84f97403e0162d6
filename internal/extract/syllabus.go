// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pdiddy/curriculum-graph/internal/text"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

const (
	// hourProbeRows is how many rows after the first are probed for hour
	// columns.
	hourProbeRows = 7

	// maxHourDigits bounds a workload cell; longer numbers are not hours.
	maxHourDigits = 3

	minHourColumns = 2

	// shortLabelLen marks column 0 as a bare label ("1.1", "Р2") rather
	// than a name.
	shortLabelLen = 6

	// minContentLen is the length column 1 needs to be split as a topic.
	minContentLen = 5

	// Corrective merge thresholds for a name cut mid-sentence.
	fragmentWords = 3
	fragmentLen   = 30

	minSectionNameLen = 3

	topicPrefix = "Тема"
)

var digitsRe = regexp.MustCompile(`^[0-9]+$`)

// SyllabusExtractor rebuilds syllabus sections from workload tables.
type SyllabusExtractor struct {
	cls *text.Classifier
	seg *text.Segmenter
}

// NewSyllabusExtractor returns an extractor using cls to filter rows and
// seg to split combined title and content cells.
func NewSyllabusExtractor(cls *text.Classifier, seg *text.Segmenter) *SyllabusExtractor {
	return &SyllabusExtractor{cls: cls, seg: seg}
}

// HourColumns returns the sorted indices of columns that hold a short
// integer in at least one of the probed rows.
func HourColumns(tbl types.Table) []int {
	var cols []int
	end := min(len(tbl), hourProbeRows+1)
	for _, row := range tbl[min(1, end):end] {
		for i, c := range row {
			if isHours(strings.TrimSpace(c)) && !slices.Contains(cols, i) {
				cols = append(cols, i)
			}
		}
	}
	slices.Sort(cols)
	return cols
}

func isHours(s string) bool {
	return s != "" && len(s) <= maxHourDigits && digitsRe.MatchString(s)
}

// Extract returns the sections of every table with at least two hour
// columns, in document order.
func (x *SyllabusExtractor) Extract(tables []types.Table) []types.Section {
	sections := []types.Section{}
	for _, tbl := range tables {
		if len(tbl) < 2 {
			continue
		}
		cols := HourColumns(tbl)
		if len(cols) < minHourColumns {
			continue
		}
		for _, row := range tbl {
			if sec, ok := x.row(row, cols); ok {
				sections = append(sections, sec)
			}
		}
	}
	return sections
}

func (x *SyllabusExtractor) row(row []string, cols []int) (types.Section, bool) {
	if len(row) == 0 {
		return types.Section{}, false
	}
	cells := make([]string, len(row))
	for i, c := range row {
		cells[i] = text.Normalize(c)
	}
	if x.cls.IsSkipRow(cells) || x.cls.IsNoiseLine(strings.Join(cells, " ")) || x.cls.IsHeaderRow(cells) {
		return types.Section{}, false
	}
	c0 := cells[0]
	if text.Len(c0) < 2 {
		return types.Section{}, false
	}

	name, content := x.nameAndContent(cells, cols[0])
	if words := strings.Fields(name); len(words) < fragmentWords && text.Len(name) < fragmentLen && startsLower(content) {
		name = name + " " + content
		content = ""
	}
	if text.Len(name) < minSectionNameLen {
		return types.Section{}, false
	}

	return types.Section{
		Name:           name,
		Content:        content,
		Hours:          hoursFrom(cells, cols),
		LinkedSoftware: []string{},
	}, true
}

// nameAndContent picks the name and content cells according to how many
// text columns precede the first hour column.
func (x *SyllabusExtractor) nameAndContent(cells []string, firstHour int) (string, string) {
	c0 := cells[0]
	if firstHour < 2 || len(cells) < 2 {
		return x.seg.Split(c0)
	}
	c1 := cells[1]
	switch {
	case c1 == "":
		return x.seg.Split(c0)
	case text.Len(c0) < shortLabelLen && text.Len(c1) > minContentLen:
		n, c := x.seg.Split(c1)
		return strings.Join([]string{topicPrefix, c0, n}, " "), c
	default:
		return c0, c1
	}
}

func startsLower(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return s != "" && unicode.IsLower(r)
}

// hoursFrom reads the hour columns positionally. One value is lectures,
// two add practice; with exactly three the third is self-study, with four
// or more the third is labs and the fourth self-study.
func hoursFrom(cells []string, cols []int) types.Hours {
	var vals []string
	for _, idx := range cols {
		if idx >= len(cells) {
			continue
		}
		v := strings.TrimSpace(cells[idx])
		if !digitsRe.MatchString(v) {
			v = types.DefaultHours
		}
		vals = append(vals, v)
	}

	h := types.ZeroHours()
	if len(vals) >= 1 {
		h.Lectures = vals[0]
	}
	if len(vals) >= 2 {
		h.Practice = vals[1]
	}
	switch {
	case len(vals) == 3:
		h.SelfStudy = vals[2]
	case len(vals) >= 4:
		h.Labs = vals[2]
		h.SelfStudy = vals[3]
	}
	return h
}
