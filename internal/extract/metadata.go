// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/curriculum-graph/internal/lexicon"
	"github.com/pdiddy/curriculum-graph/internal/text"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

const (
	// nameScanParagraphs bounds the paragraph fallback for the name.
	nameScanParagraphs = 30
	maxNameLine        = 200
	minProgramLen      = 5
	minVolumeDetailLen = 10
	volumeUnit         = " з.е."
)

var guillemetRe = regexp.MustCompile(`«(.+?)»`)

// Metadata holds the scalar attributes recovered from a document.
type Metadata struct {
	Name          string
	Level         string
	Program       string
	Direction     string
	Period        string
	Volume        string
	VolumeDetails string
}

// MetadataExtractor recovers name, level, program, direction, period and
// volume from the flattened text.
type MetadataExtractor struct {
	name          lexicon.Patterns
	nameSkip      []string
	levels        []lexicon.Level
	program       *regexp.Regexp
	programReject []string
	direction     *regexp.Regexp
	period        *regexp.Regexp
	volume        *regexp.Regexp
	volumeDetail  *regexp.Regexp
	outcome       *regexp.Regexp
}

// NewMetadataExtractor compiles the metadata tables of lex.
func NewMetadataExtractor(lex *lexicon.Lexicon) *MetadataExtractor {
	m := lex.Metadata
	return &MetadataExtractor{
		name:          lex.Set(m.Name),
		nameSkip:      m.NameSkipWords,
		levels:        m.Levels,
		program:       lex.Re(m.Program),
		programReject: m.ProgramReject,
		direction:     lex.Re(m.Direction),
		period:        lex.Re(m.Period),
		volume:        lex.Re(m.Volume),
		volumeDetail:  lex.Re(m.VolumeDetail),
		outcome:       lex.Re(m.Outcome),
	}
}

// Extract reads every metadata field from src. Fields with no evidence
// keep the record defaults.
func (x *MetadataExtractor) Extract(src *Source) Metadata {
	md := Metadata{
		Name:   x.Name(src),
		Level:  x.Level(src.Text),
		Period: types.DefaultPeriod,
		Volume: types.DefaultVolume,
	}
	md.Program = x.Program(src.Text)
	md.Direction = x.Direction(src.Text)
	if x.period != nil {
		if m := x.period.FindString(src.Text); m != "" {
			md.Period = strings.TrimSpace(m)
		}
	}
	if x.volume != nil {
		if m := x.volume.FindStringSubmatch(src.Text); len(m) > 1 {
			md.Volume = m[1] + volumeUnit
		}
	}
	if x.volumeDetail != nil {
		if m := x.volumeDetail.FindStringSubmatch(src.Text); len(m) > 1 {
			if d := text.Normalize(m[1]); text.Len(d) > minVolumeDetailLen {
				md.VolumeDetails = d
			}
		}
	}
	return md
}

// Name tries the name patterns over the full text, then the first
// paragraphs carrying a «quoted» title that is not institutional
// boilerplate.
func (x *MetadataExtractor) Name(src *Source) string {
	for _, re := range x.name {
		if m := re.FindStringSubmatch(src.Text); len(m) > 1 {
			if n := text.Normalize(m[1]); n != "" {
				return n
			}
		}
	}
	for _, ln := range src.Lines[:min(len(src.Lines), nameScanParagraphs)] {
		if !strings.Contains(ln, "«") || !strings.Contains(ln, "»") || text.Len(ln) >= maxNameLine {
			continue
		}
		if text.ContainsAny(strings.ToUpper(ln), x.nameSkip) {
			continue
		}
		if m := guillemetRe.FindStringSubmatch(ln); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return types.DefaultName
}

// Level returns the first degree level whose stem occurs in flat.
func (x *MetadataExtractor) Level(flat string) string {
	lower := strings.ToLower(flat)
	for _, l := range x.levels {
		if strings.Contains(lower, strings.ToLower(l.Stem)) {
			return l.Name
		}
	}
	return ""
}

// Program returns the program title after "образовательная программа" or
// "направление подготовки". The title is preferred over the bare
// direction code.
func (x *MetadataExtractor) Program(flat string) string {
	if x.program == nil {
		return ""
	}
	m := x.program.FindStringSubmatch(flat)
	if m == nil {
		return ""
	}
	for i := len(m) - 1; i >= 1; i-- {
		c := text.Normalize(m[i])
		if text.Len(c) <= minProgramLen {
			continue
		}
		if text.ContainsAny(strings.ToLower(c), x.programReject) {
			continue
		}
		return c
	}
	return ""
}

// Direction returns "NN.NN.NN title" for the first direction code.
func (x *MetadataExtractor) Direction(flat string) string {
	if x.direction == nil {
		return ""
	}
	m := x.direction.FindStringSubmatch(flat)
	if len(m) < 3 {
		return ""
	}
	return strings.TrimSpace(m[1] + " " + text.Normalize(m[2]))
}

// Outcomes returns the unique competency codes in lines, then in the
// table cells, in discovery order.
func (x *MetadataExtractor) Outcomes(lines []string, tables []types.Table) []string {
	out := []string{}
	if x.outcome == nil {
		return out
	}
	seen := make(map[string]bool)
	add := func(s string) {
		for _, c := range x.outcome.FindAllString(s, -1) {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	for _, ln := range lines {
		add(ln)
	}
	for _, tbl := range tables {
		for _, row := range tbl {
			for _, c := range row {
				add(text.Normalize(c))
			}
		}
	}
	return out
}
