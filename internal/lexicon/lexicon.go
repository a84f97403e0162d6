// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lexicon holds the keyword and pattern tables that drive the
// heuristic extractors. A Lexicon is built once at startup from the
// built-in defaults, optionally overlaid with a YAML file, compiled, and
// then shared read-only by every extractor.
//
// Patterns are Go RE2 expressions. Flags such as (?i) and (?s) are part of
// the pattern text; nothing is added implicitly. Keyword lists (as opposed
// to patterns) are matched as lowercase substrings.
package lexicon

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"sync"

	"go.yaml.in/yaml/v3"
)

// Lexicon is the full set of tables. Fields are exported for YAML
// (de)serialization; treat a compiled Lexicon as immutable.
type Lexicon struct {
	// NoisePatterns mark administrative boilerplate lines (page numbers,
	// approval stamps, signatory titles).
	NoisePatterns []string `yaml:"noise_patterns"`

	// HeaderWords flag a table row as a column header once two of them appear.
	HeaderWords []string `yaml:"header_words"`

	// SkipWords flag aggregate or administrative table rows.
	SkipWords []string `yaml:"skip_words"`

	// SectionPrefix matches a "Раздел N." style numbering prefix. The first
	// capture group is the whole prefix.
	SectionPrefix string `yaml:"section_prefix"`

	// SectionStop marks the start of a section that ends a narrative field.
	SectionStop []string `yaml:"section_stop"`

	Description DescriptionPatterns `yaml:"description"`
	Goals       GoalPatterns        `yaml:"goals"`
	Software    SoftwarePatterns    `yaml:"software"`
	Literature  LiteraturePatterns  `yaml:"literature"`
	Metadata    MetadataPatterns    `yaml:"metadata"`

	// ToolAliases expand a software name into related keywords for matching.
	ToolAliases []ToolAlias `yaml:"tool_aliases"`

	Categories CategoryKeywords `yaml:"categories"`

	compiled map[string]*regexp.Regexp
}

// DescriptionPatterns drive the description extraction chain.
type DescriptionPatterns struct {
	Start      []string `yaml:"start"`
	Stop       []string `yaml:"stop"`
	Text       []string `yaml:"text"`
	Indicators []string `yaml:"indicators"`
	MinLength  int      `yaml:"min_length"`
}

// GoalPatterns drive the goals extraction chain.
type GoalPatterns struct {
	Start     []string `yaml:"start"`
	Stop      []string `yaml:"stop"`
	Text      []string `yaml:"text"`
	Sentence  string   `yaml:"sentence"`
	KeepStems []string `yaml:"keep_stems"`
	Marker    string   `yaml:"marker"`
	SpanText  string   `yaml:"span_text"`
	SpanStart string   `yaml:"span_start"`
	SpanStop  string   `yaml:"span_stop"`
	MinLength int      `yaml:"min_length"`
}

// SoftwarePatterns drive the three software collectors.
type SoftwarePatterns struct {
	Markers          []string `yaml:"markers"`
	StartPrefix      string   `yaml:"start_prefix"`
	End              string   `yaml:"end"`
	Filler           []string `yaml:"filler"`
	TableMarkers     []string `yaml:"table_markers"`
	TableHeaderWords []string `yaml:"table_header_words"`
	License          string   `yaml:"license"`
	Known            []string `yaml:"known"`
	TextBlock        string   `yaml:"text_block"`
	TextFiller       []string `yaml:"text_filler"`
}

// LiteraturePatterns drive bibliography segmentation and entry typing.
type LiteraturePatterns struct {
	MainHeaders       []string `yaml:"main_headers"`
	AdditionalHeaders []string `yaml:"additional_headers"`
	Stop              []string `yaml:"stop"`
	Heading           string   `yaml:"heading"`
	TableHeader       string   `yaml:"table_header"`
	EBS               string   `yaml:"ebs"`
	BookWords         string   `yaml:"book_words"`
	Standard          string   `yaml:"standard"`
}

// MetadataPatterns recover the scalar discipline attributes.
type MetadataPatterns struct {
	Name          []string `yaml:"name"`
	NameSkipWords []string `yaml:"name_skip_words"`
	Levels        []Level  `yaml:"levels"`
	Program       string   `yaml:"program"`
	ProgramReject []string `yaml:"program_reject"`
	Direction     string   `yaml:"direction"`
	Period        string   `yaml:"period"`
	Volume        string   `yaml:"volume"`
	VolumeDetail  string   `yaml:"volume_detail"`
	Outcome       string   `yaml:"outcome"`
	TextSection   string   `yaml:"text_section"`
}

// Level maps a stem found in the text to a canonical degree level.
type Level struct {
	Stem string `yaml:"stem"`
	Name string `yaml:"name"`
}

// ToolAlias lists keywords implied by a canonical tool name.
type ToolAlias struct {
	Tool     string   `yaml:"tool"`
	Keywords []string `yaml:"keywords"`
}

// WeightedStem is a lowercase stem and the score it contributes on a hit.
type WeightedStem struct {
	Stem   string `yaml:"stem"`
	Weight int    `yaml:"weight"`
}

// CategoryKeywords are the per-domain stems used by the discipline classifier.
type CategoryKeywords struct {
	Technical      []WeightedStem `yaml:"technical"`
	Humanitarian   []WeightedStem `yaml:"humanitarian"`
	NaturalScience []WeightedStem `yaml:"natural_science"`
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
)

// Default returns the compiled built-in lexicon. The value is shared.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		l := Defaults()
		if err := l.Compile(); err != nil {
			panic(fmt.Sprintf("lexicon: built-in tables do not compile: %v", err))
		}
		defaultLex = l
	})
	return defaultLex
}

// Load returns the built-in tables overlaid with the YAML file at path and
// compiled. An empty path yields Default(). Keys present in the file replace
// the corresponding default wholesale; absent keys keep the default.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon %s: %w", path, err)
	}
	l := Defaults()
	if err := yaml.Unmarshal(data, l); err != nil {
		return nil, fmt.Errorf("parsing lexicon %s: %w", path, err)
	}
	if err := l.Compile(); err != nil {
		return nil, fmt.Errorf("compiling lexicon %s: %w", path, err)
	}
	return l, nil
}

// Dump writes the lexicon as YAML.
func (l *Lexicon) Dump(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encoding lexicon: %w", err)
	}
	return enc.Close()
}

// Compile compiles every pattern in the lexicon. It must be called once
// before the lexicon is handed to an extractor.
func (l *Lexicon) Compile() error {
	l.compiled = make(map[string]*regexp.Regexp)
	for _, p := range l.patterns() {
		if p == "" {
			continue
		}
		if _, ok := l.compiled[p]; ok {
			continue
		}
		re, err := regexp.Compile(p)
		if err != nil {
			return fmt.Errorf("pattern %q: %w", p, err)
		}
		l.compiled[p] = re
	}
	return nil
}

// patterns lists every regular-expression field of the lexicon.
func (l *Lexicon) patterns() []string {
	var ps []string
	ps = append(ps, l.NoisePatterns...)
	ps = append(ps, l.SectionPrefix)
	ps = append(ps, l.SectionStop...)

	ps = append(ps, l.Description.Start...)
	ps = append(ps, l.Description.Stop...)
	ps = append(ps, l.Description.Text...)

	ps = append(ps, l.Goals.Start...)
	ps = append(ps, l.Goals.Stop...)
	ps = append(ps, l.Goals.Text...)
	ps = append(ps, l.Goals.Sentence, l.Goals.Marker, l.Goals.SpanText, l.Goals.SpanStart, l.Goals.SpanStop)

	ps = append(ps, l.Software.StartPrefix, l.Software.End, l.Software.License, l.Software.TextBlock)
	ps = append(ps, l.Software.Known...)

	ps = append(ps, l.Literature.MainHeaders...)
	ps = append(ps, l.Literature.AdditionalHeaders...)
	ps = append(ps, l.Literature.Stop...)
	ps = append(ps, l.Literature.Heading, l.Literature.TableHeader, l.Literature.EBS, l.Literature.BookWords, l.Literature.Standard)

	m := l.Metadata
	ps = append(ps, m.Name...)
	ps = append(ps, m.Program, m.Direction, m.Period, m.Volume, m.VolumeDetail, m.Outcome, m.TextSection)
	return ps
}

// Re returns the compiled form of pattern p. An empty pattern yields nil.
// It panics if p was not part of the lexicon when Compile ran.
func (l *Lexicon) Re(p string) *regexp.Regexp {
	if p == "" {
		return nil
	}
	re, ok := l.compiled[p]
	if !ok {
		panic(fmt.Sprintf("lexicon: pattern %q not compiled", p))
	}
	return re
}

// Set returns the compiled forms of ps, in order.
func (l *Lexicon) Set(ps []string) Patterns {
	out := make(Patterns, 0, len(ps))
	for _, p := range ps {
		if re := l.Re(p); re != nil {
			out = append(out, re)
		}
	}
	return out
}

// Patterns is an ordered list of compiled expressions.
type Patterns []*regexp.Regexp

// MatchAny reports whether any pattern matches s.
func (ps Patterns) MatchAny(s string) bool {
	for _, re := range ps {
		if re.MatchString(s) {
			return true
		}
	}
	return false
}

// First returns the first pattern that matches s, or nil.
func (ps Patterns) First(s string) *regexp.Regexp {
	for _, re := range ps {
		if re.MatchString(s) {
			return re
		}
	}
	return nil
}

// Concat returns a new list holding ps followed by more.
func (ps Patterns) Concat(more Patterns) Patterns {
	out := make(Patterns, 0, len(ps)+len(more))
	out = append(out, ps...)
	return append(out, more...)
}
