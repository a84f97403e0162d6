// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package literature segments a bibliography into primary and supplementary
// entries and decomposes each entry into typed fields.
//
// Segmentation is a four-state machine (idle, main, additional, done)
// driven by header and stop patterns from the lexicon. Wrapped entries are
// rebuilt by merging every line that does not start with a numbering
// marker into the entry before it.
package literature

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/pdiddy/curriculum-graph/internal/lexicon"
	"github.com/pdiddy/curriculum-graph/internal/text"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// State is the position of the segmentation machine in the bibliography.
type State int

const (
	StateIdle State = iota
	StateMain
	StateAdditional
	StateDone
)

func (s State) String() string {
	switch s {
	case StateMain:
		return "main"
	case StateAdditional:
		return "additional"
	case StateDone:
		return "done"
	}
	return "idle"
}

const (
	minBufferedLine = 3
	minEntryLen     = 10
	maxHeadingLen   = 80
)

var (
	sweepMainRe  = regexp.MustCompile(`^4\.1`)
	sweepAddRe   = regexp.MustCompile(`^4\.2`)
	sweepEntryRe = regexp.MustCompile(`^\d+\.`)
)

// Parser holds the compiled bibliography tables. It is safe for
// concurrent use.
type Parser struct {
	main        lexicon.Patterns
	additional  lexicon.Patterns
	stop        lexicon.Patterns
	heading     *regexp.Regexp
	tableHeader *regexp.Regexp
	ebs         *regexp.Regexp
	bookWords   *regexp.Regexp
	standard    *regexp.Regexp
}

// NewParser builds a Parser from the lexicon's literature tables.
func NewParser(lex *lexicon.Lexicon) *Parser {
	lt := lex.Literature
	return &Parser{
		main:        lex.Set(lt.MainHeaders),
		additional:  lex.Set(lt.AdditionalHeaders),
		stop:        lex.Set(lt.Stop),
		heading:     lex.Re(lt.Heading),
		tableHeader: lex.Re(lt.TableHeader),
		ebs:         lex.Re(lt.EBS),
		bookWords:   lex.Re(lt.BookWords),
		standard:    lex.Re(lt.Standard),
	}
}

// Transition reports the state a normalized line moves the machine to.
// ok is false for content lines. Header checks run before the stop check,
// so a new header reopens a finished bibliography.
func (p *Parser) Transition(line string) (next State, ok bool) {
	switch {
	case p.main.MatchAny(line):
		return StateMain, true
	case p.additional.MatchAny(line):
		return StateAdditional, true
	case p.stop.MatchAny(line):
		return StateDone, true
	}
	return StateIdle, false
}

// SectionHeading reports whether a numbered line inside a list is the next
// section heading rather than an entry. last is the number of the previous
// entry in the list, or 0. A line carrying author initials is always an
// entry. Otherwise a number that breaks the entry sequence marks a heading,
// and a number that continues it marks one only when the line is short and
// carries no year, URL or source separator.
func (p *Parser) SectionHeading(line string, last int) bool {
	if p.heading == nil || !p.heading.MatchString(line) {
		return false
	}
	if authorRe.MatchString(line) || authorAltRe.MatchString(line) {
		return false
	}
	num, _, ok := numbering(line)
	if !ok {
		return false
	}
	if n, err := strconv.Atoi(num); err != nil || n != last+1 {
		return true
	}
	return text.Len(line) <= maxHeadingLen &&
		!yearRe.MatchString(line) &&
		!urlRe.MatchString(line) &&
		!strings.Contains(line, "//")
}

// segmenter accumulates lines for the current list and flushes them on
// every transition.
type segmenter struct {
	p     *Parser
	state State
	last  int
	buf   []string
	out   types.LiteratureSet
}

func (s *segmenter) feed(line string) {
	t := text.Normalize(line)
	if t == "" {
		return
	}
	if next, ok := s.p.Transition(t); ok {
		s.transition(next)
		return
	}
	if s.state != StateMain && s.state != StateAdditional {
		return
	}
	if s.p.SectionHeading(t, s.last) {
		s.transition(StateDone)
		return
	}
	if text.Len(t) >= minBufferedLine {
		if num, _, ok := numbering(t); ok {
			s.last, _ = strconv.Atoi(num)
		}
		s.buf = append(s.buf, t)
	}
}

func (s *segmenter) transition(next State) {
	s.flush()
	s.state = next
	s.last = 0
}

func (s *segmenter) flush() {
	if len(s.buf) > 0 {
		var entries []types.LiteratureEntry
		for _, raw := range Merge(s.buf) {
			raw = text.Normalize(raw)
			if text.Len(raw) < minEntryLen {
				continue
			}
			entries = append(entries, s.p.ParseEntry(raw))
		}
		switch s.state {
		case StateMain:
			s.out.Main = append(s.out.Main, entries...)
		case StateAdditional:
			s.out.Additional = append(s.out.Additional, entries...)
		}
	}
	s.buf = nil
}

// FromLines runs the segmentation machine over a line stream such as
// document paragraphs.
func (p *Parser) FromLines(lines []string) types.LiteratureSet {
	s := &segmenter{p: p, out: emptySet()}
	for _, ln := range lines {
		s.feed(ln)
	}
	s.flush()
	return s.out
}

// FromText runs the segmentation machine over the lines of flattened text.
func (p *Parser) FromText(flat string) types.LiteratureSet {
	return p.FromLines(strings.Split(flat, "\n"))
}

// FromTables reads bibliography tables: tables whose first row names a
// literature list or an author/title/source column. Each later row yields
// one entry from its longest cell, or from its joined cells when every
// cell is short.
func (p *Parser) FromTables(tables []types.Table) types.LiteratureSet {
	out := emptySet()
	for _, tbl := range tables {
		if len(tbl) < 2 {
			continue
		}
		header := make([]string, len(tbl[0]))
		for i, c := range tbl[0] {
			header[i] = text.Normalize(c)
		}
		h := strings.ToLower(strings.Join(header, " "))
		isMain := p.main.MatchAny(h)
		if !isMain && !p.additional.MatchAny(h) && !p.tableHeader.MatchString(h) {
			continue
		}

		for _, row := range tbl[1:] {
			raw := rowEntry(row)
			if raw == "" {
				continue
			}
			e := p.ParseEntry(raw)
			if isMain {
				out.Main = append(out.Main, e)
			} else {
				out.Additional = append(out.Additional, e)
			}
		}
	}
	return out
}

func rowEntry(row []string) string {
	cells := make([]string, len(row))
	longest := ""
	allShort := true
	for i, c := range row {
		cells[i] = text.Normalize(c)
		if text.Len(cells[i]) >= minBufferedLine {
			allShort = false
		}
		if text.Len(cells[i]) > text.Len(longest) {
			longest = cells[i]
		}
	}
	if allShort {
		return ""
	}
	if text.Len(longest) > minEntryLen {
		return longest
	}
	var parts []string
	for _, c := range cells {
		if text.Len(c) > 2 {
			parts = append(parts, c)
		}
	}
	if joined := strings.Join(parts, " "); text.Len(joined) > minEntryLen {
		return joined
	}
	return ""
}

// FromNumberedLines is the last-resort sweep: numbered lines under a
// "4.1" heading are primary entries, under "4.2" supplementary, until a
// stop pattern or a numbered section heading.
func (p *Parser) FromNumberedLines(lines []string) types.LiteratureSet {
	out := emptySet()
	state := StateIdle
	last := 0
	for _, ln := range lines {
		t := text.Normalize(ln)
		switch {
		case sweepMainRe.MatchString(t):
			state, last = StateMain, 0
		case sweepAddRe.MatchString(t):
			state, last = StateAdditional, 0
		case p.stop.MatchAny(t), state != StateIdle && p.SectionHeading(t, last):
			state = StateIdle
		case sweepEntryRe.MatchString(t) && text.Len(t) > minEntryLen:
			if num, _, ok := numbering(t); ok {
				last, _ = strconv.Atoi(num)
			}
			switch state {
			case StateMain:
				out.Main = append(out.Main, p.ParseEntry(t))
			case StateAdditional:
				out.Additional = append(out.Additional, p.ParseEntry(t))
			}
		}
	}
	return out
}

// Merge rebuilds wrapped entries: a line that starts with a numbering
// marker opens a new entry, any other line is appended to the current one.
func Merge(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	var merged []string
	cur := strings.TrimSpace(lines[0])
	for _, ln := range lines[1:] {
		s := strings.TrimSpace(ln)
		if s == "" {
			continue
		}
		if _, _, ok := numbering(s); ok {
			if cur != "" {
				merged = append(merged, cur)
			}
			cur = s
			continue
		}
		cur += " " + s
	}
	if cur != "" {
		merged = append(merged, cur)
	}
	return merged
}

func emptySet() types.LiteratureSet {
	return types.LiteratureSet{
		Main:       []types.LiteratureEntry{},
		Additional: []types.LiteratureEntry{},
	}
}
