// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"slices"
	"strings"

	"github.com/pdiddy/curriculum-graph/internal/lexicon"
	"github.com/pdiddy/curriculum-graph/internal/text"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

const (
	minSoftwareLen = 2
	maxSoftwareLen = 150

	// softwareHeaderRows is how many leading rows may hold a table header.
	softwareHeaderRows = 2
)

var (
	colonRe      = regexp.MustCompile(`[:：]\s*`)
	itemSepRe    = regexp.MustCompile(`[;,]\s*`)
	itemNumberRe = regexp.MustCompile(`^\d+[.)]\s*`)
	itemBulletRe = regexp.MustCompile(`^[-–—•·]\s*`)
	bareNumberRe = regexp.MustCompile(`^\d+\.?$`)
)

// SoftwareExtractor recovers the software list. Paragraph and table
// collectors always run; the known-name patterns only run when both come
// back empty.
type SoftwareExtractor struct {
	markers     []string
	startPrefix *regexp.Regexp
	end         *regexp.Regexp
	filler      []string

	tableMarkers     []string
	tableHeaderWords []string
	license          *regexp.Regexp

	known lexicon.Patterns

	textBlock  *regexp.Regexp
	textFiller []string
}

// NewSoftwareExtractor builds the collectors from the lexicon.
func NewSoftwareExtractor(lex *lexicon.Lexicon) *SoftwareExtractor {
	sw := lex.Software
	return &SoftwareExtractor{
		markers:          sw.Markers,
		startPrefix:      lex.Re(sw.StartPrefix),
		end:              lex.Re(sw.End),
		filler:           sw.Filler,
		tableMarkers:     sw.TableMarkers,
		tableHeaderWords: sw.TableHeaderWords,
		license:          lex.Re(sw.License),
		known:            lex.Set(sw.Known),
		textBlock:        lex.Re(sw.TextBlock),
		textFiller:       sw.TextFiller,
	}
}

// Extract runs the collectors over a decoded DOCX and returns the
// deduplicated list.
func (s *SoftwareExtractor) Extract(src *Source, tables []types.Table) []string {
	all := s.FromParagraphs(src.Lines)
	all = append(all, s.FromTables(tables)...)
	if len(all) == 0 {
		all = s.FromKnownNames(src.Text)
	}
	return Dedup(all)
}

// ExtractText runs the text-block collector over flattened text, with the
// known-name patterns as fallback.
func (s *SoftwareExtractor) ExtractText(flat string) []string {
	all := s.FromTextBlock(flat)
	if len(all) == 0 {
		all = s.FromKnownNames(flat)
	}
	return Dedup(all)
}

func (s *SoftwareExtractor) isStart(line string) bool {
	if text.ContainsAny(strings.ToLower(line), s.markers) {
		return true
	}
	return s.startPrefix != nil && s.startPrefix.MatchString(line)
}

// FromParagraphs collects items from a software list written as
// paragraphs. A marker line opens the list; items may also follow a colon
// on the marker line itself.
func (s *SoftwareExtractor) FromParagraphs(lines []string) []string {
	var out []string
	state := fieldIdle
	for _, ln := range lines {
		if ln == "" {
			continue
		}
		if s.isStart(ln) {
			state = fieldCollecting
			if loc := colonRe.FindStringIndex(ln); loc != nil {
				if rest := strings.TrimSpace(ln[loc[1]:]); text.Len(rest) > 3 {
					out = append(out, splitItems(itemSepRe.Split(rest, -1))...)
				}
			}
			continue
		}
		if state != fieldCollecting {
			continue
		}
		if s.end != nil && s.end.MatchString(ln) {
			state = fieldIdle
			continue
		}
		if text.Len(ln) < 3 || text.ContainsAny(strings.ToLower(ln), s.filler) {
			continue
		}
		item := stripItemMarker(ln)
		if text.Len(item) < 3 {
			continue
		}
		if strings.Contains(item, ";") {
			out = append(out, splitItems(strings.Split(item, ";"))...)
		} else {
			out = append(out, strings.TrimRight(item, "."))
		}
	}
	return out
}

// FromTables collects every substantive cell of software tables, i.e.
// tables whose first two rows mention a software marker.
func (s *SoftwareExtractor) FromTables(tables []types.Table) []string {
	var out []string
	for _, tbl := range tables {
		if len(tbl) == 0 || !s.isSoftwareTable(tbl) {
			continue
		}
		for i, row := range tbl {
			cells := make([]string, len(row))
			for j, c := range row {
				cells[j] = text.Normalize(c)
			}
			if i < softwareHeaderRows && text.ContainsAny(strings.ToLower(strings.Join(cells, " ")), s.tableHeaderWords) {
				continue
			}
			for _, c := range cells {
				if text.Len(c) < 3 || bareNumberRe.MatchString(c) {
					continue
				}
				if s.license != nil && s.license.MatchString(c) {
					continue
				}
				c = strings.TrimSpace(itemNumberRe.ReplaceAllString(c, ""))
				if text.Len(c) > 2 && !slices.Contains(out, c) {
					out = append(out, c)
				}
			}
		}
	}
	return out
}

func (s *SoftwareExtractor) isSoftwareTable(tbl types.Table) bool {
	var hdr strings.Builder
	for _, row := range tbl[:min(softwareHeaderRows, len(tbl))] {
		for _, c := range row {
			hdr.WriteByte(' ')
			hdr.WriteString(strings.ToLower(text.Normalize(c)))
		}
	}
	return text.ContainsAny(hdr.String(), s.tableMarkers)
}

// FromKnownNames matches well-known product names anywhere in the text.
func (s *SoftwareExtractor) FromKnownNames(flat string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, re := range s.known {
		for _, m := range re.FindAllString(flat, -1) {
			m = text.Normalize(m)
			key := strings.ToLower(m)
			if m == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, m)
		}
	}
	return out
}

// FromTextBlock reads the lines of the software block in flattened text,
// one item per line.
func (s *SoftwareExtractor) FromTextBlock(flat string) []string {
	if s.textBlock == nil {
		return nil
	}
	m := s.textBlock.FindStringSubmatch(flat)
	if len(m) < 2 {
		return nil
	}
	var out []string
	for _, ln := range strings.Split(m[1], "\n") {
		item := strings.TrimRight(stripItemMarker(strings.TrimSpace(ln)), ".")
		if text.Len(item) <= 3 || text.ContainsAny(strings.ToLower(item), s.textFiller) {
			continue
		}
		item = text.Normalize(item)
		if !slices.Contains(out, item) {
			out = append(out, item)
		}
	}
	return out
}

// stripItemMarker removes a leading "1." / "2)" number and then a bullet.
func stripItemMarker(s string) string {
	s = strings.TrimSpace(itemNumberRe.ReplaceAllString(s, ""))
	return strings.TrimSpace(itemBulletRe.ReplaceAllString(s, ""))
}

func splitItems(parts []string) []string {
	var out []string
	for _, p := range parts {
		p = strings.TrimRight(strings.TrimSpace(p), ".")
		if text.Len(p) > 2 {
			out = append(out, p)
		}
	}
	return out
}

// Dedup trims items, drops those outside the accepted length range and
// removes case-insensitive duplicates, keeping the first spelling.
func Dedup(items []string) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, it := range items {
		it = strings.TrimSpace(it)
		n := text.Len(it)
		if n < minSoftwareLen || n > maxSoftwareLen {
			continue
		}
		key := strings.ToLower(it)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, it)
	}
	return out
}
