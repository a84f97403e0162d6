// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/curriculum-graph/internal/lexicon"
	"github.com/pdiddy/curriculum-graph/internal/text"
)

const (
	// maxFieldLen stops a paragraph collector once the buffer grows past it.
	maxFieldLen = 2000

	// maxBulletLen stops bullet accumulation.
	maxBulletLen = 1500

	// minIndicatorLen is the shortest paragraph the indicator scan accepts.
	minIndicatorLen = 50

	// maxMarkerLine is the longest line the bullet tier treats as a goals
	// heading.
	maxMarkerLine = 100

	// shortGoals is the length under which a goals value is still
	// considered missing by the late tiers.
	shortGoals = 10

	// maxGoalSentences caps the goal-sentence tier.
	maxGoalSentences = 3
)

var (
	numberedHeadingRe = regexp.MustCompile(`^\d+\.`)
	bulletRe          = regexp.MustCompile(`^(?:[-–—•·]|\d+[.)])`)
	bulletStripRe     = regexp.MustCompile(`^[-–—•·\d.)]+\s*`)
	leadingPunctRe    = regexp.MustCompile(`^[.:;,\s]+`)
)

// noiseFilter recognizes boilerplate lines; *text.Classifier is one.
type noiseFilter interface {
	IsNoiseLine(s string) bool
}

// fieldState is the position of a paragraph collector.
type fieldState int

const (
	fieldIdle fieldState = iota
	fieldCollecting
	fieldDone
)

func (s fieldState) String() string {
	switch s {
	case fieldIdle:
		return "idle"
	case fieldCollecting:
		return "collecting"
	case fieldDone:
		return "done"
	}
	return "unknown"
}

// sectionCollector is the paragraph state machine. In idle it waits for a
// start pattern and keeps whatever follows the marker on the same line;
// in collecting it appends lines until a stop pattern, the size cap, or
// the end of the document.
type sectionCollector struct {
	name  string
	start lexicon.Patterns
	stop  lexicon.Patterns
	noise noiseFilter

	// remainderMin is the length the same-line remainder must exceed.
	remainderMin int

	// colonSkip drops lines shorter than this that end in a colon,
	// unless they contain one of keep.
	colonSkip int
	keep      []string

	min int
}

func (c *sectionCollector) Name() string { return c.name }

// next returns the state after line and whether line (or its remainder)
// belongs to the field.
func (c *sectionCollector) next(state fieldState, line string) (fieldState, string) {
	switch state {
	case fieldIdle:
		re := c.start.First(line)
		if re == nil {
			return fieldIdle, ""
		}
		loc := re.FindStringIndex(line)
		rest := trimMarker(line[loc[1]:])
		if text.Len(rest) > c.remainderMin {
			return fieldCollecting, rest
		}
		return fieldCollecting, ""
	case fieldCollecting:
		if c.stop.MatchAny(line) {
			return fieldDone, ""
		}
		if text.Len(line) < c.colonSkip && strings.HasSuffix(line, ":") &&
			!text.ContainsAny(strings.ToLower(line), c.keep) {
			return fieldCollecting, ""
		}
		return fieldCollecting, line
	}
	return state, ""
}

func (c *sectionCollector) Attempt(src *Source) (string, bool) {
	state := fieldIdle
	var buf []string
	size := 0
	for _, ln := range src.Lines {
		if ln == "" || c.noise.IsNoiseLine(ln) {
			continue
		}
		var keep string
		state, keep = c.next(state, ln)
		if state == fieldDone {
			break
		}
		if keep != "" {
			buf = append(buf, keep)
			size += text.Len(keep) + 1
			if size > maxFieldLen {
				break
			}
		}
	}
	v := leadingPunctRe.ReplaceAllString(strings.TrimSpace(strings.Join(buf, " ")), "")
	return v, text.Len(v) > c.min
}

// textPatterns matches lazily bounded expressions against the flattened
// text; the first capture above min wins.
type textPatterns struct {
	name     string
	patterns lexicon.Patterns
	min      int
}

func (t *textPatterns) Name() string { return t.name }

func (t *textPatterns) Attempt(src *Source) (string, bool) {
	for _, re := range t.patterns {
		m := re.FindStringSubmatch(src.Text)
		if len(m) < 2 {
			continue
		}
		if v := text.Normalize(m[1]); text.Len(v) > t.min {
			return v, true
		}
	}
	return "", false
}

// indicatorScan returns the first substantial paragraph that reads like a
// description: long enough, not boilerplate, not a numbered heading, and
// containing a descriptive verb stem.
type indicatorScan struct {
	indicators []string
	noise      noiseFilter
}

func (indicatorScan) Name() string { return "indicators" }

func (s *indicatorScan) Attempt(src *Source) (string, bool) {
	for _, ln := range src.Lines {
		if text.Len(ln) < minIndicatorLen || s.noise.IsNoiseLine(ln) {
			continue
		}
		if numberedHeadingRe.MatchString(ln) {
			continue
		}
		if text.ContainsAny(strings.ToLower(ln), s.indicators) {
			return ln, true
		}
	}
	return "", false
}

// goalSentences joins the first few "целью ... является ..." sentences.
type goalSentences struct {
	re *regexp.Regexp
}

func (goalSentences) Name() string { return "sentences" }

func (g *goalSentences) Attempt(src *Source) (string, bool) {
	if g.re == nil {
		return "", false
	}
	found := g.re.FindAllString(src.Text, maxGoalSentences)
	if len(found) == 0 {
		return "", false
	}
	v := text.Normalize(strings.Join(found, " "))
	return v, v != ""
}

// bulletList starts at a short line mentioning goals and accumulates the
// bullet or plain lines after it.
type bulletList struct {
	marker *regexp.Regexp
	stop   lexicon.Patterns
}

func (bulletList) Name() string { return "bullets" }

func (b *bulletList) Attempt(src *Source) (string, bool) {
	if b.marker == nil {
		return "", false
	}
	in := false
	var buf []string
	size := 0
	for _, ln := range src.Lines {
		if ln == "" {
			continue
		}
		if text.Len(ln) < maxMarkerLine && b.marker.MatchString(ln) {
			in = true
			if i := strings.IndexAny(ln, ":."); i >= 0 {
				if after := strings.TrimSpace(ln[i+1:]); text.Len(after) > shortGoals {
					buf = append(buf, after)
					size += text.Len(after) + 1
				}
			}
			continue
		}
		if !in {
			continue
		}
		if b.stop.MatchAny(ln) {
			break
		}
		switch {
		case bulletRe.MatchString(ln):
			item := bulletStripRe.ReplaceAllString(ln, "")
			buf = append(buf, item)
			size += text.Len(item) + 1
		case text.Len(ln) > 20:
			buf = append(buf, ln)
			size += text.Len(ln) + 1
		}
		if size > maxBulletLen {
			break
		}
	}
	v := strings.TrimSpace(strings.Join(buf, " "))
	return v, text.Len(v) >= shortGoals
}

// headingSpan captures the text between a goals heading and the next
// section heading in the flattened text.
type headingSpan struct {
	re *regexp.Regexp
}

func (headingSpan) Name() string { return "span" }

func (h *headingSpan) Attempt(src *Source) (string, bool) {
	if h.re == nil {
		return "", false
	}
	m := h.re.FindStringSubmatch(src.Text)
	if len(m) < 2 {
		return "", false
	}
	v := text.Normalize(m[1])
	return v, text.Len(v) >= shortGoals
}

// paragraphSpan collects every paragraph between a start and a stop
// heading.
type paragraphSpan struct {
	start, stop *regexp.Regexp
}

func (paragraphSpan) Name() string { return "paragraph-span" }

func (p *paragraphSpan) Attempt(src *Source) (string, bool) {
	if p.start == nil {
		return "", false
	}
	in := false
	var buf []string
	for _, ln := range src.Lines {
		if p.start.MatchString(ln) {
			in = true
			continue
		}
		if !in {
			continue
		}
		if p.stop != nil && p.stop.MatchString(ln) {
			break
		}
		if ln != "" {
			buf = append(buf, ln)
		}
	}
	v := strings.Join(buf, " ")
	return v, v != ""
}
