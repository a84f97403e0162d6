// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package text

import (
	"regexp"
	"strings"

	"github.com/pdiddy/curriculum-graph/internal/lexicon"
)

const (
	// minBoundary is the rune offset a sentence boundary must exceed to
	// count; earlier periods belong to numbering or abbreviations.
	minBoundary = 8

	// shortTitleLen is the length under which unsplittable text is taken
	// whole as a title.
	shortTitleLen = 300

	// forcedTitleLen is the cut point for long text with no boundary.
	forcedTitleLen = 120
)

var sentenceBoundaryRe = regexp.MustCompile(`(\.)(\s+)([А-ЯЁA-Z])`)

// Segmenter splits a combined heading and content string into a title and
// a body.
type Segmenter struct {
	prefix *regexp.Regexp
}

// NewSegmenter builds a Segmenter using the lexicon's numbering prefix.
func NewSegmenter(lex *lexicon.Lexicon) *Segmenter {
	return &Segmenter{prefix: lex.Re(lex.SectionPrefix)}
}

// Split returns (title, body) for raw. The rules apply in order:
//
//  1. a numbering prefix such as "Тема 3." is set aside and re-attached to
//     the title;
//  2. the first sentence boundary (period, whitespace, capital letter)
//     past the 8th character ends the title;
//  3. text under 300 characters with no usable boundary is all title;
//  4. anything longer is cut at 120 characters with an ellipsis.
func (s *Segmenter) Split(raw string) (title, body string) {
	txt := Normalize(raw)
	if txt == "" {
		return "", ""
	}

	prefix := ""
	rest := txt
	if s.prefix != nil {
		if m := s.prefix.FindString(txt); m != "" {
			prefix = m
			rest = strings.TrimSpace(txt[len(m):])
		}
	}

	if loc := sentenceBoundaryRe.FindStringIndex(rest); loc != nil && Len(rest[:loc[0]]) > minBoundary {
		head := rest[:loc[0]+1]
		title = strings.TrimSpace(strings.TrimSpace(prefix) + " " + head)
		title = strings.ReplaceAll(title, "..", ".")
		return title, strings.TrimSpace(rest[loc[0]+1:])
	}

	if Len(txt) < shortTitleLen {
		return txt, ""
	}
	return Truncate(txt, forcedTitleLen) + "...", strings.TrimSpace(Tail(txt, forcedTitleLen))
}
