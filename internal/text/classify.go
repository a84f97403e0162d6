// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package text

import (
	"strings"

	"github.com/pdiddy/curriculum-graph/internal/lexicon"
)

// minLineLen is the shortest line that can carry content; anything shorter
// is treated as noise.
const minLineLen = 5

// Classifier recognizes boilerplate lines and non-content table rows.
type Classifier struct {
	noise  lexicon.Patterns
	header []string
	skip   []string
}

// NewClassifier builds a Classifier from the lexicon's noise, header and
// skip tables.
func NewClassifier(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{
		noise:  lex.Set(lex.NoisePatterns),
		header: lex.HeaderWords,
		skip:   lex.SkipWords,
	}
}

// IsNoiseLine reports whether s is too short to carry content or matches
// a boilerplate pattern (page number, approval stamp, signatory title).
func (c *Classifier) IsNoiseLine(s string) bool {
	s = strings.TrimSpace(s)
	if Len(s) < minLineLen {
		return true
	}
	return c.noise.MatchAny(s)
}

// IsHeaderRow reports whether a table row looks like a column header:
// at least two header words occur in the joined cell text.
func (c *Classifier) IsHeaderRow(cells []string) bool {
	joined := strings.ToLower(strings.Join(cells, " "))
	return CountContained(joined, c.header) >= 2
}

// IsSkipRow reports whether a table row is empty or an aggregate or
// administrative row (totals, exams, attestation).
func (c *Classifier) IsSkipRow(cells []string) bool {
	joined := strings.ToLower(strings.TrimSpace(strings.Join(cells, " ")))
	if Len(joined) < 3 {
		return true
	}
	return ContainsAny(joined, c.skip)
}
