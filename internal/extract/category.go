// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/pdiddy/curriculum-graph/internal/lexicon"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// Classifier scores a discipline into one of the three categories.
type Classifier struct {
	kw lexicon.CategoryKeywords
}

// NewClassifier returns a Classifier over the lexicon's category stems.
func NewClassifier(lex *lexicon.Lexicon) *Classifier {
	return &Classifier{kw: lex.Categories}
}

// Scores returns the technical, humanitarian and natural-science scores
// for the lowercased concatenation of name, description and goals.
func (c *Classifier) Scores(name, description, goals string) (tech, hum, nat int) {
	s := strings.ToLower(name + " " + description + " " + goals)
	return score(s, c.kw.Technical), score(s, c.kw.Humanitarian), score(s, c.kw.NaturalScience)
}

// Classify picks the highest-scoring category. Ties go to technical, then
// humanitarian.
func (c *Classifier) Classify(name, description, goals string) types.Category {
	tech, hum, nat := c.Scores(name, description, goals)
	switch {
	case tech >= hum && tech >= nat:
		return types.CategoryTechnical
	case hum >= nat:
		return types.CategoryHumanitarian
	default:
		return types.CategoryNaturalScience
	}
}

func score(s string, stems []lexicon.WeightedStem) int {
	total := 0
	for _, st := range stems {
		if st.Stem == "" || !strings.Contains(s, st.Stem) {
			continue
		}
		// an overlay that omits the weight counts the stem once
		total += max(st.Weight, 1)
	}
	return total
}
