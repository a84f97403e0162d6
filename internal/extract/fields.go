// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"github.com/pdiddy/curriculum-graph/internal/lexicon"
	"github.com/pdiddy/curriculum-graph/internal/text"
)

const (
	descriptionRemainderMin = 15
	descriptionColonSkip    = 100
	goalsRemainderMin       = 10
	goalsColonSkip          = 100
)

// DescriptionChain returns the paragraph, text-pattern and indicator tiers
// for the description field, in that order.
func DescriptionChain(lex *lexicon.Lexicon, cls *text.Classifier) Chain {
	d := lex.Description
	return Chain{
		&sectionCollector{
			name:         "paragraphs",
			start:        lex.Set(d.Start),
			stop:         lex.Set(lex.SectionStop).Concat(lex.Set(d.Stop)),
			noise:        cls,
			remainderMin: descriptionRemainderMin,
			colonSkip:    descriptionColonSkip,
			min:          d.MinLength,
		},
		&textPatterns{name: "text", patterns: lex.Set(d.Text), min: d.MinLength},
		&indicatorScan{indicators: d.Indicators, noise: cls},
	}
}

// GoalsChain returns the tiers for the goals field: paragraph collector,
// text patterns, goal sentences, bullet list, heading span in the text,
// and finally the paragraphs between the goals and content headings.
func GoalsChain(lex *lexicon.Lexicon, cls *text.Classifier) Chain {
	g := lex.Goals
	stop := lex.Set(lex.SectionStop).Concat(lex.Set(g.Stop))
	return Chain{
		&sectionCollector{
			name:         "paragraphs",
			start:        lex.Set(g.Start),
			stop:         stop,
			noise:        cls,
			remainderMin: goalsRemainderMin,
			colonSkip:    goalsColonSkip,
			keep:         g.KeepStems,
			min:          g.MinLength,
		},
		&textPatterns{name: "text", patterns: lex.Set(g.Text), min: g.MinLength},
		&goalSentences{re: lex.Re(g.Sentence)},
		&bulletList{marker: lex.Re(g.Marker), stop: stop},
		&headingSpan{re: lex.Re(g.SpanText)},
		&paragraphSpan{start: lex.Re(g.SpanStart), stop: lex.Re(g.SpanStop)},
	}
}

// TextDescriptionChain is the description chain for documents that only
// have flattened text: text patterns, then indicator lines.
func TextDescriptionChain(lex *lexicon.Lexicon, cls *text.Classifier) Chain {
	d := lex.Description
	return Chain{
		&textPatterns{name: "text", patterns: lex.Set(d.Text), min: d.MinLength},
		&indicatorScan{indicators: d.Indicators, noise: cls},
	}
}

// TextGoalsChain is the goals chain for flattened text.
func TextGoalsChain(lex *lexicon.Lexicon) Chain {
	g := lex.Goals
	return Chain{
		&textPatterns{name: "text", patterns: lex.Set(g.Text), min: g.MinLength},
		&goalSentences{re: lex.Re(g.Sentence)},
		&headingSpan{re: lex.Re(g.SpanText)},
	}
}
