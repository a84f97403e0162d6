// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"

	"github.com/pdiddy/curriculum-graph/internal/text"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// Source is the input every strategy sees: the document's paragraphs (or
// text lines for PDF), normalized, and the flattened text with line
// breaks preserved.
type Source struct {
	Lines []string
	Text  string
}

// NewSource normalizes the paragraphs of doc. Empty paragraphs are kept
// so that positions match the document.
func NewSource(doc *types.Document) *Source {
	lines := make([]string, len(doc.Paragraphs))
	for i, p := range doc.Paragraphs {
		lines[i] = text.Normalize(p)
	}
	return &Source{Lines: lines, Text: doc.Text}
}

// Strategy is one tier of a fallback chain. Attempt reports whether the
// tier found a usable value; an unusable value is never returned with ok.
type Strategy interface {
	Name() string
	Attempt(src *Source) (value string, ok bool)
}

// Chain runs strategies in order until one succeeds.
type Chain []Strategy

// Run returns the first successful value and the name of the tier that
// produced it. Both are empty when every tier fails.
func (c Chain) Run(src *Source) (value, tier string) {
	for _, s := range c {
		if v, ok := s.Attempt(src); ok {
			return v, s.Name()
		}
	}
	return "", ""
}

const markerPunct = " .:;,"

// trimMarker strips the punctuation and spaces left around a marker.
func trimMarker(s string) string {
	return strings.Trim(s, markerPunct)
}
