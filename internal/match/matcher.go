// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package match links detected software to the syllabus sections whose
// text mentions it.
package match

import (
	"hash/fnv"
	"regexp"
	"slices"
	"strings"

	"github.com/pdiddy/curriculum-graph/internal/lexicon"
	"github.com/pdiddy/curriculum-graph/internal/text"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

const (
	hitScore      = 2
	linkThreshold = 2
	minKeywordLen = 3
)

var tokenSplitRe = regexp.MustCompile(`[\s,;/\\()\-]+`)

// Matcher scores software against sections using the lexicon's tool
// aliases. It holds no mutable state.
type Matcher struct {
	aliases []lexicon.ToolAlias
}

// NewMatcher builds a Matcher from the lexicon's tool-alias table.
func NewMatcher(lex *lexicon.Lexicon) *Matcher {
	return &Matcher{aliases: lex.ToolAliases}
}

// Keywords returns the keyword set for one software name, in a stable
// order: alias keywords first, then the lowercased name, then its tokens
// longer than two characters.
func (m *Matcher) Keywords(software string) []string {
	name := strings.ToLower(strings.TrimSpace(software))
	if name == "" {
		return nil
	}
	var kws []string
	add := func(k string) {
		if !slices.Contains(kws, k) {
			kws = append(kws, k)
		}
	}
	for _, a := range m.aliases {
		if aliasApplies(name, a) {
			for _, k := range a.Keywords {
				add(k)
			}
		}
	}
	add(name)
	for _, part := range tokenSplitRe.Split(name, -1) {
		if text.Len(part) > 2 {
			add(part)
		}
	}
	return kws
}

func aliasApplies(name string, a lexicon.ToolAlias) bool {
	if strings.Contains(name, a.Tool) || strings.Contains(a.Tool, name) {
		return true
	}
	for _, k := range a.Keywords {
		if strings.Contains(name, k) {
			return true
		}
	}
	return false
}

// Score returns the match score of keywords against lowercased section text.
func Score(keywords []string, sectionText string) int {
	score := 0
	for _, k := range keywords {
		if text.Len(k) < minKeywordLen {
			continue
		}
		if strings.Contains(sectionText, k) {
			score += hitScore
		}
	}
	return score
}

// Link returns a copy of sections with LinkedSoftware filled in. A software
// item is linked to every section it scores at least 2 against. Items left
// unlinked are assigned to one section chosen by hashing the name, so every
// item ends up somewhere and repeated runs give the same result.
func (m *Matcher) Link(sections []types.Section, software []string) []types.Section {
	out := make([]types.Section, len(sections))
	copy(out, sections)
	if len(software) == 0 || len(sections) == 0 {
		return out
	}

	keywords := make([][]string, len(software))
	for i, sw := range software {
		keywords[i] = m.Keywords(sw)
	}

	linked := make(map[string]bool)
	for i := range out {
		sectionText := strings.ToLower(out[i].Name + " " + out[i].Content)
		matched := []string{}
		for j, sw := range software {
			if slices.Contains(matched, sw) {
				continue
			}
			if Score(keywords[j], sectionText) >= linkThreshold {
				matched = append(matched, sw)
				linked[sw] = true
			}
		}
		out[i].LinkedSoftware = matched
	}

	for _, sw := range software {
		if linked[sw] {
			continue
		}
		idx := Bucket(sw, len(out))
		if !slices.Contains(out[idx].LinkedSoftware, sw) {
			out[idx].LinkedSoftware = append(out[idx].LinkedSoftware, sw)
		}
	}
	return out
}

// Bucket maps a software name onto one of n sections with FNV-1a.
func Bucket(name string, n int) int {
	h := fnv.New32a()
	h.Write([]byte(name))
	return int(h.Sum32() % uint32(n))
}
