// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"regexp"
	"strings"

	"github.com/pdiddy/curriculum-graph/internal/lexicon"
	"github.com/pdiddy/curriculum-graph/internal/text"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// maxTextContent caps section content recovered from flattened text.
const maxTextContent = 500

var hourRunRe = regexp.MustCompile(`(\d{1,3})\s+(\d{1,3})\s+(\d{1,3})\s+(\d{1,3})`)

// TextSections recovers sections from flattened text, where no table
// structure survives. The text is cut at "Раздел N." headings; inside each
// chunk the first run of four small numbers is read as lectures,
// practice, labs and self-study.
type TextSections struct {
	heading *regexp.Regexp
	seg     *text.Segmenter
}

// NewTextSections builds the splitter from the lexicon's section heading.
func NewTextSections(lex *lexicon.Lexicon, seg *text.Segmenter) *TextSections {
	return &TextSections{heading: lex.Re(lex.Metadata.TextSection), seg: seg}
}

// Extract returns one section per heading, in text order.
func (t *TextSections) Extract(flat string) []types.Section {
	sections := []types.Section{}
	if t.heading == nil {
		return sections
	}
	locs := t.heading.FindAllStringIndex(flat, -1)
	for i, loc := range locs {
		header := text.Normalize(flat[loc[0]:loc[1]])
		end := len(flat)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		body := flat[loc[1]:end]

		h := types.ZeroHours()
		if m := hourRunRe.FindStringSubmatch(body); m != nil {
			h = types.Hours{Lectures: m[1], Practice: m[2], Labs: m[3], SelfStudy: m[4]}
			body = strings.ReplaceAll(body, m[0], "")
		}
		name, content := t.seg.Split(body)
		sections = append(sections, types.Section{
			Name:           strings.TrimSpace(header + " " + name),
			Content:        text.Truncate(content, maxTextContent),
			Hours:          h,
			LinkedSoftware: []string{},
		})
	}
	return sections
}
