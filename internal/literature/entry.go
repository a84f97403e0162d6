// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package literature

import (
	"regexp"
	"strings"

	"github.com/pdiddy/curriculum-graph/internal/text"
	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// Bibliographic field patterns.
var (
	// numberingRes match the entry numbering forms "N. ", "[N]" and "N) ".
	numberingRes = []*regexp.Regexp{
		regexp.MustCompile(`^\s*(\d{1,3})\.\s+`),
		regexp.MustCompile(`^\s*\[(\d{1,3})\]\s*`),
		regexp.MustCompile(`^\s*(\d{1,3})\)\s+`),
	}

	urlRe   = regexp.MustCompile(`https?://[^\s,;)]+`)
	doiRe   = regexp.MustCompile(`(?i)doi:\s*(10\.\d{4,}/[^\s,;]+)`)
	isbnRe  = regexp.MustCompile(`ISBN[\s:-]*([\d\-Xx ]+)`)
	yearRe  = regexp.MustCompile(`(?:19[5-9]|20[0-3])\d`)
	pagesRe = regexp.MustCompile(`[–—-]\s*(\d+)\s*[сcСC](?:[^\p{L}\p{N}_]|$)`)

	// authorRe matches "Surname I.I." and authorAltRe "I.I. Surname".
	authorRe    = regexp.MustCompile(`[А-ЯЁA-Z][а-яёa-z]+,?\s+[А-ЯЁA-Z]\.(?:\s*[А-ЯЁA-Z]\.)?`)
	authorAltRe = regexp.MustCompile(`[А-ЯЁA-Z]\.(?:\s*[А-ЯЁA-Z]\.)?\s*[А-ЯЁA-Z][а-яёa-z]+`)

	dashSplitRe = regexp.MustCompile(`\s+[–—]\s+`)
)

const (
	maxAuthors      = 10
	strippedAuthors = 2
	minTitleLen     = 5
	maxTitleLen     = 200
)

// numbering returns the entry number and the length of the numbering
// prefix of s, or ok=false when s does not start with one.
func numbering(s string) (number string, end int, ok bool) {
	for _, re := range numberingRes {
		if m := re.FindStringSubmatchIndex(s); m != nil {
			return s[m[2]:m[3]], m[1], true
		}
	}
	return "", 0, false
}

// ParseEntry decomposes one merged bibliography entry into its fields.
// Raw is kept verbatim; every other field is best-effort.
func (p *Parser) ParseEntry(raw string) types.LiteratureEntry {
	e := types.LiteratureEntry{
		Raw:     raw,
		Authors: []string{},
	}

	body := raw
	if num, end, ok := numbering(body); ok {
		e.Number = &num
		body = body[end:]
	}
	body = strings.TrimSpace(body)

	if m := urlRe.FindString(body); m != "" {
		e.URL = strings.TrimRight(m, ".,:;")
	}
	if m := doiRe.FindStringSubmatch(body); m != nil {
		e.DOI = strings.TrimRight(m[1], ".,:;")
	}
	if m := isbnRe.FindStringSubmatch(body); m != nil {
		e.ISBN = strings.TrimSpace(m[1])
	}
	e.Year = yearRe.FindString(body)
	if m := pagesRe.FindStringSubmatch(body); m != nil {
		e.Pages = m[1] + " с."
	}

	e.EntryType = p.entryType(body, e.URL != "")
	e.Authors = authors(body)

	remaining := body
	for i, a := range e.Authors {
		if i == strippedAuthors {
			break
		}
		remaining = strings.Replace(remaining, a, "", 1)
	}
	remaining = strings.Trim(remaining, " ,.:;/")

	if left, right, ok := strings.Cut(remaining, "//"); ok {
		e.Publisher = text.Normalize(right)
		if title := strings.Trim(left, " .,;:/"); text.Len(title) > minTitleLen {
			e.Title = title
		}
		return e
	}
	if parts := dashSplitRe.Split(remaining, 2); len(parts) == 2 {
		if text.Len(parts[0]) > minTitleLen {
			e.Title = strings.Trim(parts[0], " .,;:")
		}
		e.Publisher = text.Normalize(parts[1])
		return e
	}
	e.Title = text.Truncate(remaining, maxTitleLen)
	return e
}

// entryType applies the medium priority: e-library, web, article,
// standard, book.
func (p *Parser) entryType(body string, hasURL bool) types.EntryType {
	switch {
	case p.ebs.MatchString(body):
		return types.EntryEBS
	case hasURL && !p.bookWords.MatchString(body):
		return types.EntryWeb
	case strings.Contains(body, "//"):
		return types.EntryArticle
	case p.standard.MatchString(body):
		return types.EntryStandard
	}
	return types.EntryBook
}

// authors returns up to maxAuthors distinct author tokens in order of
// appearance, trying "Surname I.I." before "I.I. Surname".
func authors(body string) []string {
	found := authorRe.FindAllString(body, -1)
	if len(found) == 0 {
		found = authorAltRe.FindAllString(body, -1)
	}
	out := []string{}
	seen := make(map[string]bool)
	for _, a := range found {
		n := text.Normalize(a)
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
		if len(out) == maxAuthors {
			break
		}
	}
	return out
}
