// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"path/filepath"
	"strings"
)

// DocumentKind identifies the container format of an uploaded document.
type DocumentKind string

const (
	KindDOCX DocumentKind = "docx"
	KindPDF  DocumentKind = "pdf"
)

// KindFromFilename maps a file name to its DocumentKind by extension.
// It returns false for unsupported extensions.
func KindFromFilename(name string) (DocumentKind, bool) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".docx":
		return KindDOCX, true
	case ".pdf":
		return KindPDF, true
	}
	return "", false
}

// Table is a 2-D grid of cell text. Rows may have different lengths.
// A cell made of several paragraphs keeps them joined with "\n".
type Table [][]string

// Document is the decoded form of an uploaded file. For DOCX every
// paragraph and table is available; for PDF Tables is empty and
// Paragraphs holds the text lines in reading order.
type Document struct {
	Kind       DocumentKind
	Paragraphs []string
	Tables     []Table

	// Text is the full flattened text, paragraphs joined by "\n".
	Text string

	// Pages is the page count reported by the PDF decoder; zero for DOCX.
	Pages int
}

// NewDocument builds a Document and derives Text from the paragraphs.
func NewDocument(kind DocumentKind, paragraphs []string, tables []Table) *Document {
	return &Document{
		Kind:       kind,
		Paragraphs: paragraphs,
		Tables:     tables,
		Text:       strings.Join(paragraphs, "\n"),
	}
}
