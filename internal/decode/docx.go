// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/curriculum-graph/pkg/types"
)

const (
	documentPart = "word/document.xml"
	wordNS       = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"
)

// DOCX decodes Office Open XML word-processing documents. Only top-level
// body paragraphs and top-level tables are returned. Table rows are laid
// out on the grid: a cell spanning several columns repeats its text in
// each, and a vertically merged cell repeats the text of the cell above.
type DOCX struct{}

// Decode implements Decoder.
func (DOCX) Decode(ctx context.Context, data []byte) (*types.Document, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open docx archive: %w", err)
	}

	var part *zip.File
	for _, f := range zr.File {
		if f.Name == documentPart {
			part = f
			break
		}
	}
	if part == nil {
		return nil, fmt.Errorf("%s not found in archive", documentPart)
	}

	rc, err := part.Open()
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", documentPart, err)
	}
	defer rc.Close()

	paragraphs, tables, err := parseDocumentXML(ctx, rc)
	if err != nil {
		return nil, err
	}
	return types.NewDocument(types.KindDOCX, paragraphs, tables), nil
}

type docxCell struct {
	paragraphs []string
	span       int
	vmerge     bool // continuation of a vertical merge
}

type docxTable struct {
	rows [][]docxCell
	row  []docxCell
	cell *docxCell
}

type docxParagraph struct {
	parent string
	text   strings.Builder
}

// parseDocumentXML streams word/document.xml. The element stack tells
// whether a paragraph belongs to the body, to a table cell, or to
// something we ignore (text boxes, nested-table cells). Elements outside
// the WordprocessingML namespace are kept on the stack as "".
func parseDocumentXML(ctx context.Context, r io.Reader) ([]string, []types.Table, error) {
	dec := xml.NewDecoder(r)

	var (
		paragraphs []string
		tables     []types.Table
		stack      []string
		paras      []*docxParagraph
		tbls       []*docxTable
		inDeleted  int
	)
	parent := func() string {
		if len(stack) == 0 {
			return ""
		}
		return stack[len(stack)-1]
	}
	write := func(s string) {
		if len(paras) > 0 && inDeleted == 0 {
			paras[len(paras)-1].text.WriteString(s)
		}
	}

	for n := 0; ; n++ {
		if n%4096 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("parse %s: %w", documentPart, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Space != wordNS {
				stack = append(stack, "")
				continue
			}
			switch t.Name.Local {
			case "p":
				paras = append(paras, &docxParagraph{parent: parent()})
			case "tab":
				if parent() == "r" {
					write("\t")
				}
			case "br", "cr":
				write("\n")
			case "del":
				inDeleted++
			case "tbl":
				tbls = append(tbls, &docxTable{})
			case "tr":
				if len(tbls) > 0 {
					tbls[len(tbls)-1].row = nil
				}
			case "tc":
				if len(tbls) > 0 {
					tbls[len(tbls)-1].cell = &docxCell{span: 1}
				}
			case "gridSpan":
				if c := currentCell(tbls); c != nil && parent() == "tcPr" {
					if v, err := strconv.Atoi(attr(t, "val")); err == nil && v > 1 {
						c.span = v
					}
				}
			case "vMerge":
				if c := currentCell(tbls); c != nil && parent() == "tcPr" {
					v := attr(t, "val")
					c.vmerge = v == "" || v == "continue"
				}
			}
			stack = append(stack, t.Name.Local)

		case xml.CharData:
			if parent() == "t" {
				write(string(t))
			}

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
			if t.Name.Space != wordNS {
				continue
			}
			switch t.Name.Local {
			case "p":
				if len(paras) == 0 {
					continue
				}
				p := paras[len(paras)-1]
				paras = paras[:len(paras)-1]
				switch p.parent {
				case "body":
					paragraphs = append(paragraphs, p.text.String())
				case "tc":
					if c := currentCell(tbls); c != nil {
						c.paragraphs = append(c.paragraphs, p.text.String())
					}
				}
			case "del":
				inDeleted--
			case "tc":
				if len(tbls) > 0 {
					tb := tbls[len(tbls)-1]
					if tb.cell != nil {
						tb.row = append(tb.row, *tb.cell)
						tb.cell = nil
					}
				}
			case "tr":
				if len(tbls) > 0 {
					tb := tbls[len(tbls)-1]
					tb.rows = append(tb.rows, tb.row)
					tb.row = nil
				}
			case "tbl":
				if len(tbls) == 0 {
					continue
				}
				tb := tbls[len(tbls)-1]
				tbls = tbls[:len(tbls)-1]
				if len(tbls) == 0 {
					tables = append(tables, tb.grid())
				}
			}
		}
	}
	return paragraphs, tables, nil
}

func currentCell(tbls []*docxTable) *docxCell {
	if len(tbls) == 0 {
		return nil
	}
	return tbls[len(tbls)-1].cell
}

func attr(el xml.StartElement, local string) string {
	for _, a := range el.Attr {
		if a.Name.Local == local {
			return a.Value
		}
	}
	return ""
}

// grid expands spans and vertical merges into a plain table of cell text.
func (tb *docxTable) grid() types.Table {
	out := make(types.Table, 0, len(tb.rows))
	var prev []string
	for _, row := range tb.rows {
		var cells []string
		for _, c := range row {
			txt := strings.Join(c.paragraphs, "\n")
			for range c.span {
				col := len(cells)
				if c.vmerge && col < len(prev) {
					cells = append(cells, prev[col])
				} else {
					cells = append(cells, txt)
				}
			}
		}
		out = append(out, cells)
		prev = cells
	}
	return out
}
