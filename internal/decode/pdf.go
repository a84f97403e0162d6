// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// wordGap is the horizontal gap, as a fraction of the font size, above
// which two text runs on one row are separated by a space.
const wordGap = 0.15

// PDF decodes portable-document files into text lines. pdfcpu validates
// the file and reports the page count; the text itself is read row by row
// with ledongthuc/pdf. Tables are not recovered.
type PDF struct{}

// Decode implements Decoder.
func (PDF) Decode(ctx context.Context, data []byte) (*types.Document, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	pctx, err := api.ReadValidateAndOptimize(bytes.NewReader(data), conf)
	if err != nil {
		return nil, fmt.Errorf("pdfcpu read: %w", err)
	}

	lines, err := pdfLines(ctx, data)
	if err != nil {
		return nil, err
	}

	doc := types.NewDocument(types.KindPDF, lines, nil)
	doc.Pages = pctx.PageCount
	return doc, nil
}

// pdfLines reads the text rows of every page. ledongthuc/pdf reports
// malformed object streams by panicking, so the panic is turned back into
// an error here.
func pdfLines(ctx context.Context, data []byte) (lines []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			lines, err = nil, fmt.Errorf("reading pdf: %v", r)
		}
	}()

	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("open pdf: %w", err)
	}
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page := r.Page(i)
		if page.V.IsNull() {
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			return nil, fmt.Errorf("reading page %d: %w", i, err)
		}
		for _, row := range rows {
			lines = append(lines, rowText(row.Content))
		}
	}
	return lines, nil
}

// rowText joins the text runs of one row, inserting a space where the
// runs are visibly apart and neither side already carries one.
func rowText(runs []pdf.Text) string {
	var sb strings.Builder
	for i, t := range runs {
		if i > 0 {
			prev := runs[i-1]
			gap := t.X - (prev.X + prev.W)
			if gap > t.FontSize*wordGap && !strings.HasSuffix(prev.S, " ") && !strings.HasPrefix(t.S, " ") {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(t.S)
	}
	return sb.String()
}
