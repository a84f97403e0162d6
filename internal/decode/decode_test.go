// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package decode

import (
	"archive/zip"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// buildDOCX packs body XML into a minimal .docx archive.
func buildDOCX(t *testing.T, body string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>` +
		`<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` +
		body + `</w:body></w:document>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func para(text string) string {
	return `<w:p><w:r><w:t xml:space="preserve">` + text + `</w:t></w:r></w:p>`
}

func cell(text string, props string) string {
	return `<w:tc><w:tcPr>` + props + `</w:tcPr>` + para(text) + `</w:tc>`
}

func TestDOCXParagraphsAndTables(t *testing.T) {
	body := para("РАБОЧАЯ ПРОГРАММА ДИСЦИПЛИНЫ «Основы программирования»") +
		`<w:p><w:pPr><w:tabs><w:tab w:val="left" w:pos="720"/></w:tabs></w:pPr>` +
		`<w:r><w:t>Часть</w:t></w:r><w:r><w:tab/><w:t>один</w:t><w:br/><w:t>два</w:t></w:r>` +
		`<w:del><w:r><w:t>удалено</w:t></w:r></w:del></w:p>` +
		`<w:tbl>` +
		`<w:tr>` + cell("№", "") + cell("Тема", `<w:gridSpan w:val="2"/>`) + cell("Лекции", "") + `</w:tr>` +
		`<w:tr>` + cell("1", `<w:vMerge w:val="restart"/>`) + cell("Введение", "") + cell("Основы", "") +
		`<w:tc><w:tcPr/>` + para("2") + para("часа") + `</w:tc></w:tr>` +
		`<w:tr>` + cell("", `<w:vMerge/>`) + cell("Циклы", "") + cell("Итерации", "") + cell("4", "") + `</w:tr>` +
		`</w:tbl>` +
		para("После таблицы")

	doc, err := DOCX{}.Decode(context.Background(), buildDOCX(t, body))
	require.NoError(t, err)

	assert.Equal(t, types.KindDOCX, doc.Kind)
	assert.Equal(t, []string{
		"РАБОЧАЯ ПРОГРАММА ДИСЦИПЛИНЫ «Основы программирования»",
		"Часть\tодин\nдва",
		"После таблицы",
	}, doc.Paragraphs)
	assert.True(t, strings.HasPrefix(doc.Text, "РАБОЧАЯ ПРОГРАММА"))

	require.Len(t, doc.Tables, 1)
	tbl := doc.Tables[0]
	require.Len(t, tbl, 3)
	assert.Equal(t, []string{"№", "Тема", "Тема", "Лекции"}, tbl[0])
	assert.Equal(t, []string{"1", "Введение", "Основы", "2\nчаса"}, tbl[1])
	assert.Equal(t, []string{"1", "Циклы", "Итерации", "4"}, tbl[2])
}

func TestDOCXNestedTableIgnored(t *testing.T) {
	body := `<w:tbl><w:tr><w:tc>` + para("внешняя") +
		`<w:tbl><w:tr>` + cell("вложенная", "") + `</w:tr></w:tbl>` +
		`</w:tc></w:tr></w:tbl>`
	doc, err := DOCX{}.Decode(context.Background(), buildDOCX(t, body))
	require.NoError(t, err)
	require.Len(t, doc.Tables, 1)
	assert.Equal(t, types.Table{{"внешняя"}}, doc.Tables[0])
	assert.Empty(t, doc.Paragraphs)
}

func TestDOCXErrors(t *testing.T) {
	_, err := DOCX{}.Decode(context.Background(), []byte("not a zip"))
	assert.ErrorContains(t, err, "open docx archive")

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	_, err = zw.Create("word/styles.xml")
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	_, err = DOCX{}.Decode(context.Background(), buf.Bytes())
	assert.ErrorContains(t, err, "not found")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = DOCX{}.Decode(ctx, buildDOCX(t, para("текст")))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPDFInvalid(t *testing.T) {
	_, err := PDF{}.Decode(context.Background(), []byte("%PDF-1.4 garbage"))
	assert.Error(t, err)
}

// mismatchedPDF builds a structurally complete PDF whose xref entry for the
// catalog points at an object with a different number.
func mismatchedPDF() []byte {
	header := "%PDF-1.4\n"
	obj := "2 0 obj\n<< /Type /Catalog >>\nendobj\n"
	xrefAt := len(header) + len(obj)
	return []byte(header + obj +
		"xref\n0 2\n" +
		"0000000000 65535 f \n" +
		fmt.Sprintf("%010d 00000 n \n", len(header)) +
		"trailer\n<< /Size 2 /Root 1 0 R >>\n" +
		fmt.Sprintf("startxref\n%d\n", xrefAt) +
		"%%EOF\n")
}

func TestPDFLinesMalformedObject(t *testing.T) {
	var err error
	require.NotPanics(t, func() {
		_, err = pdfLines(context.Background(), mismatchedPDF())
	})
	assert.ErrorContains(t, err, "reading pdf")

	require.NotPanics(t, func() {
		_, err = PDF{}.Decode(context.Background(), mismatchedPDF())
	})
	assert.Error(t, err)
}

func TestFor(t *testing.T) {
	d, err := For(types.KindDOCX)
	require.NoError(t, err)
	assert.IsType(t, DOCX{}, d)

	d, err = For(types.KindPDF)
	require.NoError(t, err)
	assert.IsType(t, PDF{}, d)

	_, err = For("odt")
	assert.ErrorIs(t, err, ErrUnsupported)

	_, err = Decode(context.Background(), "odt", nil)
	assert.ErrorIs(t, err, ErrUnsupported)
}
