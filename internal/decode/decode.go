// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package decode turns uploaded bytes into a types.Document: paragraphs and
// tables for DOCX, text lines for PDF.
package decode

import (
	"context"
	"errors"
	"fmt"

	"github.com/pdiddy/curriculum-graph/pkg/types"
)

// ErrUnsupported is returned for document kinds without a decoder.
var ErrUnsupported = errors.New("unsupported document kind")

// Decoder decodes one document format.
type Decoder interface {
	Decode(ctx context.Context, data []byte) (*types.Document, error)
}

// For returns the decoder for kind.
func For(kind types.DocumentKind) (Decoder, error) {
	switch kind {
	case types.KindDOCX:
		return DOCX{}, nil
	case types.KindPDF:
		return PDF{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupported, kind)
}

// Decode decodes data with the decoder registered for kind.
func Decode(ctx context.Context, kind types.DocumentKind, data []byte) (*types.Document, error) {
	d, err := For(kind)
	if err != nil {
		return nil, err
	}
	return d.Decode(ctx, data)
}
