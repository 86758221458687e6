package document

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractPDFPrimary extracts text using pdfcpu's structure-aware parser:
// validate and optimize the cross-reference table, then walk each page's
// content stream.
func extractPDFPrimary(content []byte) (string, int, error) {
	conf := model.NewDefaultConfiguration()
	ctx, err := api.ReadValidateAndOptimize(bytes.NewReader(content), conf)
	if err != nil {
		return "", 0, fmt.Errorf("pdfcpu read: %w", err)
	}

	var all strings.Builder
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		pageText := extractPageText(ctx, pageNr)
		if pageText == "" {
			continue
		}
		if all.Len() > 0 {
			all.WriteByte('\n')
		}
		all.WriteString(pageText)
	}

	if all.Len() == 0 {
		return "", ctx.PageCount, fmt.Errorf("no text content found in PDF")
	}
	return all.String(), ctx.PageCount, nil
}

// extractPageText extracts text from a single PDF page via pdfcpu content stream.
func extractPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return contentStreamText(data)
}
