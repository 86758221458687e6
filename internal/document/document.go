package document

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/clauselens/clauselens/constants"
	"github.com/clauselens/clauselens/internal/common"
)

// Extraction methods recorded in ExtractedText provenance.
const (
	MethodPDFCPU  = "pdfcpu"
	MethodRawScan = "rawscan"
	MethodText    = "text"
)

// minSignificantChars is the minimum amount of non-whitespace text the PDF
// extractors must produce before their output is trusted.
const minSignificantChars = 100

// ExtractedText is the plain text pulled out of an uploaded document.
type ExtractedText struct {
	Text      string
	Method    string
	Pages     int
	SizeBytes int64
}

// Loader turns uploaded bytes into plain contract text.
type Loader struct {
	log *slog.Logger
}

func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{log: logger}
}

// Load detects the file format from the filename and extracts plain text.
// PDFs go through the structure-aware extractor first and fall back to a raw
// stream scan; text files are decoded as UTF-8 with replacement of invalid
// sequences. Returns EXTRACTION_ERROR when a PDF yields no usable text.
func (l *Loader) Load(ctx context.Context, filename string, content []byte) (ExtractedText, error) {
	start := time.Now()
	format := constants.MapExtToFormat(filepath.Ext(filename))

	switch format {
	case constants.PDF:
		res, err := l.loadPDF(ctx, content)
		if err != nil {
			l.log.Error("document.load.failed",
				"filename", filename,
				"error", err,
				"elapsed_ms", time.Since(start).Milliseconds(),
			)
			return ExtractedText{}, err
		}
		l.log.Info("document.load.ok",
			"filename", filename,
			"method", res.Method,
			"pages", res.Pages,
			"chars", len(res.Text),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return res, nil
	case constants.TEXT:
		text := decodeTextFile(content)
		l.log.Info("document.load.ok",
			"filename", filename,
			"method", MethodText,
			"chars", len(text),
			"elapsed_ms", time.Since(start).Milliseconds(),
		)
		return ExtractedText{
			Text:      text,
			Method:    MethodText,
			Pages:     1,
			SizeBytes: int64(len(content)),
		}, nil
	default:
		return ExtractedText{}, common.NewValidationError(
			fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)))
	}
}

func (l *Loader) loadPDF(ctx context.Context, content []byte) (ExtractedText, error) {
	if err := ctx.Err(); err != nil {
		return ExtractedText{}, err
	}

	text, pages, primaryErr := extractPDFPrimary(content)
	if primaryErr == nil && significantChars(text) >= minSignificantChars {
		return ExtractedText{
			Text:      text,
			Method:    MethodPDFCPU,
			Pages:     pages,
			SizeBytes: int64(len(content)),
		}, nil
	}
	if primaryErr != nil {
		l.log.Warn("document.pdf.primary_failed", "error", primaryErr)
	} else {
		l.log.Warn("document.pdf.primary_sparse", "chars", significantChars(text))
	}

	text, pages, fallbackErr := extractPDFFallback(content)
	if fallbackErr == nil && significantChars(text) >= minSignificantChars {
		return ExtractedText{
			Text:      text,
			Method:    MethodRawScan,
			Pages:     pages,
			SizeBytes: int64(len(content)),
		}, nil
	}
	if fallbackErr != nil {
		l.log.Warn("document.pdf.fallback_failed", "error", fallbackErr)
	}

	return ExtractedText{}, common.NewExtractionError(
		"could not extract text from PDF", joinErrs(primaryErr, fallbackErr))
}

func joinErrs(primary, fallback error) error {
	switch {
	case primary != nil && fallback != nil:
		return fmt.Errorf("primary: %v; fallback: %w", primary, fallback)
	case primary != nil:
		return primary
	case fallback != nil:
		return fallback
	default:
		return fmt.Errorf("extracted text below %d significant characters", minSignificantChars)
	}
}
