package document

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"io"
	"strings"
)

var (
	streamStart = []byte("stream")
	streamEnd   = []byte("endstream")
	pageMarker  = []byte("/Type /Page")
	pagesMarker = []byte("/Type /Pages")
)

// extractPDFFallback is the second-chance extractor for PDFs the primary
// parser chokes on (broken xref tables, truncated trailers). It ignores
// document structure entirely: every stream object in the raw bytes is
// inflated if compressed and scanned for show-text operators.
func extractPDFFallback(content []byte) (string, int, error) {
	var all strings.Builder

	rest := content
	for {
		i := bytes.Index(rest, streamStart)
		if i < 0 {
			break
		}
		rest = rest[i+len(streamStart):]
		// Keyword is followed by an EOL before the stream data.
		rest = bytes.TrimLeft(rest, "\r\n")

		j := bytes.Index(rest, streamEnd)
		if j < 0 {
			break
		}
		data := rest[:j]
		rest = rest[j+len(streamEnd):]

		text := contentStreamText(inflateStream(data))
		if text == "" {
			continue
		}
		if all.Len() > 0 {
			all.WriteByte('\n')
		}
		all.WriteString(text)
	}

	if all.Len() == 0 {
		return "", 0, fmt.Errorf("raw scan found no text streams")
	}
	return all.String(), countPages(content), nil
}

// inflateStream decompresses FlateDecode data; uncompressed streams pass
// through unchanged.
func inflateStream(data []byte) []byte {
	zr, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return data
	}
	defer zr.Close()

	out, err := io.ReadAll(zr)
	if err != nil && len(out) == 0 {
		return data
	}
	return out
}

// countPages approximates the page count from /Type /Page object markers.
func countPages(content []byte) int {
	n := bytes.Count(content, pageMarker) - bytes.Count(content, pagesMarker)
	if n < 1 {
		return 1
	}
	return n
}
