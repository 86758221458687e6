package document

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildRawPDF assembles a minimal single-page PDF whose content stream holds
// the given show-text lines. The xref offsets are deliberately bogus so the
// structure-aware parser rejects it and the raw scan has to take over.
func buildRawPDF(stream []byte, compressed bool) []byte {
	var body bytes.Buffer
	filter := ""
	data := stream
	if compressed {
		var zbuf bytes.Buffer
		zw := zlib.NewWriter(&zbuf)
		_, _ = zw.Write(stream)
		_ = zw.Close()
		data = zbuf.Bytes()
		filter = " /Filter /FlateDecode"
	}

	body.WriteString("%PDF-1.4\n")
	body.WriteString("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	body.WriteString("2 0 obj\n<< /Type /Pages /Kids [3 0 R] /Count 1 >>\nendobj\n")
	body.WriteString("3 0 obj\n<< /Type /Page /Parent 2 0 R /Contents 4 0 R >>\nendobj\n")
	fmt.Fprintf(&body, "4 0 obj\n<< /Length %d%s >>\nstream\n", len(data), filter)
	body.Write(data)
	body.WriteString("\nendstream\nendobj\n")
	body.WriteString("xref\n0 5\ntrailer\n<< /Size 5 /Root 1 0 R >>\nstartxref\n0\n%%EOF\n")
	return body.Bytes()
}

func contractStream() []byte {
	lines := []string{
		"BT",
		"(SERVICE AGREEMENT) Tj",
		"T*",
		"(Provider shall deliver consulting services to Client for twelve months.) Tj",
		"T*",
		"(Client shall pay Provider ten thousand dollars per month within thirty days.) Tj",
		"ET",
	}
	return []byte(strings.Join(lines, "\n"))
}

func TestExtractPDFFallback_Uncompressed(t *testing.T) {
	raw := buildRawPDF(contractStream(), false)

	text, pages, err := extractPDFFallback(raw)
	require.NoError(t, err)
	assert.Equal(t, 1, pages)
	assert.Contains(t, text, "SERVICE AGREEMENT")
	assert.Contains(t, text, "consulting services")
}

func TestExtractPDFFallback_Flate(t *testing.T) {
	raw := buildRawPDF(contractStream(), true)

	text, _, err := extractPDFFallback(raw)
	require.NoError(t, err)
	assert.Contains(t, text, "ten thousand dollars")
}

func TestExtractPDFFallback_NoText(t *testing.T) {
	_, _, err := extractPDFFallback([]byte("%PDF-1.4\nnothing here\n%%EOF"))
	assert.Error(t, err)
}

func TestCountPages(t *testing.T) {
	raw := buildRawPDF(contractStream(), false)
	assert.Equal(t, 1, countPages(raw))
	// No markers at all still reports one page.
	assert.Equal(t, 1, countPages([]byte("%PDF-1.4")))
}
