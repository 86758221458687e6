package document

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauselens/clauselens/internal/common"
)

func TestLoader_LoadText(t *testing.T) {
	loader := NewLoader(nil)

	t.Run("plain utf-8", func(t *testing.T) {
		res, err := loader.Load(context.Background(), "contract.txt", []byte("Provider shall deliver reports.\n"))
		require.NoError(t, err)
		assert.Equal(t, "Provider shall deliver reports.", res.Text)
		assert.Equal(t, MethodText, res.Method)
		assert.Equal(t, 1, res.Pages)
	})

	t.Run("invalid utf-8 gets replacement characters", func(t *testing.T) {
		res, err := loader.Load(context.Background(), "contract.txt", []byte{0x68, 0x69, 0xff, 0xfe, 0x21})
		require.NoError(t, err)
		assert.Contains(t, res.Text, "hi")
		assert.Contains(t, res.Text, "�")
	})
}

func TestLoader_LoadPDF_SyntheticFile(t *testing.T) {
	loader := NewLoader(nil)

	// Bogus xref offsets: depending on how far pdfcpu's repair gets, either
	// the structure-aware parser or the raw stream scan produces the text.
	raw := buildRawPDF(contractStream(), true)

	res, err := loader.Load(context.Background(), "contract.pdf", raw)
	require.NoError(t, err)
	assert.Contains(t, []string{MethodPDFCPU, MethodRawScan}, res.Method)
	assert.Contains(t, res.Text, "SERVICE AGREEMENT")
}

func TestLoader_LoadPDF_BothExtractorsFail(t *testing.T) {
	loader := NewLoader(nil)

	_, err := loader.Load(context.Background(), "contract.pdf", []byte("%PDF-1.4 not really a pdf"))
	require.Error(t, err)
	assert.Equal(t, common.CodeExtraction, common.ErrorCode(err))
}

func TestLoader_LoadUnsupportedType(t *testing.T) {
	loader := NewLoader(nil)

	_, err := loader.Load(context.Background(), "contract.docx", []byte("whatever"))
	require.Error(t, err)
	assert.Equal(t, common.CodeValidation, common.ErrorCode(err))
}
