package document

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clauselens/clauselens/internal/common"
)

func TestValidateUpload(t *testing.T) {
	const maxBytes = 10 * 1024 * 1024

	t.Run("accepts pdf and txt under the cap", func(t *testing.T) {
		assert.NoError(t, ValidateUpload("contract.pdf", 1024, maxBytes))
		assert.NoError(t, ValidateUpload("contract.txt", 1024, maxBytes))
		assert.NoError(t, ValidateUpload("CONTRACT.PDF", 1024, maxBytes))
	})

	t.Run("rejects oversized file before anything else", func(t *testing.T) {
		err := ValidateUpload("contract.pdf", maxBytes+1, maxBytes)
		require.Error(t, err)
		assert.Equal(t, common.CodeValidation, common.ErrorCode(err))
		assert.Contains(t, err.Error(), "too large")
	})

	t.Run("rejects unsupported extensions", func(t *testing.T) {
		for _, name := range []string{"contract.docx", "contract.png", "contract"} {
			err := ValidateUpload(name, 1024, maxBytes)
			require.Error(t, err, name)
			assert.Equal(t, common.CodeValidation, common.ErrorCode(err))
		}
	})

	t.Run("size check wins over extension check", func(t *testing.T) {
		err := ValidateUpload("contract.docx", maxBytes+1, maxBytes)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too large")
	})
}

func TestValidateContractText(t *testing.T) {
	t.Run("accepts a real contract paragraph", func(t *testing.T) {
		text := strings.Repeat("the provider shall deliver monthly reports ", 5)
		assert.NoError(t, ValidateContractText(text))
	})

	t.Run("rejects short text", func(t *testing.T) {
		err := ValidateContractText("too short")
		require.Error(t, err)
		assert.Equal(t, common.CodeValidation, common.ErrorCode(err))
	})

	t.Run("rejects long text with too few words", func(t *testing.T) {
		err := ValidateContractText(strings.Repeat("a", 200))
		require.Error(t, err)
		assert.Equal(t, common.CodeValidation, common.ErrorCode(err))
	})

	t.Run("rejects whitespace", func(t *testing.T) {
		assert.Error(t, ValidateContractText("   \n\t  "))
	})
}
