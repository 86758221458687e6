package document

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/clauselens/clauselens/constants"
	"github.com/clauselens/clauselens/internal/common"
)

// Contract text must carry enough content to be worth sending to a model.
const (
	minContractChars = 50
	minContractWords = 20
)

// ValidateUpload gates an upload before any bytes are parsed: size cap
// first, then extension. Returns VALIDATION_ERROR on either failure.
func ValidateUpload(filename string, sizeBytes, maxBytes int64) error {
	if sizeBytes > maxBytes {
		return common.NewValidationError(fmt.Sprintf(
			"file too large: %d bytes (limit %d)", sizeBytes, maxBytes))
	}
	ext := constants.NormalizeExt(filepath.Ext(filename))
	if _, ok := constants.AllowedExtensions[ext]; !ok {
		return common.NewValidationError(fmt.Sprintf(
			"unsupported file type: %q (allowed: pdf, txt)", ext))
	}
	return nil
}

// ValidateContractText rejects extracted text too short to be a contract.
func ValidateContractText(text string) error {
	trimmed := strings.TrimSpace(text)
	if len(trimmed) < minContractChars {
		return common.NewValidationError("contract text is too short or invalid")
	}
	if len(strings.Fields(trimmed)) < minContractWords {
		return common.NewValidationError("contract text is too short or invalid")
	}
	return nil
}
