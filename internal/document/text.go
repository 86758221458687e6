package document

import (
	"strings"
	"unicode/utf8"
)

// decodeTextFile decodes uploaded bytes as UTF-8. Invalid sequences become
// the replacement character instead of failing the upload.
func decodeTextFile(content []byte) string {
	if utf8.Valid(content) {
		return strings.TrimSpace(string(content))
	}
	return strings.TrimSpace(strings.ToValidUTF8(string(content), "�"))
}
