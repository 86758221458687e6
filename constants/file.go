package constants

import "strings"

// FileFormat is the detected format of an uploaded document.
type FileFormat string

const (
	PDF  FileFormat = "PDF"
	TEXT FileFormat = "TEXT"
)

// AllowedExtensions holds the file extensions accepted for upload.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// MaxUploadBytesDefault is the default upload size cap (10 MB).
const MaxUploadBytesDefault = 10 * 1024 * 1024

// MaxContractCharsDefault caps how much contract text is embedded into the
// prompt before truncation.
const MaxContractCharsDefault = 12000

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a file extension to its format, or "" if unsupported.
func MapExtToFormat(ext string) FileFormat {
	switch NormalizeExt(ext) {
	case "pdf":
		return PDF
	case "txt":
		return TEXT
	default:
		return ""
	}
}
