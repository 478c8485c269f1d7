package constants

import "strings"

// FileTypes holds the allowed source formats for an extraction run.
var FileTypes = []string{"PDF", "TXT"}

// AllowedExtensions holds the default allowed file extensions for report ingestion.
var AllowedExtensions = map[string]struct{}{
	"pdf": {},
	"txt": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to its document format, or "".
func MapExtToFormat(ext string) string {
	switch NormalizeExt(ext) {
	case "pdf":
		return "PDF"
	case "txt":
		return "TXT"
	default:
		return ""
	}
}
