package attachment

import (
	"path/filepath"
	"strings"
)

// Format is the pipeline's classification of an uploaded file.
type Format string

const (
	FormatText        Format = "text"
	FormatPDF         Format = "pdf"
	FormatImage       Format = "image"
	FormatVideo       Format = "video"
	FormatUnsupported Format = "unsupported"
)

// extFormats maps supported extensions to their format.
var extFormats = map[string]Format{
	".txt":  FormatText,
	".pdf":  FormatPDF,
	".png":  FormatImage,
	".jpg":  FormatImage,
	".jpeg": FormatImage,
	".mp4":  FormatVideo,
	".mov":  FormatVideo,
	".avi":  FormatVideo,
}

// Classify maps a filename to a Format by its final extension,
// case-insensitively. Filenames without an extension, or with one outside
// the supported set, classify as FormatUnsupported; callers treat such
// attachments as absent.
func Classify(filename string) Format {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return FormatUnsupported
	}
	if format, ok := extFormats[ext]; ok {
		return format
	}
	return FormatUnsupported
}
