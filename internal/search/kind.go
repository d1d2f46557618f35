package search

import "strings"

// archiveTypes are the MIME types classified as archives rather than
// generic documents.
var archiveTypes = map[string]bool{
	"application/zip":                  true,
	"application/x-zip-compressed":     true,
	"application/x-rar-compressed":     true,
	"application/vnd.rar":              true,
	"application/x-7z-compressed":      true,
	"application/x-tar":                true,
	"application/gzip":                 true,
	"application/x-gzip":               true,
	"application/x-bzip2":              true,
}

// KindOf classifies a MIME type into one of image, video, audio, archive or
// document. The type filter accepts either this kind or the raw primary
// token of the MIME type.
func KindOf(mimeType string) string {
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		return "image"
	case strings.HasPrefix(mimeType, "video/"):
		return "video"
	case strings.HasPrefix(mimeType, "audio/"):
		return "audio"
	case archiveTypes[mimeType]:
		return "archive"
	default:
		return "document"
	}
}
