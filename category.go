package uploadkit

import "strings"

// FileType is the canonical file type category of an upload.
type FileType string

const (
	FileTypeImage    FileType = "image"
	FileTypeDocument FileType = "document"
	FileTypeVideo    FileType = "video"
	FileTypeAudio    FileType = "audio"
	FileTypeArchive  FileType = "archive"
	FileTypeUnknown  FileType = "unknown"
)

// fileTypeNames maps normalized category strings back to canonical types
var fileTypeNames = map[string]FileType{
	"image":    FileTypeImage,
	"document": FileTypeDocument,
	"video":    FileTypeVideo,
	"audio":    FileTypeAudio,
	"archive":  FileTypeArchive,
	"unknown":  FileTypeUnknown,
}

// UnknownFileTypeLabel is the label used for any category that cannot be
// resolved to a canonical type.
const UnknownFileTypeLabel = "Unknown File Type"

// fileTypeLabels maps canonical types to human-readable labels
var fileTypeLabels = map[FileType]string{
	FileTypeImage:    "Image",
	FileTypeDocument: "Document",
	FileTypeVideo:    "Video",
	FileTypeAudio:    "Audio",
	FileTypeArchive:  "Archive",
	FileTypeUnknown:  UnknownFileTypeLabel,
}

// Category is a tagged file type value: either a canonical [FileType] or a
// raw caller-supplied string kept for forward compatibility. The zero value
// is the unknown category.
type Category struct {
	kind FileType
	raw  string
}

// KnownCategory creates a Category from a canonical file type.
func KnownCategory(kind FileType) Category {
	return Category{kind: kind}
}

// RawCategory creates a Category from a free-form string. The string is kept
// verbatim; Kind normalizes it against the canonical type names.
func RawCategory(s string) Category {
	return Category{raw: s}
}

// Kind normalizes the category to a canonical file type. Raw strings that do
// not match any canonical type name resolve to FileTypeUnknown.
func (c Category) Kind() FileType {
	if c.kind != "" {
		return c.kind
	}
	if ft, ok := fileTypeNames[strings.ToLower(strings.TrimSpace(c.raw))]; ok {
		return ft
	}
	return FileTypeUnknown
}

// Label returns the human-readable label for the category. Unrecognized raw
// strings yield the unknown label; this is a fallback, not an error.
func (c Category) Label() string {
	if label, ok := fileTypeLabels[c.Kind()]; ok {
		return label
	}
	return UnknownFileTypeLabel
}

// String returns the raw string when present, the canonical type name
// otherwise.
func (c Category) String() string {
	if c.raw != "" {
		return c.raw
	}
	if c.kind != "" {
		return string(c.kind)
	}
	return string(FileTypeUnknown)
}
