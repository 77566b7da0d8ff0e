package uploadkit

import "strings"

// TypeInfo describes a single MIME type entry in a lookup [Table].
type TypeInfo struct {
	// Extension is the canonical file extension, lowercase without the dot
	Extension string

	// Kind is the file type category the MIME type belongs to
	Kind FileType
}

// Table is a read-only MIME type lookup: MIME to extension and category, and
// extension back to MIME. It is built once at startup and safe for
// concurrent use.
type Table struct {
	byMIME map[string]TypeInfo
	byExt  map[string]string
}

// NewTable builds a lookup table from MIME type entries. Extensions are
// normalized to lowercase without a leading dot; the first entry naming an
// extension wins the reverse mapping.
func NewTable(entries map[string]TypeInfo) *Table {
	t := &Table{
		byMIME: make(map[string]TypeInfo, len(entries)),
		byExt:  make(map[string]string, len(entries)),
	}
	for mimeType, info := range entries {
		mimeType = normalizeMIME(mimeType)
		info.Extension = strings.ToLower(strings.TrimPrefix(info.Extension, "."))
		t.byMIME[mimeType] = info
		if info.Extension != "" {
			if _, exists := t.byExt[info.Extension]; !exists {
				t.byExt[info.Extension] = mimeType
			}
		}
	}
	return t
}

// Lookup returns the entry for a MIME type. The second return value reports
// whether the type is mapped.
func (t *Table) Lookup(mimeType string) (TypeInfo, bool) {
	info, ok := t.byMIME[normalizeMIME(mimeType)]
	return info, ok
}

// ExtensionForMIME returns the canonical extension for a MIME type, or the
// empty string when the type is unmapped.
func (t *Table) ExtensionForMIME(mimeType string) string {
	info, _ := t.Lookup(mimeType)
	return info.Extension
}

// MIMEForExtension returns the MIME type mapped to an extension (with or
// without a leading dot), or the empty string when unmapped.
func (t *Table) MIMEForExtension(ext string) string {
	return t.byExt[strings.ToLower(strings.TrimPrefix(ext, "."))]
}

// KindForMIME returns the file type category for a MIME type, falling back
// to FileTypeUnknown for unmapped types.
func (t *Table) KindForMIME(mimeType string) FileType {
	if info, ok := t.Lookup(mimeType); ok {
		return info.Kind
	}
	return FileTypeUnknown
}

// normalizeMIME lowercases a MIME type and strips any parameters, e.g.
// "Text/Plain; charset=utf-8" becomes "text/plain".
func normalizeMIME(mimeType string) string {
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return strings.ToLower(strings.TrimSpace(mimeType))
}

// defaultTableEntries covers the common upload formats per category.
var defaultTableEntries = map[string]TypeInfo{
	"image/jpeg":    {Extension: "jpg", Kind: FileTypeImage},
	"image/png":     {Extension: "png", Kind: FileTypeImage},
	"image/gif":     {Extension: "gif", Kind: FileTypeImage},
	"image/webp":    {Extension: "webp", Kind: FileTypeImage},
	"image/svg+xml": {Extension: "svg", Kind: FileTypeImage},
	"image/tiff":    {Extension: "tiff", Kind: FileTypeImage},
	"image/bmp":     {Extension: "bmp", Kind: FileTypeImage},
	"image/heic":    {Extension: "heic", Kind: FileTypeImage},
	"image/heif":    {Extension: "heif", Kind: FileTypeImage},

	"application/pdf":    {Extension: "pdf", Kind: FileTypeDocument},
	"application/msword": {Extension: "doc", Kind: FileTypeDocument},
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": {Extension: "docx", Kind: FileTypeDocument},
	"application/vnd.ms-excel": {Extension: "xls", Kind: FileTypeDocument},
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet": {Extension: "xlsx", Kind: FileTypeDocument},
	"application/vnd.ms-powerpoint":                                     {Extension: "ppt", Kind: FileTypeDocument},
	"application/vnd.openxmlformats-officedocument.presentationml.presentation": {Extension: "pptx", Kind: FileTypeDocument},
	"text/plain":      {Extension: "txt", Kind: FileTypeDocument},
	"text/csv":        {Extension: "csv", Kind: FileTypeDocument},
	"text/rtf":        {Extension: "rtf", Kind: FileTypeDocument},
	"application/rtf": {Extension: "rtf", Kind: FileTypeDocument},

	"audio/mpeg": {Extension: "mp3", Kind: FileTypeAudio},
	"audio/wav":  {Extension: "wav", Kind: FileTypeAudio},
	"audio/ogg":  {Extension: "ogg", Kind: FileTypeAudio},
	"audio/aac":  {Extension: "aac", Kind: FileTypeAudio},
	"audio/flac": {Extension: "flac", Kind: FileTypeAudio},
	"audio/mp4":  {Extension: "m4a", Kind: FileTypeAudio},

	"video/mp4":       {Extension: "mp4", Kind: FileTypeVideo},
	"video/mpeg":      {Extension: "mpeg", Kind: FileTypeVideo},
	"video/webm":      {Extension: "webm", Kind: FileTypeVideo},
	"video/quicktime": {Extension: "mov", Kind: FileTypeVideo},
	"video/x-msvideo": {Extension: "avi", Kind: FileTypeVideo},
	"video/3gpp":      {Extension: "3gp", Kind: FileTypeVideo},

	"application/zip":              {Extension: "zip", Kind: FileTypeArchive},
	"application/gzip":             {Extension: "gz", Kind: FileTypeArchive},
	"application/x-tar":            {Extension: "tar", Kind: FileTypeArchive},
	"application/x-7z-compressed":  {Extension: "7z", Kind: FileTypeArchive},
	"application/x-rar-compressed": {Extension: "rar", Kind: FileTypeArchive},
}

var defaultTable = NewTable(defaultTableEntries)

// DefaultTable returns the built-in lookup table covering common image,
// document, audio, video and archive formats.
func DefaultTable() *Table {
	return defaultTable
}
