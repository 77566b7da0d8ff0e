package uploadkit

import "strings"

// defaultConversionExtensions are the image extensions downstream delivery
// cannot serve as-is and must transcode first.
var defaultConversionExtensions = map[string]struct{}{
	"heic": {},
	"heif": {},
}

// FileRecord is an immutable value representing one normalized upload,
// regardless of source. Records are created through [FromMultipart] or
// [FromDataURI]; derived copies come from [FileRecord.WithFilename] and
// [FileRecord.WithCategory]. A record holds no live resource handles, only
// path and string references to externally-owned data.
type FileRecord struct {
	filename     string
	originalName string
	extension    string
	mimeType     string
	category     Category
	sourcePath   string
	dataURI      string
	size         *int64
	uploadError  int
}

// FromMultipart maps a multipart upload descriptor into a FileRecord.
//
// The extension is taken from the descriptor name (lowercased suffix after
// the final dot), the MIME type is copied from the descriptor when declared,
// and the target filename passes through the default sanitizer. An empty
// target falls back to the sanitized descriptor name. Malformed descriptors
// never fail: a completely empty one yields a record carrying
// UploadErrNoFile.
func FromMultipart(d MultipartDescriptor, targetFilename string, category ...Category) FileRecord {
	return defaultIntake.FromMultipart(d, targetFilename, category...)
}

// FromDataURI builds a FileRecord from a base64 data URI.
//
// The MIME type is read from the "data:<type>;" prefix; a malformed prefix
// yields an empty MIME type, not an error. When the target filename carries
// no extension and the MIME type is known, the resolver supplies the
// canonical extension. When no category is given, the resolver classifies
// the URI. The payload is not decoded here and the size stays unknown; use
// [ParseDataURI] when the decoded size is needed.
func FromDataURI(dataURI, targetFilename string, resolver TypeResolver, category ...Category) FileRecord {
	return fromDataURI(dataURI, targetFilename, resolver, DefaultSanitizer(), false, category...)
}

func fromMultipart(d MultipartDescriptor, targetFilename string, s Sanitizer, category ...Category) FileRecord {
	errCode := d.Error
	if d == (MultipartDescriptor{}) {
		errCode = UploadErrNoFile
	}
	if targetFilename == "" {
		targetFilename = d.Name
	}
	size := d.Size
	rec := FileRecord{
		filename:     s.Sanitize(targetFilename),
		originalName: d.Name,
		extension:    extensionOf(d.Name),
		mimeType:     d.Type,
		sourcePath:   d.TmpPath,
		size:         &size,
		uploadError:  errCode,
	}
	if len(category) > 0 {
		rec.category = category[0]
	}
	return rec
}

func fromDataURI(dataURI, targetFilename string, resolver TypeResolver, s Sanitizer, sniff bool, category ...Category) FileRecord {
	if resolver == nil {
		resolver = NewTableResolver(nil)
	}
	mimeType := MIMETypeFromDataURI(dataURI)
	if mimeType == "" && sniff {
		if payload, ok := decodeDataURIPayload(dataURI); ok {
			mimeType = DetectMIME(payload)
		}
	}

	name := s.Sanitize(targetFilename)
	ext := extensionOf(name)
	if ext == "" && mimeType != "" {
		ext = strings.ToLower(resolver.ExtensionForMIMEType(mimeType))
	}

	rec := FileRecord{
		filename:     name,
		originalName: targetFilename,
		extension:    ext,
		mimeType:     mimeType,
		dataURI:      dataURI,
	}
	if len(category) > 0 {
		rec.category = category[0]
	} else {
		rec.category = resolver.CategoryForDataURI(dataURI)
	}
	return rec
}

// Filename returns the sanitized target filename.
func (r FileRecord) Filename() string { return r.filename }

// OriginalName returns the filename as received, unsanitized. Informational
// only; never use it as a storage path.
func (r FileRecord) OriginalName() string { return r.originalName }

// Extension returns the file extension, lowercase without the dot, or ""
// when none could be derived.
func (r FileRecord) Extension() string { return r.extension }

// MIMEType returns the MIME type, or "" when unknown.
func (r FileRecord) MIMEType() string { return r.mimeType }

// Category returns the file type category.
func (r FileRecord) Category() Category { return r.category }

// SourcePath returns the transport temp path for multipart-origin records,
// "" otherwise.
func (r FileRecord) SourcePath() string { return r.sourcePath }

// DataURI returns the originating data URI for data-URI-origin records, ""
// otherwise.
func (r FileRecord) DataURI() string { return r.dataURI }

// Size returns the upload size in bytes. The second return value reports
// whether the size is known.
func (r FileRecord) Size() (int64, bool) {
	if r.size == nil {
		return 0, false
	}
	return *r.size, true
}

// UploadError returns the transport error code, 0 on success.
func (r FileRecord) UploadError() int { return r.uploadError }

// IsUploadFromFile reports whether the record originates from a multipart
// file upload. Mutually exclusive with IsUploadFromDataURI.
func (r FileRecord) IsUploadFromFile() bool { return r.sourcePath != "" }

// IsUploadFromDataURI reports whether the record originates from a data URI.
func (r FileRecord) IsUploadFromDataURI() bool { return r.dataURI != "" }

// IsUploadSuccessful reports whether the transport delivered the upload
// without error.
func (r FileRecord) IsUploadSuccessful() bool { return r.uploadError == UploadErrOK }

// CategoryLabel returns the human-readable label for the record's category.
// Unrecognized categories yield "Unknown File Type" as a fallback.
func (r FileRecord) CategoryLabel() string { return r.category.Label() }

// NeedsFormatConversion reports whether an external image converter must act
// on this record before delivery: the category resolves to image and the
// extension is one of the conversion set (heic, heif). This package never
// performs the conversion itself.
func (r FileRecord) NeedsFormatConversion() bool {
	if r.category.Kind() != FileTypeImage {
		return false
	}
	_, ok := defaultConversionExtensions[r.extension]
	return ok
}

// WithFilename returns a copy of the record with the filename replaced. The
// extension is not re-derived; all other fields are unchanged.
func (r FileRecord) WithFilename(name string) FileRecord {
	r.filename = name
	return r
}

// WithCategory returns a copy of the record with the category replaced; all
// other fields are unchanged.
func (r FileRecord) WithCategory(c Category) FileRecord {
	r.category = c
	return r
}

// extensionOf returns the lowercased substring after the final dot, "" when
// the name has no dot.
func extensionOf(name string) string {
	i := strings.LastIndexByte(name, '.')
	if i < 0 {
		return ""
	}
	return strings.ToLower(name[i+1:])
}
